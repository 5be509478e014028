package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/accounts-api/internal/api/metrics"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

const (
	duplicateEmailMessage = "User with such email already exists"
	badCredentialsMessage = "Incorrect email or password"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account and issues a token for it.
//
// Every failure — malformed payload, validation, password mismatch,
// duplicate email, store error — collapses into the one fixed 401 message.
// That taxonomy is a documented compatibility quirk, not an accident here.
//
// @Summary      Sign up a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      401   {object}  authFailure
// @Router       /sign-up [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return h.signupFailed(c)
	}
	if err := c.Validate(&req); err != nil {
		return h.signupFailed(c)
	}

	user, token, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Avatar:          req.Avatar,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return h.signupFailed(c)
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		Status: "success",
		Token:  token,
		Data: signupData{User: sanitizedUser{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Avatar:    user.Avatar,
		}},
	})
}

func (h *AuthHandler) signupFailed(c echo.Context) error {
	metrics.SignupsTotal.WithLabelValues("failed").Inc()
	return c.JSON(http.StatusUnauthorized, authFailure{
		Status: "failed",
		Token:  duplicateEmailMessage,
	})
}

// Login authenticates an account and returns a fresh token. Each failure
// branch returns immediately so exactly one response is produced.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  authFailure
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.loginFailed(c)
	}
	if req.Email == "" || req.Password == "" {
		return h.loginFailed(c)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.loginFailed(c)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Status:    "success",
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
		Token:     token,
	})
}

func (h *AuthHandler) loginFailed(c echo.Context) error {
	metrics.LoginsTotal.WithLabelValues("failed").Inc()
	// "failure" here versus "failed" on signup matches what clients parse.
	return c.JSON(http.StatusUnauthorized, authFailure{
		Status: "failure",
		Token:  badCredentialsMessage,
	})
}
