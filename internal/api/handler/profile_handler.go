package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/accounts-api/internal/core/ports"
)

type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

type searchResponse struct {
	Status  string          `json:"status"`
	Results []sanitizedUser `json:"results"`
}

// ProfileHandler serves profile-image upload/download and user search.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// UploadProfileImage stores the multipart "image" field as the account's
// profile image.
//
// @Summary      Upload a profile image
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Profile image"
// @Success      200    {object}  statusResponse
// @Failure      400    {object}  statusResponse
// @Router       /upload/profile-img [post]
func (h *ProfileHandler) UploadProfileImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.profiles.SaveProfileImage(c.Request().Context(), user, contentType, src); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// GetProfileImage streams the stored profile image back with its original
// content type.
//
// @Summary      Fetch the profile image
// @Tags         profile
// @Produce      octet-stream
// @Security     BearerAuth
// @Success      200
// @Failure      404  {object}  statusResponse
// @Router       /profile-img [get]
func (h *ProfileHandler) GetProfileImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	img, contentType, err := h.profiles.ProfileImage(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusNotFound, statusResponse{Status: "failed"})
	}
	defer img.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, img)
}

// SearchUsers answers POST /search with sanitized account projections.
//
// @Summary      Search users
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Search query"
// @Success      200   {object}  searchResponse
// @Failure      400   {object}  statusResponse
// @Router       /search [post]
func (h *ProfileHandler) SearchUsers(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "failed"})
	}

	users, err := h.profiles.SearchUsers(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}

	results := make([]sanitizedUser, 0, len(users))
	for _, u := range users {
		results = append(results, sanitizedUser{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Avatar:    u.Avatar,
		})
	}
	return c.JSON(http.StatusOK, searchResponse{Status: "success", Results: results})
}
