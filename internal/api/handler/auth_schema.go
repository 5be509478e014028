package handler

// --- Request / Response types ---

type signupRequest struct {
	FirstName       string `json:"firstName"       validate:"required"`
	LastName        string `json:"lastName"        validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Avatar          string `json:"avatar"`
	Password        string `json:"password"        validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sanitizedUser is the projection returned to clients: never the password
// hash, never the movie lists.
type sanitizedUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

type signupData struct {
	User sanitizedUser `json:"user"`
}

type signupResponse struct {
	Status string     `json:"status"`
	Token  string     `json:"token"`
	Data   signupData `json:"data"`
}

// authFailure carries the failure message in the token field. The legacy
// web client reads it from there, so the shape stays.
type authFailure struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type loginResponse struct {
	Status    string `json:"status"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Token     string `json:"token"`
}
