package dto

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// Password is accepted for form compatibility and never verified.
	Password string `json:"password,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type GoogleConnectionRequest struct {
	UserID  string `json:"userId"`
	Connect bool   `json:"connect"`
}
