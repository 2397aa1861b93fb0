package models

// RegisterRequest carries the data needed to create an account.
type RegisterRequest struct {
	Profile

	// Password is the plain-text password. It is hashed before it reaches
	// the storage layer and never stored as is.
	Password string `json:"password"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CircleNameRequest is used both to create a custom circle and to rename one.
type CircleNameRequest struct {
	Name string `json:"name"`
}

// HasContactResponse is returned by the membership check endpoint.
type HasContactResponse struct {
	CircleID  string `json:"circle_id"`
	ContactID string `json:"contact_id"`
	IsContact bool   `json:"is_contact"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}
