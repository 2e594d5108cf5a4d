// Package api holds the HTTP request and response bodies shared across features.
package api

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// StatusResponse is returned by the root endpoint.
type StatusResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
