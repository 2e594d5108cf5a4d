// Package dto defines the request bodies of the auth endpoints.
package dto

// SignupReq is the body of POST /signup.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
