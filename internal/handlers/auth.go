package handlers

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/models"
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, in models.SignupInput) (*models.UserDB, error)
}

// TokenExchanger exchanges confirmation codes for access tokens.
type TokenExchanger interface {
	Token(ctx context.Context, in models.TokenInput) (string, error)
}

// SignupResponse echoes the registered identity
// swagger:model SignupResponse
type SignupResponse struct {
	// Username
	// default: john_doe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up
// @Description Registers a user, or reuses an unconfirmed record with the same username and email, and mails the confirmation code.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.SignupInput true "Signup request"
// @Success 200 {object} handlers.SignupResponse "Confirmation code sent"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid or conflicting fields"
// @Failure 429 {object} handlers.ErrorResponse "Request was throttled"
// @Router /auth/signup/ [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.SignupInput
		if !decode(w, r, &in) {
			return
		}

		user, err := svc.Signup(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}

		respond(w, r, http.StatusOK, SignupResponse{Username: user.Username, Email: user.Email})
	}
}

// NewTokenHandler returns an HTTP handler for the token exchange.
// @Summary Obtain an access token
// @Description Exchanges the mailed confirmation code for a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRequest body models.TokenInput true "Token request"
// @Success 200 {object} models.TokenResponse "Access token"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid confirmation code"
// @Failure 404 {object} handlers.ErrorResponse "Unknown username"
// @Failure 429 {object} handlers.ErrorResponse "Request was throttled"
// @Router /auth/token/ [post]
func NewTokenHandler(svc TokenExchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.TokenInput
		if !decode(w, r, &in) {
			return
		}

		token, err := svc.Token(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}

		respond(w, r, http.StatusOK, models.TokenResponse{Token: token})
	}
}
