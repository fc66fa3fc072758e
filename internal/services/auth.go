package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/confirmation"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/mailer"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/validation"
)

// Registration mail
const (
	MailSubject = "YaMDb registration"
	mailBody    = "Your confirmation code: %s"
)

// AuthService handles signup and token exchange.
type AuthService struct {
	users       UserRepository
	mailer      Mailer
	tokens      TokenIssuer
	validator   Validator
	afterCommit func(ctx context.Context, fn func())
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithAfterCommit makes Signup hand the confirmation mail to defer, so it is
// only sent once the user record is durable.
func WithAfterCommit(deferFn func(ctx context.Context, fn func())) AuthOpt {
	return func(s *AuthService) {
		s.afterCommit = deferFn
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserRepository, m Mailer, tokens TokenIssuer, v Validator, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		users:       users,
		mailer:      m,
		tokens:      tokens,
		validator:   v,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Signup registers the user, or reuses an unconfirmed record with the same
// username and email, and mails the confirmation code.
func (svc *AuthService) Signup(ctx context.Context, in models.SignupInput) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, svc.validator, in, validation.CheckUsernameNotReserved(in.Username)); err != nil {
		log.Infow("signup rejected", "username", in.Username, "error", err)
		return nil, err
	}

	user, err := createOrReuse(ctx, svc.users, models.UserDB{
		Username: in.Username,
		Email:    in.Email,
		Role:     models.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	msg := mailer.Message{
		To:      user.Email,
		Subject: MailSubject,
		Body:    fmt.Sprintf(mailBody, confirmation.Code(user.Username)),
	}
	username := user.Username
	svc.afterCommit(ctx, func() {
		if err := svc.mailer.Send(ctx, msg); err != nil {
			log.Errorw("failed to send confirmation code", "username", username, "error", err)
		}
	})

	return user, nil
}

// Token exchanges a confirmation code for an access token.
func (svc *AuthService) Token(ctx context.Context, in models.TokenInput) (string, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, svc.validator, in); err != nil {
		return "", err
	}

	user, err := svc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		log.Errorw("failed to get user", "username", in.Username, "error", err)
		return "", err
	}
	if user == nil {
		log.Infow("token requested for unknown user", "username", in.Username)
		return "", apperrors.ErrNotFound
	}

	if !confirmation.Verify(user.Username, in.ConfirmationCode) {
		log.Infow("invalid confirmation code", "username", in.Username)
		return "", apperrors.NewValidationError("confirmation_code", "Invalid confirmation code.")
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username)
	if err != nil {
		log.Errorw("failed to generate JWT", "error", err)
		return "", err
	}
	return token, nil
}

// createOrReuse stores candidate unless a record with exactly its username and
// email already exists, in which case that record is returned unchanged. The
// password is derived from the confirmation code.
func createOrReuse(ctx context.Context, users UserRepository, candidate models.UserDB) (*models.UserDB, error) {
	byUsername, err := users.GetByUsername(ctx, candidate.Username)
	if err != nil {
		return nil, err
	}
	byEmail, err := users.GetByEmail(ctx, candidate.Email)
	if err != nil {
		return nil, err
	}

	if verr := validation.CheckUserUniqueness(nil, candidate.Username, candidate.Email, byUsername, byEmail); verr != nil {
		return nil, verr
	}
	if byUsername != nil {
		return byUsername, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(confirmation.Code(candidate.Username)), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "error", err)
		return nil, err
	}
	candidate.PasswordHash = string(hash)

	if err := users.Create(ctx, &candidate); err != nil {
		logger.FromContext(ctx).Errorw("failed to save user", "username", candidate.Username, "error", err)
		return nil, conflict(err)
	}
	return &candidate, nil
}
