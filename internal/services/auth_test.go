package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/confirmation"
	"github.com/sbilibin2017/yamdb/internal/mailer"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/services"
	"github.com/sbilibin2017/yamdb/internal/validation"
)

type authDeps struct {
	users  *services.MockUserRepository
	mailer *services.MockMailer
	tokens *services.MockTokenIssuer
	svc    *services.AuthService
}

func newAuth(t *testing.T) authDeps {
	ctrl := gomock.NewController(t)
	d := authDeps{
		users:  services.NewMockUserRepository(ctrl),
		mailer: services.NewMockMailer(ctrl),
		tokens: services.NewMockTokenIssuer(ctrl),
	}
	d.svc = services.NewAuthService(d.users, d.mailer, d.tokens, validation.New())
	return d
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	return ve.Fields
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("reserved username", func(t *testing.T) {
		d := newAuth(t)
		_, err := d.svc.Signup(ctx, models.SignupInput{Username: "me", Email: "me@x.com"})
		assert.Contains(t, fieldsOf(t, err), "username")
	})

	t.Run("invalid payload", func(t *testing.T) {
		d := newAuth(t)
		_, err := d.svc.Signup(ctx, models.SignupInput{Username: "bad name!", Email: "nope"})
		fields := fieldsOf(t, err)
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "email")
	})

	t.Run("new user gets mailed the code", func(t *testing.T) {
		d := newAuth(t)
		d.users.EXPECT().GetByUsername(ctx, "bob").Return(nil, nil)
		d.users.EXPECT().GetByEmail(ctx, "b@x.com").Return(nil, nil)
		d.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.UserDB) error {
			u.ID = 1
			return nil
		})
		d.mailer.EXPECT().Send(ctx, mailer.Message{
			To:      "b@x.com",
			Subject: services.MailSubject,
			Body:    "Your confirmation code: " + confirmation.Code("bob"),
		}).Return(nil)

		user, err := d.svc.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(confirmation.Code("bob"))))
	})

	t.Run("repeated signup reuses the record", func(t *testing.T) {
		d := newAuth(t)
		existing := &models.UserDB{ID: 5, Username: "bob", Email: "b@x.com"}
		d.users.EXPECT().GetByUsername(ctx, "bob").Return(existing, nil)
		d.users.EXPECT().GetByEmail(ctx, "b@x.com").Return(existing, nil)
		d.mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil)

		user, err := d.svc.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("username held by another email", func(t *testing.T) {
		d := newAuth(t)
		d.users.EXPECT().GetByUsername(ctx, "bob").Return(&models.UserDB{ID: 5, Username: "bob", Email: "other@x.com"}, nil)
		d.users.EXPECT().GetByEmail(ctx, "b@x.com").Return(nil, nil)

		_, err := d.svc.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
		fields := fieldsOf(t, err)
		assert.Contains(t, fields, "username")
		assert.NotContains(t, fields, "email")
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		d := newAuth(t)
		d.users.EXPECT().GetByUsername(ctx, "bob").Return(nil, nil)
		d.users.EXPECT().GetByEmail(ctx, "b@x.com").Return(nil, nil)
		d.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.mailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("broker down"))

		_, err := d.svc.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
		assert.NoError(t, err)
	})

	t.Run("mail waits for the commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := services.NewMockUserRepository(ctrl)
		mail := services.NewMockMailer(ctrl)
		var pending []func()
		svc := services.NewAuthService(users, mail, services.NewMockTokenIssuer(ctrl), validation.New(),
			services.WithAfterCommit(func(_ context.Context, fn func()) { pending = append(pending, fn) }))

		users.EXPECT().GetByUsername(ctx, "bob").Return(nil, nil)
		users.EXPECT().GetByEmail(ctx, "b@x.com").Return(nil, nil)
		users.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := svc.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
		require.NoError(t, err)
		require.Len(t, pending, 1)

		mail.EXPECT().Send(ctx, gomock.Any()).Return(nil)
		pending[0]()
	})

	t.Run("constraint race surfaces as field error", func(t *testing.T) {
		d := newAuth(t)
		d.users.EXPECT().GetByUsername(ctx, "bob").Return(nil, nil)
		d.users.EXPECT().GetByEmail(ctx, "b@x.com").Return(nil, nil)
		d.users.EXPECT().Create(ctx, gomock.Any()).Return(&apperrors.ConstraintError{Constraint: "users_email_key"})

		_, err := d.svc.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
		assert.Contains(t, fieldsOf(t, err), "email")
	})
}

func TestAuthService_Token(t *testing.T) {
	ctx := context.Background()
	bob := &models.UserDB{ID: 7, Username: "bob", Email: "b@x.com"}

	tests := []struct {
		name      string
		in        models.TokenInput
		setup     func(d authDeps)
		wantToken string
		check     func(t *testing.T, err error)
	}{
		{
			name: "missing fields",
			in:   models.TokenInput{},
			check: func(t *testing.T, err error) {
				fields := fieldsOf(t, err)
				assert.Contains(t, fields, "username")
				assert.Contains(t, fields, "confirmation_code")
			},
		},
		{
			name: "unknown user",
			in:   models.TokenInput{Username: "ghost", ConfirmationCode: confirmation.Code("ghost")},
			setup: func(d authDeps) {
				d.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
			},
		},
		{
			name: "wrong code",
			in:   models.TokenInput{Username: "bob", ConfirmationCode: confirmation.Code("alice")},
			setup: func(d authDeps) {
				d.users.EXPECT().GetByUsername(ctx, "bob").Return(bob, nil)
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, fieldsOf(t, err), "confirmation_code")
			},
		},
		{
			name: "valid code",
			in:   models.TokenInput{Username: "bob", ConfirmationCode: confirmation.Code("bob")},
			setup: func(d authDeps) {
				d.users.EXPECT().GetByUsername(ctx, "bob").Return(bob, nil)
				d.tokens.EXPECT().Generate(ctx, int64(7), "bob").Return("signed", nil)
			},
			wantToken: "signed",
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "store error",
			in:   models.TokenInput{Username: "bob", ConfirmationCode: "x"},
			setup: func(d authDeps) {
				d.users.EXPECT().GetByUsername(ctx, "bob").Return(nil, errors.New("db down"))
			},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newAuth(t)
			if tt.setup != nil {
				tt.setup(d)
			}
			token, err := d.svc.Token(ctx, tt.in)
			tt.check(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
