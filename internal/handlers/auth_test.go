package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

func TestSignupHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockSignuper)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: models.SignupInput{Username: "bob", Email: "b@x.com"},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), models.SignupInput{Username: "bob", Email: "b@x.com"}).
					Return(&models.UserDB{ID: 1, Username: "bob", Email: "b@x.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"username":"bob","email":"b@x.com"}`,
		},
		{
			name: "validation error",
			body: models.SignupInput{Username: "me", Email: "me@x.com"},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.NewValidationError("username", `Username "me" is not allowed.`))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"username":["Username \"me\" is not allowed."]}`,
		},
		{
			name: "internal error",
			body: models.SignupInput{Username: "bob", Email: "b@x.com"},
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error."}`,
		},
		{
			name:         "invalid json",
			body:         "{invalid",
			mockSetup:    func(m *MockSignuper) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockSignuper(ctrl)
			tt.mockSetup(m)

			rr := serve(t, http.MethodPost, "/auth/signup/", "/auth/signup/", nil, tt.body, NewSignupHandler(m))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestTokenHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "issued", expectedCode: http.StatusOK, expectedBody: `{"token":"signed"}`},
		{name: "unknown user", err: apperrors.ErrNotFound, expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Not found."}`},
		{
			name:         "wrong code",
			err:          apperrors.NewValidationError("confirmation_code", "Invalid confirmation code."),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"confirmation_code":["Invalid confirmation code."]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockTokenExchanger(ctrl)
			in := models.TokenInput{Username: "bob", ConfirmationCode: "abc"}
			token := ""
			if tt.err == nil {
				token = "signed"
			}
			m.EXPECT().Token(gomock.Any(), in).Return(token, tt.err)

			rr := serve(t, http.MethodPost, "/auth/token/", "/auth/token/", nil, in, NewTokenHandler(m))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
