package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/yamdb/internal/jwt"
	"github.com/sbilibin2017/yamdb/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	bob := &models.UserDB{ID: 7, Username: "bob"}

	tests := []struct {
		name             string
		mockSetup        func(tk *MockTokener, users *MockUserGetter)
		expectedStatus   int
		expectNextCalled bool
		expectCaller     *models.UserDB
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, _ *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoToken)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "MalformedHeader",
			mockSetup: func(tk *MockTokener, _ *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("invalid authorization header format"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, _ *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "DeletedUser",
			mockSetup: func(tk *MockTokener, users *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: 7, Username: "bob"}, nil)
				users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "StoreError",
			mockSetup: func(tk *MockTokener, users *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: 7, Username: "bob"}, nil)
				users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(tk *MockTokener, users *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: 7, Username: "bob"}, nil)
				users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(bob, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectCaller:     bob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tk := NewMockTokener(ctrl)
			users := NewMockUserGetter(ctrl)
			tt.mockSetup(tk, users)

			nextCalled := false
			var caller *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				caller = CallerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tk, users)(next)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			assert.Equal(t, tt.expectCaller, caller)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), "detail")
			}
		})
	}
}
