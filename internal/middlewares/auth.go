package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/sbilibin2017/yamdb/internal/jwt"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the user a token was issued to.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

type callerKey struct{}

// WithCaller stores the authenticated user in ctx.
func WithCaller(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, callerKey{}, user)
}

// CallerFromContext returns the authenticated user, or nil for anonymous requests.
func CallerFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(callerKey{}).(*models.UserDB)
	return user
}

// AuthMiddleware resolves the bearer token into the calling user. Requests
// without a token pass through anonymously; a token that does not verify or
// names a deleted user is rejected with 401.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrNoToken) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				log.Infow("authorization failed", "err", err)
				unauthorized(w, r, "Authorization header must be 'Bearer <token>'.")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Infow("authorization failed", "err", err)
				unauthorized(w, r, "Given token not valid for any token type.")
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				log.Errorw("failed to load token user", "user_id", claims.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				log.Infow("token user not found", "user_id", claims.UserID)
				unauthorized(w, r, "User not found.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]string{"detail": detail})
}
