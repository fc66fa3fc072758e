package services

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/permissions"
	"github.com/sbilibin2017/yamdb/internal/validation"
)

// UserService manages user accounts and the caller's own profile.
type UserService struct {
	users     UserRepository
	validator Validator
}

// NewUserService creates a UserService.
func NewUserService(users UserRepository, v Validator) *UserService {
	return &UserService{users: users, validator: v}
}

// List returns one page of users whose username contains search.
func (svc *UserService) List(ctx context.Context, caller *models.UserDB, search string, page models.PageRequest) ([]models.UserDB, int, error) {
	if err := permissions.Authorize(caller, permissions.Users, http.MethodGet, nil); err != nil {
		return nil, 0, err
	}
	return svc.users.List(ctx, search, page)
}

// Create adds a user on behalf of an admin.
func (svc *UserService) Create(ctx context.Context, caller *models.UserDB, in models.UserInput) (*models.UserDB, error) {
	if err := permissions.Authorize(caller, permissions.Users, http.MethodPost, nil); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	err := validate(ctx, svc.validator, in,
		validation.CheckUsernameNotReserved(in.Username),
		validation.CheckEmailOnCreate(in.Email),
	)
	if err != nil {
		return nil, err
	}

	return createOrReuse(ctx, svc.users, models.UserDB{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
		Role:      in.Role,
	})
}

// Get returns the user named username.
func (svc *UserService) Get(ctx context.Context, caller *models.UserDB, username string) (*models.UserDB, error) {
	if err := permissions.Authorize(caller, permissions.Users, http.MethodGet, nil); err != nil {
		return nil, err
	}
	return svc.find(ctx, username)
}

// Update applies patch to the user named username on behalf of an admin.
func (svc *UserService) Update(ctx context.Context, caller *models.UserDB, username string, patch models.UserPatch) (*models.UserDB, error) {
	if err := permissions.Authorize(caller, permissions.Users, http.MethodPatch, nil); err != nil {
		return nil, err
	}
	return svc.update(ctx, username, patch, false)
}

// Delete removes the user named username.
func (svc *UserService) Delete(ctx context.Context, caller *models.UserDB, username string) error {
	if err := permissions.Authorize(caller, permissions.Users, http.MethodDelete, nil); err != nil {
		return err
	}
	return svc.users.Delete(ctx, username)
}

// Me returns the caller's own profile.
func (svc *UserService) Me(ctx context.Context, caller *models.UserDB) (*models.UserDB, error) {
	if err := permissions.Authorize(caller, permissions.Me, http.MethodGet, nil); err != nil {
		return nil, err
	}
	return svc.find(ctx, caller.Username)
}

// UpdateMe applies patch to the caller's own profile. The role cannot change this way.
func (svc *UserService) UpdateMe(ctx context.Context, caller *models.UserDB, patch models.UserPatch) (*models.UserDB, error) {
	if err := permissions.Authorize(caller, permissions.Me, http.MethodPatch, nil); err != nil {
		return nil, err
	}
	return svc.update(ctx, caller.Username, patch, true)
}

func (svc *UserService) find(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// update is the single profile update path. callerIsSelf drops the role change.
func (svc *UserService) update(ctx context.Context, username string, patch models.UserPatch, callerIsSelf bool) (*models.UserDB, error) {
	target, err := svc.find(ctx, username)
	if err != nil {
		return nil, err
	}

	if callerIsSelf {
		patch.Role = nil
	}

	rules := []*apperrors.ValidationError{validation.CheckEmailOnUpdate(patch.Email)}
	if patch.Username != nil {
		rules = append(rules, validation.CheckUsernameNotReserved(*patch.Username))
	}
	if err := validate(ctx, svc.validator, patch, rules...); err != nil {
		return nil, err
	}

	updated := *target
	applyUserPatch(&updated, patch)

	var byUsername, byEmail *models.UserDB
	if updated.Username != target.Username {
		if byUsername, err = svc.users.GetByUsername(ctx, updated.Username); err != nil {
			return nil, err
		}
	}
	if updated.Email != target.Email {
		if byEmail, err = svc.users.GetByEmail(ctx, updated.Email); err != nil {
			return nil, err
		}
	}
	if verr := validation.CheckUserUniqueness(target, updated.Username, updated.Email, byUsername, byEmail); verr != nil {
		return nil, verr
	}

	if err := svc.users.Update(ctx, &updated); err != nil {
		logger.FromContext(ctx).Errorw("failed to update user", "username", username, "error", err)
		return nil, conflict(err)
	}
	return &updated, nil
}

func applyUserPatch(u *models.UserDB, p models.UserPatch) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
