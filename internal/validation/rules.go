package validation

import (
	"fmt"
	"time"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// CheckUsernameNotReserved rejects the literal "me".
func CheckUsernameNotReserved(username string) *apperrors.ValidationError {
	if username == models.ReservedUsername {
		return apperrors.NewValidationError("username", fmt.Sprintf("Username %q is not allowed.", models.ReservedUsername))
	}
	return nil
}

// CheckEmailOnCreate requires a non-empty email.
func CheckEmailOnCreate(email string) *apperrors.ValidationError {
	if email == "" {
		return apperrors.NewValidationError("email", "This field is required.")
	}
	return nil
}

// CheckEmailOnUpdate allows omission but not an empty value.
func CheckEmailOnUpdate(email *string) *apperrors.ValidationError {
	if email != nil && *email == "" {
		return apperrors.NewValidationError("email", "This field may not be blank.")
	}
	return nil
}

// CheckUserUniqueness reports which of username and email collide with other users.
//
// target is the record being updated, nil on create. byUsername and byEmail are
// the current holders of the requested values, nil when free. On create, an
// existing record holding exactly the requested pair is not a collision so
// that repeated signups are idempotent.
func CheckUserUniqueness(target *models.UserDB, username, email string, byUsername, byEmail *models.UserDB) *apperrors.ValidationError {
	errs := &apperrors.ValidationError{}

	if byUsername != nil && !sameRecord(target, byUsername) && !(target == nil && byUsername.Email == email) {
		errs.Add("username", fmt.Sprintf("Username %q is already taken.", username))
	}
	if byEmail != nil && !sameRecord(target, byEmail) && !(target == nil && byEmail.Username == username) {
		errs.Add("email", fmt.Sprintf("Email %q is already taken.", email))
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func sameRecord(target, other *models.UserDB) bool {
	return target != nil && other != nil && target.ID == other.ID
}

// CheckYear rejects release years after the current calendar year.
func CheckYear(year int, now time.Time) *apperrors.ValidationError {
	if year > now.Year() {
		return apperrors.NewValidationError("year", fmt.Sprintf("Year %d is later than the current year %d.", year, now.Year()))
	}
	return nil
}

// CheckGenres requires at least one genre slug.
func CheckGenres(genres []string) *apperrors.ValidationError {
	if len(genres) == 0 {
		return apperrors.NewValidationError("genre", "This field may not be empty.")
	}
	return nil
}
