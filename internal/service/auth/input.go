package auth

import (
	"unicode/utf8"

	"github.com/WillSanton/WebSite/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit in bytes
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs domain.FieldErrors
	checkUsername(&errs, i.Username)
	checkNewPassword(&errs, "password", i.Password)
	return errs.Err()
}

// LoginInput holds parameters for password login. Missing fields are not
// reported individually; Login answers ErrInvalidCredentials for them.
type LoginInput struct {
	Username string
	Password string
}

func (i LoginInput) complete() bool {
	return i.Username != "" && i.Password != ""
}

// ChangePasswordInput holds parameters for a password change.
// ConfirmPassword is optional; when sent it must equal NewPassword.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs domain.FieldErrors
	if i.CurrentPassword == "" {
		errs.Add("currentPassword", "required")
	}
	checkNewPassword(&errs, "newPassword", i.NewPassword)
	if i.ConfirmPassword != "" && i.ConfirmPassword != i.NewPassword {
		errs.Add("confirmPassword", "passwords do not match")
	}
	return errs.Err()
}

func checkUsername(errs *domain.FieldErrors, username string) {
	n := utf8.RuneCountInString(username)
	switch {
	case n == 0:
		errs.Add("username", "required")
	case n < minUsernameLen:
		errs.Add("username", "must be at least 3 characters")
	case n > maxUsernameLen:
		errs.Add("username", "must be at most 50 characters")
	}
}

func checkNewPassword(errs *domain.FieldErrors, field, password string) {
	switch {
	case password == "":
		errs.Add(field, "required")
	case utf8.RuneCountInString(password) < minPasswordLen:
		errs.Add(field, "must be at least 6 characters")
	case len(password) > maxPasswordLen:
		errs.Add(field, "must be at most 72 bytes")
	}
}
