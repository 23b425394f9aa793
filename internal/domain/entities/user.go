package entities

import (
	"fmt"
	"net/mail"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"thelist/internal/domain/errs"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
	PasswordMinLength = 8
	NameMaxLength     = 30
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`\d`)
	hasUpper        = regexp.MustCompile(`[A-Z]`)
	hasLower        = regexp.MustCompile(`[a-z]`)
	hasSpecial      = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

var commonPasswords = map[string]bool{
	"password":  true,
	"12345678":  true,
	"qwerty123": true,
}

type User struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	IsAdmin   bool
}

func NewUser(username, email, password, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
}

// validate collects every violated signup rule instead of stopping at the
// first one.
func (u *User) validate() []string {
	var violations []string

	if len(u.Username) < UsernameMinLength {
		violations = append(violations, fmt.Sprintf("username must be at least %d characters long", UsernameMinLength))
	} else if len(u.Username) > UsernameMaxLength {
		violations = append(violations, fmt.Sprintf("username must be less than %d characters", UsernameMaxLength))
	} else if !usernamePattern.MatchString(u.Username) {
		violations = append(violations, "username can only contain letters, numbers, and underscores")
	}

	if u.Email == "" {
		violations = append(violations, "email is required")
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		violations = append(violations, "please enter a valid email address")
	}

	if u.FirstName == "" {
		violations = append(violations, "first name is required")
	} else if len(u.FirstName) > NameMaxLength {
		violations = append(violations, fmt.Sprintf("first name must be less than %d characters", NameMaxLength))
	}

	if u.LastName != "" && len(u.LastName) > NameMaxLength {
		violations = append(violations, fmt.Sprintf("last name must be less than %d characters", NameMaxLength))
	}

	return violations
}

// ValidatePassword applies the signup password rules: minimum length plus at
// least one letter and one digit.
func ValidatePassword(password, confirm string) []string {
	var violations []string

	if len(password) < PasswordMinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", PasswordMinLength))
	} else if password != confirm {
		violations = append(violations, "passwords do not match")
	} else if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		violations = append(violations, "password must contain both letters and numbers")
	}

	return violations
}

// ValidateStrongPassword applies the stricter reset-flow rules: upper, lower,
// digit and special character, and a short deny list of common passwords.
func ValidateStrongPassword(password, confirm string) []string {
	var violations []string

	if len(password) < PasswordMinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", PasswordMinLength))
	}
	if !hasUpper.MatchString(password) {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if !hasLower.MatchString(password) {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if !hasDigit.MatchString(password) {
		violations = append(violations, "password must contain at least one number")
	}
	if !hasSpecial.MatchString(password) {
		violations = append(violations, `password must contain at least one special character (!@#$%^&*(),.?":{}|<>)`)
	}
	if commonPasswords[password] {
		violations = append(violations, "this password is too common, please choose a more secure password")
	}
	if len(violations) == 0 && password != confirm {
		violations = append(violations, "the two password fields didn't match")
	}

	return violations
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// SetPassword replaces the password with the bcrypt hash of the new one.
func (u *User) SetPassword(password string) error {
	u.Password = password
	if err := u.HashPassword(); err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	return nil
}

// DisplayName prefers the first name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if violations := user.validate(); len(violations) > 0 {
		return nil, errs.NewValidation(violations...)
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}
