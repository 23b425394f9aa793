package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"thelist/internal/application/command"
	"thelist/internal/application/interfaces"
	"thelist/internal/application/mapper"
	"thelist/internal/application/query"
	"thelist/internal/domain/entities"
	"thelist/internal/domain/errs"
	"thelist/internal/domain/repositories"
	"thelist/internal/infrastructure"
)

const (
	sessionTokenTTL  = 24 * time.Hour
	rememberMeTTL    = 14 * 24 * time.Hour
	resetEmailWindow = time.Hour

	DefaultRateLimitWindow   = 15 * time.Minute
	DefaultRateLimitAttempts = 10
)

var (
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrTooManyRequests    = errors.New("too many requests, please try again later")
)

// TokenIssuer signs authentication tokens for a user id.
type TokenIssuer interface {
	GenerateToken(userID string, ttl time.Duration) (string, error)
}

// Mailer delivers transactional email. Failures are logged by callers and
// never fail the mutation that triggered the send.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, text, html string) error
}

// ResetTokenStore keeps single-use password reset tokens with a TTL. Get
// returns ("", nil) for an unknown or expired token.
type ResetTokenStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// UserCreatedHook runs after a user has been persisted. Each hook must be
// registered exactly once so side effects like the welcome email fire once
// per created user.
type UserCreatedHook func(user *entities.User)

type UserService struct {
	userRepo    repositories.UserRepository
	jwtService  TokenIssuer
	mailer      Mailer
	resetTokens ResetTokenStore
	rateLimiter *infrastructure.RateLimiter
	siteName    string
	siteURL     string

	onUserCreated []UserCreatedHook
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService TokenIssuer,
	mailer Mailer,
	resetTokens ResetTokenStore,
	rateLimiter *infrastructure.RateLimiter,
	siteName, siteURL string,
) *UserService {
	s := &UserService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		mailer:      mailer,
		resetTokens: resetTokens,
		rateLimiter: rateLimiter,
		siteName:    siteName,
		siteURL:     siteURL,
	}
	s.RegisterUserCreatedHook(s.sendWelcomeEmail)
	return s
}

var _ interfaces.UserService = (*UserService)(nil)

// RegisterUserCreatedHook adds a post-creation hook. Each hook fires exactly
// once per created user.
func (s *UserService) RegisterUserCreatedHook(hook UserCreatedHook) {
	s.onUserCreated = append(s.onUserCreated, hook)
}

func (s *UserService) Register(cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	newUser := entities.NewUser(cmd.Username, cmd.Email, cmd.Password, cmd.FirstName, cmd.LastName)

	validatedUser, err := entities.NewValidatedUser(newUser)

	// Merge field and password violations so the caller sees every broken
	// rule at once.
	passwordViolations := entities.ValidatePassword(cmd.Password, cmd.PasswordConfirm)
	if err != nil {
		var ve *errs.ValidationError
		if errors.As(err, &ve) && len(passwordViolations) > 0 {
			return nil, errs.NewValidation(append(ve.Violations, passwordViolations...)...)
		}
		return nil, err
	}
	if len(passwordViolations) > 0 {
		return nil, errs.NewValidation(passwordViolations...)
	}

	existingUser, err := s.userRepo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, errs.NewConflict("username", "already exists")
	}

	existingUser, err = s.userRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, errs.NewConflict("email", "already exists")
	}

	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	// Fire post-creation hooks asynchronously; a failed welcome email must
	// never roll back the registration.
	for _, hook := range s.onUserCreated {
		go hook(createdUser)
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) sendWelcomeEmail(user *entities.User) {
	if user.Email == "" {
		return
	}

	subject := fmt.Sprintf("Welcome to %s!", s.siteName)
	text := fmt.Sprintf("Hi %s,\n\nThanks for signing up! We're excited to have you.", user.DisplayName())
	if err := s.mailer.Send(context.Background(), user.Email, subject, text, ""); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
	}
}

func (s *UserService) Login(cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.rateLimiter.Allow("login:" + cmd.Username) {
		return nil, ErrTooManyRequests
	}

	// Try username first, then fall back to email; the login form offers a
	// single field for both.
	user, err := s.userRepo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.FindByEmail(cmd.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := sessionTokenTTL
	if cmd.RememberMe {
		ttl = rememberMeTTL
	}

	token, err := s.jwtService.GenerateToken(user.Id.String(), ttl)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

const resetRequestedMessage = "If an account with that email exists, a password reset email has been sent."

func (s *UserService) RequestPasswordReset(cmd *command.RequestPasswordResetCommand) (*command.RequestPasswordResetCommandResult, error) {
	if cmd.Email == "" {
		return nil, errs.NewValidation("email is required")
	}

	if !s.rateLimiter.Allow("reset:" + cmd.Email) {
		return nil, ErrTooManyRequests
	}

	user, err := s.userRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	// The response never reveals whether the account exists.
	if user == nil {
		return &command.RequestPasswordResetCommandResult{Message: resetRequestedMessage}, nil
	}

	ctx := context.Background()
	token := uuid.NewString()
	if err := s.resetTokens.Set(ctx, token, user.Id.String(), resetEmailWindow); err != nil {
		return nil, err
	}

	resetURL := fmt.Sprintf("%s/reset/%s/", s.siteURL, token)
	subject := fmt.Sprintf("Reset Your %s Password", s.siteName)
	text := fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password:\n%s\n\nThe link expires in one hour.", user.DisplayName(), resetURL)
	if err := s.mailer.Send(ctx, user.Email, subject, text, ""); err != nil {
		log.Printf("Failed to send password reset email to %s: %v", user.Email, err)
	}

	return &command.RequestPasswordResetCommandResult{Message: resetRequestedMessage}, nil
}

func (s *UserService) ConfirmPasswordReset(cmd *command.ConfirmPasswordResetCommand) (*command.ConfirmPasswordResetCommandResult, error) {
	if violations := entities.ValidateStrongPassword(cmd.Password, cmd.PasswordConfirm); len(violations) > 0 {
		return nil, errs.NewValidation(violations...)
	}

	ctx := context.Background()
	userID, err := s.resetTokens.Get(ctx, cmd.Token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errs.NewNotFound("reset token")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errs.NewNotFound("reset token")
	}

	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("reset token")
	}

	if err := user.SetPassword(cmd.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// Tokens are single use.
	if err := s.resetTokens.Delete(ctx, cmd.Token); err != nil {
		log.Printf("Failed to delete reset token: %v", err)
	}

	return &command.ConfirmPasswordResetCommandResult{Message: "Your password has been changed successfully."}, nil
}

func (s *UserService) FindUserById(id uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
