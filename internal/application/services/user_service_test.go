package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"thelist/internal/application/command"
	"thelist/internal/domain/errs"
	"thelist/internal/infrastructure"
	"thelist/internal/infrastructure/db/postgres"
)

type sentEmail struct {
	Recipient string
	Subject   string
	Text      string
}

// captureMailer records sends instead of delivering. Hooks fire from
// goroutines, so access is guarded.
type captureMailer struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (m *captureMailer) Send(_ context.Context, recipient, subject, text, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{Recipient: recipient, Subject: subject, Text: text})
	return nil
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *captureMailer) last() sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

type memoryResetStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemoryResetStore() *memoryResetStore {
	return &memoryResetStore{tokens: make(map[string]string)}
}

func (s *memoryResetStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *memoryResetStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token], nil
}

func (s *memoryResetStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *memoryResetStore) anyToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token := range s.tokens {
		return token
	}
	return ""
}

func newUserService(t *testing.T, limit int) (*UserService, *captureMailer, *memoryResetStore, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	mailer := &captureMailer{}
	resetStore := newMemoryResetStore()
	svc := NewUserService(
		postgres.NewUserRepository(db),
		infrastructure.NewJWTService("test-secret"),
		mailer,
		resetStore,
		infrastructure.NewRateLimiter(time.Minute, limit),
		"The List",
		"http://localhost:8080",
	)
	return svc, mailer, resetStore, db
}

func registerCmd(username string) *command.RegisterUserCommand {
	return &command.RegisterUserCommand{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "secret12",
		PasswordConfirm: "secret12",
		FirstName:       "Test",
	}
}

func TestRegisterSendsWelcomeEmailOnce(t *testing.T) {
	svc, mailer, _, _ := newUserService(t, 100)

	result, err := svc.Register(registerCmd("alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Result.Username)

	require.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "alice@example.com", mailer.last().Recipient)
	assert.Contains(t, mailer.last().Subject, "Welcome")

	// No second mechanism fires another copy later.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, mailer.count())
}

func TestRegisterCollectsAllViolations(t *testing.T) {
	svc, _, _, _ := newUserService(t, 100)

	_, err := svc.Register(&command.RegisterUserCommand{
		Username:        "a",
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "short",
	})
	require.Error(t, err)

	ve, ok := err.(*errs.ValidationError)
	require.True(t, ok)
	// short username, bad email, missing first name, short password
	assert.Len(t, ve.Violations, 4)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _, _ := newUserService(t, 100)

	_, err := svc.Register(registerCmd("alice"))
	require.NoError(t, err)

	_, err = svc.Register(registerCmd("alice"))
	require.True(t, errs.IsConflict(err))
	ce := err.(*errs.ConflictError)
	assert.Equal(t, "username", ce.Field)

	dup := registerCmd("alice2")
	dup.Email = "alice@example.com"
	_, err = svc.Register(dup)
	require.True(t, errs.IsConflict(err))
	ce = err.(*errs.ConflictError)
	assert.Equal(t, "email", ce.Field)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newUserService(t, 100)

	_, err := svc.Register(registerCmd("alice"))
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		result, err := svc.Login(&command.LoginUserCommand{Username: "alice", Password: "secret12"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "alice", result.User.Username)
	})

	t.Run("by email", func(t *testing.T) {
		result, err := svc.Login(&command.LoginUserCommand{Username: "alice@example.com", Password: "secret12", RememberMe: true})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(&command.LoginUserCommand{Username: "alice", Password: "wrong000"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(&command.LoginUserCommand{Username: "nobody", Password: "secret12"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginRateLimited(t *testing.T) {
	svc, _, _, _ := newUserService(t, 3)

	_, err := svc.Register(registerCmd("alice"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(&command.LoginUserCommand{Username: "alice", Password: "wrong000"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// The fourth attempt trips the limiter even with the right password.
	_, err = svc.Login(&command.LoginUserCommand{Username: "alice", Password: "secret12"})
	assert.ErrorIs(t, err, ErrTooManyRequests)

	// Other accounts are unaffected.
	_, err = svc.Register(registerCmd("bob"))
	require.NoError(t, err)
	_, err = svc.Login(&command.LoginUserCommand{Username: "bob", Password: "secret12"})
	assert.NoError(t, err)
}

func TestRequestPasswordResetHidesAccountExistence(t *testing.T) {
	svc, mailer, resetStore, _ := newUserService(t, 100)

	_, err := svc.Register(registerCmd("alice"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)

	unknown, err := svc.RequestPasswordReset(&command.RequestPasswordResetCommand{Email: "nobody@example.com"})
	require.NoError(t, err)

	known, err := svc.RequestPasswordReset(&command.RequestPasswordResetCommand{Email: "alice@example.com"})
	require.NoError(t, err)

	// Same message either way; only the known account gets a token and a mail.
	assert.Equal(t, unknown.Message, known.Message)
	assert.NotEmpty(t, resetStore.anyToken())
	assert.Equal(t, 2, mailer.count())
	assert.Contains(t, mailer.last().Text, resetStore.anyToken())
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, resetStore, _ := newUserService(t, 100)

	_, err := svc.Register(registerCmd("alice"))
	require.NoError(t, err)

	_, err = svc.RequestPasswordReset(&command.RequestPasswordResetCommand{Email: "alice@example.com"})
	require.NoError(t, err)

	token := resetStore.anyToken()
	require.NotEmpty(t, token)

	// Weak replacement passwords are rejected with every broken rule listed.
	_, err = svc.ConfirmPasswordReset(&command.ConfirmPasswordResetCommand{
		Token:           token,
		Password:        "weakpass",
		PasswordConfirm: "weakpass",
	})
	require.Error(t, err)
	ve, ok := err.(*errs.ValidationError)
	require.True(t, ok)
	assert.Len(t, ve.Violations, 3) // no upper, no digit, no special

	_, err = svc.ConfirmPasswordReset(&command.ConfirmPasswordResetCommand{
		Token:           token,
		Password:        "N3w!secret",
		PasswordConfirm: "N3w!secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(&command.LoginUserCommand{Username: "alice", Password: "secret12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := svc.Login(&command.LoginUserCommand{Username: "alice", Password: "N3w!secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// The token is single use.
	_, err = svc.ConfirmPasswordReset(&command.ConfirmPasswordResetCommand{
		Token:           token,
		Password:        "An0ther!pw",
		PasswordConfirm: "An0ther!pw",
	})
	assert.True(t, errs.IsNotFound(err))
}

func TestConfirmPasswordResetUnknownToken(t *testing.T) {
	svc, _, _, _ := newUserService(t, 100)

	_, err := svc.ConfirmPasswordReset(&command.ConfirmPasswordResetCommand{
		Token:           "bogus",
		Password:        "N3w!secret",
		PasswordConfirm: "N3w!secret",
	})
	assert.True(t, errs.IsNotFound(err))
}

func TestFindUserById(t *testing.T) {
	svc, _, _, db := newUserService(t, 100)

	created := seedUser(t, db, "alice")

	found, err := svc.FindUserById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Result.Username)

	missing := seedUser(t, db, "bob")
	require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", missing.Id).Error)
	_, err = svc.FindUserById(missing.Id)
	assert.True(t, errs.IsNotFound(err))
}
