package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"melodex/db_client"
)

func setupService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db_client.Migrate(db))

	return NewService(db, "test-secret")
}

func TestSignup_HashesPassword(t *testing.T) {
	svc := setupService(t)

	user, err := svc.Signup("Alice", "alice@example.com", "hunter22")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Signup("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Signup("Other Alice", "alice@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_IssuesTokenForOwner(t *testing.T) {
	svc := setupService(t)

	created, err := svc.Signup("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	user, token, err := svc.Login("alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := setupService(t)

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Signup("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_RejectsTampering(t *testing.T) {
	svc := setupService(t)

	user, err := svc.Signup("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	_, err = svc.ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewService(nil, "another-secret")
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueToken_SetsExpiry(t *testing.T) {
	svc := setupService(t)

	user, err := svc.Signup("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}
