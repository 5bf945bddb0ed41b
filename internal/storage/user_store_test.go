package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
)

func openUsers(t *testing.T) *UserStore {
	t.Helper()
	s, err := OpenUserStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCreateUserHashesPassword(t *testing.T) {
	s := openUsers(t)

	u, err := s.CreateUser("张三", "zhang@example.com", "13800138000", "hunter2secret")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter2secret", u.PasswordHash)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"), "expected a bcrypt hash, got %q", u.PasswordHash)
	assert.Equal(t, model.UserStatusActive, u.Status)
	assert.False(t, u.RegisterDate.IsZero())
}

func TestVerifyPassword(t *testing.T) {
	s := openUsers(t)

	created, err := s.CreateUser("李四", "li@example.com", "13900139000", "correct-horse")
	require.NoError(t, err)

	u, err := s.VerifyPassword("li@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	// A wrong password and an unknown email fail identically.
	_, err = s.VerifyPassword("li@example.com", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.VerifyPassword("nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUniquenessProbes(t *testing.T) {
	s := openUsers(t)

	_, err := s.CreateUser("王五", "wang@example.com", "13700137000", "pw123456")
	require.NoError(t, err)

	assert.True(t, s.EmailExists("wang@example.com"))
	assert.True(t, s.PhoneExists("13700137000"))
	assert.True(t, s.NameExists("王五"))

	assert.False(t, s.EmailExists("other@example.com"))
	assert.False(t, s.PhoneExists("13600136000"))
	assert.False(t, s.NameExists("赵六"))
}

func TestTouchLastLogin(t *testing.T) {
	s := openUsers(t)

	u, err := s.CreateUser("test", "t@example.com", "13500135000", "pw123456")
	require.NoError(t, err)

	// Backdate so the touch is observable.
	stale := time.Now().Add(-time.Hour)
	_, err = s.Update(u.ID, func(u *model.User) { u.LastLogin = stale })
	require.NoError(t, err)

	touched, err := s.TouchLastLogin(u.ID)
	require.NoError(t, err)
	assert.True(t, touched.LastLogin.After(stale))
}
