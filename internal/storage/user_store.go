package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"backend/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor used since the first deployment;
// lowering it would let new hashes verify faster than old ones brute-force.
const bcryptCost = 12

// UserStore persists registered users in users.json and owns credential
// hashing and the uniqueness probes the registration flow runs before
// inserting.
type UserStore struct {
	*Store[model.User, *model.User]
}

// OpenUserStore opens or creates dir/users.json.
func OpenUserStore(dir string) (*UserStore, error) {
	s, err := Open[model.User, *model.User](filepath.Join(dir, "users.json"))
	if err != nil {
		return nil, err
	}
	return &UserStore{Store: s}, nil
}

// CreateUser hashes the plaintext password, stamps registration state and
// persists the new user. Neither the plaintext nor the hash is logged.
func (s *UserStore) CreateUser(name, email, phone, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	return s.Add(model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		RegisterDate: now,
		LastLogin:    now,
		Status:       model.UserStatusActive,
	})
}

// VerifyPassword returns the user whose email and password both match,
// or ErrNotFound for an unknown email and a wrong password alike.
// Callers that need to tell the two apart run EmailExists separately.
func (s *UserStore) VerifyPassword(email, password string) (model.User, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		return model.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

// FindByEmail returns the user registered under email, or ErrNotFound.
func (s *UserStore) FindByEmail(email string) (model.User, error) {
	matches := s.Find(func(u model.User) bool { return u.Email == email })
	if len(matches) == 0 {
		return model.User{}, ErrNotFound
	}
	return matches[0], nil
}

// TouchLastLogin stamps the user's last-login time.
func (s *UserStore) TouchLastLogin(id string) (model.User, error) {
	return s.Update(id, func(u *model.User) {
		u.LastLogin = time.Now()
	})
}

func (s *UserStore) EmailExists(email string) bool {
	return s.Exists(func(u model.User) bool { return u.Email == email })
}

func (s *UserStore) PhoneExists(phone string) bool {
	return s.Exists(func(u model.User) bool { return u.Phone == phone })
}

func (s *UserStore) NameExists(name string) bool {
	return s.Exists(func(u model.User) bool { return u.Name == name })
}
