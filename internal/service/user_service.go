package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"time"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/storage"
	"backend/pkg/pagination"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// DTOs for request validation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UserResponse is the public view of a user; it never carries the hash.
type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	RegisterDate string `json:"registerDate"`
	LastLogin    string `json:"lastLogin"`
	Bookings     int    `json:"bookings"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserDetails is the admin drill-down view: the user plus every booking
// linked to them and the spend summary derived from those bookings.
type UserDetails struct {
	UserResponse
	BookingRecords []model.Booking `json:"bookingRecords"`
	Stats          UserSpendStats  `json:"stats"`
}

type UserSpendStats struct {
	TotalBookings   int    `json:"totalBookings"`
	TotalSpent      string `json:"totalSpent"`
	LastBookingDate string `json:"lastBookingDate,omitempty"`
	AverageSpent    string `json:"averageSpent"`
}

type DeleteUserResult struct {
	User                 UserResponse `json:"user"`
	DeletedBookingsCount int          `json:"deletedBookingsCount"`
}

// UserService owns registration, authentication and the admin user
// operations, including the cross-store cascade when a user is removed.
type UserService interface {
	Register(req RegisterRequest) (*UserResponse, error)
	Login(req LoginRequest) (*AuthResponse, error)
	AdminLogin(req AdminLoginRequest) (string, error)
	GetUser(id string) (*UserResponse, error)
	ListUsers(page, limit int) ([]UserResponse, int, error)
	UpdateUser(id string, req UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id string) (*DeleteUserResult, error)
	UserDetails(id string) (*UserDetails, error)
	NameAvailable(name string) bool
}

type userService struct {
	users    *storage.UserStore
	bookings *storage.BookingStore
}

// NewUserService wires the user store plus the booking store needed for
// derived booking counts and the deletion cascade.
func NewUserService(users *storage.UserStore, bookings *storage.BookingStore) UserService {
	return &userService{users: users, bookings: bookings}
}

// phoneRegex matches mainland mobile numbers, same rule the site's
// registration form applies.
var phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

const tokenTTL = 2 * time.Hour

func mapUser(u *model.User, bookingCount int) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Status:       u.Status,
		RegisterDate: u.RegisterDate.Format(time.RFC3339),
		LastLogin:    u.LastLogin.Format(time.RFC3339),
		Bookings:     bookingCount,
	}
}

// countBookings derives the user's booking count from the booking
// collection (name plus phone match). The stored counter on User is never
// trusted for responses.
func (s *userService) countBookings(u *model.User) int {
	return len(s.bookings.Find(func(b model.Booking) bool {
		return b.Name == u.Name && b.Contact == u.Phone
	}))
}

func (s *userService) Register(req RegisterRequest) (*UserResponse, error) {
	if !phoneRegex.MatchString(req.Phone) {
		return nil, errors.New("invalid phone number")
	}
	if s.users.NameExists(req.Name) {
		return nil, fmt.Errorf("%w: name already taken", ErrConflict)
	}
	if s.users.EmailExists(req.Email) {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if s.users.PhoneExists(req.Phone) {
		return nil, fmt.Errorf("%w: phone already registered", ErrConflict)
	}

	user, err := s.users.CreateUser(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return nil, err
	}
	log.Printf("new user registered: id=%s name=%s", user.ID, user.Name)
	resp := mapUser(&user, 0)
	return &resp, nil
}

func (s *userService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.VerifyPassword(req.Email, req.Password)
	if err != nil {
		// The store deliberately reports only "no match"; split unknown
		// email from wrong password here so the client can suggest signup.
		if !s.users.EmailExists(req.Email) {
			return nil, ErrUnknownEmail
		}
		return nil, ErrInvalidCredentials
	}

	if user, err = s.users.TouchLastLogin(user.ID); err != nil {
		// Persistence failure only: the login itself succeeded.
		log.Printf("failed to persist last login for %s: %v", user.ID, err)
	}

	token, err := signToken(jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  "user",
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("user login: id=%s name=%s", user.ID, user.Name)
	return &AuthResponse{Token: token, User: mapUser(&user, s.countBookings(&user))}, nil
}

// AdminLogin checks the env-configured back-office credential and issues
// an admin token.
func (s *userService) AdminLogin(req AdminLoginRequest) (string, error) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return "", errors.New("admin login is not configured")
	}
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(password)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return signToken(jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *userService) GetUser(id string) (*UserResponse, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := mapUser(&user, s.countBookings(&user))
	return &resp, nil
}

func (s *userService) ListUsers(page, limit int) ([]UserResponse, int, error) {
	all := s.users.GetAll()
	total := len(all)

	start, end := pagination.Params{Page: page, Limit: limit}.Bounds(total)

	responses := make([]UserResponse, 0, end-start)
	for i := start; i < end; i++ {
		u := all[i]
		responses = append(responses, mapUser(&u, s.countBookings(&u)))
	}
	return responses, total, nil
}

func (s *userService) UpdateUser(id string, req UpdateUserRequest) (*UserResponse, error) {
	current, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != current.Name && s.users.NameExists(req.Name) {
		return nil, fmt.Errorf("%w: name already taken", ErrConflict)
	}
	if req.Email != "" && req.Email != current.Email && s.users.EmailExists(req.Email) {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if req.Phone != "" && req.Phone != current.Phone && s.users.PhoneExists(req.Phone) {
		return nil, fmt.Errorf("%w: phone already registered", ErrConflict)
	}

	user, err := s.users.Update(id, func(u *model.User) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Email != "" {
			u.Email = req.Email
		}
		if req.Phone != "" {
			u.Phone = req.Phone
		}
		if req.Status != "" {
			u.Status = req.Status
		}
	})
	if err != nil {
		return nil, err
	}
	resp := mapUser(&user, s.countBookings(&user))
	return &resp, nil
}

// DeleteUser removes the user and, first, every booking whose contact is
// the user's phone number. The cascade is orchestrated here; the stores
// never call each other.
func (s *userService) DeleteUser(id string) (*DeleteUserResult, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	removed, err := s.bookings.DeleteByUser(user.Phone)
	if err != nil {
		return nil, err
	}
	log.Printf("removed %d bookings for user %s", len(removed), user.Name)

	deleted, err := s.users.Delete(id)
	if err != nil {
		return nil, err
	}
	return &DeleteUserResult{
		User:                 mapUser(&deleted, 0),
		DeletedBookingsCount: len(removed),
	}, nil
}

// UserDetails returns the user together with every booking that can be
// linked to them: by name, by phone contact or by email contact, newest
// first, plus the derived spend summary.
func (s *userService) UserDetails(id string) (*UserDetails, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	records := s.bookings.Find(func(b model.Booking) bool {
		return b.Name == user.Name || b.Contact == user.Phone || b.Contact == user.Email
	})
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	stats := UserSpendStats{TotalBookings: len(records)}
	totalSpent := decimal.Zero
	for _, b := range records {
		totalSpent = totalSpent.Add(b.TotalPrice)
	}
	stats.TotalSpent = totalSpent.String()
	if len(records) > 0 {
		stats.LastBookingDate = records[0].CreatedAt.Format(time.RFC3339)
		stats.AverageSpent = totalSpent.DivRound(decimal.NewFromInt(int64(len(records))), 0).String()
	} else {
		stats.AverageSpent = "0"
	}

	return &UserDetails{
		UserResponse:   mapUser(&user, len(records)),
		BookingRecords: records,
		Stats:          stats,
	}, nil
}

func (s *userService) NameAvailable(name string) bool {
	return !s.users.NameExists(name)
}
