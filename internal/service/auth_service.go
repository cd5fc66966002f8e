package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrAdminPasswordMissing = errors.New("admin password or password hash is required")

// AuthService checks the single configured admin credential pair.
// The password is only ever held as a bcrypt hash.
type AuthService struct {
	username     string
	passwordHash []byte
}

// NewAuthService builds the authenticator from the configured credentials.
// passwordHash wins when set; otherwise password is hashed once here.
func NewAuthService(username, password, passwordHash string) (*AuthService, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("admin username is required")
	}

	if hash := strings.TrimSpace(passwordHash); hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, err
		}
		return &AuthService{username: username, passwordHash: []byte(hash)}, nil
	}

	if password == "" {
		return nil, ErrAdminPasswordMissing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{username: username, passwordHash: hashed}, nil
}

// Username returns the configured admin username.
func (s *AuthService) Username() string {
	return s.username
}

// Authenticate reports whether the pair matches the admin credentials.
func (s *AuthService) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// IsAdmin reports whether a session value identifies the admin.
func (s *AuthService) IsAdmin(sessionUser interface{}) bool {
	name, ok := sessionUser.(string)
	return ok && name != "" && name == s.username
}
