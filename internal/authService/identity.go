package auth

import (
	"campustrade/internal/marketerrors"
	model "campustrade/internal/models"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// IdentityProvider verifies credentials
type IdentityProvider interface {
	Verify(email, password string) (model.User, error)
}

// Credential pairs a user record with a plaintext password. It only exists
// while the static table is being built.
type Credential struct {
	User     model.User
	Password string
}

type account struct {
	user         model.User
	passwordHash []byte
}

// StaticIdentityProvider is a fixed credential table keyed by exact email.
// Passwords are kept as bcrypt hashes.
type StaticIdentityProvider struct {
	accounts map[string]account // key: email -> value: account
}

// NewStaticIdentityProvider hashes every credential with the given bcrypt cost
func NewStaticIdentityProvider(creds []Credential, cost int) (*StaticIdentityProvider, error) {
	p := &StaticIdentityProvider{accounts: make(map[string]account, len(creds))}
	for _, c := range creds {
		if c.User.Email == "" || c.User.UserID == "" {
			return nil, fmt.Errorf("identity: %w - credential without email or user ID", marketerrors.ErrInvalidRequest)
		}
		if _, exists := p.accounts[c.User.Email]; exists {
			return nil, fmt.Errorf("identity: %w - duplicate email %s", marketerrors.ErrInvalidRequest, c.User.Email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("identity: hash password for %s: %w", c.User.Email, err)
		}
		p.accounts[c.User.Email] = account{user: c.User, passwordHash: hash}
	}
	return p, nil
}

// Verify returns the user only when both email and password match
func (p *StaticIdentityProvider) Verify(email, password string) (model.User, error) {
	acct, ok := p.accounts[email]
	if !ok {
		return model.User{}, marketerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return model.User{}, marketerrors.ErrInvalidCredentials
	}
	return acct.user, nil
}
