package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("no user signed in")
)

// SessionGate binds a single current user for the running instance.
//
// Unless requirePassword is set, an empty supplied password or an account without a
// stored password both match. Stored bcrypt hashes are verified as hashes; anything else
// is compared as plaintext.
type SessionGate struct {
	state           *Container
	requirePassword bool
}

func NewSessionGate(state *Container, requirePassword bool) *SessionGate {
	return &SessionGate{state: state, requirePassword: requirePassword}
}

// Login matches username case-insensitively. The first account whose name and password both
// match is bound; an account sharing the name with another password does not hide it.
func (g *SessionGate) Login(ctx context.Context, username, password string) (domain.User, error) {
	c := g.state
	c.mu.Lock()
	defer c.mu.Unlock()

	name := strings.TrimSpace(username)
	for _, user := range c.users {
		if !strings.EqualFold(user.Username, name) {
			continue
		}
		if !g.passwordMatches(user.Password, password) {
			continue
		}
		bound := user.Public()
		c.currentUser = &bound
		if err := c.persistSessionLocked(ctx); err != nil {
			return bound, err
		}
		slog.Info("user signed in", slog.String("userId", bound.ID), slog.String("role", string(bound.Role)))
		return bound, nil
	}
	slog.Warn("sign in rejected", slog.String("username", name))
	return domain.User{}, ErrInvalidCredentials
}

// Logout clears the slot unconditionally.
func (g *SessionGate) Logout(ctx context.Context) error {
	c := g.state
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = nil
	return c.persistSessionLocked(ctx)
}

// Current returns the bound user or ErrUnauthenticated.
func (g *SessionGate) Current() (domain.User, error) {
	user, ok := g.state.CurrentUser()
	if !ok {
		return domain.User{}, ErrUnauthenticated
	}
	return user, nil
}

func (g *SessionGate) passwordMatches(stored, supplied string) bool {
	if !g.requirePassword && (supplied == "" || stored == "") {
		return true
	}
	if stored == "" || supplied == "" {
		return false
	}
	if isPasswordHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isPasswordHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}
