package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrSelfDeletion  = errors.New("cannot delete the signed-in user")
	ErrUsernameEmpty = errors.New("username is required")
)

// UserEditor manages panel accounts. Permissions are stored but never enforced.
type UserEditor struct {
	state         *Container
	hashPasswords bool
	bcryptCost    int
}

func NewUserEditor(state *Container, hashPasswords bool) *UserEditor {
	return &UserEditor{state: state, hashPasswords: hashPasswords, bcryptCost: bcrypt.DefaultCost}
}

// UpsertUser replaces the account with the same id or appends a new one.
// An empty password on update keeps the stored one.
func (e *UserEditor) UpsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return domain.User{}, ErrUsernameEmpty
	}
	user.Role = domain.NormalizeRole(string(user.Role))
	if user.Permissions == nil {
		user.Permissions = []string{}
	}

	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	index := -1
	if user.ID != "" {
		for i := range c.users {
			if c.users[i].ID == user.ID {
				index = i
				break
			}
		}
		if index < 0 {
			return domain.User{}, ErrUserNotFound
		}
		if user.Password == "" {
			user.Password = c.users[index].Password
		}
	}

	if e.hashPasswords && user.Password != "" && !isPasswordHash(user.Password) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), e.bcryptCost)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if index < 0 {
		user.ID = uuid.NewString()
		c.users = append(c.users, user)
	} else {
		c.users[index] = user
	}
	return user.Public(), c.persistLocked(ctx, port.KeyUsers)
}

// DeleteUser removes the account. The signed-in user cannot delete themself.
func (e *UserEditor) DeleteUser(ctx context.Context, id string) error {
	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentUser != nil && c.currentUser.ID == id {
		return ErrSelfDeletion
	}
	kept := make([]domain.User, 0, len(c.users))
	for _, user := range c.users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	c.users = kept
	return c.persistLocked(ctx, port.KeyUsers)
}
