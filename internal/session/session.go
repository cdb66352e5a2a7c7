// AngelaMos | 2026
// session.go

package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/angelamos/memorial/internal/permission"
)

const (
	MsgCredentialsRequired = "Email and password are required"
	MsgLoginSuccess        = "Login successful"
	MsgUnreachable         = "An error occurred during login. Please try again."
)

// User is the sanitized identity kept on the client. It never carries a
// password or hash.
type User struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Role       permission.Role `json:"role"`
	IsVerified bool            `json:"isVerified"`
}

type Grant struct {
	User  User
	Token string
}

// RejectedError is returned by an Authenticator when the server refused the
// credentials. Message is safe to show.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "login rejected: " + e.Message
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Grant, error)
}

type LoginResult struct {
	Success bool
	Message string
}

type stored struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Context is the client-held login state. Role checks here gate UI only;
// the server re-verifies every privileged call.
type Context struct {
	mu     sync.RWMutex
	store  Store
	auth   Authenticator
	logger *slog.Logger
	user   *User
	token  string
}

// New restores any saved session. Unreadable entries are discarded.
func New(store Store, auth Authenticator, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Context{store: store, auth: auth, logger: logger}
	c.rehydrate()
	return c
}

func (c *Context) rehydrate() {
	data, err := c.store.Load()
	if err != nil {
		c.discard("load", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var s stored
	if err := json.Unmarshal(data, &s); err != nil {
		c.discard("decode", err)
		return
	}
	if s.User.ID == "" || s.User.Email == "" {
		c.discard("decode", errors.New("missing id or email"))
		return
	}

	c.user = &s.User
	c.token = s.Token
}

func (c *Context) discard(stage string, cause error) {
	c.logger.Warn("discarding stored session",
		"stage", stage,
		"error", cause,
	)
	if err := c.store.Clear(); err != nil {
		c.logger.Error("clear stored session failed", "error", err)
	}
}

func (c *Context) Login(ctx context.Context, email, password string) LoginResult {
	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{Message: MsgCredentialsRequired}
	}

	grant, err := c.auth.Login(ctx, email, password)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			return LoginResult{Message: rejected.Message}
		}
		c.logger.ErrorContext(ctx, "login request failed", "error", err)
		return LoginResult{Message: MsgUnreachable}
	}

	data, err := json.Marshal(stored{User: grant.User, Token: grant.Token})
	if err != nil {
		c.logger.ErrorContext(ctx, "encode session failed", "error", err)
		return LoginResult{Message: MsgUnreachable}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	u := grant.User
	c.user = &u
	c.token = grant.Token
	if err := c.store.Save(data); err != nil {
		c.logger.WarnContext(ctx, "persist session failed", "error", err)
	}

	return LoginResult{Success: true, Message: MsgLoginSuccess}
}

// Logout always succeeds locally; store failures are only logged.
func (c *Context) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.token = ""
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("clear stored session failed", "error", err)
	}
}

func (c *Context) User() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Context) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Context) Can(action permission.Action) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return false
	}
	return permission.Allowed(action, c.user.Role, c.user.IsVerified)
}

func (c *Context) HasRole(role permission.Role) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return false
	}
	return permission.HasRole(c.user.Role, role)
}
