package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"manajet-client/internal/model"
)

// Session state is a two-state machine: unauthenticated, or authenticated
// with a cached current user. Only Login, Logout and CurrentUser mutate
// it; there is no background expiry detection. A later call failing with
// an auth-related status surfaces as an error and leaves the decision to
// force a logout with the caller.

// Login posts form-encoded credentials. The login response carries no
// user payload, so a 200 is followed by a current-user fetch; any other
// status fails with ErrAuthenticationFailed and leaves the session
// unauthenticated.
func (c *Client) Login(ctx context.Context, username, password string) (*model.User, error) {
	if c.metrics != nil {
		c.metrics.IncrementLoginAttempts()
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	status, _, err := c.postForm(ctx, "/login", form)
	if err != nil {
		if c.metrics != nil {
			c.metrics.IncrementLoginFailures()
		}
		return nil, err
	}

	if status != http.StatusOK {
		c.logger.Error("Login for %q rejected with status %d", username, status)
		if c.metrics != nil {
			c.metrics.IncrementLoginFailures()
		}
		return nil, fmt.Errorf("%w: status %d", ErrAuthenticationFailed, status)
	}

	return c.CurrentUser(ctx)
}

// Logout terminates the server session best-effort and unconditionally
// clears the local session state; a failed logout call is logged, never
// propagated.
func (c *Client) Logout(ctx context.Context) {
	c.mu.Lock()
	c.authenticated = false
	c.currentUser = nil
	c.mu.Unlock()

	status, _, err := c.do(ctx, http.MethodGet, "/logout", nil, "")
	if err != nil {
		c.logger.Error("Logout call failed: %v", err)
		return
	}
	if status != http.StatusOK {
		c.logger.Error("Logout returned status %d", status)
	}

	c.logger.Info("Logged out")
}

// CurrentUser fetches the authenticated user, caching it and marking the
// session authenticated on success. On failure the session state is left
// unchanged and the error propagates.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, "/api/current-user", &user); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.authenticated = true
	c.currentUser = &user
	c.mu.Unlock()

	c.logger.Debug("Current user: %s (role %s)", user.Username, user.Role)

	return &user, nil
}

// IsAuthenticated reports whether the session holds a logged-in user.
func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

// User returns the cached current user, or nil when unauthenticated.
func (c *Client) User() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentUser
}
