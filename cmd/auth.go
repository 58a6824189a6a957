package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cinevault/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// promptPassword reads a password from stdin when the flag was omitted.
func (r *Runner) promptPassword() (string, error) {
	r.writePlain("Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AuthLogin exchanges email and password for a session and persists it.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	if password == "" {
		var err error
		if password, err = r.promptPassword(); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("%w: password", shared.ErrMissingArgument)
	}

	r.logger.Info("logging in", "email", email)

	sess, err := r.tracker.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if err := r.store.Login(sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return r.writePlain("✓ Logged in as %s (%s)\n", sess.User.Name, sess.User.Email)
}

// AuthLogout clears the stored session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if !r.store.IsLoggedIn() {
		return r.writePlain("Not logged in\n")
	}

	if err := r.store.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return r.writePlain("✓ Logged out\n")
}

// AuthRegister creates a new account. Registration does not log in; the
// backend expects a separate login call.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	email := cmd.String("email")
	password := cmd.String("password")

	if password == "" {
		var err error
		if password, err = r.promptPassword(); err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("%w: password", shared.ErrMissingArgument)
	}

	r.logger.Info("registering account", "email", email)

	user, err := r.tracker.Register(ctx, name, email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	r.writePlain("✓ Account created for %s\n", user.Email)
	return r.writePlain("Run 'cinevault auth login' to sign in\n")
}

// AuthStatus shows the stored session and verifies it against the backend.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if !r.store.IsLoggedIn() {
		return r.writePlain("✗ Not logged in\n")
	}

	user := r.store.User()
	r.writePlain("✓ Logged in as %s (%s)\n", user.Name, user.Email)

	// The stored token may have been revoked server-side.
	if _, err := r.tracker.Profile(ctx); err != nil {
		r.logger.Debug("profile check failed", "error", err)
		return r.writePlain("✗ Session no longer valid, run 'cinevault auth login'\n")
	}

	return r.writePlain("✓ Session verified\n")
}
