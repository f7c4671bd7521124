package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/umkmhub/internal/client/router"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Nama lengkap: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 6 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Подтверждение пароля
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	c.io.Println()
	if err := c.report(c.screens.SignUp(ctx, name, email, password, confirm)); err != nil {
		return err
	}

	c.io.Println("Please run 'umkmhub login' to start using the service.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.navigator.Navigate(router.PathLogin)
	return c.loginForm(ctx)
}

// loginForm is the login screen; a signed in user is sent home
func (c *Cli) loginForm(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if res := c.screens.LoginRedirect(); res.Navigate != "" {
		sess := c.session.Current()
		c.io.Printf("Already signed in as %s.\n", sess.User.Email)
		return c.report(res)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	return c.report(c.screens.SignIn(ctx, email, password))
}

func (c *Cli) runResetPassword(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	}
	return c.report(c.screens.ResetPassword(ctx, email))
}

func (c *Cli) runLogout(ctx context.Context) error {
	if _, err := c.enter(router.PathProfile); err != nil {
		return err
	}

	c.io.Println("=== Logout ===")

	if err := c.report(c.screens.SignOut(ctx)); err != nil {
		c.io.Println("Your local session has been deleted.")
		return err
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")
	return nil
}

func (c *Cli) runStatus() error {
	if _, err := c.enter(router.PathProfile); err != nil {
		return err
	}

	sess := c.session.Current()
	if err := c.render(statusTemplate, sess); err != nil {
		return err
	}

	if remaining := time.Until(sess.ExpiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
