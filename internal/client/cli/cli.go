// Package cli implements the command line client on top of the screens.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/iudanet/umkmhub/internal/client/iocli"
	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/client/screens"
	"github.com/iudanet/umkmhub/internal/client/session"
)

// ErrLoginRequired is returned when a guarded command runs without a session
var ErrLoginRequired = errors.New("not authenticated. Please run 'umkmhub login' first")

// PasswordEnv is the environment variable with the login password
const PasswordEnv = "UMKM_PASSWORD"

// Passwords are the non-interactive sources of the login password
type Passwords struct {
	FromFile string
}

type Cli struct {
	io        iocli.IO
	screens   *screens.Screens
	session   *session.Controller
	navigator *router.Navigator
	passwords Passwords
}

func New(io iocli.IO, scr *screens.Screens, sess *session.Controller, passwords Passwords) *Cli {
	return &Cli{
		io:        io,
		screens:   scr,
		session:   sess,
		navigator: router.NewNavigator(router.NewGuard(sess)),
		passwords: passwords,
	}
}

// PrintUsage prints the command reference
func PrintUsage(io iocli.IO) {
	io.Printf("%s", usageText)
}

// enter navigates to path through the guard. A visitor without a session
// is stopped with ErrLoginRequired before any screen runs.
func (c *Cli) enter(path string) (router.Decision, error) {
	d := c.navigator.Navigate(path)

	if d.Redirected() {
		switch d.Match.Route.Screen {
		case router.ScreenLogin:
			c.io.Println("Silakan login terlebih dahulu.")
			return d, ErrLoginRequired
		case router.ScreenHome:
			c.io.Printf("Halaman %s tidak ditemukan, kembali ke beranda.\n", d.From)
		}
	}

	return d, nil
}

// report prints the outcome of a screen action and follows its navigation
func (c *Cli) report(res screens.Result) error {
	if res.Message != "" {
		if res.Failed() || res.NotFound {
			c.io.Printf("✗ %s\n", res.Message)
		} else {
			c.io.Printf("✓ %s\n", res.Message)
		}
	}

	if res.NotFound {
		c.io.Printf("Kembali ke %s\n", res.Navigate)
		c.navigator.Navigate(res.Navigate)
		return nil
	}

	if res.Failed() {
		return res.Err
	}

	if res.Navigate != "" {
		c.navigator.Navigate(res.Navigate)
	}
	return nil
}

// render executes a view template to the terminal
func (c *Cli) render(tmpl *template.Template, view any) error {
	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	c.io.Printf("%s", b.String())
	return nil
}

// confirmer asks yes/no questions on the terminal
func (c *Cli) confirmer() screens.Confirmer {
	return screens.ConfirmFunc(func(prompt string) bool {
		answer, err := c.io.ReadInput(prompt + " [y/N]: ")
		if err != nil {
			return false
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "ya":
			return true
		}
		return false
	})
}

// prompt reads a value showing the current one; an empty answer keeps it
func (c *Cli) prompt(label, current string) (string, error) {
	p := label + ": "
	if current != "" {
		p = fmt.Sprintf("%s [%s]: ", label, current)
	}

	answer, err := c.io.ReadInput(p)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// getPassword retrieves the login password from various sources with priority:
// 1. Environment variable UMKM_PASSWORD
// 2. File specified by --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}
