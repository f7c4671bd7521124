package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/models"
)

const shellHelp = `Perintah shell:
  <command> [args]   any client command, e.g. "umkm list --page 2"
  open <path>        open a screen by path
  back               previous screen
  where              current path
  exit, quit         leave the shell
`

// runShell reads commands until EOF or exit. Session changes made elsewhere
// (a sign out, a refresh that was rejected) are applied before every prompt.
func (c *Cli) runShell(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes := c.session.Watch(ctx)

	c.io.Println("UMKM Hub shell. Ketik 'help' untuk bantuan.")
	for {
		c.applySessionChanges(ctx, changes)

		line, err := c.io.ReadInput(c.shellPrompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return nil
		case "help":
			c.io.Printf("%s", shellHelp)
			PrintUsage(c.io)
			continue
		case "where":
			c.io.Println(c.navigator.Current())
			continue
		case "shell":
			continue
		case "back":
			err = c.back(ctx)
		default:
			err = c.Run(ctx, args)
		}

		if err != nil {
			c.io.Printf("Error: %v\n", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Cli) back(ctx context.Context) error {
	d, ok := c.navigator.Back()
	if !ok {
		c.io.Println("Tidak ada halaman sebelumnya.")
		return nil
	}
	return c.show(ctx, d, nil)
}

// applySessionChanges drains pending session changes without blocking.
// Losing the session while on a guarded screen moves the shell to login.
func (c *Cli) applySessionChanges(ctx context.Context, changes <-chan *models.Session) {
	for {
		select {
		case sess, ok := <-changes:
			if !ok {
				return
			}
			if sess != nil {
				continue
			}
			c.io.Println("Sesi berakhir.")
			if m, ok := router.Lookup(c.navigator.Current()); ok && !m.Route.Public {
				d := c.navigator.Navigate(m.Path)
				c.io.Printf("Pindah ke %s\n", d.Match.Path)
			}
		case <-ctx.Done():
			return
		default:
			return
		}
	}
}

func (c *Cli) shellPrompt() string {
	current := c.navigator.Current()
	if current == "" {
		current = "~"
	}
	if sess := c.session.Current(); sess != nil {
		return sess.User.Email + " " + current + "> "
	}
	return current + "> "
}
