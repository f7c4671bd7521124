package cli

import (
	"context"
	"fmt"
)

// Run executes one command; args[0] is the command name
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		PrintUsage(c.io)
		return fmt.Errorf("missing command")
	}

	command, rest := args[0], args[1:]

	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "reset-password":
		return c.runResetPassword(ctx, rest)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus()
	case "open":
		return c.runOpen(ctx, rest)
	case "home":
		return c.runHome(ctx)
	case "umkm":
		return c.runBusiness(ctx, rest)
	case "product":
		return c.runProduct(ctx, rest)
	case "review":
		return c.runReview(ctx, rest)
	case "favorite":
		return c.runFavorite(ctx, rest)
	case "favorites":
		return c.runFavorites(ctx)
	case "profile":
		return c.runProfile(ctx, rest)
	case "location":
		return c.runLocation(ctx)
	case "shell":
		return c.runShell(ctx)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
