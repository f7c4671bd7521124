package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/iudanet/umkmhub/internal/client/profile"
	"github.com/iudanet/umkmhub/internal/client/router"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	d, err := c.enter(router.PathProfile)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return c.show(ctx, d, nil)
	}

	switch args[0] {
	case "edit":
		return c.editProfile(ctx)
	case "photo":
		if len(args) != 2 {
			return fmt.Errorf("usage: profile photo <file>")
		}
		return c.uploadPhoto(ctx, args[1])
	default:
		return fmt.Errorf("unknown profile command: %s", args[0])
	}
}

func (c *Cli) editProfile(ctx context.Context) error {
	current := c.screens.Profile(ctx).Profile

	name, err := c.prompt("Nama", current.Name)
	if err != nil {
		return err
	}
	bio, err := c.prompt("Bio", current.Bio)
	if err != nil {
		return err
	}

	return c.report(c.screens.SaveProfile(ctx, name, bio))
}

func (c *Cli) uploadPhoto(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open photo: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat photo: %w", err)
	}

	resolved, res := c.screens.UploadPhoto(ctx, profile.Photo{
		Body:        file,
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Size:        info.Size(),
	})
	if res.Failed() {
		return c.report(res)
	}

	if resolved.Photo != nil {
		c.io.Printf("✓ Foto profil diperbarui: %s\n", *resolved.Photo)
	}
	return nil
}
