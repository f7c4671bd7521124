package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/models"
)

func (c *Cli) runFavorite(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: favorite <toggle|remove> <umkm|product> <id>")
	}

	sub, id := args[0], args[2]
	typ := models.FavoriteType(args[1])
	if !typ.Valid() {
		return fmt.Errorf("unknown favorite type: %s", args[1])
	}

	switch sub {
	case "toggle":
		return c.toggleFavorite(ctx, typ, id)
	case "remove":
		if _, err := c.enter(router.PathProfile); err != nil {
			return err
		}
		p, res := c.screens.RemoveFavorite(ctx, id, typ)
		if res.Failed() {
			return c.report(res)
		}
		return c.render(favoritesTemplate, p)
	default:
		return fmt.Errorf("unknown favorite command: %s", sub)
	}
}

// toggleFavorite flips a favorite from its detail screen
func (c *Cli) toggleFavorite(ctx context.Context, typ models.FavoriteType, id string) error {
	var (
		path   = router.PathProducts + "/" + id
		screen = router.ScreenProductDetail
	)
	if typ == models.FavoriteBusiness {
		path, screen = router.PathBusinesses+"/"+id, router.ScreenBusinessDetail
	}

	d, err := c.enter(path)
	if err != nil {
		return err
	}
	if !landed(d, screen) {
		return c.show(ctx, d, nil)
	}

	var (
		name  string
		added bool
	)
	if typ == models.FavoriteBusiness {
		view, res := c.screens.BusinessDetail(ctx, id)
		if res.NotFound || res.Failed() {
			return c.report(res)
		}
		name = view.Business.Name
		if added, res = c.screens.ToggleBusinessFavorite(ctx, view.Business); res.Failed() {
			return c.report(res)
		}
	} else {
		view, res := c.screens.ProductDetail(ctx, id)
		if res.NotFound || res.Failed() {
			return c.report(res)
		}
		name = view.Product.Name
		if added, res = c.screens.ToggleProductFavorite(ctx, view.Product); res.Failed() {
			return c.report(res)
		}
	}

	if added {
		c.io.Printf("✓ %s ditambahkan ke favorit.\n", name)
	} else {
		c.io.Printf("✓ %s dihapus dari favorit.\n", name)
	}
	return nil
}

func (c *Cli) runFavorites(ctx context.Context) error {
	if _, err := c.enter(router.PathProfile); err != nil {
		return err
	}
	return c.render(favoritesTemplate, c.screens.Profile(ctx).Favorites)
}
