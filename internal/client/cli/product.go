package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/models"
)

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: product <list|get|add|edit|delete> [args]")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		path, err := listPath(router.PathProducts, "product list", rest, true)
		if err != nil {
			return err
		}
		return c.visit(ctx, path)
	case "add":
		return c.addProduct(ctx, rest)
	case "get", "edit", "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: product %s <id>", sub)
		}
		id := rest[0]
		switch sub {
		case "get":
			return c.visit(ctx, router.PathProducts+"/"+id)
		case "edit":
			return c.visit(ctx, router.PathProducts+"/edit/"+id)
		default:
			return c.deleteProduct(ctx, router.PathProducts+"/"+id)
		}
	default:
		return fmt.Errorf("unknown product command: %s", sub)
	}
}

func (c *Cli) addProduct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	umkmID := fs.String("umkm", "", "owning business ID")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("product add: %w", err)
	}

	d, err := c.enter(router.PathProducts + "/new")
	if err != nil {
		return err
	}
	if !landed(d, router.ScreenProductNew) {
		return c.show(ctx, d, nil)
	}

	e := c.screens.NewProduct(ctx)
	if *umkmID != "" {
		if err := e.Change(ctx, func(f *models.ProductForm) { f.UMKMID = *umkmID }); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
	}
	return c.fillProduct(ctx, e)
}

func (c *Cli) showProducts(ctx context.Context, search, category string, page int) error {
	view, res := c.screens.ProductList(ctx, search, category, page)
	if res.Failed() {
		return c.report(res)
	}
	return c.render(productListTemplate, view)
}

func (c *Cli) showProduct(ctx context.Context, id string) error {
	view, res := c.screens.ProductDetail(ctx, id)
	if res.NotFound || res.Failed() {
		return c.report(res)
	}
	return c.render(productDetailTemplate, view)
}

func (c *Cli) deleteProduct(ctx context.Context, path string) error {
	d, err := c.enter(path)
	if err != nil {
		return err
	}
	if !landed(d, router.ScreenProductDetail) {
		return c.show(ctx, d, nil)
	}

	view, res := c.screens.ProductDetail(ctx, d.Match.Param("id"))
	if res.NotFound || res.Failed() {
		return c.report(res)
	}

	return c.report(c.screens.DeleteProduct(ctx, view.Product, c.confirmer()))
}

func (c *Cli) editProduct(ctx context.Context, id string) error {
	e, res := c.screens.EditProduct(ctx, id)
	if res.Failed() {
		if res.NotFound {
			res.Navigate = router.PathProducts
		}
		return c.report(res)
	}
	return c.fillProduct(ctx, e)
}

func (c *Cli) runReview(ctx context.Context, args []string) error {
	if len(args) < 4 || args[0] != "add" {
		return fmt.Errorf("usage: review add <productId> <rating> <text>")
	}

	id := args[1]
	rating, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid rating %q: %w", args[2], err)
	}
	text := strings.Join(args[3:], " ")

	d, err := c.enter(router.PathProducts + "/" + id)
	if err != nil {
		return err
	}
	if !landed(d, router.ScreenProductDetail) {
		return c.show(ctx, d, nil)
	}

	list, avg, res := c.screens.AddReview(ctx, d.Match.Param("id"), text, rating)
	if res.Failed() {
		return c.report(res)
	}

	c.io.Printf("✓ Ulasan ditambahkan. Rating %s (%d ulasan)\n", formatRating(avg), len(list))
	return nil
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
