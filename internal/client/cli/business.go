package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/iudanet/umkmhub/internal/client/router"
)

func (c *Cli) runBusiness(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: umkm <list|get|add|edit|delete> [args]")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		path, err := listPath(router.PathBusinesses, "umkm list", rest, false)
		if err != nil {
			return err
		}
		return c.visit(ctx, path)
	case "add":
		return c.visit(ctx, router.PathBusinesses+"/new")
	case "get", "edit", "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: umkm %s <id>", sub)
		}
		id := rest[0]
		switch sub {
		case "get":
			return c.visit(ctx, router.PathBusinesses+"/"+id)
		case "edit":
			return c.visit(ctx, router.PathBusinesses+"/edit/"+id)
		default:
			return c.deleteBusiness(ctx, router.PathBusinesses+"/"+id)
		}
	default:
		return fmt.Errorf("unknown umkm command: %s", sub)
	}
}

// listPath turns list flags into a path with a query string
func listPath(base, name string, args []string, withCategory bool) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	search := fs.String("search", "", "search by name")
	page := fs.Int("page", 1, "page number")
	var category *string
	if withCategory {
		category = fs.String("category", "", "category filter")
	}

	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	q := url.Values{}
	if *search != "" {
		q.Set("search", *search)
	}
	if *page > 1 {
		q.Set("page", strconv.Itoa(*page))
	}
	if category != nil && *category != "" {
		q.Set("category", *category)
	}

	if len(q) == 0 {
		return base, nil
	}
	return base + "?" + q.Encode(), nil
}

func (c *Cli) showBusinesses(ctx context.Context, search string, page int) error {
	view, res := c.screens.BusinessList(ctx, search, page)
	if res.Failed() {
		return c.report(res)
	}
	return c.render(businessListTemplate, view)
}

func (c *Cli) showBusiness(ctx context.Context, id string) error {
	view, res := c.screens.BusinessDetail(ctx, id)
	if res.NotFound || res.Failed() {
		return c.report(res)
	}
	return c.render(businessDetailTemplate, view)
}

func (c *Cli) deleteBusiness(ctx context.Context, path string) error {
	d, err := c.enter(path)
	if err != nil {
		return err
	}
	if !landed(d, router.ScreenBusinessDetail) {
		return c.show(ctx, d, nil)
	}

	view, res := c.screens.BusinessDetail(ctx, d.Match.Param("id"))
	if res.NotFound || res.Failed() {
		return c.report(res)
	}

	return c.report(c.screens.DeleteBusiness(ctx, view.Business, c.confirmer()))
}

func (c *Cli) editBusiness(ctx context.Context, id string) error {
	e, res := c.screens.EditBusiness(ctx, id)
	if res.Failed() {
		if res.NotFound {
			res.Navigate = router.PathBusinesses
		}
		return c.report(res)
	}
	return c.fillBusiness(ctx, e)
}
