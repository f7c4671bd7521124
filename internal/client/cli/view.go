package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/iudanet/umkmhub/internal/client/router"
)

// show renders the screen chosen by the guard. q carries list filters
// from the requested path.
func (c *Cli) show(ctx context.Context, d router.Decision, q url.Values) error {
	id := d.Match.Param("id")

	switch d.Match.Route.Screen {
	case router.ScreenLogin:
		return c.loginForm(ctx)
	case router.ScreenHome:
		return c.showHome(ctx)
	case router.ScreenBusinessList:
		return c.showBusinesses(ctx, q.Get("search"), pageParam(q))
	case router.ScreenBusinessNew:
		return c.fillBusiness(ctx, c.screens.NewBusiness(ctx))
	case router.ScreenBusinessEdit:
		return c.editBusiness(ctx, id)
	case router.ScreenBusinessDetail:
		return c.showBusiness(ctx, id)
	case router.ScreenProductList:
		return c.showProducts(ctx, q.Get("search"), q.Get("category"), pageParam(q))
	case router.ScreenProductNew:
		return c.fillProduct(ctx, c.screens.NewProduct(ctx))
	case router.ScreenProductEdit:
		return c.editProduct(ctx, id)
	case router.ScreenProductDetail:
		return c.showProduct(ctx, id)
	case router.ScreenLocation:
		return c.showLocation(ctx)
	case router.ScreenProfile:
		return c.render(profileTemplate, c.screens.Profile(ctx))
	default:
		return fmt.Errorf("no view for screen %s", d.Match.Route.Screen)
	}
}

// visit enters path through the guard and renders the resulting screen
func (c *Cli) visit(ctx context.Context, path string) error {
	d, err := c.enter(path)
	if err != nil {
		return err
	}
	return c.show(ctx, d, queryOf(path))
}

// landed reports whether the guard kept the requested screen
func landed(d router.Decision, screen router.Screen) bool {
	return d.Match.Route.Screen == screen
}

func queryOf(path string) url.Values {
	_, raw, ok := strings.Cut(path, "?")
	if !ok {
		return url.Values{}
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return q
}

func pageParam(q url.Values) int {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func (c *Cli) runOpen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: open <path>")
	}
	return c.visit(ctx, args[0])
}

func (c *Cli) runHome(ctx context.Context) error {
	return c.visit(ctx, router.PathHome)
}

func (c *Cli) runLocation(ctx context.Context) error {
	return c.visit(ctx, router.PathLocation)
}

func (c *Cli) showHome(ctx context.Context) error {
	view, res := c.screens.Home(ctx)
	if res.Failed() {
		return c.report(res)
	}
	return c.render(homeTemplate, view)
}

func (c *Cli) showLocation(ctx context.Context) error {
	view, res := c.screens.Location(ctx)
	if res.Failed() {
		return c.report(res)
	}
	return c.render(locationTemplate, view)
}
