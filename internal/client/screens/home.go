package screens

import (
	"context"

	"github.com/iudanet/umkmhub/internal/client/reviews"
	"github.com/iudanet/umkmhub/internal/models"
)

// Home screen limits
const (
	HomeProducts   = 8
	HomeBusinesses = 5
)

// ProductCard is a product with its average rating for lists
type ProductCard struct {
	models.Product
	Rating float64
}

// HomeView is the content of the home screen
type HomeView struct {
	Greeting   string
	Products   []ProductCard
	Businesses []models.Business
	Categories []string
}

// Home loads the first products and businesses and greets the user by the profile name
func (s *Screens) Home(ctx context.Context) (HomeView, Result) {
	view := HomeView{
		Greeting:   s.deps.Profile.Load(ctx, s.currentSession()).Name,
		Categories: models.BusinessCategories,
	}

	page, err := s.deps.Records.Select(ctx, models.TableProducts, models.Query{Limit: HomeProducts})
	if err != nil {
		return view, failure("Gagal memuat produk: ", err)
	}
	products, err := decodeAll[models.Product](page.Rows)
	if err != nil {
		return view, failure("Gagal memuat produk: ", err)
	}
	view.Products = s.cards(ctx, products)

	page, err = s.deps.Records.Select(ctx, models.TableBusinesses, models.Query{Limit: HomeBusinesses})
	if err != nil {
		return view, failure("Gagal memuat UMKM: ", err)
	}
	view.Businesses, err = decodeAll[models.Business](page.Rows)
	if err != nil {
		return view, failure("Gagal memuat UMKM: ", err)
	}

	return view, Result{}
}

// cards attaches list ratings to products
func (s *Screens) cards(ctx context.Context, products []models.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			Product: p,
			Rating:  s.deps.Reviews.Average(ctx, p.ID, reviews.ListFallbackRating),
		})
	}
	return cards
}
