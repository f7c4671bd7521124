package screens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/iudanet/umkmhub/internal/client/reviews"
	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/models"
)

// ProductsPerPage is the page size of the product list
const ProductsPerPage = 6

// ProductListView is one page of the product list
type ProductListView struct {
	Search     string
	Category   string
	Items      []ProductCard
	Page       int
	TotalPages int
	Count      int
}

// ProductCategory returns category when it is known, otherwise "Semua"
func ProductCategory(category string) string {
	if slices.Contains(models.ProductCategories, category) {
		return category
	}
	return models.AllCategories
}

// ProductList searches products by name and category, ordered by name
func (s *Screens) ProductList(ctx context.Context, search, category string, page int) (ProductListView, Result) {
	view := ProductListView{
		Search:   strings.TrimSpace(search),
		Category: ProductCategory(category),
		Page:     normalizePage(page),
	}

	q := models.Query{
		OrderBy: "name",
		Offset:  (view.Page - 1) * ProductsPerPage,
		Limit:   ProductsPerPage,
		Count:   true,
	}
	if view.Search != "" {
		q.Filters = append(q.Filters, models.Filter{Column: "name", Op: models.OpILike, Value: view.Search})
	}
	if view.Category != models.AllCategories {
		q.Filters = append(q.Filters, models.Filter{Column: "category", Op: models.OpEq, Value: view.Category})
	}

	res, err := s.deps.Records.Select(ctx, models.TableProducts, q)
	if err != nil {
		return view, failure("Gagal memuat produk: ", err)
	}

	products, err := decodeAll[models.Product](res.Rows)
	if err != nil {
		return view, failure("Gagal memuat produk: ", err)
	}
	view.Items = s.cards(ctx, products)
	view.Count = res.Count
	view.TotalPages = totalPages(res.Count, ProductsPerPage)

	return view, Result{}
}

// ProductOwner is the business that sells a product
type ProductOwner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProductDetailView is the product detail screen
type ProductDetailView struct {
	Owner    *ProductOwner // nil, если товар не привязан к UMKM
	Product  models.Product
	Reviews  []models.ReviewEntry
	Average  float64
	Favorite bool
}

// ProductDetail loads a product, its owning business and the local reviews
func (s *Screens) ProductDetail(ctx context.Context, id string) (ProductDetailView, Result) {
	var view ProductDetailView

	rec, err := s.deps.Records.Get(ctx, models.TableProducts, id)
	if err != nil {
		if isNotFound(err) {
			return view, Result{NotFound: true, Message: "Produk tidak ditemukan.", Navigate: router.PathProducts}
		}
		return view, Result{Err: err, Message: "Gagal memuat detail produk."}
	}

	view.Product, err = decode[models.Product](rec)
	if err != nil {
		return view, Result{Err: err, Message: "Gagal memuat detail produk."}
	}

	if umkmID := view.Product.UMKMID; umkmID != nil && *umkmID != "" {
		view.Owner = s.owner(ctx, *umkmID)
	}

	view.Reviews = s.deps.Reviews.List(ctx, id)
	view.Average = reviews.Average(view.Reviews, reviews.DetailFallbackRating)
	view.Favorite = s.deps.Favorites.IsFavorite(ctx, id, models.FavoriteProduct)

	return view, Result{}
}

// owner loads the owning business; a missing owner is not an error
func (s *Screens) owner(ctx context.Context, id string) *ProductOwner {
	rec, err := s.deps.Records.Get(ctx, models.TableBusinesses, id)
	if err != nil {
		slog.Debug("product owner not loaded", "umkm_id", id, "error", err)
		return nil
	}

	o, err := decode[ProductOwner](rec)
	if err != nil {
		slog.Debug("product owner not decoded", "umkm_id", id, "error", err)
		return nil
	}
	return &o
}

// AddReview stores a review for the product and returns the updated list
// with its average. Blank text is rejected without touching the store,
// the rating is bounded to 1..5 before it is stored.
func (s *Screens) AddReview(ctx context.Context, productID, text string, rating int) ([]models.ReviewEntry, float64, Result) {
	if _, err := s.deps.Reviews.Add(ctx, productID, text, reviews.ClampRating(rating)); err != nil {
		list := s.deps.Reviews.List(ctx, productID)
		avg := reviews.Average(list, reviews.DetailFallbackRating)
		if errors.Is(err, reviews.ErrEmptyReview) {
			return list, avg, Result{Err: err, Message: "Ulasan tidak boleh kosong."}
		}
		return list, avg, failure("Gagal menyimpan ulasan: ", err)
	}

	list := s.deps.Reviews.List(ctx, productID)
	return list, reviews.Average(list, reviews.DetailFallbackRating), Result{}
}

// ToggleProductFavorite adds or removes the product from favorites
func (s *Screens) ToggleProductFavorite(ctx context.Context, p models.Product) (bool, Result) {
	added, err := s.deps.Favorites.Toggle(ctx, models.FavoriteEntry{
		ID:       p.ID,
		Name:     p.Name,
		Type:     models.FavoriteProduct,
		ImageURL: p.ImageURL,
		Category: p.Category,
	})
	if err != nil {
		return false, failure("Gagal menyimpan favorit: ", err)
	}
	return added, Result{}
}

// DeleteProduct deletes the product after confirmation
func (s *Screens) DeleteProduct(ctx context.Context, p models.Product, c Confirmer) Result {
	if !c.Confirm(fmt.Sprintf("Yakin ingin menghapus produk %q?", p.Name)) {
		return Result{}
	}

	if err := s.deps.Records.Delete(ctx, models.TableProducts, p.ID); err != nil {
		return failure("Gagal menghapus produk: ", err)
	}

	return Result{Message: "Produk berhasil dihapus!", Navigate: router.PathProducts}
}
