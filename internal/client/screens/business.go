package screens

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/geo"
	"github.com/iudanet/umkmhub/internal/models"
)

// BusinessesPerPage is the page size of the business list
const BusinessesPerPage = 5

// BusinessListView is one page of the business list
type BusinessListView struct {
	Search     string
	Items      []models.Business
	Page       int
	TotalPages int
	Count      int
}

// BusinessList searches businesses by name, ordered by name
func (s *Screens) BusinessList(ctx context.Context, search string, page int) (BusinessListView, Result) {
	view := BusinessListView{Search: strings.TrimSpace(search), Page: normalizePage(page)}

	q := models.Query{
		OrderBy: "name",
		Offset:  (view.Page - 1) * BusinessesPerPage,
		Limit:   BusinessesPerPage,
		Count:   true,
	}
	if view.Search != "" {
		q.Filters = append(q.Filters, models.Filter{Column: "name", Op: models.OpILike, Value: view.Search})
	}

	res, err := s.deps.Records.Select(ctx, models.TableBusinesses, q)
	if err != nil {
		return view, failure("Gagal memuat UMKM: ", err)
	}

	view.Items, err = decodeAll[models.Business](res.Rows)
	if err != nil {
		return view, failure("Gagal memuat UMKM: ", err)
	}
	view.Count = res.Count
	view.TotalPages = totalPages(res.Count, BusinessesPerPage)

	return view, Result{}
}

// BusinessDetailView is the business detail screen
type BusinessDetailView struct {
	Business    models.Business
	MapEmbedURL string // пусто, если координаты не заданы
	Products    []models.Product
	Favorite    bool
}

// BusinessDetail loads a business with its products
func (s *Screens) BusinessDetail(ctx context.Context, id string) (BusinessDetailView, Result) {
	var view BusinessDetailView

	rec, err := s.deps.Records.Get(ctx, models.TableBusinesses, id)
	if err != nil {
		if isNotFound(err) {
			return view, Result{NotFound: true, Message: "UMKM tidak ditemukan.", Navigate: router.PathBusinesses}
		}
		return view, failure("Gagal memuat UMKM: ", err)
	}

	view.Business, err = decode[models.Business](rec)
	if err != nil {
		return view, failure("Gagal memuat UMKM: ", err)
	}

	if view.Business.HasLocation() {
		view.MapEmbedURL = geo.EmbedURL(*view.Business.Latitude, *view.Business.Longitude)
	}

	view.Favorite = s.deps.Favorites.IsFavorite(ctx, id, models.FavoriteBusiness)

	res, err := s.deps.Records.Select(ctx, models.TableProducts, models.Query{
		Filters: []models.Filter{{Column: "umkm_id", Op: models.OpEq, Value: id}},
		OrderBy: "name",
	})
	if err != nil {
		// Без списка товаров карточка UMKM все равно показывается
		slog.Warn("failed to load business products", "umkm_id", id, "error", err)
		return view, Result{}
	}

	if view.Products, err = decodeAll[models.Product](res.Rows); err != nil {
		slog.Warn("failed to decode business products", "umkm_id", id, "error", err)
	}

	return view, Result{}
}

// ToggleBusinessFavorite adds or removes the business from favorites
func (s *Screens) ToggleBusinessFavorite(ctx context.Context, b models.Business) (bool, Result) {
	added, err := s.deps.Favorites.Toggle(ctx, models.FavoriteEntry{
		ID:       b.ID,
		Name:     b.Name,
		Type:     models.FavoriteBusiness,
		ImageURL: b.ImageURL,
		Category: b.Category,
	})
	if err != nil {
		return false, failure("Gagal menyimpan favorit: ", err)
	}
	return added, Result{}
}

// DeleteBusiness deletes the business after confirmation.
// Nothing is sent to the gateway when the confirmation is declined.
func (s *Screens) DeleteBusiness(ctx context.Context, b models.Business, c Confirmer) Result {
	if !c.Confirm(fmt.Sprintf("Yakin ingin menghapus UMKM %q?", b.Name)) {
		return Result{}
	}

	if err := s.deps.Records.Delete(ctx, models.TableBusinesses, b.ID); err != nil {
		return failure("Gagal menghapus: ", err)
	}

	return Result{Message: "UMKM berhasil dihapus!", Navigate: router.PathBusinesses}
}
