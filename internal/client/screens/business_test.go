package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/models"
)

func TestBusinessList_Query(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		page        int
		count       int
		wantOffset  int
		wantPage    int
		wantPages   int
		wantFilters []models.Filter
	}{
		{
			name:       "first page without search",
			page:       0,
			count:      11,
			wantOffset: 0,
			wantPage:   1,
			wantPages:  3,
		},
		{
			name:        "second page with search",
			search:      " kopi ",
			page:        2,
			count:       6,
			wantOffset:  5,
			wantPage:    2,
			wantPages:   2,
			wantFilters: []models.Filter{{Column: "name", Op: models.OpILike, Value: "kopi"}},
		},
		{
			name:       "empty result",
			page:       1,
			count:      0,
			wantOffset: 0,
			wantPage:   1,
			wantPages:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.records.SelectFunc = func(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
				assert.Equal(t, models.TableBusinesses, table)
				assert.Equal(t, "name", q.OrderBy)
				assert.False(t, q.Desc)
				assert.Equal(t, BusinessesPerPage, q.Limit)
				assert.Equal(t, tt.wantOffset, q.Offset)
				assert.True(t, q.Count)
				assert.Equal(t, tt.wantFilters, q.Filters)
				return &models.RecordPage{Rows: []models.Record{{"id": "u1", "name": "Kopi Kenangan"}}, Count: tt.count}, nil
			}

			view, res := f.screens.BusinessList(context.Background(), tt.search, tt.page)
			require.False(t, res.Failed())
			assert.Equal(t, tt.wantPage, view.Page)
			assert.Equal(t, tt.wantPages, view.TotalPages)
			assert.Equal(t, tt.count, view.Count)
			assert.Len(t, view.Items, 1)
		})
	}
}

func TestBusinessDetail_NotFound(t *testing.T) {
	f := newFixture(t)
	f.records.GetFunc = func(ctx context.Context, table, id string) (models.Record, error) {
		return nil, notFound()
	}

	_, res := f.screens.BusinessDetail(context.Background(), "missing")
	assert.True(t, res.NotFound)
	assert.False(t, res.Failed())
	assert.Equal(t, "/umkm", res.Navigate)
	assert.Empty(t, f.records.SelectCalls())
}

func TestBusinessDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.records.GetFunc = func(ctx context.Context, table, id string) (models.Record, error) {
		assert.Equal(t, models.TableBusinesses, table)
		return models.Record{
			"id": "u1", "name": "Warung Bu Sri", "category": "Makanan",
			"latitude": -6.966667, "longitude": 110.416664,
		}, nil
	}
	f.records.SelectFunc = func(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
		assert.Equal(t, models.TableProducts, table)
		assert.Equal(t, []models.Filter{{Column: "umkm_id", Op: models.OpEq, Value: "u1"}}, q.Filters)
		return &models.RecordPage{Rows: []models.Record{{"id": "p1", "name": "Nasi Goreng", "umkm_id": "u1"}}}, nil
	}

	view, res := f.screens.BusinessDetail(ctx, "u1")
	require.False(t, res.Failed())
	assert.False(t, res.NotFound)
	assert.Equal(t, "Warung Bu Sri", view.Business.Name)
	assert.Equal(t, "https://maps.google.com/maps?q=-6.966667,110.416664&z=15&output=embed", view.MapEmbedURL)
	require.Len(t, view.Products, 1)
	assert.False(t, view.Favorite)

	added, res := f.screens.ToggleBusinessFavorite(ctx, view.Business)
	require.False(t, res.Failed())
	assert.True(t, added)

	view, _ = f.screens.BusinessDetail(ctx, "u1")
	assert.True(t, view.Favorite)
}

func TestBusinessDetail_ProductsFailureKeepsBusiness(t *testing.T) {
	f := newFixture(t)
	f.records.GetFunc = func(ctx context.Context, table, id string) (models.Record, error) {
		return models.Record{"id": "u1", "name": "Warung"}, nil
	}
	f.records.SelectFunc = func(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
		return nil, assert.AnError
	}

	view, res := f.screens.BusinessDetail(context.Background(), "u1")
	assert.False(t, res.Failed())
	assert.Equal(t, "Warung", view.Business.Name)
	assert.Empty(t, view.MapEmbedURL)
	assert.Empty(t, view.Products)
}

func TestDeleteBusiness(t *testing.T) {
	b := models.Business{ID: "u1", Name: "Warung Bu Sri"}

	t.Run("declined", func(t *testing.T) {
		f := newFixture(t)
		var prompts []string

		res := f.screens.DeleteBusiness(context.Background(), b, confirm(false, &prompts))
		assert.Equal(t, Result{}, res)
		assert.Equal(t, []string{`Yakin ingin menghapus UMKM "Warung Bu Sri"?`}, prompts)
		assert.Empty(t, f.records.DeleteCalls())
	})

	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t)
		f.records.DeleteFunc = func(ctx context.Context, table, id string) error {
			assert.Equal(t, models.TableBusinesses, table)
			assert.Equal(t, "u1", id)
			return nil
		}

		res := f.screens.DeleteBusiness(context.Background(), b, confirm(true, nil))
		assert.Equal(t, "UMKM berhasil dihapus!", res.Message)
		assert.Equal(t, "/umkm", res.Navigate)
	})

	t.Run("gateway error", func(t *testing.T) {
		f := newFixture(t)
		f.records.DeleteFunc = func(ctx context.Context, table, id string) error {
			return notFound()
		}

		res := f.screens.DeleteBusiness(context.Background(), b, confirm(true, nil))
		assert.True(t, res.Failed())
		assert.Equal(t, "Gagal menghapus: record not found", res.Message)
		assert.Empty(t, res.Navigate)
	})
}
