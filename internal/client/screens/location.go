package screens

import (
	"context"

	"github.com/iudanet/umkmhub/internal/models"
)

// LocationView is the map of all businesses
type LocationView struct {
	Center    models.Location
	Locations []models.Location
}

// Location lists every business that has coordinates
func (s *Screens) Location(ctx context.Context) (LocationView, Result) {
	view := LocationView{Center: models.DefaultCenter}

	res, err := s.deps.Records.Select(ctx, models.TableBusinesses, models.Query{
		Columns: []string{"id", "name", "latitude", "longitude", "category"},
	})
	if err != nil {
		return view, failure("Gagal memuat lokasi UMKM: ", err)
	}

	businesses, err := decodeAll[models.Business](res.Rows)
	if err != nil {
		return view, failure("Gagal memuat lokasi UMKM: ", err)
	}

	for _, b := range businesses {
		if !b.HasLocation() {
			continue
		}
		view.Locations = append(view.Locations, models.Location{
			ID:        b.ID,
			Name:      b.Name,
			Category:  b.Category,
			Latitude:  *b.Latitude,
			Longitude: *b.Longitude,
		})
	}

	return view, Result{}
}
