package screens

import (
	"context"
	"errors"

	"github.com/iudanet/umkmhub/internal/client/favorites"
	"github.com/iudanet/umkmhub/internal/client/profile"
	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/models"
)

// ProfileView is the profile screen
type ProfileView struct {
	Profile   profile.Resolved
	Favorites favorites.Partition
}

// Profile resolves the profile for the current session and lists favorites
func (s *Screens) Profile(ctx context.Context) ProfileView {
	return ProfileView{
		Profile:   s.deps.Profile.Load(ctx, s.currentSession()),
		Favorites: s.deps.Favorites.Partition(ctx),
	}
}

// SaveProfile stores name and bio and keeps the current photo
func (s *Screens) SaveProfile(ctx context.Context, name, bio string) Result {
	current := s.deps.Profile.Load(ctx, s.currentSession())
	if err := s.deps.Profile.Save(ctx, name, bio, current.Photo); err != nil {
		return failure("Gagal menyimpan profil: ", err)
	}
	return Result{Message: "Profil disimpan."}
}

// UploadPhoto uploads a new profile photo
func (s *Screens) UploadPhoto(ctx context.Context, photo profile.Photo) (profile.Resolved, Result) {
	resolved, err := s.deps.Profile.UploadPhoto(ctx, s.currentSession(), photo)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrPhotoTooLarge):
			return s.deps.Profile.Load(ctx, s.currentSession()), Result{Err: err, Message: "Ukuran foto maksimal 5MB."}
		case errors.Is(err, profile.ErrNotAuthenticated):
			return resolved, Result{Err: err, Message: "Silakan Login untuk melihat Profil.", Navigate: router.PathLogin}
		}
		return s.deps.Profile.Load(ctx, s.currentSession()), failure("Gagal upload gambar: ", err)
	}
	return resolved, Result{}
}

// RemoveFavorite removes a favorite and returns the updated partition
func (s *Screens) RemoveFavorite(ctx context.Context, id string, typ models.FavoriteType) (favorites.Partition, Result) {
	p, err := s.deps.Favorites.Remove(ctx, id, typ)
	if err != nil {
		return s.deps.Favorites.Partition(ctx), failure("Gagal menghapus favorit: ", err)
	}
	return p, Result{}
}
