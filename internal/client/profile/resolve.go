// Package profile resolves and persists the visitor profile.
package profile

import (
	"cmp"
	"strings"

	"github.com/iudanet/umkmhub/internal/models"
)

// Defaults used when neither the local record nor the session provide a value
type Defaults struct {
	Photo *string
	Name  string
	Bio   string
}

// DefaultProfile is the profile of an unknown visitor
var DefaultProfile = Defaults{
	Name: "Pengunjung Tamu",
	Bio:  "Selamat datang! Saya senang menjelajahi produk-produk lokal dan UMKM Semarang.",
}

// GuestEmailLabel is shown instead of an email when there is no session
const GuestEmailLabel = "Sesi Tamu"

// Resolved is the profile as displayed
type Resolved struct {
	Photo *string
	Name  string
	Bio   string
	Email string
	Guest bool
}

// Resolve merges the local record, the session and the defaults field by field.
// Local values win; the session supplies the name; defaults fill the rest.
func Resolve(local *models.UserProfile, sess *models.Session, d Defaults) Resolved {
	res := Resolved{
		Name:  d.Name,
		Bio:   d.Bio,
		Photo: d.Photo,
		Email: GuestEmailLabel,
		Guest: sess == nil,
	}

	if sess != nil {
		res.Email = sess.User.Email
		res.Name = cmp.Or(sess.User.FullName, emailLocalPart(sess.User.Email), d.Name)
	}

	if local != nil {
		res.Name = cmp.Or(local.Name, res.Name)
		res.Bio = cmp.Or(local.Bio, res.Bio)
		if local.Photo != nil && *local.Photo != "" {
			res.Photo = local.Photo
		}
	}

	return res
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
