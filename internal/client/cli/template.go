package cli

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/iudanet/umkmhub/internal/models"
)

var templateFuncs = template.FuncMap{
	"rupiah": formatRupiah,
	"rating": formatRating,
	"stars":  func(n int) string { return strings.Repeat("*", n) },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"inc": func(i int) int { return i + 1 },
	"favorite": func(ok bool) string {
		if ok {
			return "[favorit]"
		}
		return ""
	},
}

// formatRupiah formats a price the Indonesian way: Rp 1.250.000
func formatRupiah(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(whole, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return "Rp " + out
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

var homeTemplate = mustTemplate("home", `
=== Halo, {{.Greeting}} ===

Kategori: {{range $i, $c := .Categories}}{{if $i}} | {{end}}{{$c}}{{end}}

Produk pilihan:
{{- range .Products}}
  - {{.Name}} ({{rupiah .Price}}) * {{rating .Rating}}  [{{.ID}}]
{{- else}}
  Belum ada produk.
{{- end}}

UMKM terbaru:
{{- range .Businesses}}
  - {{.Name}} ({{.Category}})  [{{.ID}}]
{{- else}}
  Belum ada UMKM.
{{- end}}
`)

var businessListTemplate = mustTemplate("businesses", `
=== Daftar UMKM ===
{{- if .Search}}
Pencarian: "{{.Search}}"
{{- end}}
{{range $i, $b := .Items}}
{{inc $i}}. {{$b.Name}}
   ID:       {{$b.ID}}
   Kategori: {{$b.Category}}
   Alamat:   {{$b.Address}}
{{- else}}
UMKM tidak ditemukan.
{{- end}}

Halaman {{.Page}} dari {{.TotalPages}} ({{.Count}} UMKM)
`)

var businessDetailTemplate = mustTemplate("business", `
=== {{.Business.Name}} === {{favorite .Favorite}}

ID:        {{.Business.ID}}
Kategori:  {{.Business.Category}}
Alamat:    {{.Business.Address}}
{{- if .Business.Phone}}
Telepon:   {{.Business.Phone}}
{{- end}}
{{- if .Business.ImageURL}}
Logo:      {{.Business.ImageURL}}
{{- end}}
{{- if .MapEmbedURL}}
Peta:      {{.MapEmbedURL}}
{{- end}}

{{.Business.Description}}

Produk:
{{- range .Products}}
  - {{.Name}} ({{rupiah .Price}})  [{{.ID}}]
{{- else}}
  Belum ada produk.
{{- end}}
`)

var productListTemplate = mustTemplate("products", `
=== Daftar Produk ===
Kategori: {{.Category}}
{{- if .Search}}
Pencarian: "{{.Search}}"
{{- end}}
{{range $i, $p := .Items}}
{{inc $i}}. {{$p.Name}} - {{rupiah $p.Price}}
   ID:       {{$p.ID}}
   Kategori: {{$p.Category}}
   Rating:   {{rating $p.Rating}}
{{- else}}
Produk tidak ditemukan.
{{- end}}

Halaman {{.Page}} dari {{.TotalPages}} ({{.Count}} produk)
`)

var productDetailTemplate = mustTemplate("product", `
=== {{.Product.Name}} === {{favorite .Favorite}}

ID:        {{.Product.ID}}
Harga:     {{rupiah .Product.Price}}
Kategori:  {{.Product.Category}}
{{- if .Product.ImageURL}}
Gambar:    {{.Product.ImageURL}}
{{- end}}

{{.Product.Description}}
{{- with .Owner}}

Dijual oleh: {{.Name}}
  Telepon: {{.Phone}}
  Alamat:  {{.Address}}
{{- end}}

Rating: {{rating .Average}} ({{len .Reviews}} ulasan)
{{- range .Reviews}}
  {{stars .Rating}} {{.Name}} ({{.Date}})
    {{.Text}}
{{- end}}
`)

var locationTemplate = mustTemplate("location", `
=== Lokasi UMKM ===
Pusat peta: {{.Center.Name}} ({{.Center.Latitude}}, {{.Center.Longitude}})
{{range .Locations}}
  - {{.Name}} ({{.Category}}): {{.Latitude}}, {{.Longitude}}  [{{.ID}}]
{{- else}}
  Belum ada UMKM dengan lokasi.
{{- end}}
`)

var profileTemplate = mustTemplate("profile", `
=== Profil ===

Nama:  {{.Profile.Name}}
Email: {{.Profile.Email}}
{{- if .Profile.Photo}}
Foto:  {{deref .Profile.Photo}}
{{- end}}

{{.Profile.Bio}}

UMKM favorit:
{{- range .Favorites.Businesses}}
  - {{.Name}}  [{{.ID}}]
{{- else}}
  Belum ada.
{{- end}}

Produk favorit:
{{- range .Favorites.Products}}
  - {{.Name}}  [{{.ID}}]
{{- else}}
  Belum ada.
{{- end}}
`)

var favoritesTemplate = mustTemplate("favorites", `
=== Favorit ===

UMKM:
{{- range .Businesses}}
  - {{.Name}} ({{.Category}})  [{{.ID}}]
{{- else}}
  Belum ada.
{{- end}}

Produk:
{{- range .Products}}
  - {{.Name}} ({{.Category}})  [{{.ID}}]
{{- else}}
  Belum ada.
{{- end}}
`)

var statusTemplate = mustTemplate("status", `
=== Authentication Status ===

Status:        Authenticated
Email:         {{.User.Email}}
User ID:       {{.User.ID}}
{{- if .User.FullName}}
Name:          {{.User.FullName}}
{{- end}}
Token expires: {{.ExpiresAt.Format "2006-01-02T15:04:05Z07:00"}}
`)

// categoryOptions renders a category list for prompts
func categoryOptions() string {
	return strings.Join(models.ProductCategories, ", ")
}

const usageText = `
UMKM Hub Client

Usage:
  umkmhub [OPTIONS] COMMAND

Options:
  --version              Show version information
  --server URL           Gateway URL (default: http://localhost:8080, env UMKM_SERVER)
  --db PATH              Path to local database (default: umkmhub-client.db, env UMKM_DB)
  --timeout DURATION     Gateway request timeout (default: 30s)
  --password-file PATH   Read the login password from a file
  --debug                Verbose logging

Password Priority for login (highest to lowest):
  1. UMKM_PASSWORD environment variable
  2. --password-file (file path)
  3. Interactive prompt (fallback)

Commands:
  register                                  Register new account
  login                                     Sign in
  logout                                    Sign out
  status                                    Show session status
  reset-password <email>                    Request a password reset email
  open <path>                               Open a screen by path (e.g. /umkm/123)
  home                                      Home screen
  umkm list [--search S] [--page N]         List businesses
  umkm get|edit|delete <id>                 Show, edit or delete a business
  umkm add                                  Add a business
  product list [--search S] [--category C] [--page N]
                                            List products
  product get|edit|delete <id>              Show, edit or delete a product
  product add [--umkm ID]                   Add a product
  review add <productId> <rating> <text>    Review a product
  favorite toggle <umkm|product> <id>       Add or remove a favorite
  favorite remove <umkm|product> <id>       Remove a favorite
  favorites                                 List favorites
  profile                                   Show profile
  profile edit                              Edit name and bio
  profile photo <file>                      Upload a profile photo (max 5 MB)
  location                                  Business locations
  shell                                     Interactive navigator

Examples:
  umkmhub register
  umkmhub login
  umkmhub umkm list --search kopi --page 2
  umkmhub product list --category Minuman
  umkmhub review add 6f1c... 5 Enak sekali
  umkmhub --server https://umkm.example.com shell
`
