package screens

import (
	"context"
	"strconv"

	"github.com/iudanet/umkmhub/internal/client/drafts"
	"github.com/iudanet/umkmhub/internal/client/router"
	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/geo"
	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/validation"
)

// Каталоги загрузки изображений в ImageBucket
const (
	productImageDir  = "products"
	businessImageDir = "umkm-logos"
)

// MsgInvalidMapLink is shown when the Maps link of a business has no coordinates
const MsgInvalidMapLink = "Link Google Maps tidak valid atau koordinat tidak ditemukan."

// Editor is a create or edit form bound to a gateway table
type Editor[T any] struct {
	form  *drafts.Form[T]
	image *Image
	id    string
}

// Form returns the underlying form state
func (e *Editor[T]) Form() *drafts.Form[T] {
	return e.form
}

// Value returns the current form values
func (e *Editor[T]) Value() T {
	return e.form.Value()
}

// Change edits the values; in create mode the draft is saved on every change
func (e *Editor[T]) Change(ctx context.Context, mutate func(v *T)) error {
	return e.form.Change(ctx, mutate)
}

// SetImage selects a new image to upload on submit
func (e *Editor[T]) SetImage(img *Image) {
	e.image = img
}

// ProductEditor edits a product
type ProductEditor = Editor[models.ProductForm]

// BusinessEditor edits a business
type BusinessEditor = Editor[models.BusinessForm]

// NewProduct opens the product create form, restoring a saved draft
func (s *Screens) NewProduct(ctx context.Context) *ProductEditor {
	draft := drafts.New[models.ProductForm](s.deps.Store, storage.KeyProductDraft)
	return &ProductEditor{form: drafts.NewCreateForm(ctx, draft, models.ProductForm{})}
}

// EditProduct opens the product edit form preloaded with the stored product
func (s *Screens) EditProduct(ctx context.Context, id string) (*ProductEditor, Result) {
	rec, err := s.deps.Records.Get(ctx, models.TableProducts, id)
	if err != nil {
		return nil, Result{Err: err, Message: "Gagal memuat data produk untuk diedit.", NotFound: isNotFound(err)}
	}

	p, err := decode[models.Product](rec)
	if err != nil {
		return nil, Result{Err: err, Message: "Gagal memuat data produk untuk diedit."}
	}

	f := models.ProductForm{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
	if p.UMKMID != nil {
		f.UMKMID = *p.UMKMID
	}

	return &ProductEditor{form: drafts.NewEditForm(f), id: id}, Result{}
}

// SubmitProduct validates the form, uploads the selected image and saves the product.
// Validation failures never reach the gateway.
func (s *Screens) SubmitProduct(ctx context.Context, e *ProductEditor) Result {
	current := e.Value()

	price, err := validation.ValidateProductForm(current)
	if err != nil {
		return Result{Err: err, Message: err.Error()}
	}

	var res Result
	err = e.form.Submit(ctx, func(ctx context.Context, f models.ProductForm) error {
		imageURL, err := s.uploadImage(ctx, productImageDir, e.image, f.ImageURL)
		if err != nil {
			res = failure("Gagal upload gambar: ", err)
			return err
		}

		rec := models.Record{
			"name":        f.Name,
			"price":       price,
			"category":    f.Category,
			"description": f.Description,
			"image_url":   imageURL,
		}
		if f.UMKMID != "" {
			rec["umkm_id"] = f.UMKMID
		}

		if e.id != "" {
			err = s.deps.Records.Update(ctx, models.TableProducts, e.id, rec)
		} else {
			_, err = s.deps.Records.Insert(ctx, models.TableProducts, rec)
		}
		if err != nil {
			res = failure("Gagal menyimpan data: ", err)
			return err
		}
		return nil
	})
	if err != nil {
		if res.Err == nil {
			res = Result{Err: err, Message: err.Error()}
		}
		return res
	}

	msg := "Produk berhasil ditambahkan!"
	if e.id != "" {
		msg = "Produk berhasil diperbarui!"
	}
	return Result{Message: msg, Navigate: router.PathProducts}
}

// NewBusiness opens the business create form, restoring a saved draft
func (s *Screens) NewBusiness(ctx context.Context) *BusinessEditor {
	draft := drafts.New[models.BusinessForm](s.deps.Store, storage.KeyBusinessDraft)
	return &BusinessEditor{form: drafts.NewCreateForm(ctx, draft, models.BusinessForm{})}
}

// EditBusiness opens the business edit form. The Maps link is rebuilt from
// the stored coordinates.
func (s *Screens) EditBusiness(ctx context.Context, id string) (*BusinessEditor, Result) {
	rec, err := s.deps.Records.Get(ctx, models.TableBusinesses, id)
	if err != nil {
		return nil, Result{Err: err, Message: "Gagal memuat data UMKM untuk diedit.", NotFound: isNotFound(err)}
	}

	b, err := decode[models.Business](rec)
	if err != nil {
		return nil, Result{Err: err, Message: "Gagal memuat data UMKM untuk diedit."}
	}

	f := models.BusinessForm{
		Name:        b.Name,
		Category:    b.Category,
		Description: b.Description,
		Address:     b.Address,
		Phone:       b.Phone,
		ImageURL:    b.ImageURL,
	}
	if b.HasLocation() {
		f.MapURL = geo.LinkURL(*b.Latitude, *b.Longitude)
	}

	return &BusinessEditor{form: drafts.NewEditForm(f), id: id}, Result{}
}

// SubmitBusiness validates the form, extracts the coordinates from the Maps
// link, uploads the selected image and saves the business. The Maps link
// itself is not stored.
func (s *Screens) SubmitBusiness(ctx context.Context, e *BusinessEditor) Result {
	current := e.Value()

	if err := validation.ValidateBusinessForm(current); err != nil {
		return Result{Err: err, Message: err.Error()}
	}

	coords, err := geo.ExtractCoordinates(current.MapURL)
	if err != nil {
		return Result{Err: err, Message: MsgInvalidMapLink}
	}

	var res Result
	err = e.form.Submit(ctx, func(ctx context.Context, f models.BusinessForm) error {
		imageURL, err := s.uploadImage(ctx, businessImageDir, e.image, f.ImageURL)
		if err != nil {
			res = failure("Gagal upload gambar: ", err)
			return err
		}

		rec := models.Record{
			"name":        f.Name,
			"category":    f.Category,
			"description": f.Description,
			"address":     f.Address,
			"phone":       f.Phone,
			"latitude":    coords.Latitude,
			"longitude":   coords.Longitude,
			"image_url":   imageURL,
		}

		if e.id != "" {
			err = s.deps.Records.Update(ctx, models.TableBusinesses, e.id, rec)
		} else {
			_, err = s.deps.Records.Insert(ctx, models.TableBusinesses, rec)
		}
		if err != nil {
			res = failure("", err)
			return err
		}
		return nil
	})
	if err != nil {
		if res.Err == nil {
			res = Result{Err: err, Message: err.Error()}
		}
		return res
	}

	msg := "UMKM berhasil ditambahkan!"
	if e.id != "" {
		msg = "UMKM berhasil diperbarui!"
	}
	return Result{Message: msg, Navigate: router.PathBusinesses}
}
