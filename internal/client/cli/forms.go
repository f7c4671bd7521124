package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/iudanet/umkmhub/internal/client/drafts"
	"github.com/iudanet/umkmhub/internal/client/screens"
	"github.com/iudanet/umkmhub/internal/models"
)

// formField is one prompted form value
type formField[T any] struct {
	label string
	ref   func(v *T) *string
}

var productFields = []formField[models.ProductForm]{
	{label: "Nama produk", ref: func(f *models.ProductForm) *string { return &f.Name }},
	{label: "Harga", ref: func(f *models.ProductForm) *string { return &f.Price }},
	{label: "Kategori (" + categoryOptions() + ")", ref: func(f *models.ProductForm) *string { return &f.Category }},
	{label: "Deskripsi", ref: func(f *models.ProductForm) *string { return &f.Description }},
	{label: "ID UMKM", ref: func(f *models.ProductForm) *string { return &f.UMKMID }},
}

var businessFields = []formField[models.BusinessForm]{
	{label: "Nama UMKM", ref: func(f *models.BusinessForm) *string { return &f.Name }},
	{label: "Kategori", ref: func(f *models.BusinessForm) *string { return &f.Category }},
	{label: "Deskripsi", ref: func(f *models.BusinessForm) *string { return &f.Description }},
	{label: "Alamat", ref: func(f *models.BusinessForm) *string { return &f.Address }},
	{label: "Telepon", ref: func(f *models.BusinessForm) *string { return &f.Phone }},
	{label: "Link Google Maps", ref: func(f *models.BusinessForm) *string { return &f.MapURL }},
}

// fill prompts every field and applies each answer to the editor.
// In create mode each change lands in the draft right away, so an
// interrupted session resumes where it stopped.
func fill[T any](ctx context.Context, c *Cli, e *screens.Editor[T], fields []formField[T]) error {
	if e.Form().State() == drafts.StateRestored {
		c.io.Println("Draf sebelumnya dipulihkan.")
	}

	for _, f := range fields {
		v := e.Value()
		current := *f.ref(&v)

		answer, err := c.prompt(f.label, current)
		if err != nil {
			return err
		}
		if answer == current {
			continue
		}

		if err := e.Change(ctx, func(v *T) { *f.ref(v) = answer }); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
	}

	return nil
}

// chooseImage asks for an image file. The returned close function is
// never nil.
func (c *Cli) chooseImage(current string) (*screens.Image, func(), error) {
	label := "File gambar (kosongkan untuk lewati)"
	if current != "" {
		label = "File gambar baru (kosongkan untuk tetap)"
	}

	path, err := c.prompt(label, "")
	if err != nil {
		return nil, func() {}, err
	}
	if path == "" {
		return nil, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open image: %w", err)
	}

	img := &screens.Image{
		Body:        file,
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
	}
	return img, func() { _ = file.Close() }, nil
}

func (c *Cli) fillProduct(ctx context.Context, e *screens.ProductEditor) error {
	c.io.Println("=== Form Produk ===")
	if err := fill(ctx, c, e, productFields); err != nil {
		return err
	}

	img, done, err := c.chooseImage(e.Value().ImageURL)
	defer done()
	if err != nil {
		return err
	}
	e.SetImage(img)

	return c.report(c.screens.SubmitProduct(ctx, e))
}

func (c *Cli) fillBusiness(ctx context.Context, e *screens.BusinessEditor) error {
	c.io.Println("=== Form UMKM ===")
	if err := fill(ctx, c, e, businessFields); err != nil {
		return err
	}

	img, done, err := c.chooseImage(e.Value().ImageURL)
	defer done()
	if err != nil {
		return err
	}
	e.SetImage(img)

	return c.report(c.screens.SubmitBusiness(ctx, e))
}
