package validation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/iudanet/umkmhub/internal/models"
)

// Required проверяет, что обязательное поле заполнено
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateCategory проверяет, что категория входит в список допустимых
func ValidateCategory(category string) error {
	if err := Required("category", category); err != nil {
		return err
	}
	if !slices.Contains(models.ProductCategories, category) {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// ParsePrice разбирает цену товара. Цена не может быть отрицательной.
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("price is required")
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", raw)
	}

	if price < 0 {
		return 0, fmt.Errorf("price must not be negative")
	}

	return price, nil
}

// ValidateProductForm проверяет форму товара и возвращает разобранную цену
func ValidateProductForm(f models.ProductForm) (float64, error) {
	if err := Required("name", f.Name); err != nil {
		return 0, err
	}

	price, err := ParsePrice(f.Price)
	if err != nil {
		return 0, err
	}

	if err := ValidateCategory(f.Category); err != nil {
		return 0, err
	}

	if err := Required("description", f.Description); err != nil {
		return 0, err
	}

	return price, nil
}

// ValidateBusinessForm проверяет обязательные поля формы UMKM.
// Координаты из ссылки на карту проверяются отдельно.
func ValidateBusinessForm(f models.BusinessForm) error {
	if err := Required("name", f.Name); err != nil {
		return err
	}

	if err := ValidateCategory(f.Category); err != nil {
		return err
	}

	if err := Required("description", f.Description); err != nil {
		return err
	}

	return Required("address", f.Address)
}
