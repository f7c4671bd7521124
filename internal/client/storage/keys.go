package storage

// Fixed keys of the local store
const (
	KeyUserProfile   = "user_profile"
	KeyFavorites     = "favorites"
	KeyProductDraft  = "productFormDraft"
	KeyBusinessDraft = "unsavedUMKMForm"

	reviewsKeyPrefix = "reviews_"
)

// ReviewsKey returns the key holding the review list of a product
func ReviewsKey(productID string) string {
	return reviewsKeyPrefix + productID
}
