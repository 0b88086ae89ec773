package domain

// Category groups products. AssetID identifies the stored image in the
// external media store.
type Category struct {
	ID       string
	Name     string
	ImageURL string
	AssetID  string
}
