package domain

// Slider is a promotional banner image shown on the storefront.
type Slider struct {
	ID       string
	ImageURL string
	AssetID  string
}
