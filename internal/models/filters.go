package models

// FilterMetadata is the storefront filter panel payload: what can still be
// filtered on given the current product list.
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Colors       []string          `json:"colors"`
	PriceRange   *PriceRangeData   `json:"price_range"`
}

// AvailabilityData counts products per availability state.
type AvailabilityData struct {
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
}

// PriceRangeData is the min/max daily price over the live product list.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
