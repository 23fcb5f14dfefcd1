package catalog

import (
	"sort"

	"festiloc/internal/models"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a filtered product list.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ValidSortKey reports whether k is one of the supported sort keys.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortDefault, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Availability narrows the list to one availability state.
type Availability string

const (
	AvailabilityAll         Availability = "all"
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

// FilterState is the transient set of user-chosen constraints applied to a
// product list. A zero PriceMax disables the price predicate.
type FilterState struct {
	PriceMin     float64
	PriceMax     float64
	SortBy       SortKey
	Colors       []string
	Availability Availability
	Categories   []uuid.UUID

	// CategoryScoped is set when a fixed category route is active; the
	// Categories predicate is skipped because the list is already scoped.
	CategoryScoped bool
}

// Product names are compared with French collation so accented names sort
// the way the storefront displays them.
var nameCollator = collate.New(language.French, collate.IgnoreCase)

// Apply returns a new list containing only the products that satisfy every
// active predicate, ordered by the requested sort key. Equal-key products
// keep their relative input order. The input list is never mutated.
func Apply(products []*models.Product, state FilterState) []*models.Product {
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, state) {
			out = append(out, p)
		}
	}

	switch state.SortBy {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) > 0
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceTTC < out[j].PriceTTC
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceTTC > out[j].PriceTTC
		})
	default:
		// input order preserved
	}
	return out
}

func matches(p *models.Product, state FilterState) bool {
	if state.PriceMax > 0 {
		if p.PriceTTC < state.PriceMin || p.PriceTTC > state.PriceMax {
			return false
		}
	}

	switch state.Availability {
	case AvailabilityAvailable:
		if !p.IsAvailable {
			return false
		}
	case AvailabilityUnavailable:
		if p.IsAvailable {
			return false
		}
	}

	if len(state.Colors) > 0 && !colorIntersects(state.Colors, p.Colors) {
		return false
	}

	if !state.CategoryScoped && len(state.Categories) > 0 {
		if p.CategoryID == nil || !containsID(state.Categories, *p.CategoryID) {
			return false
		}
	}

	return true
}

func colorIntersects(selected, colors []string) bool {
	for _, want := range selected {
		for _, have := range colors {
			if want == have {
				return true
			}
		}
	}
	return false
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// PriceBounds returns the min and max daily price over the live product
// list. An empty list yields (0, 0).
func PriceBounds(products []*models.Product) (min, max float64) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max = products[0].PriceTTC, products[0].PriceTTC
	for _, p := range products[1:] {
		if p.PriceTTC < min {
			min = p.PriceTTC
		}
		if p.PriceTTC > max {
			max = p.PriceTTC
		}
	}
	return min, max
}

// ClampRange clamps the current price range into the bounds recalculated
// from a changed product list. An inverted current range collapses onto
// the bounds.
func ClampRange(curMin, curMax, boundMin, boundMax float64) (float64, float64) {
	if curMin < boundMin {
		curMin = boundMin
	}
	if curMax > boundMax {
		curMax = boundMax
	}
	if curMin > curMax {
		return boundMin, boundMax
	}
	return curMin, curMax
}

// Metadata builds the filter panel payload for a product list: availability
// counts, the distinct color set and the live price bounds.
func Metadata(products []*models.Product) *models.FilterMetadata {
	availability := &models.AvailabilityData{}
	colorSet := map[string]struct{}{}
	for _, p := range products {
		if p.IsAvailable {
			availability.Available++
		} else {
			availability.Unavailable++
		}
		for _, c := range p.Colors {
			colorSet[c] = struct{}{}
		}
	}

	colors := make([]string, 0, len(colorSet))
	for c := range colorSet {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	min, max := PriceBounds(products)
	return &models.FilterMetadata{
		Availability: availability,
		Colors:       colors,
		PriceRange:   &models.PriceRangeData{Min: min, Max: max},
	}
}
