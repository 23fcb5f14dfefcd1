package catalog

import (
	"testing"

	"festiloc/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func product(name string, price float64, opts ...func(*models.Product)) *models.Product {
	p := &models.Product{
		ID:          uuid.New(),
		Name:        name,
		PriceTTC:    price,
		IsAvailable: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func withColors(colors ...string) func(*models.Product) {
	return func(p *models.Product) { p.Colors = colors }
}

func withCategory(id uuid.UUID) func(*models.Product) {
	return func(p *models.Product) { p.CategoryID = &id }
}

func unavailable() func(*models.Product) {
	return func(p *models.Product) { p.IsAvailable = false }
}

func TestApply_PriceRange(t *testing.T) {
	products := []*models.Product{
		product("a", 10),
		product("b", 50),
		product("c", 100),
	}

	out := Apply(products, FilterState{PriceMin: 20, PriceMax: 100})

	assert.Len(t, out, 2)
	assert.Equal(t, 50.0, out[0].PriceTTC)
	assert.Equal(t, 100.0, out[1].PriceTTC)
}

func TestApply_ZeroMaxDisablesPricePredicate(t *testing.T) {
	products := []*models.Product{product("a", 10), product("b", 5000)}

	out := Apply(products, FilterState{})

	assert.Len(t, out, 2)
}

func TestApply_Availability(t *testing.T) {
	products := []*models.Product{
		product("chair", 10),
		product("tent", 20, unavailable()),
	}

	available := Apply(products, FilterState{Availability: AvailabilityAvailable})
	assert.Len(t, available, 1)
	assert.Equal(t, "chair", available[0].Name)

	gone := Apply(products, FilterState{Availability: AvailabilityUnavailable})
	assert.Len(t, gone, 1)
	assert.Equal(t, "tent", gone[0].Name)

	all := Apply(products, FilterState{Availability: AvailabilityAll})
	assert.Len(t, all, 2)
}

func TestApply_ColorIntersection(t *testing.T) {
	products := []*models.Product{
		product("chair", 10, withColors("blanc", "noir")),
		product("table", 20, withColors("bois")),
		product("spot", 30),
	}

	out := Apply(products, FilterState{Colors: []string{"noir", "rouge"}})

	assert.Len(t, out, 1)
	assert.Equal(t, "chair", out[0].Name)

	// empty selection passes everything, including colorless products
	out = Apply(products, FilterState{})
	assert.Len(t, out, 3)
}

func TestApply_CategoryMembership(t *testing.T) {
	mobilier := uuid.New()
	sono := uuid.New()
	products := []*models.Product{
		product("chair", 10, withCategory(mobilier)),
		product("speaker", 20, withCategory(sono)),
		product("misc", 30),
	}

	out := Apply(products, FilterState{Categories: []uuid.UUID{mobilier}})
	assert.Len(t, out, 1)
	assert.Equal(t, "chair", out[0].Name)

	// a fixed category route disables the category predicate
	out = Apply(products, FilterState{Categories: []uuid.UUID{mobilier}, CategoryScoped: true})
	assert.Len(t, out, 3)
}

func TestApply_SoundnessAndCompleteness(t *testing.T) {
	cat := uuid.New()
	products := []*models.Product{
		product("a", 15, withColors("noir"), withCategory(cat)),
		product("b", 25, withColors("noir"), withCategory(cat), unavailable()),
		product("c", 35, withColors("blanc"), withCategory(cat)),
		product("d", 45, withColors("noir")),
		product("e", 200, withColors("noir"), withCategory(cat)),
	}
	state := FilterState{
		PriceMin:     10,
		PriceMax:     100,
		Colors:       []string{"noir"},
		Availability: AvailabilityAvailable,
		Categories:   []uuid.UUID{cat},
	}

	out := Apply(products, state)

	inOutput := map[uuid.UUID]bool{}
	for _, p := range out {
		inOutput[p.ID] = true
	}
	for _, p := range products {
		pass := p.PriceTTC >= 10 && p.PriceTTC <= 100 &&
			p.IsAvailable &&
			colorIntersects(state.Colors, p.Colors) &&
			p.CategoryID != nil && *p.CategoryID == cat
		assert.Equal(t, pass, inOutput[p.ID], "product %s", p.Name)
	}
}

func TestApply_SortByName(t *testing.T) {
	products := []*models.Product{
		product("Éclairage", 1),
		product("chaise", 2),
		product("Barnum", 3),
	}

	out := Apply(products, FilterState{SortBy: SortNameAsc})
	assert.Equal(t, []string{"Barnum", "chaise", "Éclairage"},
		[]string{out[0].Name, out[1].Name, out[2].Name})

	out = Apply(products, FilterState{SortBy: SortNameDesc})
	assert.Equal(t, "Éclairage", out[0].Name)
}

func TestApply_SortByPriceStable(t *testing.T) {
	products := []*models.Product{
		product("first", 20),
		product("second", 10),
		product("third", 20),
		product("fourth", 10),
	}

	out := Apply(products, FilterState{SortBy: SortPriceAsc})

	// equal-key elements keep their input order
	assert.Equal(t, []string{"second", "fourth", "first", "third"},
		[]string{out[0].Name, out[1].Name, out[2].Name, out[3].Name})
}

func TestApply_DefaultSortPreservesOrder(t *testing.T) {
	products := []*models.Product{product("z", 3), product("a", 1), product("m", 2)}

	out := Apply(products, FilterState{SortBy: SortDefault})

	assert.Equal(t, "z", out[0].Name)
	assert.Equal(t, "a", out[1].Name)
	assert.Equal(t, "m", out[2].Name)
}

func TestApply_EmptyInput(t *testing.T) {
	out := Apply(nil, FilterState{PriceMin: 10, PriceMax: 20, SortBy: SortPriceAsc})
	assert.Empty(t, out)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := []*models.Product{product("b", 2), product("a", 1)}

	Apply(products, FilterState{SortBy: SortPriceAsc})

	assert.Equal(t, "b", products[0].Name)
	assert.Equal(t, "a", products[1].Name)
}

func TestPriceBounds(t *testing.T) {
	min, max := PriceBounds(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)

	min, max = PriceBounds([]*models.Product{product("a", 40), product("b", 12), product("c", 90)})
	assert.Equal(t, 12.0, min)
	assert.Equal(t, 90.0, max)
}

func TestClampRange(t *testing.T) {
	// current range falls outside new bounds -> clamped in
	lo, hi := ClampRange(5, 500, 10, 100)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 100.0, hi)

	// range inside bounds is untouched
	lo, hi = ClampRange(20, 60, 10, 100)
	assert.Equal(t, 20.0, lo)
	assert.Equal(t, 60.0, hi)

	// range entirely outside collapses onto the bounds
	lo, hi = ClampRange(200, 300, 10, 100)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 100.0, hi)
}

func TestMetadata(t *testing.T) {
	products := []*models.Product{
		product("a", 10, withColors("noir", "blanc")),
		product("b", 90, withColors("noir"), unavailable()),
	}

	meta := Metadata(products)

	assert.Equal(t, 1, meta.Availability.Available)
	assert.Equal(t, 1, meta.Availability.Unavailable)
	assert.Equal(t, []string{"blanc", "noir"}, meta.Colors)
	assert.Equal(t, 10.0, meta.PriceRange.Min)
	assert.Equal(t, 90.0, meta.PriceRange.Max)
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, ValidSortKey(SortPriceAsc))
	assert.False(t, ValidSortKey("rating-desc"))
}
