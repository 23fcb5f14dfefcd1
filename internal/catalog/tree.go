package catalog

import (
	"sort"

	"festiloc/internal/models"
)

// Tree is the assembled three-level navigation hierarchy consumed by the
// mega-menu, the sidebar and breadcrumbs. Siblings are ordered by
// order_index, with slug as the tie-breaker.
type Tree struct {
	Categories []*CategoryNode `json:"categories"`
}

type CategoryNode struct {
	models.Category
	Subcategories []*SubcategoryNode `json:"subcategories,omitempty"`
}

type SubcategoryNode struct {
	models.Subcategory
	SubSubcategories []*models.SubSubcategory `json:"subsubcategories,omitempty"`
}

// Crumb is one step of a breadcrumb chain; Path is the cumulative slug path.
type Crumb struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Path string `json:"path"`
}

// BuildTree assembles the tree from flat rows. Orphan rows (pointing at a
// missing parent) are dropped rather than surfaced as errors; the admin
// backend enforces referential integrity at write time.
func BuildTree(categories []*models.Category, subcategories []*models.Subcategory, subsubs []*models.SubSubcategory) *Tree {
	subNodes := make(map[string]*SubcategoryNode, len(subcategories))
	byCategory := make(map[string][]*SubcategoryNode)
	for _, sub := range subcategories {
		node := &SubcategoryNode{Subcategory: *sub}
		subNodes[sub.ID.String()] = node
		byCategory[sub.CategoryID.String()] = append(byCategory[sub.CategoryID.String()], node)
	}

	for _, ss := range subsubs {
		parent, ok := subNodes[ss.SubcategoryID.String()]
		if !ok {
			continue
		}
		parent.SubSubcategories = append(parent.SubSubcategories, ss)
	}

	tree := &Tree{Categories: make([]*CategoryNode, 0, len(categories))}
	for _, cat := range categories {
		node := &CategoryNode{
			Category:      *cat,
			Subcategories: byCategory[cat.ID.String()],
		}
		sort.SliceStable(node.Subcategories, func(i, j int) bool {
			return lessSibling(node.Subcategories[i].OrderIndex, node.Subcategories[i].Slug,
				node.Subcategories[j].OrderIndex, node.Subcategories[j].Slug)
		})
		for _, sub := range node.Subcategories {
			children := sub.SubSubcategories
			sort.SliceStable(children, func(i, j int) bool {
				return lessSibling(children[i].OrderIndex, children[i].Slug,
					children[j].OrderIndex, children[j].Slug)
			})
		}
		tree.Categories = append(tree.Categories, node)
	}
	sort.SliceStable(tree.Categories, func(i, j int) bool {
		return lessSibling(tree.Categories[i].OrderIndex, tree.Categories[i].Slug,
			tree.Categories[j].OrderIndex, tree.Categories[j].Slug)
	})
	return tree
}

func lessSibling(orderA int, slugA string, orderB int, slugB string) bool {
	if orderA != orderB {
		return orderA < orderB
	}
	return slugA < slugB
}

// Path is a resolved category route. Subcategory and SubSubcategory are nil
// for the shallower routes.
type Path struct {
	Category       *CategoryNode
	Subcategory    *SubcategoryNode
	SubSubcategory *models.SubSubcategory
}

// Resolve walks the tree along up to three slugs. It returns false when any
// segment does not exist at its level.
func (t *Tree) Resolve(slugs ...string) (*Path, bool) {
	if len(slugs) == 0 || len(slugs) > 3 {
		return nil, false
	}

	path := &Path{}
	for _, cat := range t.Categories {
		if cat.Slug == slugs[0] {
			path.Category = cat
			break
		}
	}
	if path.Category == nil {
		return nil, false
	}
	if len(slugs) == 1 {
		return path, true
	}

	for _, sub := range path.Category.Subcategories {
		if sub.Slug == slugs[1] {
			path.Subcategory = sub
			break
		}
	}
	if path.Subcategory == nil {
		return nil, false
	}
	if len(slugs) == 2 {
		return path, true
	}

	for _, ss := range path.Subcategory.SubSubcategories {
		if ss.Slug == slugs[2] {
			path.SubSubcategory = ss
			break
		}
	}
	if path.SubSubcategory == nil {
		return nil, false
	}
	return path, true
}

// Breadcrumb returns the crumb chain for a resolved path, deepest last.
func (p *Path) Breadcrumb() []Crumb {
	crumbs := []Crumb{{
		Name: p.Category.Name,
		Slug: p.Category.Slug,
		Path: "/" + p.Category.Slug,
	}}
	if p.Subcategory == nil {
		return crumbs
	}
	crumbs = append(crumbs, Crumb{
		Name: p.Subcategory.Name,
		Slug: p.Subcategory.Slug,
		Path: crumbs[0].Path + "/" + p.Subcategory.Slug,
	})
	if p.SubSubcategory == nil {
		return crumbs
	}
	crumbs = append(crumbs, Crumb{
		Name: p.SubSubcategory.Name,
		Slug: p.SubSubcategory.Slug,
		Path: crumbs[1].Path + "/" + p.SubSubcategory.Slug,
	})
	return crumbs
}

// Matches reports whether a product belongs under the resolved path, at
// whichever depth the path stops.
func (p *Path) Matches(product *models.Product) bool {
	if p.SubSubcategory != nil {
		return product.SubSubcategoryID != nil && *product.SubSubcategoryID == p.SubSubcategory.ID
	}
	if p.Subcategory != nil {
		return product.SubcategoryID != nil && *product.SubcategoryID == p.Subcategory.ID
	}
	return product.CategoryID != nil && *product.CategoryID == p.Category.ID
}
