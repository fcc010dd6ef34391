// Package catalog is the pure query layer over a loaded Dataset. Every
// function is side-effect free and total: on a loaded dataset it returns
// empty results rather than erroring.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yemeli/vitrine-golang/internal/models"
)

// Sort keys accepted by Sort. Any other key leaves the input order unchanged.
const (
	SortRecent    = "recent"
	SortPopular   = "popular"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// nameCollator compares product names the way a French-speaking visitor
// expects (accents and case folded into the ordering).
var nameCollator = collate.New(language.French, collate.Loose)

// ActiveProducts returns every active product, insertion order preserved.
func ActiveProducts(d *models.Dataset) []models.Product {
	out := []models.Product{}
	for _, p := range d.Products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// ByID returns the product with the given id. Absence is a normal empty
// result, not an error.
func ByID(d *models.Dataset, id int64) (models.Product, bool) {
	for _, p := range d.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// BySlug returns the product with the given slug.
func BySlug(d *models.Dataset, slug string) (models.Product, bool) {
	for _, p := range d.Products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory returns the active products of a category, insertion order
// preserved. An unknown category id simply matches nothing.
func ByCategory(d *models.Dataset, categoryID string) []models.Product {
	out := []models.Product{}
	for _, p := range d.Products {
		if p.Active && p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the trimmed term case-insensitively against product name,
// short description and tags, over active products only. An empty term
// matches everything.
func Search(d *models.Dataset, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ActiveProducts(d)
	}

	out := []models.Product{}
	for _, p := range d.Products {
		if p.Active && matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.ShortDesc), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of products. The sort is stable, so products
// that compare equal keep their relative input order. An unknown key returns
// the input order unchanged.
func Sort(products []models.Product, key string) []models.Product {
	out := append([]models.Product(nil), products...)

	var less func(a, b models.Product) bool
	switch key {
	case SortRecent:
		less = func(a, b models.Product) bool { return a.DateAdded > b.DateAdded }
	case SortPopular:
		less = func(a, b models.Product) bool { return a.Views+a.Orders > b.Views+b.Orders }
	case SortPriceAsc:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case SortNameAsc:
		less = func(a, b models.Product) bool { return nameCollator.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		less = func(a, b models.Product) bool { return nameCollator.CompareString(a.Name, b.Name) > 0 }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Featured returns the first limit active+featured products in insertion
// order. A limit <= 0 means no limit.
func Featured(d *models.Dataset, limit int) []models.Product {
	out := []models.Product{}
	for _, p := range d.Products {
		if p.Active && p.Featured {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// Related resolves a product's related ids in listed order, silently dropping
// ids that no longer resolve to an active product, truncated to limit.
func Related(d *models.Dataset, productID int64, limit int) []models.Product {
	p, ok := ByID(d, productID)
	if !ok {
		return []models.Product{}
	}

	out := []models.Product{}
	for _, id := range p.RelatedIDs {
		related, found := ByID(d, id)
		if !found || !related.Active {
			continue
		}
		out = append(out, related)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Filter applies the catalogue page composition rule: category and search
// are ANDed when both are present, then the sort is applied last.
func Filter(d *models.Dataset, f models.CatalogueFilters) []models.Product {
	products := Search(d, f.Search)
	if f.Category != "" {
		kept := []models.Product{}
		for _, p := range products {
			if p.Category == f.Category {
				kept = append(kept, p)
			}
		}
		products = kept
	}
	return Sort(products, f.Sort)
}

// CategoryName resolves a category id to its display name, falling back to
// the raw id when the reference dangles.
func CategoryName(d *models.Dataset, categoryID string) string {
	for _, c := range d.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return categoryID
}

// CategoryIcon resolves a category id to its icon glyph ("" when unknown).
func CategoryIcon(d *models.Dataset, categoryID string) string {
	for _, c := range d.Categories {
		if c.ID == categoryID {
			return c.Icon
		}
	}
	return ""
}
