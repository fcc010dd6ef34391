package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yemeli/vitrine-golang/internal/catalog"
	"github.com/yemeli/vitrine-golang/internal/models"
)

func testDataset() *models.Dataset {
	return &models.Dataset{
		Company:  models.Company{Name: "Djema Shop"},
		WhatsApp: models.WhatsAppConfig{Number: "237690000000", DefaultMessage: "Bonjour, je suis intéressé par "},
		Categories: []models.Category{
			{ID: "formation", Name: "Formations", Icon: "🎓"},
			{ID: "service", Name: "Services", Icon: "🛠️"},
		},
		Products: []models.Product{
			{
				ID: 1, Active: true, Featured: true,
				Name: "Formation Marketing Digital", Slug: "formation-marketing-digital",
				Category: "formation", Price: 25000, Currency: "FCFA", Discount: 20,
				ShortDesc: "Apprenez le marketing en ligne", Tags: []string{"marketing", "business"},
				RelatedIDs: []int64{2, 3, 99},
				DateAdded:  "2024-03-01", Views: 40, Orders: 2,
			},
			{
				ID: 2, Active: true,
				Name: "Coaching Business", Slug: "coaching-business",
				Category: "service", Price: 50000, Currency: "FCFA",
				ShortDesc: "Accompagnement personnalisé", Tags: []string{"coaching"},
				RelatedIDs: []int64{1, 3, 99, 4, 100},
				DateAdded:  "2024-05-10", Views: 10, Orders: 1,
			},
			{
				ID: 3, Active: false, Featured: true,
				Name: "Pack Design Logo", Slug: "pack-design-logo",
				Category: "service", Price: 15000, Currency: "FCFA", Discount: 50,
				ShortDesc: "Identité visuelle complète",
				DateAdded: "2024-01-15", Views: 100, Orders: 9,
			},
			{
				ID: 4, Active: true, Featured: true,
				Name: "Formation Vente WhatsApp", Slug: "formation-vente-whatsapp",
				Category: "formation", Price: 25000, Currency: "FCFA",
				ShortDesc: "Vendez plus avec WhatsApp", Tags: []string{"whatsapp", "vente"},
				DateAdded: "2024-04-20", Views: 5,
			},
		},
	}
}

func ids(products []models.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestActiveProducts(t *testing.T) {
	got := catalog.ActiveProducts(testDataset())
	assert.Equal(t, []int64{1, 2, 4}, ids(got), "inactive products filtered, insertion order kept")
}

func TestByID(t *testing.T) {
	ds := testDataset()

	p, found := catalog.ByID(ds, 3)
	require.True(t, found)
	assert.Equal(t, "Pack Design Logo", p.Name)

	_, found = catalog.ByID(ds, 42)
	assert.False(t, found, "absent id is a normal empty result")
}

func TestBySlug(t *testing.T) {
	ds := testDataset()

	p, found := catalog.BySlug(ds, "coaching-business")
	require.True(t, found)
	assert.Equal(t, int64(2), p.ID)

	_, found = catalog.BySlug(ds, "nope")
	assert.False(t, found)
}

func TestByCategory(t *testing.T) {
	ds := testDataset()

	assert.Equal(t, []int64{1, 4}, ids(catalog.ByCategory(ds, "formation")))
	assert.Equal(t, []int64{2}, ids(catalog.ByCategory(ds, "service")), "inactive product 3 excluded")
	assert.Empty(t, catalog.ByCategory(ds, "inconnu"))
}

func TestSearch(t *testing.T) {
	ds := testDataset()

	t.Run("empty term matches all active products", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2, 4}, ids(catalog.Search(ds, "")))
		assert.Equal(t, []int64{1, 2, 4}, ids(catalog.Search(ds, "   ")))
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		assert.Equal(t, []int64{1}, ids(catalog.Search(ds, "MARKETING Digital")))
	})

	t.Run("term is trimmed", func(t *testing.T) {
		assert.Equal(t, []int64{2}, ids(catalog.Search(ds, "  coaching ")))
	})

	t.Run("matches short description", func(t *testing.T) {
		assert.Equal(t, []int64{2}, ids(catalog.Search(ds, "accompagnement")))
	})

	t.Run("matches tags", func(t *testing.T) {
		assert.Equal(t, []int64{4}, ids(catalog.Search(ds, "vente")))
	})

	t.Run("inactive products never match", func(t *testing.T) {
		assert.Empty(t, catalog.Search(ds, "design logo"))
	})
}

func TestSort(t *testing.T) {
	ds := testDataset()
	active := catalog.ActiveProducts(ds)

	t.Run("recent", func(t *testing.T) {
		assert.Equal(t, []int64{2, 4, 1}, ids(catalog.Sort(active, catalog.SortRecent)))
	})

	t.Run("popular", func(t *testing.T) {
		// views+orders: 1→42, 2→11, 4→5
		assert.Equal(t, []int64{1, 2, 4}, ids(catalog.Sort(active, catalog.SortPopular)))
	})

	t.Run("price ties keep insertion order", func(t *testing.T) {
		// products 1 and 4 share a price; stable sort keeps 1 before 4
		assert.Equal(t, []int64{1, 4, 2}, ids(catalog.Sort(active, catalog.SortPriceAsc)))
	})

	t.Run("asc then desc reverses on distinct prices", func(t *testing.T) {
		distinct := []models.Product{
			{ID: 10, Name: "a", Price: 300},
			{ID: 11, Name: "b", Price: 100},
			{ID: 12, Name: "c", Price: 200},
		}
		asc := catalog.Sort(distinct, catalog.SortPriceAsc)
		desc := catalog.Sort(asc, catalog.SortPriceDesc)
		assert.Equal(t, []int64{11, 12, 10}, ids(asc))
		assert.Equal(t, []int64{10, 12, 11}, ids(desc))
	})

	t.Run("name ordering is accent and case insensitive", func(t *testing.T) {
		named := []models.Product{
			{ID: 20, Name: "Étude de marché"},
			{ID: 21, Name: "coaching"},
			{ID: 22, Name: "Design"},
		}
		assert.Equal(t, []int64{21, 22, 20}, ids(catalog.Sort(named, catalog.SortNameAsc)))
		assert.Equal(t, []int64{20, 22, 21}, ids(catalog.Sort(named, catalog.SortNameDesc)))
	})

	t.Run("unknown key keeps input order", func(t *testing.T) {
		assert.Equal(t, ids(active), ids(catalog.Sort(active, "n-importe-quoi")))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		before := ids(active)
		catalog.Sort(active, catalog.SortPriceDesc)
		assert.Equal(t, before, ids(active))
	})
}

func TestFeatured(t *testing.T) {
	ds := testDataset()

	assert.Equal(t, []int64{1, 4}, ids(catalog.Featured(ds, 3)), "inactive featured product excluded")
	assert.Equal(t, []int64{1}, ids(catalog.Featured(ds, 1)))
	assert.Equal(t, []int64{1, 4}, ids(catalog.Featured(ds, 0)), "no limit")
}

func TestRelated(t *testing.T) {
	ds := testDataset()

	t.Run("dangling and inactive ids are silently dropped", func(t *testing.T) {
		// product 2 lists 5 related ids; only 1 and 4 resolve to active products
		assert.Equal(t, []int64{1, 4}, ids(catalog.Related(ds, 2, 3)))
	})

	t.Run("listed order preserved and truncated to limit", func(t *testing.T) {
		assert.Equal(t, []int64{1}, ids(catalog.Related(ds, 2, 1)))
	})

	t.Run("unknown product has no related products", func(t *testing.T) {
		assert.Empty(t, catalog.Related(ds, 999, 3))
	})
}

func TestFilterComposition(t *testing.T) {
	ds := testDataset()

	t.Run("category AND search, sort applied last", func(t *testing.T) {
		got := catalog.Filter(ds, models.CatalogueFilters{
			Category: "formation",
			Search:   "whatsapp",
			Sort:     catalog.SortPriceAsc,
		})
		assert.Equal(t, []int64{4}, ids(got))
	})

	t.Run("no filters returns all active products", func(t *testing.T) {
		got := catalog.Filter(ds, models.CatalogueFilters{})
		assert.Equal(t, []int64{1, 2, 4}, ids(got))
	})

	t.Run("sort orders the filtered set", func(t *testing.T) {
		got := catalog.Filter(ds, models.CatalogueFilters{Category: "formation", Sort: catalog.SortRecent})
		assert.Equal(t, []int64{4, 1}, ids(got))
	})
}

func TestCategoryLookups(t *testing.T) {
	ds := testDataset()

	assert.Equal(t, "Formations", catalog.CategoryName(ds, "formation"))
	assert.Equal(t, "fantome", catalog.CategoryName(ds, "fantome"), "dangling id falls back to the raw id")
	assert.Equal(t, "🎓", catalog.CategoryIcon(ds, "formation"))
	assert.Equal(t, "", catalog.CategoryIcon(ds, "fantome"))
}
