// Package admin is the mutation workflow behind the admin panel: drafts,
// validated saves, flag flips and hard deletes. Every mutation is all or
// nothing: validation runs fully before any store write.
package admin

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/yemeli/vitrine-golang/internal/models"
	"github.com/yemeli/vitrine-golang/internal/store"
)

const (
	dateLayout      = "2006-01-02"
	defaultCurrency = "FCFA"
)

// Workflow applies admin mutations to the catalog store.
type Workflow struct {
	store    *store.Store
	validate *validator.Validate
	now      func() time.Time
}

func NewWorkflow(s *store.Store) *Workflow {
	v := validator.New()
	// Report violations under the JSON field names the form uses.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Workflow{store: s, validate: v, now: time.Now}
}

// Slugify derives a URL-safe identifier from a product name: lowercased,
// diacritics stripped, punctuation runs collapsed to single hyphens.
func Slugify(name string) string {
	return slug.Make(name)
}

// ParseTags splits a comma-separated tag input: segments trimmed, empty ones
// discarded, order preserved. Duplicates are kept as typed.
func ParseTags(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// CreateDraft returns a fresh unsaved product: next free id, active, not
// featured, dated today, first category preselected, all collections empty.
// The id reads max of the persisted ids, so two drafts in a row get the same
// id until one of them is saved.
func (w *Workflow) CreateDraft() (models.Product, error) {
	ds, err := w.store.Dataset()
	if err != nil {
		return models.Product{}, err
	}

	draft := models.Product{
		ID:              nextID(ds),
		Active:          true,
		Featured:        false,
		Currency:        defaultCurrency,
		Images:          []string{},
		Benefits:        []string{},
		Characteristics: []models.Characteristic{},
		Tags:            []string{},
		RelatedIDs:      []int64{},
		DateAdded:       w.now().Format(dateLayout),
	}
	if len(ds.Categories) > 0 {
		draft.Category = ds.Categories[0].ID
	}
	return draft, nil
}

// Save validates the product and either appends it (isNew) or replaces the
// product with the same id. The slug is derived from the name when left
// empty. On any validation failure the store is left unchanged.
func (w *Workflow) Save(p models.Product, isNew bool) (models.Product, error) {
	ds, err := w.store.Dataset()
	if err != nil {
		return models.Product{}, err
	}

	p.Name = strings.TrimSpace(p.Name)
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Name)
	}
	if p.Currency == "" {
		p.Currency = defaultCurrency
	}
	if p.DateAdded == "" {
		p.DateAdded = w.now().Format(dateLayout)
	}
	ensureCollections(&p)

	if err := w.validateProduct(p); err != nil {
		return models.Product{}, err
	}

	if isNew {
		// A stale draft id (someone saved in between) gets reassigned so the
		// unique-id invariant holds.
		if p.ID == 0 || indexOf(ds, p.ID) >= 0 {
			p.ID = nextID(ds)
		}
		ds.Products = append(ds.Products, p)
	} else {
		idx := indexOf(ds, p.ID)
		if idx < 0 {
			return models.Product{}, ErrProductNotFound
		}
		ds.Products[idx] = p
	}

	if err := w.store.Persist(ds); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ToggleActive flips the active flag and persists. Deactivation is a flag
// flip, never a removal.
func (w *Workflow) ToggleActive(id int64) (models.Product, error) {
	return w.update(id, func(p *models.Product) {
		p.Active = !p.Active
	})
}

// SetFeatured sets the featured flag and persists.
func (w *Workflow) SetFeatured(id int64, featured bool) (models.Product, error) {
	return w.update(id, func(p *models.Product) {
		p.Featured = featured
	})
}

// Delete removes the product from the list outright. No tombstone is kept;
// related-product references to the deleted id become dangling and are
// filtered at query time.
func (w *Workflow) Delete(id int64) error {
	ds, err := w.store.Dataset()
	if err != nil {
		return err
	}
	idx := indexOf(ds, id)
	if idx < 0 {
		return ErrProductNotFound
	}
	ds.Products = append(ds.Products[:idx], ds.Products[idx+1:]...)
	return w.store.Persist(ds)
}

// Stats are the dashboard counters.
type Stats struct {
	ActiveProducts   int `json:"produitsActifs"`
	FeaturedProducts int `json:"produitsVedettes"`
	Categories       int `json:"categories"`
	Testimonials     int `json:"temoignages"`
	TotalProducts    int `json:"produitsTotal"`
}

// Stats computes the admin dashboard counters.
func (w *Workflow) Stats() (Stats, error) {
	ds, err := w.store.Dataset()
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		Categories:    len(ds.Categories),
		Testimonials:  len(ds.Testimonials),
		TotalProducts: len(ds.Products),
	}
	for _, p := range ds.Products {
		if p.Active {
			s.ActiveProducts++
		}
		if p.Featured {
			s.FeaturedProducts++
		}
	}
	return s, nil
}

func (w *Workflow) update(id int64, mutate func(*models.Product)) (models.Product, error) {
	ds, err := w.store.Dataset()
	if err != nil {
		return models.Product{}, err
	}
	idx := indexOf(ds, id)
	if idx < 0 {
		return models.Product{}, ErrProductNotFound
	}
	mutate(&ds.Products[idx])
	updated := ds.Products[idx]
	if err := w.store.Persist(ds); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (w *Workflow) validateProduct(p models.Product) error {
	err := w.validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "invalid value"
	}
}

func nextID(d *models.Dataset) int64 {
	var max int64
	for _, p := range d.Products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func indexOf(d *models.Dataset, id int64) int {
	for i, p := range d.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func ensureCollections(p *models.Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	if p.Characteristics == nil {
		p.Characteristics = []models.Characteristic{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.RelatedIDs == nil {
		p.RelatedIDs = []int64{}
	}
}
