package models

// Characteristic is a single {name, value} spec line on a product sheet.
type Characteristic struct {
	Name  string `json:"nom"`
	Value string `json:"valeur"`
}

// Product is a sellable catalogue item.
// The `validate` tags are the admin save contract: they are checked by the
// admin workflow before any write, never during a plain query.
type Product struct {
	ID       int64 `json:"id"`
	Active   bool  `json:"actif"`
	Featured bool  `json:"vedette"`

	Name     string `json:"nom" validate:"required"`
	Slug     string `json:"slug"`
	Category string `json:"categorie" validate:"required"`

	// --- Pricing ---
	Price    float64 `json:"prix" validate:"gte=0"`
	Currency string  `json:"devise"`
	Discount float64 `json:"reduction" validate:"gte=0,lte=100"`

	// --- Media & Content ---
	Images          []string         `json:"images"`
	ShortDesc       string           `json:"descriptionCourte" validate:"required,max=150"`
	FullDesc        string           `json:"descriptionComplete" validate:"required"`
	Benefits        []string         `json:"avantages"`
	Characteristics []Characteristic `json:"caracteristiques"`
	Tags            []string         `json:"tags"`

	// WhatsAppMessage overrides the dataset-level default template when set.
	WhatsAppMessage string `json:"messageWhatsapp"`

	// RelatedIDs are non-owning references; ids that no longer resolve to a
	// live product are filtered out at query time.
	RelatedIDs []int64 `json:"produitsLies"`

	DateAdded string `json:"dateAjout"` // ISO date (YYYY-MM-DD)
	Views     int    `json:"vues"`
	Orders    int    `json:"commandes"`
}

// Thumbnail returns the canonical thumbnail URL, or "" when the product has
// no images.
func (p Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// Clone returns a deep copy of the product. Slicing with [:0:0] keeps nil
// slices nil and empty slices empty, so a clone marshals identically.
func (p Product) Clone() Product {
	out := p
	out.Images = append(p.Images[:0:0], p.Images...)
	out.Benefits = append(p.Benefits[:0:0], p.Benefits...)
	out.Characteristics = append(p.Characteristics[:0:0], p.Characteristics...)
	out.Tags = append(p.Tags[:0:0], p.Tags...)
	out.RelatedIDs = append(p.RelatedIDs[:0:0], p.RelatedIDs...)
	return out
}
