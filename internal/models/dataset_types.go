package models

// --- Domain Models ---

// Dataset is the root document driving the whole site: company profile,
// categories, products and testimonials. Exactly one Dataset is live per
// process; it is swapped atomically by the store, never patched field by field.
// JSON field names match the deployed data/data.json so existing datasets
// load unmodified.
type Dataset struct {
	Company      Company        `json:"entreprise"`
	WhatsApp     WhatsAppConfig `json:"whatsapp"`
	SEO          SEO            `json:"seo"`
	Categories   []Category     `json:"categories"`
	Products     []Product      `json:"produits"`
	Testimonials []Testimonial  `json:"temoignages"`
}

// Company is the public profile shown in the header and footer.
type Company struct {
	Name    string `json:"nom"`
	Slogan  string `json:"slogan"`
	Email   string `json:"email"`
	Phone   string `json:"telephone"`
	Address string `json:"adresse"`
	Logo    string `json:"logo"`
}

// WhatsAppConfig holds the contact number and the default message template
// used when a product has no custom one.
type WhatsAppConfig struct {
	Number         string `json:"numero"`
	DefaultMessage string `json:"messageDefaut"`
}

type SEO struct {
	Title       string `json:"titre"`
	Description string `json:"description"`
}

// Category is immutable once loaded. Products reference it by id; a dangling
// id is tolerated at lookup time, not an error.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"nom"`
	Icon string `json:"icone"`
}

// Testimonial is read-only from the catalogue's perspective.
type Testimonial struct {
	Name    string `json:"nom"`
	Company string `json:"entreprise"`
	Photo   string `json:"photo"`
	Rating  int    `json:"note"`
	Text    string `json:"texte"`
}

// Clone returns a deep copy of the Dataset. The store hands out and accepts
// copies so that no caller can mutate the live document in place.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := *d

	out.Categories = append(d.Categories[:0:0], d.Categories...)
	out.Testimonials = append(d.Testimonials[:0:0], d.Testimonials...)

	if d.Products != nil {
		out.Products = make([]Product, len(d.Products))
		for i := range d.Products {
			out.Products[i] = d.Products[i].Clone()
		}
	}
	return &out
}
