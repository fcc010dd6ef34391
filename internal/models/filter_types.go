package models

import (
	"net/url"

	"github.com/gorilla/schema"
)

// CatalogueFilters is the catalogue page filter state. It is round-tripped
// through URL query parameters so filtered views stay shareable: decoding a
// URL written by Values() reproduces the same state.
type CatalogueFilters struct {
	Category string `schema:"categorie"`
	Search   string `schema:"recherche"`
	Sort     string `schema:"tri"`
}

var (
	filterDecoder = newFilterDecoder()
	filterEncoder = schema.NewEncoder()
)

func newFilterDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	// Pages carry unrelated params (utm tags, page anchors); ignore them.
	d.IgnoreUnknownKeys(true)
	return d
}

// ParseFilters reads the filter state out of URL query values. An absent sort
// key defaults to "recent", matching the catalogue page's initial state.
func ParseFilters(values url.Values) (CatalogueFilters, error) {
	var f CatalogueFilters
	if err := filterDecoder.Decode(&f, values); err != nil {
		return CatalogueFilters{}, err
	}
	if f.Sort == "" {
		f.Sort = "recent"
	}
	return f, nil
}

// Values encodes the filter state back into URL query values.
func (f CatalogueFilters) Values() (url.Values, error) {
	values := url.Values{}
	if err := filterEncoder.Encode(f, values); err != nil {
		return nil, err
	}
	// Empty filters are dropped rather than serialized as "categorie=".
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			values.Del(key)
		}
	}
	return values, nil
}
