package service

import "github.com/syslocale/domainpbn/internal/database"

const (
	defaultPage  = 1
	defaultLimit = 10

	// MaxLimit is the largest page size a listing accepts; enforced at the
	// HTTP boundary before the engine runs.
	MaxLimit = 100
)

// ListingParams carries the caller-supplied options of a public listing
// query. Page and Limit are bounds-checked at the HTTP boundary; zero
// values select the defaults. A zero MinScore or MaxPrice leaves the
// corresponding filter off.
type ListingParams struct {
	Category string
	MinScore int
	MaxPrice int
	SortBy   string
	Page     int
	Limit    int
}

// listingSpec maps one record kind onto the listing engine: which document
// fields back the category/score/price filters, which fields may be sorted
// on, and which sort applies when the caller names none (or an unknown one).
type listingSpec struct {
	categoryField string
	scoreField    string
	priceField    string
	sortable      []string
	defaultSort   string
}

// query composes the store query for one public listing request: baseline
// visibility conditions first, then the caller's filters, then sort and
// pagination. An unrecognized SortBy silently falls back to the default
// sort field; it is not an error.
func (spec listingSpec) query(p ListingParams, baseline ...database.Condition) database.Query {
	q := database.Query{
		Conditions: append([]database.Condition(nil), baseline...),
	}

	if p.Category != "" && spec.categoryField != "" {
		q = q.Where(spec.categoryField, database.OpContains, p.Category)
	}
	if p.MinScore > 0 {
		q = q.Where(spec.scoreField, database.OpGte, p.MinScore)
	}
	if p.MaxPrice > 0 {
		q = q.Where(spec.priceField, database.OpLte, p.MaxPrice)
	}

	sortField := spec.defaultSort
	for _, f := range spec.sortable {
		if f == p.SortBy {
			sortField = f
			break
		}
	}
	q.Sort = &database.Sort{Field: sortField, Desc: true, Numeric: true}

	page := p.Page
	if page < defaultPage {
		page = defaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	q.Skip = (page - 1) * limit
	q.Limit = limit

	return q
}
