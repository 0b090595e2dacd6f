// Package database defines the boundary with the document store: the query
// description passed to a collection and the errors it reports back.
//
// A Query is the (filter, sort, skip, limit) tuple the store understands.
// Field names come from compile-time constants in the service layer, never
// from request input.
package database

// Op is a filter operator applied to a single document field.
type Op int

const (
	// OpEq matches documents whose field equals the value exactly.
	OpEq Op = iota
	// OpContains matches string fields containing the value,
	// case-insensitively.
	OpContains
	// OpGte matches numeric fields greater than or equal to the value.
	OpGte
	// OpLte matches numeric fields less than or equal to the value.
	OpLte
)

// Condition is one field filter; all conditions of a query are ANDed.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Sort describes the result ordering. Numeric selects a numeric comparison
// for the field; otherwise values compare as strings, which is also how
// RFC 3339 timestamps order correctly.
type Sort struct {
	Field   string
	Desc    bool
	Numeric bool
}

// Query describes one find against a collection. A nil Sort leaves the
// order unspecified; Limit 0 means no limit.
type Query struct {
	Conditions []Condition
	// Any is a disjunction group: a document matches when at least one of
	// these conditions holds. ANDed with Conditions.
	Any   []Condition
	Sort  *Sort
	Skip  int
	Limit int
}

// Where appends a condition and returns the query for chaining.
func (q Query) Where(field string, op Op, value any) Query {
	q.Conditions = append(q.Conditions, Condition{Field: field, Op: op, Value: value})
	return q
}
