package sqldb

import (
	"strings"

	"crm/internal/domain/entity"

	"gorm.io/gorm"
)

// customersTable is aliased so every fragment can refer to c.<column>.
const customersTable = "customers AS c"

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// predicate is one WHERE fragment with its bound arguments. Fragments never
// interpolate user input; values only travel through args.
type predicate struct {
	fragment string
	args     []any
}

// customerFilter accumulates the predicates of a customer listing.
type customerFilter struct {
	predicates []predicate
}

func newCustomerFilter(filter entity.CustomerFilter) *customerFilter {
	f := &customerFilter{}

	if q := strings.TrimSpace(filter.Q); q != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		f.add(`(LOWER(c.first_name) LIKE ? ESCAPE '\' OR LOWER(c.last_name) LIKE ? ESCAPE '\'`+
			` OR LOWER(c.phone) LIKE ? ESCAPE '\' OR LOWER(c.email) LIKE ? ESCAPE '\')`,
			like, like, like, like)
	}

	if filter.City != "" {
		f.add("EXISTS (SELECT 1 FROM addresses a WHERE a.customer_id = c.id AND a.city = ?)", filter.City)
	}
	if filter.State != "" {
		f.add("EXISTS (SELECT 1 FROM addresses a WHERE a.customer_id = c.id AND a.state = ?)", filter.State)
	}
	if filter.Pincode != "" {
		f.add("EXISTS (SELECT 1 FROM addresses a WHERE a.customer_id = c.id AND a.pincode = ?)", filter.Pincode)
	}

	// Both flags together can never match; the result is an empty page.
	if filter.OnlyOneAddress {
		f.add("(SELECT COUNT(1) FROM addresses a WHERE a.customer_id = c.id) = 1")
	}
	if filter.MultiAddress {
		f.add("(SELECT COUNT(1) FROM addresses a WHERE a.customer_id = c.id) > 1")
	}

	return f
}

func (f *customerFilter) add(fragment string, args ...any) {
	f.predicates = append(f.predicates, predicate{fragment: fragment, args: args})
}

// where joins every fragment with AND and flattens the arguments in order.
// An empty filter yields an empty clause.
func (f *customerFilter) where() (string, []any) {
	fragments := make([]string, 0, len(f.predicates))
	var args []any
	for _, p := range f.predicates {
		fragments = append(fragments, p.fragment)
		args = append(args, p.args...)
	}

	return strings.Join(fragments, " AND "), args
}

// scope applies the filter to a query over customersTable.
func (f *customerFilter) scope(db *gorm.DB) *gorm.DB {
	clause, args := f.where()
	if clause == "" {
		return db
	}

	return db.Where(clause, args...)
}

// orderBy renders the ORDER BY clause. The column is re-checked against the
// allow-list so a hand-built query cannot smuggle SQL in.
func orderBy(sortBy entity.SortColumn, order entity.SortOrder) string {
	column := entity.ParseSortColumn(string(sortBy))
	direction := entity.ParseSortOrder(string(order))

	return "c." + string(column) + " " + string(direction) + ", c.id " + string(direction)
}
