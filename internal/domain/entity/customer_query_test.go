package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 1},
		{raw: "3", want: 3},
		{raw: " 2 ", want: 2},
		{raw: "0", want: 1},
		{raw: "-4", want: 1},
		{raw: "abc", want: 1},
		{raw: "2.5", want: 1},
		{raw: "4611686018427387904", want: MaxPage},
		{raw: "9223372036854775807", want: MaxPage},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParsePage(tt.raw))
		})
	}
}

func TestCustomerListQuery_OffsetNeverWraps(t *testing.T) {
	t.Parallel()

	q := ParseCustomerListQuery(RawCustomerListParams{Page: "4611686018427387904", PageSize: "100"})

	assert.Equal(t, MaxPage, q.Page)
	assert.Positive(t, q.Offset())
	assert.Equal(t, (MaxPage-1)*MaxPageSize, q.Offset())
}

func TestParsePageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 10},
		{raw: "5", want: 5},
		{raw: "0", want: 1},
		{raw: "-1", want: 1},
		{raw: "100", want: 100},
		{raw: "101", want: 100},
		{raw: "99999999999999999999", want: 10},
		{raw: "ten", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParsePageSize(tt.raw))
		})
	}
}

func TestParseSortColumn_AllowList(t *testing.T) {
	assert.Equal(t, SortByFirstName, ParseSortColumn("first_name"))
	assert.Equal(t, SortByLastName, ParseSortColumn("last_name"))
	assert.Equal(t, SortByCreatedAt, ParseSortColumn("created_at"))
	assert.Equal(t, SortByCreatedAt, ParseSortColumn("phone"))
	assert.Equal(t, SortByCreatedAt, ParseSortColumn("id; DROP TABLE customers"))
	assert.Equal(t, SortByCreatedAt, ParseSortColumn("FIRST_NAME"))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortAsc, ParseSortOrder("ASC"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
	assert.Equal(t, SortDesc, ParseSortOrder("ascending"))
}

func TestParseCustomerListQuery(t *testing.T) {
	q := ParseCustomerListQuery(RawCustomerListParams{
		Page:           "2",
		PageSize:       "5",
		SortBy:         "last_name",
		SortOrder:      "Asc",
		Q:              "  doe ",
		City:           "Pune",
		OnlyOneAddress: "true",
		MultiAddress:   "yes",
	})

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.PageSize)
	assert.Equal(t, 5, q.Offset())
	assert.Equal(t, SortByLastName, q.SortBy)
	assert.Equal(t, SortAsc, q.SortOrder)
	assert.Equal(t, "doe", q.Filter.Q)
	assert.Equal(t, "Pune", q.Filter.City)
	assert.True(t, q.Filter.OnlyOneAddress)
	assert.False(t, q.Filter.MultiAddress)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNewCustomerPage(t *testing.T) {
	q := CustomerListQuery{Page: 3, PageSize: 4}
	page := NewCustomerPage(q, nil, 9)

	assert.NotNil(t, page.Customers)
	assert.Empty(t, page.Customers)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 4, page.PageSize)
	assert.Equal(t, int64(9), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestCustomerDetail_AlwaysRendersAddresses(t *testing.T) {
	detail := NewCustomerDetail(&Customer{ID: 1, FirstName: "John"})

	raw, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"addresses":[]`)
	assert.Contains(t, string(raw), `"first_name":"John"`)
}

func TestCustomer_PrimaryAddress(t *testing.T) {
	c := &Customer{Addresses: []*Address{{ID: 1}, {ID: 2, IsPrimary: true}}}
	require.NotNil(t, c.PrimaryAddress())
	assert.Equal(t, int64(2), c.PrimaryAddress().ID)

	assert.Nil(t, (&Customer{}).PrimaryAddress())
}
