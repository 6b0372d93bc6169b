package entity

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*pageSize within int.
	MaxPage = math.MaxInt / MaxPageSize
)

// SortColumn is a customer column that may be used for ordering.
// Only the values declared below are ever produced by ParseSortColumn.
type SortColumn string

const (
	SortByCreatedAt SortColumn = "created_at"
	SortByFirstName SortColumn = "first_name"
	SortByLastName  SortColumn = "last_name"
)

var sortableColumns = map[string]SortColumn{
	string(SortByCreatedAt): SortByCreatedAt,
	string(SortByFirstName): SortByFirstName,
	string(SortByLastName):  SortByLastName,
}

// SortOrder is the ordering direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// CustomerFilter is the predicate part of a customer listing.
type CustomerFilter struct {
	Q              string
	City           string
	State          string
	Pincode        string
	OnlyOneAddress bool
	MultiAddress   bool
}

// CustomerListQuery is a fully normalised customer listing request.
type CustomerListQuery struct {
	Filter    CustomerFilter
	Page      int
	PageSize  int
	SortBy    SortColumn
	SortOrder SortOrder
}

// RawCustomerListParams are the listing parameters exactly as received.
type RawCustomerListParams struct {
	Page           string `query:"page"`
	PageSize       string `query:"pageSize"`
	SortBy         string `query:"sortBy"`
	SortOrder      string `query:"sortOrder"`
	Q              string `query:"q"`
	City           string `query:"city"`
	State          string `query:"state"`
	Pincode        string `query:"pincode"`
	OnlyOneAddress string `query:"onlyOneAddress"`
	MultiAddress   string `query:"multiAddress"`
}

// ParseCustomerListQuery normalises raw parameters. It never fails: malformed
// numbers fall back to defaults and out-of-range values are clamped.
func ParseCustomerListQuery(raw RawCustomerListParams) CustomerListQuery {
	return CustomerListQuery{
		Filter: CustomerFilter{
			Q:              strings.TrimSpace(raw.Q),
			City:           raw.City,
			State:          raw.State,
			Pincode:        raw.Pincode,
			OnlyOneAddress: parseFlag(raw.OnlyOneAddress),
			MultiAddress:   parseFlag(raw.MultiAddress),
		},
		Page:      ParsePage(raw.Page),
		PageSize:  ParsePageSize(raw.PageSize),
		SortBy:    ParseSortColumn(raw.SortBy),
		SortOrder: ParseSortOrder(raw.SortOrder),
	}
}

// ParsePage defaults to 1 and is clamped to [1, MaxPage].
func ParsePage(raw string) int {
	return min(max(parseIntOr(raw, DefaultPage), 1), MaxPage)
}

// ParsePageSize defaults to 10 and is clamped to [1, 100].
func ParsePageSize(raw string) int {
	return min(max(parseIntOr(raw, DefaultPageSize), 1), MaxPageSize)
}

// ParseSortColumn falls back to created_at for anything off the allow-list.
func ParseSortColumn(raw string) SortColumn {
	if col, ok := sortableColumns[raw]; ok {
		return col
	}

	return SortByCreatedAt
}

// ParseSortOrder maps "asc" in any case to ascending and everything else to descending.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), "asc") {
		return SortAsc
	}

	return SortDesc
}

func parseFlag(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}

func parseIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	return n
}

// Offset is the number of rows skipped before the requested page.
func (q CustomerListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// CustomerPage is one page of a customer listing.
type CustomerPage struct {
	Customers  []*Customer
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// NewCustomerPage fills in the page metadata for q.
func NewCustomerPage(q CustomerListQuery, customers []*Customer, total int64) *CustomerPage {
	if customers == nil {
		customers = []*Customer{}
	}

	return &CustomerPage{
		Customers:  customers,
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, q.PageSize),
	}
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
