package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// SortDirection is the ordering applied to the sort field.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Paging defaults applied when the caller leaves a parameter out.
const (
	DefaultPage      = 0
	DefaultPageSize  = 10
	DefaultSortField = "timestamp"
)

// MaxAmountSentinel is the upper amount bound used when no maximum is given.
var MaxAmountSentinel = decimal.NewFromInt(999999999)

var (
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrInvalidPageSize  = errors.New("page size must be positive")
)

// sortColumns maps entity field names to their storage columns.
var sortColumns = map[string]string{
	"id":              "id",
	"cardNumber":      "card_number",
	"amount":          "amount",
	"currency":        "currency",
	"timestamp":       "timestamp",
	"merchantName":    "merchant_name",
	"country":         "country",
	"region":          "region",
	"city":            "city",
	"transactionType": "transaction_type",
	"isFraudulent":    "is_fraudulent",
	"isError":         "is_error",
	"errorMessage":    "error_message",
}

// SortColumn returns the storage column for an entity field name.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

// IsSortableField reports whether field can be used to order results.
func IsSortableField(field string) bool {
	_, ok := sortColumns[field]
	return ok
}

// ParseSortDirection maps "asc" (any case) to ascending and anything else to descending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return SortAsc
	}
	return SortDesc
}

// PageRequest selects one page of an ordered result set.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	Direction SortDirection
}

// NewPageRequest builds a PageRequest from raw query values. It normalizes
// the page and direction; use Validate to check size and sort field.
func NewPageRequest(page, size int, sortField, direction string) PageRequest {
	if page < 0 {
		page = 0
	}
	if sortField == "" {
		sortField = DefaultSortField
	}
	return PageRequest{
		Page:      page,
		Size:      size,
		SortField: sortField,
		Direction: ParseSortDirection(direction),
	}
}

// Validate reports an error for a non-positive size or an unknown sort field.
func (p PageRequest) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.Size)
	}
	if !IsSortableField(p.SortField) {
		return fmt.Errorf("%w: %q", ErrUnknownSortField, p.SortField)
	}
	return nil
}

// Offset returns the number of rows preceding this page. It saturates at
// math.MaxInt64 instead of overflowing, which places the page past the end.
func (p PageRequest) Offset() int64 {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}
	return int64(p.Page) * int64(p.Size)
}

// AmountRange is an inclusive [Min, Max] amount bound.
type AmountRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// FullAmountRange spans [0, MaxAmountSentinel].
func FullAmountRange() AmountRange {
	return AmountRange{Min: decimal.Zero, Max: MaxAmountSentinel}
}

// Contains reports whether amount lies within the range, bounds included.
func (r AmountRange) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(r.Min) && amount.LessThanOrEqual(r.Max)
}

// RegionQuery carries optional location filters. Empty fields are absent.
type RegionQuery struct {
	Country string
	Region  string
	City    string
}

// TransactionFilter is a single predicate over transactions. Nil fields are
// not applied; all non-nil fields must match.
type TransactionFilter struct {
	Country    *string
	Region     *string
	City       *string
	Amount     *AmountRange
	Fraudulent *bool
	Error      *bool
}

// Matches evaluates the filter against t.
func (f TransactionFilter) Matches(t *Transaction) bool {
	if f.Country != nil && t.Country != *f.Country {
		return false
	}
	if f.Region != nil && t.Region != *f.Region {
		return false
	}
	if f.City != nil && t.City != *f.City {
		return false
	}
	if f.Amount != nil && !f.Amount.Contains(t.Amount) {
		return false
	}
	if f.Fraudulent != nil && t.IsFraudulent != *f.Fraudulent {
		return false
	}
	if f.Error != nil && t.IsError != *f.Error {
		return false
	}
	return true
}

// Page is one page of a query result plus totals for the full matching set.
type Page struct {
	Items      []Transaction
	Number     int
	Size       int
	TotalItems int64
}

// TotalPages is ceil(TotalItems / Size).
func (p *Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.Size) - 1) / int64(p.Size))
}
