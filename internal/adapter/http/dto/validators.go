package dto

import (
	"reflect"
	"strings"
	"time"

	"transaction-monitoring-api/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Accepted timestamp layouts, most specific first. A layout without a zone
// is read as UTC.
var isoTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the query validators to v and reports fields by
// their query parameter names.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("sort_field", validateSortField)
	_ = v.RegisterValidation("decimal", validateDecimal)
	_ = v.RegisterValidation("iso_time", validateISOTime)
}

// validateSortField accepts entity field names that can order a listing.
func validateSortField(fl validator.FieldLevel) bool {
	return domain.IsSortableField(fl.Field().String())
}

// validateDecimal accepts a non-negative decimal number.
func validateDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func validateISOTime(fl validator.FieldLevel) bool {
	_, ok := ParseISOTime(fl.Field().String())
	return ok
}

// ParseISOTime parses an ISO-8601 timestamp. The empty string yields the zero time and false.
func ParseISOTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TrimStrings trims surrounding whitespace from every exported string field
// (including *string) of a struct pointer. Other values are left alone.
func TrimStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Pointer:
			if !f.IsNil() && f.Elem().Kind() == reflect.String {
				f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
			}
		}
	}
}
