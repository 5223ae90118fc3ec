package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/dustin/go-humanize"
)

// Accepted input ranges. Prices are USD per 1M tokens.
const (
	MinTokenPrice = 0.01
	MaxTokenPrice = 1000.0
	MinQuantity   = 1
	MaxQuantity   = 1_000_000
)

// ValidationResult is the outcome of ValidateParameters.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// ValidateParameters reports whether p is valid and, if not, every problem
// found. It has no side effects.
func ValidateParameters(p domain.Parameters) ValidationResult {
	errs := Validate(p)
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Validate checks every field of p and returns all problems found, in field
// order: input price, output price, cached price, input text, output text,
// quantity, markup, credit value. Each field contributes at most one message.
// An empty slice means the parameters are valid. A NaN markup or credit value
// is not an error; it normalizes to the default.
func Validate(p domain.Parameters) []string {
	var errs []string
	add := func(msg string) {
		if msg != "" {
			errs = append(errs, msg)
		}
	}

	add(validatePrice(p.InputTokenPrice, "label_input_price"))
	add(validatePrice(p.OutputTokenPrice, "label_output_price"))
	add(validatePrice(p.CachedTokenPrice, "label_cached_price"))

	if strings.TrimSpace(p.InputText) == "" {
		add(i18n.T("err_input_text_required"))
	}
	if strings.TrimSpace(p.OutputText) == "" {
		add(i18n.T("err_output_text_required"))
	}

	add(validateQuantity(p.Quantity))
	add(validateFinite(p.Resale.Markup, "label_markup"))
	add(validateFinite(p.Resale.CreditValue, "label_credit_value"))
	return errs
}

func validateFinite(v float64, labelKey string) string {
	if !math.IsInf(v, 0) {
		return ""
	}
	return i18n.T(labelKey) + ": " + i18n.T("err_not_finite")
}

func validatePrice(v float64, labelKey string) string {
	var reason string
	switch {
	case math.IsNaN(v):
		reason = i18n.T("err_price_nan")
	case v < MinTokenPrice:
		reason = i18n.Tf("err_price_min", strconv.FormatFloat(MinTokenPrice, 'f', -1, 64))
	case v > MaxTokenPrice:
		reason = i18n.Tf("err_price_max", strconv.FormatFloat(MaxTokenPrice, 'f', -1, 64))
	default:
		return ""
	}
	return i18n.T(labelKey) + ": " + reason
}

func validateQuantity(v float64) string {
	var reason string
	switch {
	case math.IsNaN(v):
		reason = i18n.T("err_quantity_nan")
	case v < MinQuantity:
		reason = i18n.Tf("err_quantity_min", humanize.Comma(MinQuantity))
	case v > MaxQuantity:
		reason = i18n.Tf("err_quantity_max", humanize.Comma(MaxQuantity))
	case v != math.Trunc(v):
		reason = i18n.T("err_quantity_integer")
	default:
		return ""
	}
	return i18n.T("label_quantity") + ": " + reason
}
