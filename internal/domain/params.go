package domain

import (
	"fmt"
	"math"
)

// ResaleSettings controls how cost is turned into a sale price.
type ResaleSettings struct {
	Markup      float64 `json:"markup" yaml:"markup"`            // percent added to cost
	CreditValue float64 `json:"creditValue" yaml:"credit_value"` // currency units per credit
}

// Normalized returns the settings with zero or NaN values replaced by their
// defaults: markup 0, credit value 1.
func (r ResaleSettings) Normalized() ResaleSettings {
	if math.IsNaN(r.Markup) {
		r.Markup = 0
	}
	if r.CreditValue == 0 || math.IsNaN(r.CreditValue) {
		r.CreditValue = 1
	}
	return r
}

// Parameters is the raw input of a calculation. Prices are per one million
// tokens. Quantity is a float so a non-integer or non-numeric (NaN) value can
// reach the validator; valid parameters always hold a whole number.
type Parameters struct {
	Model            string         `json:"model,omitempty" yaml:"model,omitempty"`
	InputTokenPrice  float64        `json:"inputTokenPrice" yaml:"input_token_price"`
	OutputTokenPrice float64        `json:"outputTokenPrice" yaml:"output_token_price"`
	CachedTokenPrice float64        `json:"cachedTokenPrice" yaml:"cached_token_price"`
	InputText        string         `json:"inputText" yaml:"input_text"`
	OutputText       string         `json:"outputText" yaml:"output_text"`
	Quantity         float64        `json:"quantity" yaml:"quantity"`
	Resale           ResaleSettings `json:"resaleSettings" yaml:"resale_settings"`
}

// Key returns a stable identity for the parameter set, used to drop
// duplicates in batch input.
func (p Parameters) Key() string {
	r := p.Resale.Normalized()
	return fmt.Sprintf("%g|%g|%g|%g|%g|%g|%q|%q",
		p.InputTokenPrice, p.OutputTokenPrice, p.CachedTokenPrice,
		p.Quantity, r.Markup, r.CreditValue, p.InputText, p.OutputText)
}
