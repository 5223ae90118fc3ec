package pricing

import (
	"math"
	"testing"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(sampleParams()))
}

func TestValidateParameters(t *testing.T) {
	ok := ValidateParameters(sampleParams())
	assert.True(t, ok.IsValid)
	assert.Empty(t, ok.Errors)

	p := sampleParams()
	p.InputText = ""
	p.Quantity = 2.5
	bad := ValidateParameters(p)
	assert.False(t, bad.IsValid)
	assert.Len(t, bad.Errors, 2)
}

func TestValidate_Boundaries(t *testing.T) {
	p := sampleParams()
	p.InputTokenPrice = MinTokenPrice
	p.OutputTokenPrice = MaxTokenPrice
	p.Quantity = MaxQuantity
	assert.Empty(t, Validate(p))

	p.Quantity = MinQuantity
	assert.Empty(t, Validate(p))
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Parameters)
		want   string
	}{
		{"price NaN", func(p *domain.Parameters) { p.InputTokenPrice = math.NaN() }, "Input token price: price must be a valid number"},
		{"price below min", func(p *domain.Parameters) { p.OutputTokenPrice = 0.001 }, "Output token price: minimum is $0.01/1M tokens"},
		{"price above max", func(p *domain.Parameters) { p.CachedTokenPrice = 1000.5 }, "Cached token price: maximum is $1000/1M tokens"},
		{"input text blank", func(p *domain.Parameters) { p.InputText = "  \n\t" }, "Input text is required"},
		{"output text empty", func(p *domain.Parameters) { p.OutputText = "" }, "Output text is required"},
		{"quantity NaN", func(p *domain.Parameters) { p.Quantity = math.NaN() }, "Quantity: must be a valid number"},
		{"quantity zero", func(p *domain.Parameters) { p.Quantity = 0 }, "Quantity: minimum is 1"},
		{"quantity above max", func(p *domain.Parameters) { p.Quantity = 1_000_001 }, "Quantity: maximum is 1,000,000"},
		{"quantity fractional", func(p *domain.Parameters) { p.Quantity = 2.5 }, "Quantity: must be a whole number"},
		{"markup infinite", func(p *domain.Parameters) { p.Resale.Markup = math.Inf(1) }, "Markup: must be a finite number"},
		{"credit value infinite", func(p *domain.Parameters) { p.Resale.CreditValue = math.Inf(-1) }, "Credit value: must be a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleParams()
			tt.mutate(&p)
			assert.Equal(t, []string{tt.want}, Validate(p))
		})
	}
}

func TestValidate_OneMessagePerField(t *testing.T) {
	p := domain.Parameters{
		InputTokenPrice:  math.NaN(),
		OutputTokenPrice: -1,
		CachedTokenPrice: 5000,
		Quantity:         0.5,
	}

	errs := Validate(p)
	assert.Len(t, errs, 6)
	assert.Contains(t, errs[0], "Input token price")
	assert.Contains(t, errs[1], "Output token price")
	assert.Contains(t, errs[2], "Cached token price")
	assert.Equal(t, "Input text is required", errs[3])
	assert.Equal(t, "Output text is required", errs[4])
	assert.Equal(t, "Quantity: minimum is 1", errs[5])
}

func TestValidate_Localized(t *testing.T) {
	i18n.SetLanguage("pt")
	t.Cleanup(func() { i18n.SetLanguage("en") })

	p := sampleParams()
	p.InputText = ""
	assert.Equal(t, []string{"Texto de entrada é obrigatório"}, Validate(p))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Equal(t, "invalid parameters: a, b", err.Error())
}

func TestValidate_NaNResaleNormalizes(t *testing.T) {
	p := sampleParams()
	p.Resale = domain.ResaleSettings{Markup: math.NaN(), CreditValue: math.NaN()}
	assert.Empty(t, Validate(p))
}
