package pricing

import (
	"math"
	"sync"
	"time"

	"github.com/anomredux/tokencalc/internal/domain"
	"github.com/anomredux/tokencalc/internal/tokens"
	"github.com/google/uuid"
)

const (
	// TokensPerMillion converts list prices to per-token prices.
	TokensPerMillion = 1_000_000
	// CachedTokenRatio is the share of input tokens assumed to hit the cache.
	CachedTokenRatio = 0.1
)

// Calculator turns validated parameters into a Result. It holds the model
// presets used to fill prices when a parameter set names a model only.
type Calculator struct {
	mu    sync.RWMutex
	table PricingTable

	now   func() time.Time
	newID func() string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithIDGenerator overrides how result IDs are generated.
func WithIDGenerator(f func() string) Option {
	return func(c *Calculator) { c.newID = f }
}

func NewCalculator(table PricingTable, opts ...Option) *Calculator {
	if table == nil {
		table = PricingTable{}
	}
	c := &Calculator{
		table: table,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// UpdateTable replaces the presets, e.g. after a LiteLLM refresh.
func (c *Calculator) UpdateTable(table PricingTable) {
	c.mu.Lock()
	c.table = table
	c.mu.Unlock()
}

// Table returns the presets currently in use.
func (c *Calculator) Table() PricingTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table
}

// Resolve fills the prices of p from the preset named by p.Model when all
// three prices are unset. Explicit prices always win.
func (c *Calculator) Resolve(p domain.Parameters) domain.Parameters {
	if p.InputTokenPrice != 0 || p.OutputTokenPrice != 0 || p.CachedTokenPrice != 0 {
		return p
	}
	c.mu.RLock()
	c.table.Apply(&p)
	c.mu.RUnlock()
	return p
}

// Calculate validates p and computes the full cost breakdown, resale
// financials, summary and scenario projections. It returns a
// *ValidationError (matching ErrInvalidParameters) when p is invalid.
func (c *Calculator) Calculate(p domain.Parameters) (domain.Result, error) {
	p = c.Resolve(p)
	if v := ValidateParameters(p); !v.IsValid {
		return domain.Result{}, &ValidationError{Messages: v.Errors}
	}
	p.Resale = p.Resale.Normalized()

	inputTokens := tokens.Estimate(p.InputText)
	outputTokens := tokens.Estimate(p.OutputText)
	cachedTokens := int(math.Floor(CachedTokenRatio * float64(inputTokens)))
	quantity := int(p.Quantity)

	breakdown := domain.Breakdown{
		Input:  categoryCost(inputTokens, p.InputTokenPrice, quantity),
		Output: categoryCost(outputTokens, p.OutputTokenPrice, quantity),
		Cached: categoryCost(cachedTokens, p.CachedTokenPrice, quantity),
	}

	costPerOperation := breakdown.Input.Cost + breakdown.Output.Cost + breakdown.Cached.Cost
	tokensPerOperation := inputTokens + outputTokens + cachedTokens
	totalCost := costPerOperation * float64(quantity)
	totalTokens := tokensPerOperation * quantity

	summary := domain.Summary{
		CostPerOperation:        costPerOperation,
		TotalCost:               totalCost,
		TotalTokensPerOperation: tokensPerOperation,
		TotalTokens:             totalTokens,
		Quantity:                quantity,
		AverageCostPerToken:     safeDiv(totalCost, float64(totalTokens)),
	}

	return domain.Result{
		ID:         c.newID(),
		Timestamp:  c.now(),
		Parameters: p,
		Breakdown:  breakdown,
		Financials: financials(totalCost, totalTokens, quantity, p.Resale),
		Summary:    summary,
		Scenarios:  Scenarios(costPerOperation, tokensPerOperation, quantity),
	}, nil
}

func categoryCost(n int, pricePerMillion float64, quantity int) domain.CategoryCost {
	perToken := pricePerMillion / TokensPerMillion
	cost := float64(n) * perToken
	return domain.CategoryCost{
		Tokens:          n,
		PricePerToken:   perToken,
		PricePerMillion: pricePerMillion,
		Cost:            cost,
		TotalCost:       cost * float64(quantity),
	}
}

func financials(totalCost float64, totalTokens, quantity int, r domain.ResaleSettings) domain.Financials {
	sale := totalCost * (1 + r.Markup/100)
	gross := sale - totalCost
	avgSale := safeDiv(sale, float64(totalTokens))
	pricePerOp := safeDiv(sale, float64(quantity))

	return domain.Financials{
		TotalCost:            totalCost,
		TotalSalePrice:       sale,
		GrossProfit:          gross,
		MarkupPercentage:     r.Markup,
		Margin:               safeDiv(gross, sale) * 100,
		CreditUnitValue:      r.CreditValue,
		AvgSalePricePerToken: avgSale,
		TokensPerCredit:      safeDiv(r.CreditValue, avgSale),
		OperationsPerCredit:  safeDiv(r.CreditValue, pricePerOp),
		PricePerOperation:    pricePerOp,
	}
}

// safeDiv returns a/b, or 0 when b is not positive.
func safeDiv(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}
