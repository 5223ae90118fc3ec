package domain

import "time"

// CategoryCost is the cost of one token category (input, output or cached).
type CategoryCost struct {
	Tokens          int     `json:"tokens" yaml:"tokens"`                     // per operation
	PricePerToken   float64 `json:"pricePerToken" yaml:"price_per_token"`
	PricePerMillion float64 `json:"pricePerMillion" yaml:"price_per_million"`
	Cost            float64 `json:"cost" yaml:"cost"`                         // per operation
	TotalCost       float64 `json:"totalCost" yaml:"total_cost"`              // Cost × quantity
}

type Breakdown struct {
	Input  CategoryCost `json:"input" yaml:"input"`
	Output CategoryCost `json:"output" yaml:"output"`
	Cached CategoryCost `json:"cached" yaml:"cached"`
}

// Categories returns the three categories in display order.
func (b Breakdown) Categories() []CategoryCost {
	return []CategoryCost{b.Input, b.Output, b.Cached}
}

// Financials holds the resale metrics derived from the total cost.
type Financials struct {
	TotalCost            float64 `json:"totalCost" yaml:"total_cost"`
	TotalSalePrice       float64 `json:"totalSalePrice" yaml:"total_sale_price"`
	GrossProfit          float64 `json:"grossProfit" yaml:"gross_profit"`
	MarkupPercentage     float64 `json:"markupPercentage" yaml:"markup_percentage"`
	Margin               float64 `json:"margin" yaml:"margin"`
	CreditUnitValue      float64 `json:"creditUnitValue" yaml:"credit_unit_value"`
	AvgSalePricePerToken float64 `json:"avgSalePricePerToken" yaml:"avg_sale_price_per_token"`
	TokensPerCredit      float64 `json:"tokensPerCredit" yaml:"tokens_per_credit"`
	OperationsPerCredit  float64 `json:"operationsPerCredit" yaml:"operations_per_credit"`
	PricePerOperation    float64 `json:"pricePerOperation" yaml:"price_per_operation"`
}

type Summary struct {
	CostPerOperation        float64 `json:"costPerOperation" yaml:"cost_per_operation"`
	TotalCost               float64 `json:"totalCost" yaml:"total_cost"`
	TotalTokensPerOperation int     `json:"totalTokensPerOperation" yaml:"total_tokens_per_operation"`
	TotalTokens             int     `json:"totalTokens" yaml:"total_tokens"`
	Quantity                int     `json:"quantity" yaml:"quantity"`
	AverageCostPerToken     float64 `json:"averageCostPerToken" yaml:"average_cost_per_token"`
}

// Scenario is a cost projection at an alternate quantity.
type Scenario struct {
	Quantity     int     `json:"quantity" yaml:"quantity"`
	TotalCost    float64 `json:"totalCost" yaml:"total_cost"`
	TotalTokens  int     `json:"totalTokens" yaml:"total_tokens"`
	CostPerToken float64 `json:"costPerToken" yaml:"cost_per_token"`
}

// Result is the immutable outcome of one calculation.
type Result struct {
	ID         string     `json:"id" yaml:"id"`
	Timestamp  time.Time  `json:"timestamp" yaml:"timestamp"`
	Parameters Parameters `json:"parameters" yaml:"parameters"`
	Breakdown  Breakdown  `json:"breakdown" yaml:"breakdown"`
	Financials Financials `json:"financials" yaml:"financials"`
	Summary    Summary    `json:"summary" yaml:"summary"`
	Scenarios  []Scenario `json:"scenarios" yaml:"scenarios"`
}
