package pricing

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"

	"github.com/anomredux/tokencalc/internal/domain"
)

//go:embed pricing.json
var presetsJSON []byte

// ModelPricing holds the list prices of one model, in USD per 1M tokens.
type ModelPricing struct {
	Input         float64 `json:"input"`
	Output        float64 `json:"output"`
	CacheCreation float64 `json:"cache_creation"`
	CacheRead     float64 `json:"cache_read"`
}

// PricingTable maps a model name to its preset prices.
type PricingTable map[string]ModelPricing

// LoadDefault returns the presets compiled into the binary.
func LoadDefault() (PricingTable, error) {
	var table PricingTable
	if err := json.Unmarshal(presetsJSON, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Merge adds entries from other into pt. Existing keys are overwritten.
func (pt PricingTable) Merge(other PricingTable) {
	for k, v := range other {
		pt[k] = v
	}
}

// Names returns the model names in sorted order.
func (pt PricingTable) Names() []string {
	names := make([]string, 0, len(pt))
	for k := range pt {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lookup finds pricing for a model: exact match first, then the longest
// table key that prefixes the model, then the first sorted key the model
// prefixes.
func (pt PricingTable) Lookup(model string) (ModelPricing, bool) {
	if p, ok := pt[model]; ok {
		return p, true
	}
	var bestKey string
	for key := range pt {
		if strings.HasPrefix(model, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return pt[bestKey], true
	}
	for _, key := range pt.Names() {
		if strings.HasPrefix(key, model) {
			return pt[key], true
		}
	}
	return ModelPricing{}, false
}

// Apply fills the three token prices of p from the preset for p.Model.
// Cached tokens are billed at the cache-read rate. It reports false and
// leaves p untouched when the model is empty or unknown.
func (pt PricingTable) Apply(p *domain.Parameters) bool {
	if p.Model == "" {
		return false
	}
	mp, ok := pt.Lookup(p.Model)
	if !ok {
		return false
	}
	p.InputTokenPrice = mp.Input
	p.OutputTokenPrice = mp.Output
	p.CachedTokenPrice = mp.CacheRead
	return true
}
