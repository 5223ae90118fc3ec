package parser

// Dedup drops records whose parameters repeat an earlier record, keeping the
// first occurrence and the input order.
func Dedup(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	result := make([]Record, 0, len(records))

	for _, r := range records {
		key := r.Params.Key()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, r)
	}

	return result
}
