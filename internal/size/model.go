package size

// Size is the canonical list of size labels every size-dependent price
// table must match exactly. Immutable once created.
type Size struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// HasValue reports whether the label belongs to this size.
func (s *Size) HasValue(label string) bool {
	for _, v := range s.Values {
		if v == label {
			return true
		}
	}
	return false
}
