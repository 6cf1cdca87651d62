package domain

// Summary holds the class breakdown of a set of numbers.
type Summary struct {
	Total   int
	Valid   int
	Invalid int
}

// ValidPercent returns the share of valid numbers in percent, or 0 for an empty set.
func (s Summary) ValidPercent() float64 {
	return percent(s.Valid, s.Total)
}

// InvalidPercent returns the share of invalid numbers in percent, or 0 for an empty set.
func (s Summary) InvalidPercent() float64 {
	return percent(s.Invalid, s.Total)
}

// Consistent reports whether every number in the set belongs to the given class.
func (s Summary) Consistent(c Class) bool {
	if c.WantsValid() {
		return s.Invalid == 0
	}
	return s.Valid == 0
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
