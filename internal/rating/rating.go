// Package rating computes title ratings from review scores at read time.
package rating

// Average returns the arithmetic mean of scores, or nil when there are none.
func Average(scores []int) *float64 {
	if len(scores) == 0 {
		return nil
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	return &avg
}

// ByTitle averages every title's scores. Titles without scores are absent.
func ByTitle(scores map[int64][]int) map[int64]*float64 {
	out := make(map[int64]*float64, len(scores))
	for id, s := range scores {
		if avg := Average(s); avg != nil {
			out[id] = avg
		}
	}
	return out
}
