package stats

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Observed returns the values whose missing flag is false, in order.
// missing may be nil, in which case every value is observed.
func Observed(x []float64, missing []bool) []float64 {
	out := make([]float64, 0, len(x))
	for i, v := range x {
		if missing != nil && missing[i] {
			continue
		}
		out = append(out, v)
	}
	return out
}
