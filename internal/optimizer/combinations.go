package optimizer

import "math"

// IntRange returns start, start+step, ... up to and including end.
// It is empty when step is not positive or end < start.
func IntRange(start, end, step int) []int {
	if step <= 0 || end < start {
		return nil
	}

	values := make([]int, 0, (end-start)/step+1)
	for v := start; v <= end; v += step {
		values = append(values, v)
	}

	return values
}

// FloatRange returns start, start+step, ... up to and including end.
// Values are computed from the index so repeated additions do not drift past end.
func FloatRange(start, end, step float64) []float64 {
	if step <= 0 || end < start || math.IsNaN(start) || math.IsNaN(end) || math.IsNaN(step) {
		return nil
	}

	count := int(math.Floor((end-start)/step+1e-9)) + 1

	values := make([]float64, count)
	for i := range values {
		values[i] = start + float64(i)*step
	}

	return values
}

// Product2 combines every a with every b. The first argument varies slowest.
func Product2[A, B, P any](as []A, bs []B, combine func(A, B) P) []P {
	combinations := make([]P, 0, len(as)*len(bs))

	for _, a := range as {
		for _, b := range bs {
			combinations = append(combinations, combine(a, b))
		}
	}

	return combinations
}

// Product3 combines every a, b and c in lexicographic order.
func Product3[A, B, C, P any](as []A, bs []B, cs []C, combine func(A, B, C) P) []P {
	combinations := make([]P, 0, len(as)*len(bs)*len(cs))

	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				combinations = append(combinations, combine(a, b, c))
			}
		}
	}

	return combinations
}

// Product4 combines every a, b, c and d in lexicographic order.
func Product4[A, B, C, D, P any](as []A, bs []B, cs []C, ds []D, combine func(A, B, C, D) P) []P {
	combinations := make([]P, 0, len(as)*len(bs)*len(cs)*len(ds))

	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				for _, d := range ds {
					combinations = append(combinations, combine(a, b, c, d))
				}
			}
		}
	}

	return combinations
}
