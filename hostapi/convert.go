package hostapi

func toIntSlice(xs []int32) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}
	return out
}

func toFloat64SliceCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
