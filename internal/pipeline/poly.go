package pipeline

// expandPoly maps x to every monomial of total degree 1..degree over its
// entries, without a bias column. Terms are emitted degree by degree, each
// degree in lexicographic order of the index combination, so the layout is
// stable across fit and predict.
//
// For x = [a, b] and degree 2: [a, b, a², ab, b²].
func expandPoly(x []float64, degree int) []float64 {
	if degree <= 1 {
		return x
	}
	out := make([]float64, 0, polyTerms(len(x), degree))
	for d := 1; d <= degree; d++ {
		emitDegree(x, d, 0, 1, &out)
	}
	return out
}

// emitDegree appends all monomials of exactly degree d, choosing indexes in
// non-decreasing order starting at from.
func emitDegree(x []float64, d, from int, prod float64, out *[]float64) {
	if d == 0 {
		*out = append(*out, prod)
		return
	}
	for i := from; i < len(x); i++ {
		emitDegree(x, d-1, i, prod*x[i], out)
	}
}

// polyTerms counts the monomials of degree 1..degree over n features:
// C(n+degree, degree) - 1.
func polyTerms(n, degree int) int {
	num, den := 1, 1
	for i := 1; i <= degree; i++ {
		num *= n + i
		den *= i
	}
	return num/den - 1
}
