// Package normint holds the interference (normalization) matrix of a
// resonance model,
//
//	I[i][j] = ∫ conj(A_i(y)) A_j(y) dy
//
// and its plain-text interchange forms.
//
// A [Matrix] is an R×R complex matrix stored as two row-major real blocks.
// [Matrix.Real] and [Matrix.Imag] expose the blocks directly, which is the
// form a fitting tool reads. [FormatLiteral] writes both blocks as nested
// list literals:
//
//	I_re = [[1.2,0.3],[0.3,0.8]]
//	I_im = [[0,-0.1],[0.1,0]]
//
// and [ParseLiteral] reads them back exactly. [WriteCSV] emits one
// "i,j,re,im" row per element.
//
// Given production coefficients θ, [Norm] returns Re(θ† I θ), the
// normalization of the coherent intensity |Σ θ_r A_r|².
package normint
