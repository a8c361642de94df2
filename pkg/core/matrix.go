package core

import "errors"

// ErrNotInvertible is returned by Inverse when the determinant is zero.
// A non-invertible shape or camera transform is a scene construction
// error, never a condition the renderer recovers from mid-trace.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a 4x4 matrix representing an affine transform
type Matrix [4][4]float64

// Matrix3 is a 3x3 submatrix used during cofactor expansion
type Matrix3 [3][3]float64

// Matrix2 is a 2x2 submatrix, the base case of cofactor expansion
type Matrix2 [2][2]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[r][0]*other[0][c] +
				m[r][1]*other[1][c] +
				m[r][2]*other[2][c] +
				m[r][3]*other[3][c]
		}
	}
	return result
}

// MultiplyTuple returns the product m * t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[c][r] = m[r][c]
		}
	}
	return result
}

// Submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) Submatrix(row, col int) Matrix3 {
	var result Matrix3
	rr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		cc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[rr][cc] = m[r][c]
			cc++
		}
		rr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	return m[0][0]*m.Cofactor(0, 0) +
		m[0][1]*m.Cofactor(0, 1) +
		m[0][2]*m.Cofactor(0, 2) +
		m[0][3]*m.Cofactor(0, 3)
}

// IsInvertible reports whether the matrix has a non-zero determinant
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse computed by the cofactor/adjugate method.
// Returns ErrNotInvertible when the determinant is exactly zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}

	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Transposed assignment produces the adjugate directly
			result[c][r] = m.Cofactor(r, c) / det
		}
	}
	return result, nil
}

// Equals compares two matrices within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !FloatEquals(m[r][c], other[r][c]) {
				return false
			}
		}
	}
	return true
}

// Submatrix returns the 2x2 matrix left after removing the given row and column
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var result Matrix2
	rr := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		cc := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			result[rr][cc] = m[r][c]
			cc++
		}
		rr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the first row
func (m Matrix3) Determinant() float64 {
	return m[0][0]*m.Cofactor(0, 0) +
		m[0][1]*m.Cofactor(0, 1) +
		m[0][2]*m.Cofactor(0, 2)
}

// Determinant returns ad - bc
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
