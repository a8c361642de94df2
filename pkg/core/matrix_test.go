package core

import (
	"errors"
	"testing"
)

func TestMatrix_Multiply(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	want := Matrix{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}

	if got := a.MultiplyTuple(NewTuple(1, 2, 3, 1)); !got.Equals(NewTuple(18, 24, 33, 1)) {
		t.Errorf("got %v", got)
	}
}

func TestMatrix_IdentityIsNeutral(t *testing.T) {
	a := Matrix{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}

	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Errorf("A * I should be A, got %v", got)
	}
	tup := NewTuple(1, 2, 3, 4)
	if got := Identity().MultiplyTuple(tup); !got.Equals(tup) {
		t.Errorf("I * t should be t, got %v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	want := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}

	if got := a.Transpose(); !got.Equals(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("transpose of identity should be identity")
	}
}

func TestMatrix_Determinants(t *testing.T) {
	m2 := Matrix2{{1, 5}, {-3, 2}}
	if got := m2.Determinant(); got != 17 {
		t.Errorf("2x2 determinant = %f, want 17", got)
	}

	m3 := Matrix3{{1, 2, 6}, {-5, 8, -4}, {2, 6, 4}}
	if got := m3.Determinant(); got != -196 {
		t.Errorf("3x3 determinant = %f, want -196", got)
	}

	m4 := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}
	if got := m4.Determinant(); got != -4071 {
		t.Errorf("4x4 determinant = %f, want -4071", got)
	}
}

func TestMatrix_SubmatrixAndCofactor(t *testing.T) {
	m3 := Matrix3{{3, 5, 0}, {2, -1, -7}, {6, -1, 5}}
	if got := m3.Minor(1, 0); got != 25 {
		t.Errorf("minor = %f, want 25", got)
	}
	if got := m3.Cofactor(0, 0); got != -12 {
		t.Errorf("cofactor(0,0) = %f, want -12", got)
	}
	if got := m3.Cofactor(1, 0); got != -25 {
		t.Errorf("cofactor(1,0) = %f, want -25", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	want := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}

	got, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse returned error: %v", err)
	}
	if !got.Equals(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrix_InverseTimesOriginalIsIdentity(t *testing.T) {
	matrices := []Matrix{
		{{8, -5, 9, 2}, {7, 5, 6, 1}, {-6, 0, 9, 6}, {-3, 0, -9, -4}},
		{{9, 3, 0, 9}, {-5, -2, -6, -3}, {-4, 9, 6, 4}, {-7, 6, 6, 2}},
		Translation(5, -3, 2),
		Scaling(2, 3, 4).Multiply(RotationY(1.3)),
	}

	for i, m := range matrices {
		inv, err := m.Inverse()
		if err != nil {
			t.Fatalf("matrix %d: %v", i, err)
		}
		if got := m.Multiply(inv); !got.Equals(Identity()) {
			t.Errorf("matrix %d: M * inverse(M) != I, got %v", i, got)
		}
	}
}

func TestMatrix_MultiplyProductByInverse(t *testing.T) {
	a := Matrix{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}

	c := a.Multiply(b)
	bInv, err := b.Inverse()
	if err != nil {
		t.Fatalf("Inverse returned error: %v", err)
	}
	if got := c.Multiply(bInv); !got.Equals(a) {
		t.Errorf("(A*B) * inverse(B) should be A, got %v", got)
	}
}

func TestMatrix_NonInvertible(t *testing.T) {
	a := Matrix{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}

	if a.IsInvertible() {
		t.Error("matrix with zero determinant reported invertible")
	}
	if _, err := a.Inverse(); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("expected ErrNotInvertible, got %v", err)
	}
}
