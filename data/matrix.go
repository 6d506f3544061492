/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"errors"
	"fmt"

	"github.com/fentec-project/gomayo/gf16"
	"github.com/fentec-project/gomayo/sample"
)

// ErrNoSolution is returned by GaussJordanSolver when the linear
// system is inconsistent.
var ErrNoSolution = errors.New("linear system has no solution")

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix over GF(16).
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make([]byte, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vectors := make([]Vector, m.Rows())

	for i, v := range m {
		vectors[i] = v.Add(other[i])
	}

	return NewMatrix(vectors)
}

// Sub subtracts matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, fmt.Errorf("matrices mismatch in dimensions")
	}

	vecs := make([]Vector, m.Rows())

	for i, v := range m {
		vecs[i] = v.Sub(other[i])
	}

	return NewMatrix(vecs)
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from the
// number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("cannot multiply matrices")
	}

	prod := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod[i] = make(Vector, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			otherCol, _ := other.GetCol(j)
			prod[i][j], _ = m[i].Dot(otherCol)
		}
	}

	return NewMatrix(prod)
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("cannot multiply matrix by a vector")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// MulVecLeft multiplies the transpose of vector v and matrix m,
// i.e. it calculates v^T * m and returns the resulting row vector.
// Error is returned if the number of rows of m differs from the number
// of elements of v.
func (m Matrix) MulVecLeft(v Vector) (Vector, error) {
	if m.Rows() != len(v) {
		return nil, fmt.Errorf("cannot multiply a vector by a matrix")
	}

	res := make(Vector, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		var sum byte
		for i, row := range m {
			sum = gf16.Add(sum, gf16.Mul(v[i], row[j]))
		}
		res[j] = sum
	}

	return res, nil
}

// MulXMatY calculates the function x^T * m * y, where x and y are
// vectors.
func (m Matrix) MulXMatY(x, y Vector) (byte, error) {
	t, err := m.MulVec(y)
	if err != nil {
		return 0, err
	}
	v, err := t.Dot(x)
	if err != nil {
		return 0, err
	}

	return v, nil
}

// Symmetrize calculates m + m^T for a square matrix m.
// In characteristic 2 the result has a zero diagonal.
// Error is returned if m is not square.
func (m Matrix) Symmetrize() (Matrix, error) {
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("the matrix should be square")
	}

	return m.Add(m.Transpose())
}

// GaussJordanSolver solves a vector equation mat * x = v and finds vector x,
// using Gauss-Jordan elimination over GF(16). If the system is
// underdetermined a particular solution is returned, with the free
// variables set to zero. If no solution exists, ErrNoSolution is returned.
func GaussJordanSolver(mat Matrix, v Vector) (Vector, error) {
	if mat.Rows() == 0 || mat.Cols() == 0 {
		return nil, fmt.Errorf("the matrix should not be empty")
	}
	if mat.Rows() != len(v) {
		return nil, fmt.Errorf("dimensions should match: "+
			"rows of the matrix %d, length of the vector %d", mat.Rows(), len(v))
	}

	rows := mat.Rows()
	cols := mat.Cols()

	// augmented matrix [mat | v]
	aug := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		aug[i] = make(Vector, cols+1)
		copy(aug[i], mat[i])
		aug[i][cols] = v[i]
	}

	// reduce to reduced row echelon form
	pivotRow := 0
	for pivotCol := 0; pivotCol < cols && pivotRow < rows; pivotCol++ {
		rowWithPivot := -1
		for i := pivotRow; i < rows; i++ {
			if aug[i][pivotCol] != 0 {
				rowWithPivot = i
				break
			}
		}
		if rowWithPivot == -1 {
			// free column
			continue
		}
		aug[pivotRow], aug[rowWithPivot] = aug[rowWithPivot], aug[pivotRow]

		pivotInv, err := gf16.Inv(aug[pivotRow][pivotCol])
		if err != nil {
			return nil, err
		}
		for k := pivotCol; k <= cols; k++ {
			aug[pivotRow][k] = gf16.Mul(aug[pivotRow][k], pivotInv)
		}

		for i := 0; i < rows; i++ {
			if i == pivotRow {
				continue
			}
			f := aug[i][pivotCol]
			if f == 0 {
				continue
			}
			for k := pivotCol; k <= cols; k++ {
				aug[i][k] = gf16.Sub(aug[i][k], gf16.Mul(f, aug[pivotRow][k]))
			}
		}
		pivotRow++
	}
	rank := pivotRow

	// a zero row with a nonzero augmented entry means no solution
	for i := rank; i < rows; i++ {
		if aug[i][cols] != 0 {
			return nil, ErrNoSolution
		}
	}

	// back substitution; free variables remain zero
	ret := make(Vector, cols)
	for i := rank - 1; i >= 0; i-- {
		p := 0
		for p < cols && aug[i][p] == 0 {
			p++
		}
		if p == cols {
			continue
		}
		sum := aug[i][cols]
		for k := p + 1; k < cols; k++ {
			sum = gf16.Sub(sum, gf16.Mul(aug[i][k], ret[k]))
		}
		ret[p] = sum
	}

	return ret, nil
}
