/*
 * xtal.go, part of goXtal.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package xtal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/**Note: Some functions here panic instead of returning errors. They are "fundamental"
 * functions, and if something goes wrong in them the program is way-most likely wrong
 * and should crash. The panics are all about nil receivers or impossible shapes.**/

// Structure is a periodic crystal structure: a lattice plus a basis of atoms
// in fractional coordinates.
type Structure struct {
	// Lattice is a 3x3 matrix whose rows are the lattice basis vectors
	// a, b and c, in Cartesian coordinates.
	Lattice *mat.Dense
	// Coords is an Nx3 matrix of fractional coordinates, one atom per row.
	// Coordinates are understood modulo a lattice translation but are NOT
	// required to lie in [0,1).
	Coords *mat.Dense
	// Types contains one opaque atom-type label per atom, in the same order
	// as the rows of Coords.
	Types []string
}

// NewStructure builds a Structure from its three components and checks that their
// shapes agree. The given matrices and slice are kept by the Structure, not copied.
func NewStructure(lattice, coords *mat.Dense, types []string) (*Structure, error) {
	S := &Structure{Lattice: lattice, Coords: coords, Types: types}
	if err := S.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	return S, nil
}

// Corrupted checks the internal consistency of the structure: the lattice must
// be 3x3, the coordinates Nx3 and there must be exactly one type per atom.
// It returns nil if everything is in order.
func (S *Structure) Corrupted() error {
	if S == nil || S.Lattice == nil || S.Coords == nil {
		return invalidInputf("nil structure or structure with nil fields")
	}
	lr, lc := S.Lattice.Dims()
	if lr != 3 || lc != 3 {
		return invalidInputf("lattice must be 3x3, got %dx%d", lr, lc)
	}
	cr, cc := S.Coords.Dims()
	if cc != 3 {
		return invalidInputf("coordinates must have 3 columns, got %d", cc)
	}
	if cr != len(S.Types) {
		return invalidInputf("%d atoms but %d types", cr, len(S.Types))
	}
	return nil
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	r, _ := S.Coords.Dims()
	return r
}

// Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	if S == nil {
		panic("attempted to copy a nil Structure")
	}
	N := &Structure{}
	N.Lattice = mat.DenseCopyOf(S.Lattice)
	N.Coords = mat.DenseCopyOf(S.Coords)
	N.Types = make([]string, len(S.Types))
	copy(N.Types, S.Types)
	return N
}

// Wrap returns a copy of the structure with every fractional coordinate
// wrapped into [0,1). The primitive-cell functions do not wrap their output
// (they keep the coordinates exactly as transformed), so this is the way to
// get canonical fractional coordinates when they are needed.
func (S *Structure) Wrap() *Structure {
	N := S.Copy()
	r, c := N.Coords.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := math.Mod(N.Coords.At(i, j), 1.0)
			if v < 0 {
				v++
			}
			N.Coords.Set(i, j, v)
		}
	}
	return N
}

// Volume returns the volume of the cell, i.e. the absolute value of the
// determinant of the lattice matrix, in the cube of whatever unit the
// lattice vectors are in.
func (S *Structure) Volume() float64 {
	return math.Abs(mat.Det(S.Lattice))
}

// Reciprocal returns the reciprocal lattice as a 3x3 matrix whose rows are the
// reciprocal basis vectors, with the physics convention (2*pi factor included).
// It fails if the lattice is singular.
func (S *Structure) Reciprocal() (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(S.Lattice); err != nil {
		return nil, CError{fmt.Sprintf("singular lattice: %v", err), []string{"Reciprocal"}}
	}
	rec := mat.NewDense(3, 3, nil)
	rec.Scale(2*math.Pi, inv.T())
	return rec, nil
}
