/*
 * primitive_test.go, part of goXtal.
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

package xtal

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func cubicCell(a float64, coords []float64, types []string) *Structure {
	lattice := mat.NewDense(3, 3, []float64{a, 0, 0, 0, a, 0, 0, 0, a})
	S, err := NewStructure(lattice, mat.NewDense(len(types), 3, coords), types)
	if err != nil {
		panic(err.Error())
	}
	return S
}

// A conventional FCC cell of Al: 4 atoms that are one and the same atom of the
// primitive cell.
func fccAl() *Structure {
	return cubicCell(4.05, []float64{
		0, 0, 0,
		0.5, 0.5, 0,
		0.5, 0, 0.5,
		0, 0.5, 0.5,
	}, []string{"Al", "Al", "Al", "Al"})
}

func TestPrimitiveFCC(Te *testing.T) {
	S := fccAl()
	backup := S.Copy()
	prim, pair, err := Primitive(S, "cF")
	if err != nil {
		Te.Fatal(err)
	}
	if ratio := pair.VolumeRatio(); ratio != 4 {
		Te.Errorf("cF volume ratio %d, want 4", ratio)
	}
	if prim.Len() != 1 {
		Te.Fatalf("FCC reduced to %d atoms, want 1", prim.Len())
	}
	if prim.Types[0] != "Al" {
		Te.Errorf("wrong type for the primitive atom: %s", prim.Types[0])
	}
	for j := 0; j < 3; j++ {
		if math.Abs(prim.Coords.At(0, j)) > 1e-10 {
			Te.Errorf("primitive atom not at the origin: %v", mat.Formatted(prim.Coords))
		}
	}
	//The primitive lattice vectors of FCC: the halved face diagonals.
	a := 4.05 / 2
	wantLattice := mat.NewDense(3, 3, []float64{
		0, a, a,
		a, 0, a,
		a, a, 0,
	})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(prim.Lattice.At(i, j)-wantLattice.At(i, j)) > 1e-10 {
				Te.Errorf("wrong primitive lattice:\n%v", mat.Formatted(prim.Lattice))
			}
		}
	}
	//The primitive cell has a quarter of the conventional volume.
	if math.Abs(prim.Volume()-S.Volume()/4) > 1e-9 {
		Te.Errorf("primitive volume %f, conventional %f", prim.Volume(), S.Volume())
	}
	//And the input must be untouched.
	if !mat.EqualApprox(S.Lattice, backup.Lattice, 0) || !mat.EqualApprox(S.Coords, backup.Coords, 0) {
		Te.Error("Primitive modified its input structure")
	}
}

func TestPrimitiveBCC(Te *testing.T) {
	S := cubicCell(2.87, []float64{
		0, 0, 0,
		0.5, 0.5, 0.5,
	}, []string{"Fe", "Fe"})
	prim, pair, err := Primitive(S, "cI")
	if err != nil {
		Te.Fatal(err)
	}
	if pair.VolumeRatio() != 2 || prim.Len() != 1 {
		Te.Errorf("BCC: ratio %d, %d atoms; want 2 and 1", pair.VolumeRatio(), prim.Len())
	}
}

// With a primitive Bravais lattice nothing is reduced and the cell comes
// back unchanged (same lattice, same atoms, new memory).
func TestPrimitiveIdentity(Te *testing.T) {
	S := cubicCell(5.43, []float64{
		0, 0, 0,
		0.25, 0.25, 0.25,
	}, []string{"Zn", "S"})
	prim, pair, err := Primitive(S, "cP")
	if err != nil {
		Te.Fatal(err)
	}
	if pair.VolumeRatio() != 1 {
		Te.Errorf("cP volume ratio %d, want 1", pair.VolumeRatio())
	}
	if prim.Len() != 2 {
		Te.Fatalf("cP reduced %d atoms to %d", S.Len(), prim.Len())
	}
	if !mat.EqualApprox(prim.Lattice, S.Lattice, 1e-12) || !mat.EqualApprox(prim.Coords, S.Coords, 1e-12) {
		Te.Error("cP should leave the cell as it was")
	}
	if prim.Lattice == S.Lattice || prim.Coords == S.Coords {
		Te.Error("the primitive structure shares memory with the input")
	}
}

// A rhombohedral structure in its hexagonal conventional cell: 3 lattice
// points per cell, so 3 atoms collapse to 1.
func TestPrimitiveRhombohedral(Te *testing.T) {
	a, c := 5.0, 13.6
	lattice := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		-a / 2, a * math.Sqrt(3) / 2, 0,
		0, 0, c,
	})
	coords := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		2. / 3., 1. / 3., 1. / 3.,
		1. / 3., 2. / 3., 2. / 3.,
	})
	S, err := NewStructure(lattice, coords, []string{"Bi", "Bi", "Bi"})
	if err != nil {
		Te.Fatal(err)
	}
	prim, pair, err := Primitive(S, "hR")
	if err != nil {
		Te.Fatal(err)
	}
	if pair.VolumeRatio() != 3 {
		Te.Errorf("hR volume ratio %d, want 3", pair.VolumeRatio())
	}
	if prim.Len() != 1 {
		Te.Fatalf("hR reduced to %d atoms, want 1", prim.Len())
	}
	if math.Abs(prim.Volume()-S.Volume()/3) > 1e-9 {
		Te.Errorf("primitive volume %f, conventional %f", prim.Volume(), S.Volume())
	}
}

// Two atoms on the same site (modulo the lattice, across the 0/1 boundary)
// with different types must be refused.
func TestPrimitiveTypeMismatch(Te *testing.T) {
	S := fccAl()
	S.Types[3] = "Mg"
	_, _, err := Primitive(S, "cF")
	if err == nil {
		Te.Fatal("Primitive should have failed with mixed types on one site")
	}
	tm, ok := err.(TypeMismatch)
	if !ok {
		Te.Fatalf("wrong error kind: %v", err)
	}
	if len(tm.Indices) != 4 {
		Te.Errorf("TypeMismatch names atoms %v, want all four", tm.Indices)
	}
	for i, idx := range tm.Indices {
		if i != idx {
			Te.Errorf("TypeMismatch names atoms %v, want 0-3", tm.Indices)
			break
		}
	}
}

// An FCC cell with two of its four lattice points missing is not a
// conventional cF cell, and the group sizes give it away.
func TestPrimitiveInconsistency(Te *testing.T) {
	S := cubicCell(4.05, []float64{
		0, 0, 0,
		0.5, 0.5, 0,
	}, []string{"Al", "Al"})
	_, _, err := Primitive(S, "cF")
	if err == nil {
		Te.Fatal("Primitive should have failed with half an FCC basis")
	}
	inc, ok := err.(Inconsistency)
	if !ok {
		Te.Fatalf("wrong error kind: %v", err)
	}
	if len(inc.Groups) == 0 {
		Te.Error("Inconsistency should name the offending groups")
	}
	for _, g := range inc.Groups {
		if len(g) == 4 {
			Te.Errorf("group %v has the right size, should not be reported", g)
		}
	}
}

// Coordinates just below 1 and just above 0 are the same fractional position.
// Here the second atom is a numerical hair away from the first one, so the
// pair forms a group of 2 in a lattice of volume ratio 1.
func TestPrimitiveWraparound(Te *testing.T) {
	S := cubicCell(3.0, []float64{
		0, 0, 0,
		0.9999999, 0, 0.0000001,
	}, []string{"Cu", "Cu"})
	_, _, err := Primitive(S, "cP")
	if err == nil {
		Te.Fatal("the two atoms should have been detected as the same site")
	}
	if _, ok := err.(Inconsistency); !ok {
		Te.Errorf("wrong error kind: %v", err)
	}
}

func TestPrimitiveBadSymbol(Te *testing.T) {
	_, _, err := Primitive(fccAl(), "zz")
	if err == nil {
		Te.Fatal("Primitive should fail for an unknown Bravais symbol")
	}
	if _, ok := err.(InvalidInput); !ok {
		Te.Errorf("wrong error kind: %v", err)
	}
}

// The documented behavior: output coordinates are whatever InvP*x gives,
// not wrapped into [0,1). An atom at (0.5,0.5,0.5) of a cI cell transforms
// to (1,1,0)... whose representative is the atom at the origin, but an atom
// at (0.75,0.75,0.75) alone in a cP cell keeps its coordinates exactly.
func TestPrimitiveNoWrapping(Te *testing.T) {
	S := cubicCell(3.0, []float64{0.75, 0.75, 0.75}, []string{"Po"})
	prim, _, err := Primitive(S, "cP")
	if err != nil {
		Te.Fatal(err)
	}
	for j := 0; j < 3; j++ {
		if prim.Coords.At(0, j) != 0.75 {
			Te.Errorf("coordinates changed: %v", mat.Formatted(prim.Coords))
		}
	}
	//Wrap is the explicit way to canonicalize.
	W := prim.Wrap()
	if W.Coords.At(0, 0) != 0.75 {
		Te.Error("wrapping should not move a coordinate already in [0,1)")
	}
}
