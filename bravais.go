/*
 * bravais.go, part of goXtal.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// BravaisLattices contains the symbols of the 14 Bravais lattices: a crystal
// family letter followed by a centering letter.
var BravaisLattices = []string{"cP", "cF", "cI", "tP", "tI", "hP", "hR",
	"oP", "oF", "oI", "oC", "oA", "mP", "mC"}

// PPair is a pair of transformation matrices between the conventional and the
// primitive descriptions of a Bravais lattice, from Table 3 of the HKOT paper.
//
// P converts the lattice basis vectors from conventional (a,b,c) to primitive
// (aP,bP,cP), as column vectors:
//
//	(aP,bP,cP) = (a,b,c) P
//
// while InvP = P^-1 converts fractional coordinate triples the other way
// around:
//
//	(xP,yP,zP)^T = InvP (x,y,z)^T
//
// InvP is always integer (entries -1, 0 or 1) while P is rational (entries
// can also be +/- 1/2 and +/- 1/3). Both matrices are freshly allocated by
// PMatrix and belong to the caller.
type PPair struct {
	P    *mat.Dense
	InvP *mat.Dense
}

// VolumeRatio returns the determinant of InvP rounded to an integer: the
// number of primitive cells contained in the conventional cell. It is 1, 2, 3
// or 4 depending on the Bravais lattice.
func (pair *PPair) VolumeRatio() int {
	return int(math.Round(mat.Det(pair.InvP)))
}

// One entry of the P-matrix table. p is scaled by scale to give the actual
// (rational) P matrix; invp is used as is.
type pEntry struct {
	scale float64
	p     [9]float64
	invp  [9]float64
}

var pIdentity = &pEntry{1,
	[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
	[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}

var pFaceCentered = &pEntry{1. / 2.,
	[9]float64{0, 1, 1, 1, 0, 1, 1, 1, 0},
	[9]float64{-1, 1, 1, 1, -1, 1, 1, 1, -1}}

var pBodyCentered = &pEntry{1. / 2.,
	[9]float64{-1, 1, 1, 1, -1, 1, 1, 1, -1},
	[9]float64{0, 1, 1, 1, 0, 1, 1, 1, 0}}

var pRhombohedral = &pEntry{1. / 3.,
	[9]float64{2, -1, -1, 1, 1, -2, 1, 1, 1},
	[9]float64{1, 0, 1, -1, 1, 1, 0, -1, 1}}

var pCBaseCentered = &pEntry{1. / 2.,
	[9]float64{1, 1, 0, -1, 1, 0, 0, 0, 2},
	[9]float64{1, -1, 0, 1, 1, 0, 0, 0, 1}}

var pABaseCentered = &pEntry{1. / 2.,
	[9]float64{0, 0, 2, 1, 1, 0, -1, 1, 0},
	[9]float64{0, 1, -1, 0, 1, 1, 1, 0, 0}}

var pMonoclinicC = &pEntry{1. / 2.,
	[9]float64{1, -1, 0, 1, 1, 0, 0, 0, 2},
	[9]float64{1, 1, 0, -1, 1, 0, 0, 0, 1}}

// All 14 Bravais symbols. Several of them share a matrix pair, so there are
// only 11 distinct entries (and only 7 distinct structs, as the identity is
// shared by 5 symbols and the centered ones come in groups).
var pTable = map[string]*pEntry{
	"cP": pIdentity, "tP": pIdentity, "hP": pIdentity, "oP": pIdentity, "mP": pIdentity,
	"cF": pFaceCentered, "oF": pFaceCentered,
	"cI": pBodyCentered, "tI": pBodyCentered, "oI": pBodyCentered,
	"hR": pRhombohedral,
	"oC": pCBaseCentered,
	"oA": pABaseCentered,
	"mC": pMonoclinicC,
}

// PMatrix returns the (P, InvP) transformation pair for the given Bravais
// lattice symbol. It fails with InvalidInput for anything not in
// BravaisLattices.
func PMatrix(bravais string) (*PPair, error) {
	entry, ok := pTable[bravais]
	if !ok {
		return nil, invalidInputf("invalid Bravais lattice symbol %q", bravais)
	}
	P := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			P.Set(i, j, entry.scale*entry.p[3*i+j])
		}
	}
	invP := mat.NewDense(3, 3, append([]float64{}, entry.invp[:]...))
	return &PPair{P: P, InvP: invP}, nil
}

// The table is data copied by hand from the paper, so it gets checked once at
// startup: for every symbol InvP must really be the inverse of P, and
// det(InvP) must be a small positive integer. A failure here is a bug in the
// table itself, hence the panic.
func init() {
	for _, bravais := range BravaisLattices {
		pair, err := PMatrix(bravais)
		if err != nil {
			panic(err.Error())
		}
		det := mat.Det(pair.InvP)
		ratio := math.Round(det)
		if math.Abs(det-ratio) > 1e-10 || ratio < 1 || ratio > 4 {
			panic(fmt.Sprintf("P-matrix table: det(InvP) for %s is %f, not a small positive integer", bravais, det))
		}
		var prod mat.Dense
		prod.Mul(pair.P, pair.InvP)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(prod.At(i, j)-want) > 1e-10 {
					panic("P-matrix table: InvP is not the inverse of P for " + bravais)
				}
			}
		}
	}
}
