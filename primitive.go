/*
 * primitive.go, part of goXtal.
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
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Tolerance for two fractional coordinates to count as the same point,
// modulo a lattice translation.
const primTolerance = 1e-6

// sameModulo tells whether a and b are the same fractional coordinate modulo 1,
// within primTolerance. The difference is shifted by 1/2 before taking the
// modulo and shifted back, so that values close to 0 and close to 1 compare
// equal instead of ending up at opposite ends of [0,1).
func sameModulo(a, b float64) bool {
	d := math.Mod(a-b+0.5, 1.0)
	if d < 0 {
		d++
	}
	return math.Abs(d-0.5) < primTolerance
}

// groupKey turns a group of atom indexes into a map key.
func groupKey(group []int) string {
	s := make([]string, len(group))
	for i, v := range group {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

// Primitive returns the primitive cell of a crystal given its standard
// conventional cell and its Bravais lattice symbol ("cF", "hR"...), together
// with the transformation pair used. S must already be a standard conventional
// cell consistent with the symbol (goXtal does not check this); it is not
// modified, the returned structure is new.
//
// The lattice vectors are transformed with P and the fractional coordinates
// with InvP (see PPair), and the atoms of the conventional cell that become
// lattice-equivalent in the primitive cell are collapsed to one, keeping the
// one with the smallest index in S. The returned fractional coordinates are
// NOT wrapped into [0,1); use (*Structure).Wrap if you need that.
//
// Each group of equivalent atoms must have exactly det(InvP) members, all of
// the same type. Violations return, respectively, an Inconsistency or a
// TypeMismatch error, both of which mean the input was not really a standard
// conventional cell for the given Bravais lattice, or that its coordinates
// are less precise than the 1e-6 tolerance used here.
func Primitive(S *Structure, bravais string) (*Structure, *PPair, error) {
	if err := S.Corrupted(); err != nil {
		return nil, nil, errDecorate(err, "Primitive")
	}
	pair, err := PMatrix(bravais)
	if err != nil {
		return nil, nil, errDecorate(err, "Primitive")
	}
	volumeRatio := pair.VolumeRatio()

	// (aP,bP,cP) = (a,b,c) P, and the basis vectors are the ROWS of the
	// lattice matrix, so it goes in transposed and comes back out transposed.
	var lt mat.Dense
	lt.Mul(S.Lattice.T(), pair.P)
	primLattice := mat.DenseCopyOf(lt.T())

	// (xP,yP,zP)^T = InvP (x,y,z)^T for every atom at once:
	// coords * InvP^T does all the rows in one product.
	natoms := S.Len()
	primCoords := mat.NewDense(natoms, 3, nil)
	primCoords.Mul(S.Coords, pair.InvP.T())

	// All-with-all comparison. Atoms are equivalent when all three fractional
	// coordinates match modulo 1. N is small (tens to a few hundred), so the
	// O(N^2) loop is fine and anything smarter would not pay off.
	seen := make(map[string][]int)
	count := make(map[string]int)
	for i := 0; i < natoms; i++ {
		group := make([]int, 0, volumeRatio)
		for j := 0; j < natoms; j++ {
			if sameModulo(primCoords.At(i, 0), primCoords.At(j, 0)) &&
				sameModulo(primCoords.At(i, 1), primCoords.At(j, 1)) &&
				sameModulo(primCoords.At(i, 2), primCoords.At(j, 2)) {
				group = append(group, j)
			}
		}
		key := groupKey(group)
		seen[key] = group
		count[key]++
	}
	groups := make([][]int, 0, len(seen))
	for key := range seen {
		groups = append(groups, seen[key])
	}
	sort.Slice(groups, func(a, b int) bool {
		ga, gb := groups[a], groups[b]
		for k := 0; k < len(ga) && k < len(gb); k++ {
			if ga[k] != gb[k] {
				return ga[k] < gb[k]
			}
		}
		return len(ga) < len(gb)
	})

	// Every group must have been produced once per member, and have exactly
	// volumeRatio members. Otherwise the "groups" don't even partition the
	// atoms and the input cell can't have been a conventional cell.
	var badGroups [][]int
	for _, group := range groups {
		if len(group) != volumeRatio || count[groupKey(group)] != volumeRatio {
			badGroups = append(badGroups, group)
		}
	}
	if badGroups != nil {
		msg := fmt.Sprintf("problem creating the primitive cell: the following groups of equivalent atoms don't have %d members: %v", volumeRatio, badGroups)
		return nil, nil, Inconsistency{CError{msg, []string{"Primitive"}}, badGroups}
	}

	var badIndexes []int
	for _, group := range groups {
		for _, j := range group[1:] {
			if S.Types[j] != S.Types[group[0]] {
				badIndexes = append(badIndexes, group...)
				break
			}
		}
	}
	if badIndexes != nil {
		msg := fmt.Sprintf("the following atoms go on top of each other in the primitive cell, but they are of different types: %v", badIndexes)
		return nil, nil, TypeMismatch{CError{msg, []string{"Primitive"}}, badIndexes}
	}

	// Keep the first (smallest-index) atom of each group. Groups are already
	// sorted, so the output order is deterministic.
	outCoords := mat.NewDense(len(groups), 3, nil)
	outTypes := make([]string, len(groups))
	for i, group := range groups {
		rep := group[0]
		outCoords.Set(i, 0, primCoords.At(rep, 0))
		outCoords.Set(i, 1, primCoords.At(rep, 1))
		outCoords.Set(i, 2, primCoords.At(rep, 2))
		outTypes[i] = S.Types[rep]
	}

	prim := &Structure{Lattice: primLattice, Coords: outCoords, Types: outTypes}
	return prim, pair, nil
}
