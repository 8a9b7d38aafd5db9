/*
 * spacegroups_test.go, part of goXtal.
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
	"testing"
)

func TestCrystalFamily(Te *testing.T) {
	//The boundaries of the ranges, from both sides.
	boundaries := map[int]Family{
		1: Triclinic, 2: Triclinic,
		3: Monoclinic, 15: Monoclinic,
		16: Orthorhombic, 74: Orthorhombic,
		75: Tetragonal, 142: Tetragonal,
		143: Hexagonal, 194: Hexagonal,
		195: Cubic, 230: Cubic,
	}
	for number, want := range boundaries {
		fam, err := CrystalFamily(number)
		if err != nil {
			Te.Error(err)
		}
		if fam != want {
			Te.Errorf("CrystalFamily(%d) = %s, want %s", number, fam, want)
		}
	}
	families := map[Family]bool{Triclinic: true, Monoclinic: true, Orthorhombic: true,
		Tetragonal: true, Hexagonal: true, Cubic: true}
	for number := 1; number <= 230; number++ {
		fam, err := CrystalFamily(number)
		if err != nil {
			Te.Error(err)
		}
		if !families[fam] {
			Te.Errorf("CrystalFamily(%d) returned a bogus family %q", number, fam)
		}
	}
	for _, number := range []int{0, -5, 231, 1000} {
		_, err := CrystalFamily(number)
		if err == nil {
			Te.Errorf("CrystalFamily(%d) should have failed", number)
		}
		if _, ok := err.(InvalidInput); !ok {
			Te.Errorf("CrystalFamily(%d) returned the wrong error kind: %v", number, err)
		}
	}
}

func TestPointGroupHasInversion(Te *testing.T) {
	centro := map[int]bool{2: true, 5: true, 8: true, 11: true, 15: true,
		17: true, 20: true, 23: true, 27: true, 29: true, 32: true}
	for number := 1; number <= 32; number++ {
		inv, err := PointGroupHasInversion(number)
		if err != nil {
			Te.Error(err)
		}
		if inv != centro[number] {
			Te.Errorf("PointGroupHasInversion(%d) = %v", number, inv)
		}
	}
	for _, number := range []int{0, 33, -1} {
		if _, err := PointGroupHasInversion(number); err == nil {
			Te.Errorf("PointGroupHasInversion(%d) should have failed", number)
		}
	}
}

func TestPointGroupNumber(Te *testing.T) {
	//The table must be a bijection onto 1..32.
	used := make(map[int]string)
	for symbol := range pointgroupNumbers {
		n, err := PointGroupNumber(symbol)
		if err != nil {
			Te.Error(err)
		}
		if n < 1 || n > 32 {
			Te.Errorf("PointGroupNumber(%s) = %d, out of range", symbol, n)
		}
		if prev, ok := used[n]; ok {
			Te.Errorf("pointgroup number %d assigned to both %s and %s", n, prev, symbol)
		}
		used[n] = symbol
	}
	if len(used) != 32 {
		Te.Errorf("the pointgroup table has %d entries, should have 32", len(used))
	}
	spot := map[string]int{"C1": 1, "Ci": 2, "D6h": 27, "Oh": 32, "C3i": 17}
	for symbol, want := range spot {
		n, _ := PointGroupNumber(symbol)
		if n != want {
			Te.Errorf("PointGroupNumber(%s) = %d, want %d", symbol, n, want)
		}
	}
	if _, err := PointGroupNumber("X9z"); err == nil {
		Te.Error("PointGroupNumber should fail for an unknown symbol")
	}
}

func TestSpacegroupData(Te *testing.T) {
	data := SpacegroupData()
	if len(data) != 230 {
		Te.Errorf("the spacegroup table has %d entries, should have 230", len(data))
	}
	spot := map[int]SpacegroupInfo{
		1:   {Triclinic, 'P', false},  //P1
		2:   {Triclinic, 'P', true},   //P-1
		5:   {Monoclinic, 'C', false}, //C2
		12:  {Monoclinic, 'C', true},  //C2/m
		38:  {Orthorhombic, 'A', false},
		70:  {Orthorhombic, 'F', true}, //Fddd
		96:  {Tetragonal, 'P', false},
		139: {Tetragonal, 'I', true}, //I4/mmm
		160: {Hexagonal, 'R', false}, //R3m
		166: {Hexagonal, 'R', true},  //R-3m
		194: {Hexagonal, 'P', true},  //P63/mmc
		221: {Cubic, 'P', true},      //Pm-3m
		225: {Cubic, 'F', true},      //Fm-3m
		227: {Cubic, 'F', true},      //Fd-3m
		229: {Cubic, 'I', true},      //Im-3m
	}
	for number, want := range spot {
		if data[number] != want {
			Te.Errorf("spacegroup %d: got %+v, want %+v", number, data[number], want)
		}
	}
	//The caller owns the returned map.
	data[1] = SpacegroupInfo{Cubic, 'F', true}
	if SpacegroupData()[1] != spot[1] {
		Te.Error("SpacegroupData should return a fresh copy every time")
	}
}

// A stand-in for spglib built from the static table itself: Hall settings 1-230
// hit each spacegroup once, and the remaining 300 repeat earlier spacegroups,
// with an intentionally wrong centering letter to check that only the
// first-encountered setting counts.
type stubTyper struct{}

func (st stubTyper) SpacegroupType(hall int) (SpacegroupType, error) {
	if hall < 1 || hall > 530 {
		return SpacegroupType{}, fmt.Errorf("no such Hall setting: %d", hall)
	}
	number := (hall-1)%230 + 1
	info := spacegroupTable[number]
	centering := string(info.Centering)
	if hall > 230 {
		centering = "Q" //must be ignored, the first setting wins
	}
	pg := "C1"
	if info.HasInversion {
		pg = "Ci"
	}
	return SpacegroupType{Number: number, InternationalShort: centering + "xxx", PointGroupInternational: pg}, nil
}

func TestSpacegroupDataRealtime(Te *testing.T) {
	realtime, err := SpacegroupDataRealtime(stubTyper{})
	if err != nil {
		Te.Error(err)
	}
	static := SpacegroupData()
	if len(realtime) != len(static) {
		Te.Errorf("realtime table has %d entries, static one %d", len(realtime), len(static))
	}
	for number, want := range static {
		if realtime[number] != want {
			Te.Errorf("spacegroup %d: realtime %+v vs static %+v", number, realtime[number], want)
		}
	}
}
