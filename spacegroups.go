/*
 * spacegroups.go, part of goXtal.
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

import "fmt"

// Family is a one-letter crystal family tag, as used in the crystallographic
// literature and in Bravais lattice symbols (the first letter of "cF", "hR", etc.).
type Family string

// The six crystal families. Trigonal and hexagonal spacegroups belong to the
// same family, "h".
const (
	Triclinic    Family = "a"
	Monoclinic   Family = "m"
	Orthorhombic Family = "o"
	Tetragonal   Family = "t"
	Hexagonal    Family = "h"
	Cubic        Family = "c"
)

// CrystalFamily returns the crystal family of the spacegroup with the given
// number. The number must be between 1 and 230, inclusive.
func CrystalFamily(number int) (Family, error) {
	switch {
	case number < 1:
		return "", invalidInputf("spacegroup number should be >= 1, got %d", number)
	case number <= 2:
		return Triclinic, nil
	case number <= 15:
		return Monoclinic, nil
	case number <= 74:
		return Orthorhombic, nil
	case number <= 142:
		return Tetragonal, nil
	case number <= 194:
		return Hexagonal, nil
	case number <= 230:
		return Cubic, nil
	default:
		return "", invalidInputf("spacegroup number should be <= 230, got %d", number)
	}
}

// The 11 centrosymmetric pointgroups, out of the 32.
var centroPointgroups = map[int]bool{2: true, 5: true, 8: true, 11: true, 15: true,
	17: true, 20: true, 23: true, 27: true, 29: true, 32: true}

// PointGroupHasInversion returns whether the pointgroup with the given number
// (1 to 32) contains an inversion center.
func PointGroupHasInversion(number int) (bool, error) {
	if number < 1 || number > 32 {
		return false, invalidInputf("pointgroup number should be between 1 and 32, got %d", number)
	}
	return centroPointgroups[number], nil
}

// pointgroupNumbers maps the Schoenflies symbol of each of the 32
// crystallographic pointgroups to its number.
var pointgroupNumbers = map[string]int{
	"C1": 1, "Ci": 2, "C2": 3, "Cs": 4, "C2h": 5,
	"D2": 6, "C2v": 7, "D2h": 8, "C4": 9, "S4": 10,
	"C4h": 11, "D4": 12, "C4v": 13, "D2d": 14, "D4h": 15,
	"C3": 16, "C3i": 17, "D3": 18, "C3v": 19, "D3d": 20,
	"C6": 21, "C3h": 22, "C6h": 23, "D6": 24, "C6v": 25,
	"D3h": 26, "D6h": 27, "T": 28, "Th": 29, "O": 30,
	"Td": 31, "Oh": 32,
}

// PointGroupNumber returns the number (1 to 32) of the pointgroup with the
// given Schoenflies symbol ("C1", "D6h", "Oh"...).
func PointGroupNumber(symbol string) (int, error) {
	n, ok := pointgroupNumbers[symbol]
	if !ok {
		return 0, invalidInputf("unknown pointgroup symbol %q", symbol)
	}
	return n, nil
}

// SpacegroupInfo is the classification data goXtal keeps for one spacegroup.
type SpacegroupInfo struct {
	Family Family
	// Centering is the centering letter of the spacegroup in its standard
	// setting: 'P', 'A', 'C', 'F', 'I' or 'R'. It is the first letter of the
	// international short symbol.
	Centering byte
	// HasInversion tells whether the pointgroup of the spacegroup contains
	// an inversion center.
	HasInversion bool
}

// Centering letters of the standard settings of the 230 spacegroups. Only
// non-primitive groups are listed; everything else is 'P'. The letter is the
// first one of the international short Hermann-Mauguin symbol (e.g. 'F' for
// Fm-3m).
var centeringLetters = map[byte][]int{
	'C': {5, 8, 9, 12, 15, 20, 21, 35, 36, 37, 63, 64, 65, 66, 67, 68},
	'A': {38, 39, 40, 41},
	'F': {22, 42, 43, 69, 70, 196, 202, 203, 209, 210, 216, 219, 225, 226, 227, 228},
	'I': {23, 24, 44, 45, 46, 71, 72, 73, 74,
		79, 80, 82, 87, 88, 97, 98, 107, 108, 109, 110, 119, 120, 121, 122, 139, 140, 141, 142,
		197, 199, 204, 206, 211, 214, 217, 220, 229, 230},
	'R': {146, 148, 155, 160, 161, 166, 167},
}

// The 92 centrosymmetric spacegroups, as closed ranges of numbers.
var centroSpacegroups = [][2]int{
	{2, 2}, {10, 15}, {47, 74}, {83, 88}, {123, 142},
	{147, 148}, {162, 167}, {175, 176}, {191, 194},
	{200, 206}, {221, 230},
}

var spacegroupTable map[int]SpacegroupInfo

func init() {
	spacegroupTable = make(map[int]SpacegroupInfo, 230)
	for number := 1; number <= 230; number++ {
		fam, err := CrystalFamily(number)
		if err != nil {
			panic(err.Error()) //can't happen, the range is hardcoded above
		}
		spacegroupTable[number] = SpacegroupInfo{Family: fam, Centering: 'P'}
	}
	for letter, numbers := range centeringLetters {
		for _, number := range numbers {
			info := spacegroupTable[number]
			info.Centering = letter
			spacegroupTable[number] = info
		}
	}
	for _, r := range centroSpacegroups {
		for number := r[0]; number <= r[1]; number++ {
			info := spacegroupTable[number]
			info.HasInversion = true
			spacegroupTable[number] = info
		}
	}
}

// SpacegroupData returns a map from spacegroup number (1 to 230) to its
// classification data, from the built-in table. The returned map is a fresh
// copy and belongs to the caller.
func SpacegroupData() map[int]SpacegroupInfo {
	ret := make(map[int]SpacegroupInfo, len(spacegroupTable))
	for k, v := range spacegroupTable {
		ret[k] = v
	}
	return ret
}

// SpacegroupType is one record of an external symmetry-classification
// library, for one Hall setting.
type SpacegroupType struct {
	// Number is the spacegroup number, 1 to 230.
	Number int
	// InternationalShort is the international short Hermann-Mauguin symbol,
	// e.g. "Fm-3m".
	InternationalShort string
	// PointGroupInternational is the Schoenflies symbol of the pointgroup,
	// e.g. "Oh".
	PointGroupInternational string
}

// SpacegroupTyper is what goXtal needs from an external
// symmetry-classification library (spglib or equivalent) in order to rebuild
// the spacegroup table in real time: the spacegroup-type record for each of
// the 530 Hall settings, numbered 1 to 530.
type SpacegroupTyper interface {
	SpacegroupType(hallNumber int) (SpacegroupType, error)
}

// SpacegroupDataRealtime builds the same map as SpacegroupData, but from the
// given external library instead of the built-in table, by going over all 530
// Hall settings and deduplicating by spacegroup number. For spacegroups with
// several settings, the centering letter of the first setting encountered is
// kept. It is mostly useful to validate the built-in table against a new
// version of the external library.
func SpacegroupDataRealtime(typer SpacegroupTyper) (map[int]SpacegroupInfo, error) {
	info := make(map[int]SpacegroupInfo, 230)
	for hall := 1; hall <= 530; hall++ {
		data, err := typer.SpacegroupType(hall)
		if err != nil {
			return nil, CError{fmt.Sprintf("classification library failed on Hall setting %d: %v", hall, err), []string{"SpacegroupDataRealtime"}}
		}
		if _, ok := info[data.Number]; ok {
			continue
		}
		fam, err := CrystalFamily(data.Number)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("SpacegroupDataRealtime: Hall setting %d", hall))
		}
		if data.InternationalShort == "" {
			return nil, invalidInputf("empty international symbol for Hall setting %d", hall)
		}
		pgnum, err := PointGroupNumber(data.PointGroupInternational)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("SpacegroupDataRealtime: Hall setting %d", hall))
		}
		inv, err := PointGroupHasInversion(pgnum)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("SpacegroupDataRealtime: Hall setting %d", hall))
		}
		info[data.Number] = SpacegroupInfo{
			Family:       fam,
			Centering:    data.InternationalShort[0],
			HasInversion: inv,
		}
	}
	return info, nil
}
