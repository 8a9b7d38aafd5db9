/*
 * json.go, part of goXtal.
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
	"encoding/json"
	"io"

	"gonum.org/v1/gonum/mat"
)

// A ready-to-serialize container for a structure.
type jsonStructure struct {
	Lattice [3][3]float64 `json:"lattice"`
	Coords  [][3]float64  `json:"coordinates"`
	Types   []string      `json:"types"`
}

// MarshalJSON implements json.Marshaler. The lattice goes out as three rows
// (the basis vectors) and the coordinates as one fractional triple per atom.
func (S *Structure) MarshalJSON() ([]byte, error) {
	if err := S.Corrupted(); err != nil {
		return nil, errDecorate(err, "MarshalJSON")
	}
	j := jsonStructure{Types: S.Types}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			j.Lattice[i][k] = S.Lattice.At(i, k)
		}
	}
	j.Coords = make([][3]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		for k := 0; k < 3; k++ {
			j.Coords[i][k] = S.Coords.At(i, k)
		}
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler.
func (S *Structure) UnmarshalJSON(b []byte) error {
	var j jsonStructure
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if len(j.Coords) == 0 {
		return invalidInputf("JSON structure with no atoms")
	}
	if len(j.Coords) != len(j.Types) {
		return invalidInputf("%d atoms but %d types in JSON structure", len(j.Coords), len(j.Types))
	}
	lat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		lat = append(lat, j.Lattice[i][:]...)
	}
	data := make([]float64, 0, len(j.Coords)*3)
	for i := range j.Coords {
		data = append(data, j.Coords[i][:]...)
	}
	S.Lattice = mat.NewDense(3, 3, lat)
	S.Coords = mat.NewDense(len(j.Coords), 3, data)
	S.Types = j.Types
	return nil
}

// EncodeStructure writes S to out as JSON.
func EncodeStructure(out io.Writer, S *Structure) error {
	b, err := S.MarshalJSON()
	if err != nil {
		return errDecorate(err, "EncodeStructure")
	}
	_, err = out.Write(b)
	return err
}

// DecodeStructure reads a JSON structure from in.
func DecodeStructure(in io.Reader) (*Structure, error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	S := new(Structure)
	if err := S.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	if err := S.Corrupted(); err != nil {
		return nil, errDecorate(err, "DecodeStructure")
	}
	return S, nil
}
