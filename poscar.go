/*
 * poscar.go, part of goXtal.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// PoscarRead reads a structure in the VASP POSCAR format from f. The file must
// have the VASP 5 species line (the line with the element symbols before the
// line with the counts). Both Direct and Cartesian coordinates are accepted;
// Cartesian ones are converted to fractional. A selective-dynamics line, if
// present, is skipped.
func PoscarRead(f io.Reader) (*Structure, error) {
	r := bufio.NewReader(f)
	readLine := func() (string, error) {
		for {
			line, err := r.ReadString('\n')
			line = strings.TrimSpace(line)
			if line != "" {
				return line, nil
			}
			if err != nil {
				return "", err
			}
		}
	}
	if _, err := readLine(); err != nil { //title, not used
		return nil, invalidInputf("ill-formatted POSCAR: no title line")
	}
	line, err := readLine()
	if err != nil {
		return nil, invalidInputf("ill-formatted POSCAR: no scaling line")
	}
	scale, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return nil, invalidInputf("ill-formatted POSCAR: bad scaling factor %q", line)
	}
	lat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		line, err = readLine()
		if err != nil {
			return nil, invalidInputf("ill-formatted POSCAR: missing lattice vector %d", i+1)
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, invalidInputf("ill-formatted POSCAR: lattice line %q", line)
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, invalidInputf("ill-formatted POSCAR: lattice line %q", line)
			}
			lat = append(lat, v*scale)
		}
	}
	lattice := mat.NewDense(3, 3, lat)
	line, err = readLine()
	if err != nil {
		return nil, invalidInputf("ill-formatted POSCAR: missing species line")
	}
	species := strings.Fields(line)
	if _, err := strconv.Atoi(species[0]); err == nil {
		return nil, invalidInputf("POSCAR without a species line (VASP 4 style), can't recover the atom types")
	}
	line, err = readLine()
	if err != nil {
		return nil, invalidInputf("ill-formatted POSCAR: missing counts line")
	}
	counts := strings.Fields(line)
	if len(counts) != len(species) {
		return nil, invalidInputf("ill-formatted POSCAR: %d species but %d counts", len(species), len(counts))
	}
	types := make([]string, 0, len(species))
	for i, c := range counts {
		n, err := strconv.Atoi(c)
		if err != nil || n < 1 {
			return nil, invalidInputf("ill-formatted POSCAR: bad atom count %q", c)
		}
		for j := 0; j < n; j++ {
			types = append(types, species[i])
		}
	}
	line, err = readLine()
	if err != nil {
		return nil, invalidInputf("ill-formatted POSCAR: missing coordinates mode line")
	}
	if strings.HasPrefix(strings.ToLower(line), "s") { //selective dynamics
		line, err = readLine()
		if err != nil {
			return nil, invalidInputf("ill-formatted POSCAR: missing coordinates mode line")
		}
	}
	mode := strings.ToLower(line)
	cartesian := strings.HasPrefix(mode, "c") || strings.HasPrefix(mode, "k")
	if !cartesian && !strings.HasPrefix(mode, "d") {
		return nil, invalidInputf("ill-formatted POSCAR: unknown coordinates mode %q", line)
	}
	natoms := len(types)
	data := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = readLine()
		if err != nil {
			return nil, invalidInputf("ill-formatted POSCAR: %d atoms declared, coordinates end at %d", natoms, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, invalidInputf("ill-formatted POSCAR: coordinate line %q", line)
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, invalidInputf("ill-formatted POSCAR: coordinate line %q", line)
			}
			data = append(data, v)
		}
	}
	coords := mat.NewDense(natoms, 3, data)
	if cartesian {
		// r = f L (rows of L are the basis vectors), so f = r L^-1.
		// The scaling factor applies to Cartesian positions too.
		var inv mat.Dense
		if err := inv.Inverse(lattice); err != nil {
			return nil, CError{fmt.Sprintf("singular lattice in POSCAR: %v", err), []string{"PoscarRead"}}
		}
		coords.Scale(scale, coords)
		coords.Mul(coords, &inv)
	}
	return NewStructure(lattice, coords, types)
}

// PoscarWrite writes S to out in the VASP POSCAR format (VASP 5, Direct
// coordinates), with the given title. Atoms are grouped by type in the output,
// in order of first appearance, since the format requires each species to be
// contiguous.
func PoscarWrite(out io.Writer, S *Structure, title string) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "PoscarWrite")
	}
	species := make([]string, 0, 2)
	indexes := make(map[string][]int)
	for i, t := range S.Types {
		if _, ok := indexes[t]; !ok {
			species = append(species, t)
		}
		indexes[t] = append(indexes[t], i)
	}
	if _, err := fmt.Fprintf(out, "%s\n1.0\n", strings.ReplaceAll(title, "\n", " ")); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if _, err := fmt.Fprintf(out, " %20.14f %20.14f %20.14f\n", S.Lattice.At(i, 0), S.Lattice.At(i, 1), S.Lattice.At(i, 2)); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%s\n", strings.Join(species, " "))
	counts := make([]string, len(species))
	for i, sp := range species {
		counts[i] = strconv.Itoa(len(indexes[sp]))
	}
	fmt.Fprintf(out, "%s\nDirect\n", strings.Join(counts, " "))
	for _, sp := range species {
		for _, i := range indexes[sp] {
			_, err := fmt.Fprintf(out, " %20.14f %20.14f %20.14f\n", S.Coords.At(i, 0), S.Coords.At(i, 1), S.Coords.At(i, 2))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// PoscarFileRead reads a POSCAR file with the given name. Files ending in
// ".zst" are transparently decompressed with zstd.
func PoscarFileRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(name, ".zst") {
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		r = d
	}
	S, err := PoscarRead(r)
	if err != nil {
		return nil, errDecorate(err, "PoscarFileRead: "+name)
	}
	return S, nil
}

// PoscarFileWrite writes S as a POSCAR file with the given name, overwriting
// it if it exists. Files ending in ".zst" are compressed with zstd.
func PoscarFileWrite(name string, S *Structure, title string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var out io.Writer = f
	if strings.HasSuffix(name, ".zst") {
		e, err := zstd.NewWriter(f)
		if err != nil {
			return err
		}
		defer e.Close()
		out = e
	}
	return PoscarWrite(out, S, title)
}
