/*
 * doc.go, part of goXtal.
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

/*Package xtal deals with periodic crystal structures. It obtains the primitive
cell of a crystal from its standard (conventional) crystallographic cell, and
provides the classification tables needed to go with it (crystal families,
pointgroups and spacegroups).


	**goXtal capabilities**

    Obtains the primitive cell from a standard conventional cell and its
	Bravais lattice symbol, using the transformation matrices of Table 3
	of the HKOT paper (Hinuma et al., Comp. Mat. Sci. 128, 2017). The
	symmetry-duplicated atoms of the conventional cell are detected and
	collapsed, with consistency checks on the resulting groups.

    Classifies spacegroup numbers (1-230) into crystal families.

    Tells whether each of the 32 crystallographic pointgroups is
	centrosymmetric, and maps Schoenflies pointgroup symbols to pointgroup
	numbers.

    Produces the (family, centering, inversion) data for all 230
	spacegroups, either from a built-in table or, in real time, from any
	external symmetry-classification library the caller plugs in.

    Reads and writes VASP POSCAR files, including zstd-compressed ones,
	and (de)serializes structures to JSON.

    Plots 2D projections of a cell (subpackage xtalplot).

goXtal does NOT detect symmetry. The input structure must already be a
standard conventional cell, as produced by spglib or a similar library,
and consistent with the Bravais symbol given; goXtal does not check this.

All operations are pure: inputs are never modified, every function returns
newly allocated data. It is safe to call anything here from several
goroutines as long as the inputs themselves are not shared.

goXtal uses gonum (gonum.org/v1/gonum/mat) for all its matrix work. Lattices
are 3x3 Dense matrices whose ROWS are the lattice basis vectors, and
coordinate sets are Nx3 Dense matrices of fractional coordinates, one atom
per row.
*/
package xtal
