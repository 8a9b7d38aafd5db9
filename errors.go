/*
 * errors.go, part of goXtal.
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

import "fmt"

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error as it is passed
// up the calling stack. Each call returns the current "decoration" slice of strings.
// If passed an empty string it just returns the current value without adding anything.
type Error interface {
	error
	Decorate(string) []string
}

// CError is the concrete, general error type of the library.
type CError struct {
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// InvalidInput is returned when an argument is malformed or out of range:
// a spacegroup number outside 1-230, a pointgroup number outside 1-32, an
// unknown pointgroup symbol or an unknown Bravais lattice symbol.
type InvalidInput struct {
	CError
}

// Inconsistency is returned when, while building a primitive cell, a group of
// lattice-equivalent atoms doesn't have as many members as the volume ratio
// between the conventional and the primitive cell demands. It means the input
// was not really a standard conventional cell for the Bravais lattice given,
// or that its numbers are less precise than the tolerance assumes.
type Inconsistency struct {
	CError
	// Groups contains the offending groups of atom indexes, for diagnostics.
	Groups [][]int
}

// TypeMismatch is returned when two atoms sit on top of each other (within
// tolerance, modulo a lattice translation) but have different types. The input
// data is corrupted or belongs to a different structure.
type TypeMismatch struct {
	CError
	// Indices are the offending atom indexes in the input structure.
	Indices []int
}

func invalidInputf(format string, a ...interface{}) InvalidInput {
	return InvalidInput{CError{fmt.Sprintf(format, a...), nil}}
}

// errDecorate is a helper that asserts that the error implements xtal.Error
// and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
