/*
 * errors.go, part of zpebop.
 *
 *
 * Copyright 2026 The zpebop developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package zpebop

import "fmt"

//Error is the interface for errors returned by this package. Decorate
//appends the name of a caller to the error's trace, and returns the
//accumulated trace, so a failure can be followed through the call stack
//without wrapping.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

type baseError struct {
	message  string
	deco     []string
	harmless bool
}

func (e *baseError) Error() string {
	return e.message
}

//Decorate adds dec to the decoration trace of the error and returns
//the resulting trace.
func (e *baseError) Decorate(dec string) []string {
	e.deco = append(e.deco, dec)
	return e.deco
}

//Critical reports whether the error can not be ignored.
func (e *baseError) Critical() bool { return !e.harmless }

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. Used on errors that can only come from
//within the package.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.Decorate(caller)
	return e
}

//IOError signals an OS-level failure to read an input file.
type IOError struct{ baseError }

func newIOError(format string, a ...any) *IOError {
	return &IOError{baseError{message: "zpebop: " + fmt.Sprintf(format, a...)}}
}

//MissingSectionError signals that a section required by the extractor
//was not found in the output file. Section names the missing marker.
type MissingSectionError struct {
	baseError
	Section string
}

func newMissingSectionError(section string) *MissingSectionError {
	return &MissingSectionError{
		baseError: baseError{message: fmt.Sprintf("zpebop: section %q not found in output", section)},
		Section:   section,
	}
}

//ParseError signals a malformed field in an otherwise recognized
//section. Line is the 1-based line number in the input, or 0 when no
//line applies.
type ParseError struct {
	baseError
	Line int
}

func newParseError(line int, format string, a ...any) *ParseError {
	return &ParseError{
		baseError: baseError{message: fmt.Sprintf("zpebop: line %d: %s", line, fmt.Sprintf(format, a...))},
		Line:      line,
	}
}

//ParameterLoadError signals a missing or malformed parameter folder.
type ParameterLoadError struct{ baseError }

func newParameterLoadError(format string, a ...any) *ParameterLoadError {
	return &ParameterLoadError{baseError{message: "zpebop: " + fmt.Sprintf(format, a...)}}
}

//InvalidIsotopeError signals an isotope substitution that does not
//match the record: an out-of-range atom index or a non-positive mass.
type InvalidIsotopeError struct {
	baseError
	AtomIndex int
}

func newInvalidIsotopeError(index int, format string, a ...any) *InvalidIsotopeError {
	return &InvalidIsotopeError{
		baseError: baseError{message: "zpebop: " + fmt.Sprintf(format, a...)},
		AtomIndex: index,
	}
}

//InvariantViolation signals inconsistent inputs, such as a bond-order
//matrix whose dimension does not match the atom count.
type InvariantViolation struct{ baseError }

func newInvariantViolation(format string, a ...any) *InvariantViolation {
	return &InvariantViolation{baseError{message: "zpebop: " + fmt.Sprintf(format, a...)}}
}

//PanicMsg is a message used for panics. It satisfies the error
//interface, but for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilRecord     = PanicMsg("zpebop: nil PopulationRecord")
	ErrNilParameters = PanicMsg("zpebop: nil ParameterSet")
	ErrNilResult     = PanicMsg("zpebop: nil Result")
	ErrShape         = PanicMsg("zpebop: matrix dimension mismatch")
)
