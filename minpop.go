/*
 * minpop.go, part of zpebop.
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

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

//just for brevity
var con func(string, string) bool = strings.Contains
var fields func(string) []string = strings.Fields
var trim func(string) string = strings.TrimSpace

//Section markers printed by Gaussian for MinPop runs
//(Pop=(Full) with IOp(6/27=122)).
const (
	markCharge   = " Charge ="
	markOrient   = "Standard orientation:"
	markOrbPops  = "MBS Gross orbital populations:"
	markBondOrd  = "MBS Condensed to atoms (all electrons):"
	markBondEnd  = "MBS Atomic-Atomic Spin Densities"
	markCharges  = "MBS Mulliken charges and spin densities:"
	markChargEnd = "Sum of MBS Mulliken charges"
)

//ReadMinPopFile extracts a PopulationRecord from the MinPop output file
//at path. Files ending in ".gz" are decompressed transparently.
func ReadMinPopFile(path string) (*PopulationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError("can't open %s: %v", path, err)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, newIOError("can't decompress %s: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}
	rec, err := ReadMinPop(r)
	if err != nil {
		return nil, errDecorate(err, "ReadMinPopFile "+path)
	}
	return rec, nil
}

//ReadMinPop extracts a PopulationRecord from a MinPop output stream.
//The atom list is taken from the route section's Charge line, the
//geometry from the last standard orientation (from which the distance
//matrix is computed), the bond orders from the MBS condensed-to-atoms
//block (lower triangle authoritative, diagonal discarded), plus the
//2s orbital occupations and the net Mulliken charges.
func ReadMinPop(r io.Reader) (*PopulationRecord, error) {
	lines, err := slurp(r)
	if err != nil {
		return nil, err
	}
	atoms, err := readAtoms(lines)
	if err != nil {
		return nil, errDecorate(err, "ReadMinPop")
	}
	n := len(atoms)
	coords, err := readOrientation(lines, atoms)
	if err != nil {
		return nil, errDecorate(err, "ReadMinPop")
	}
	bo, err := readBondOrders(lines, n)
	if err != nil {
		return nil, errDecorate(err, "ReadMinPop")
	}
	occ2s, err := readOcc2S(lines)
	if err != nil {
		return nil, errDecorate(err, "ReadMinPop")
	}
	charges, err := readCharges(lines, n)
	if err != nil {
		return nil, errDecorate(err, "ReadMinPop")
	}
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := coords[j][0] - coords[i][0]
			dy := coords[j][1] - coords[i][1]
			dz := coords[j][2] - coords[i][2]
			dist.SetSym(i, j, math.Sqrt(dx*dx+dy*dy+dz*dz))
		}
	}
	return &PopulationRecord{
		Atoms:      atoms,
		BondOrders: bo,
		Distances:  dist,
		Charges:    charges,
		Occ2S:      occ2s,
	}, nil
}

func slurp(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, newIOError("can't read output: %v", err)
	}
	return lines, nil
}

//The atom list follows the "Charge = ... Multiplicity = ..." line, one
//atom per line, first field the element symbol. It ends at a blank
//line or at the z-matrix Variables block; other non-element lines in
//between are skipped. An element-shaped symbol outside the supported
//table is an error, not a silent truncation.
func readAtoms(lines []string) ([]*Atom, error) {
	start := -1
	for i, l := range lines {
		if con(l, markCharge) && con(l, "Multiplicity") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, newMissingSectionError(trim(markCharge))
	}
	var atoms []*Atom
	for i := start; i < len(lines); i++ {
		f := fields(lines[i])
		if len(f) == 0 || con(lines[i], "Variables:") {
			break
		}
		if mass, ok := symbolMass[f[0]]; ok {
			atoms = append(atoms, &Atom{Index: len(atoms) + 1, Symbol: f[0], Mass: mass})
			continue
		}
		if elementShaped(f[0]) {
			return nil, newParseError(i+1, "unsupported element %q in atom list", f[0])
		}
	}
	if len(atoms) == 0 {
		return nil, newParseError(start+1, "no atoms found after %q", trim(markCharge))
	}
	return atoms, nil
}

//elementShaped reports whether s looks like an element symbol: one
//capital letter, optionally followed by one lowercase letter.
func elementShaped(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	if len(s) == 2 && (s[1] < 'a' || s[1] > 'z') {
		return false
	}
	return true
}

//Coordinates come from the last standard orientation block: marker
//line, four framing lines, then one line per atom with the cartesian
//coordinates in the last three fields.
func readOrientation(lines []string, atoms []*Atom) ([][3]float64, error) {
	last := -1
	for i, l := range lines {
		if con(l, markOrient) {
			last = i
		}
	}
	if last < 0 {
		return nil, newMissingSectionError(markOrient)
	}
	n := len(atoms)
	coords := make([][3]float64, n)
	for k := 0; k < n; k++ {
		ln := last + 5 + k
		if ln >= len(lines) {
			return nil, newParseError(len(lines), "orientation block truncated, want %d atoms", n)
		}
		f := fields(lines[ln])
		if len(f) < 5 {
			return nil, newParseError(ln+1, "malformed orientation line %q", trim(lines[ln]))
		}
		z, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, newParseError(ln+1, "bad atomic number %q", f[1])
		}
		if s, ok := zSymbol[z]; ok && s != atoms[k].Symbol {
			return nil, newParseError(ln+1, "orientation atom %d is %s, atom list says %s", k+1, s, atoms[k].Symbol)
		}
		for c := 0; c < 3; c++ {
			v, err := strconv.ParseFloat(f[len(f)-3+c], 64)
			if err != nil {
				return nil, newParseError(ln+1, "bad coordinate %q", f[len(f)-3+c])
			}
			coords[k][c] = v
		}
	}
	return coords, nil
}

//The condensed-to-atoms block comes in chunks of up to six columns.
//Each chunk opens with a header row of column (atom) numbers, followed
//by one row per atom: row number, element symbol, then the matrix
//entries for the chunk's columns. The matrix is symmetrized from the
//lower triangle and the diagonal (gross atomic populations) dropped.
func readBondOrders(lines []string, n int) (*mat.SymDense, error) {
	start := -1
	for i, l := range lines {
		if con(l, markBondOrd) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, newMissingSectionError(markBondOrd)
	}
	raw := mat.NewDense(n, n, nil)
	var cols []int
	for ln := start + 1; ln < len(lines); ln++ {
		l := lines[ln]
		if con(l, markBondEnd) {
			break
		}
		f := fields(l)
		if len(f) == 0 {
			break
		}
		if ints, ok := allInts(f); ok {
			cols = ints
			continue
		}
		if cols == nil {
			return nil, newParseError(ln+1, "matrix data before any column header")
		}
		row, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, newParseError(ln+1, "bad matrix row index %q", f[0])
		}
		if row < 1 || row > n {
			return nil, newParseError(ln+1, "matrix row %d out of range (%d atoms)", row, n)
		}
		vals := f[2:]
		if len(vals) > len(cols) {
			return nil, newParseError(ln+1, "row %d has %d entries for %d columns", row, len(vals), len(cols))
		}
		for k, s := range vals {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, newParseError(ln+1, "bad matrix entry %q", s)
			}
			col := cols[k]
			if col < 1 || col > n {
				return nil, newParseError(ln+1, "matrix column %d out of range (%d atoms)", col, n)
			}
			raw.Set(row-1, col-1, v)
		}
	}
	bo := mat.NewSymDense(n, nil)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			bo.SetSym(j, i, raw.At(i, j))
		}
	}
	return bo, nil
}

func allInts(f []string) ([]int, bool) {
	ints := make([]int, 0, len(f))
	for _, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		ints = append(ints, v)
	}
	return ints, true
}

//2s occupations live in the gross-orbital-populations block. Atom
//header rows carry orbital number, atom number, symbol and the 1S
//occupation; continuation rows carry orbital number, orbital label and
//occupation. Only the 2S rows are kept, keyed by the atom they follow.
func readOcc2S(lines []string) (map[int]float64, error) {
	start := -1
	for i, l := range lines {
		if con(l, markOrbPops) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, newMissingSectionError(markOrbPops)
	}
	occ := make(map[int]float64)
	atom := 0
	for ln := start + 1; ln < len(lines); ln++ {
		l := lines[ln]
		if con(l, markBondOrd) {
			break
		}
		f := fields(l)
		if len(f) >= 5 {
			if a, err := strconv.Atoi(f[1]); err == nil {
				if _, ok := symbolMass[f[2]]; ok {
					atom = a
					continue
				}
			}
		}
		if len(f) == 3 && f[1] == "2S" {
			if atom == 0 {
				return nil, newParseError(ln+1, "2S occupation before any atom row")
			}
			v, err := strconv.ParseFloat(f[2], 64)
			if err != nil {
				return nil, newParseError(ln+1, "bad 2S occupation %q", f[2])
			}
			occ[atom] = v
		}
	}
	return occ, nil
}

//Net Mulliken charges, terminated by the charge-sum line.
func readCharges(lines []string, n int) ([]float64, error) {
	start := -1
	for i, l := range lines {
		if con(l, markCharges) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, newMissingSectionError(markCharges)
	}
	charges := make([]float64, n)
	seen := 0
	for ln := start + 1; ln < len(lines); ln++ {
		l := lines[ln]
		if con(l, markChargEnd) {
			break
		}
		f := fields(l)
		if len(f) < 3 {
			continue
		}
		idx, err := strconv.Atoi(f[0])
		if err != nil {
			continue //column header row
		}
		if _, ok := symbolMass[f[1]]; !ok {
			continue
		}
		if idx < 1 || idx > n {
			return nil, newParseError(ln+1, "charge row %d out of range (%d atoms)", idx, n)
		}
		v, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return nil, newParseError(ln+1, "bad charge %q", f[2])
		}
		charges[idx-1] = v
		seen++
	}
	if seen != n {
		return nil, newParseError(start+1, "found %d charges, want %d", seen, n)
	}
	return charges, nil
}
