/*
 * minpop_test.go, part of zpebop.
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
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"
)

const scanFixture = "testdata/c2h6_scan.out"

func close6(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

//TestReadMinPopFile parses the ethane C-C scan point and checks every
//section of the record against the values printed in the output file.
func TestReadMinPopFile(Te *testing.T) {
	rec, err := ReadMinPopFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	if rec.Len() != 8 {
		Te.Fatalf("got %d atoms, want 8", rec.Len())
	}
	want := []string{"H", "C", "C", "H", "H", "H", "H", "H"}
	for i, at := range rec.Atoms {
		if at.Symbol != want[i] {
			Te.Errorf("atom %d: got symbol %s, want %s", i+1, at.Symbol, want[i])
		}
		if at.Index != i+1 {
			Te.Errorf("atom %d carries index %d", i+1, at.Index)
		}
	}
	if rec.Atoms[1].Label() != "C2" {
		Te.Errorf("got label %s, want C2", rec.Atoms[1].Label())
	}
	bo := rec.BondOrders
	if !close6(bo.At(0, 1), 0.336619) {
		Te.Errorf("P(H1-C2) = %f", bo.At(0, 1))
	}
	if !close6(bo.At(1, 2), 1.012921) {
		Te.Errorf("P(C2-C3) = %f", bo.At(1, 2))
	}
	if !close6(bo.At(0, 3), -0.088139) {
		Te.Errorf("P(H1..H4) = %f", bo.At(0, 3))
	}
	if bo.At(1, 1) != 0 {
		Te.Errorf("diagonal population %f leaked into the bond-order matrix", bo.At(1, 1))
	}
	//the off-diagonal blocks only appear once in the output, so the
	//reader has to mirror them itself.
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if bo.At(i, j) != bo.At(j, i) {
				Te.Fatalf("bond orders not symmetric at %d,%d", i, j)
			}
		}
	}
	d := rec.Distances
	if math.Abs(d.At(1, 2)-2.2) > 1e-9 {
		Te.Errorf("R(C2-C3) = %.9f", d.At(1, 2))
	}
	if math.Abs(d.At(0, 1)-1.090999604147041) > 1e-9 {
		Te.Errorf("R(H1-C2) = %.15f", d.At(0, 1))
	}
	if !close6(rec.Charges[0], 0.147322) || !close6(rec.Charges[1], -0.441966) {
		Te.Errorf("charges: %v", rec.Charges)
	}
	if len(rec.Occ2S) != 2 {
		Te.Fatalf("got %d 2S occupations, want 2", len(rec.Occ2S))
	}
	if !close6(rec.Occ2S[2], 1.214233) || !close6(rec.Occ2S[3], 1.217902) {
		Te.Errorf("2S occupations: %v", rec.Occ2S)
	}
}

func TestReadMinPopGzip(Te *testing.T) {
	plain, err := ReadMinPopFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	zipped, err := ReadMinPopFile(scanFixture + ".gz")
	if err != nil {
		Te.Fatal(err)
	}
	if zipped.Len() != plain.Len() {
		Te.Fatalf("gzip read returned %d atoms, plain %d", zipped.Len(), plain.Len())
	}
	for i := 0; i < plain.Len(); i++ {
		for j := i + 1; j < plain.Len(); j++ {
			if zipped.BondOrders.At(i, j) != plain.BondOrders.At(i, j) {
				Te.Fatalf("gzip and plain reads disagree at %d,%d", i, j)
			}
		}
	}
}

//The reader keys on the last "Standard orientation" block, as a real
//log prints one per point along an optimization or scan.
func TestReadMinPopLastOrientation(Te *testing.T) {
	raw, err := os.ReadFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	content := string(raw)
	marker := "                         Standard orientation:"
	start := strings.Index(content, marker)
	if start < 0 {
		Te.Fatal("fixture lacks an orientation block")
	}
	stale := marker + "                          \n" +
		" ---------------------------------------------------------------------\n" +
		" Center     Atomic      Atomic             Coordinates (Angstroms)\n" +
		" Number     Number       Type             X           Y           Z\n" +
		" ---------------------------------------------------------------------\n"
	zs := []int{1, 6, 6, 1, 1, 1, 1, 1}
	for i, z := range zs {
		stale += fmt.Sprintf("      %d          %d           0        9.000000    9.000000    9.%06d\n", i+1, z, i)
	}
	stale += " ---------------------------------------------------------------------\n"
	doctored := content[:start] + stale + content[start:]
	rec, err := ReadMinPop(strings.NewReader(doctored))
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(rec.Distances.At(1, 2)-2.2) > 1e-9 {
		Te.Errorf("stale orientation block won: R(C2-C3) = %f", rec.Distances.At(1, 2))
	}
}

func TestReadMinPopMissingSection(Te *testing.T) {
	raw, err := os.ReadFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	truncated := strings.Split(string(raw), "MBS Condensed to atoms")[0]
	_, err = ReadMinPop(strings.NewReader(truncated))
	if err == nil {
		Te.Fatal("expected an error for a file without bond orders")
	}
	var miss *MissingSectionError
	if !errors.As(err, &miss) {
		Te.Fatalf("got %T (%v), want *MissingSectionError", err, err)
	}
}

func TestReadMinPopBadNumber(Te *testing.T) {
	raw, err := os.ReadFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	doctored := strings.Replace(string(raw), "1.012921", "1.01b921", 1)
	if doctored == string(raw) {
		Te.Fatal("fixture value not found")
	}
	_, err = ReadMinPop(strings.NewReader(doctored))
	if err == nil {
		Te.Fatal("expected an error for a corrupted bond order")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		Te.Fatalf("got %T (%v), want *ParseError", err, err)
	}
	if pe.Line <= 0 {
		Te.Errorf("parse error carries no line number: %v", pe)
	}
}

//An element outside the parameterized table must be named in the
//error, not silently truncate the atom list.
func TestReadMinPopUnsupportedElement(Te *testing.T) {
	raw, err := os.ReadFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	doctored := strings.Replace(string(raw),
		" Charge =  0 Multiplicity = 1\n",
		" Charge =  0 Multiplicity = 1\n Fe\n", 1)
	if doctored == string(raw) {
		Te.Fatal("charge line not found")
	}
	_, err = ReadMinPop(strings.NewReader(doctored))
	if err == nil {
		Te.Fatal("expected an error for an out-of-table element")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		Te.Fatalf("got %T (%v), want *ParseError", err, err)
	}
	if !strings.Contains(err.Error(), "Fe") {
		Te.Errorf("error does not name the element: %v", err)
	}
}

//Stray non-atom lines inside the z-matrix body are skipped, as real
//route sections sometimes interleave annotations with the atom list.
func TestReadMinPopSkipsNonAtomLines(Te *testing.T) {
	raw, err := os.ReadFile(scanFixture)
	if err != nil {
		Te.Fatal(err)
	}
	doctored := strings.Replace(string(raw),
		" Charge =  0 Multiplicity = 1\n",
		" Charge =  0 Multiplicity = 1\n (scan point 12)\n", 1)
	rec, err := ReadMinPop(strings.NewReader(doctored))
	if err != nil {
		Te.Fatal(err)
	}
	if rec.Len() != 8 {
		Te.Errorf("got %d atoms, want 8", rec.Len())
	}
}

func TestReadMinPopEmpty(Te *testing.T) {
	_, err := ReadMinPop(strings.NewReader(""))
	if err == nil {
		Te.Fatal("expected an error for an empty reader")
	}
}
