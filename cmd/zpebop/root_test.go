/*
 * root_test.go, part of zpebop.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zpebop "github.com/crudechem/zpebop"
	"github.com/crudechem/zpebop/bopjson"
)

const (
	fixture     = "../../testdata/c2h6_scan.out"
	paramFolder = "../../opt_parameters"
)

func runCLI(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestRunSummary(t *testing.T) {
	out := runCLI(t, "-f", fixture, "--param-folder", paramFolder)
	assert.Contains(t, out, "SUMMARY OF ZPEBOP-2 CALCULATION")
	assert.Contains(t, out, "ZPEBOP-2 (Version "+zpebop.Version+")")
	assert.Contains(t, out, "ZERO-POINT ENERGY (0 K)  =     64.044 KCAL/MOL")
}

func TestRunHarmonicModel(t *testing.T) {
	out := runCLI(t, "-f", fixture, "--model", "zpebop1")
	assert.Contains(t, out, "SUMMARY OF ZPEBOP-1 CALCULATION")
	assert.Contains(t, out, "ZERO-POINT ENERGY (0 K)  =     63.801 KCAL/MOL")
	assert.Contains(t, out, "(built-in)")
}

func TestRunBondTables(t *testing.T) {
	out := runCLI(t, "-f", fixture, "--param-folder", paramFolder, "--be", "--sort")
	assert.Contains(t, out, "GROSS TOTAL BOND ENERGIES")
	assert.Contains(t, out, "NET TOTAL ENERGIES")
	assert.Contains(t, out, "COMPOSITE TABLE")
	assert.Contains(t, out, "TOTAL NET ENERGY     =     64.04 KCAL/MOL")
	assert.Contains(t, out, "SORTED NET VIB. BONDING ENERGIES (LOWEST TO HIGHEST)")
	assert.Contains(t, out, "C2-C3")
}

func TestRunIsotope(t *testing.T) {
	out := runCLI(t, "-f", fixture, "--param-folder", paramFolder,
		"--isotope", "1:D", "--sort")
	assert.Contains(t, out, "ISOTOPE ZPE (0 K)        =     62.292 KCAL/MOL")
	assert.Contains(t, out, "DELTA ZPE (NORMAL-ISO)   =     1.752 KCAL/MOL")
	assert.Contains(t, out, "ZPE RATIO (ISO/NORMAL)   =     0.972647")
	assert.Contains(t, out, "H1*")
}

func TestRunJSONOutput(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bopout.json")
	runCLI(t, "-f", fixture, "--param-folder", paramFolder,
		"--be", "--json", "-o", name)
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	doc, jerr := bopjson.Read(f)
	require.Nil(t, jerr)
	assert.Equal(t, "ZPEBOP-2", doc.Method)
	assert.InDelta(t, 64.044, doc.ZeroPoint, 1e-3)
	require.NotNil(t, doc.BondEnergies)
	assert.Len(t, doc.BondEnergies.Gross.Total, 8)
}

func TestRunBadFile(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"-f", "no_such_file.out"})
	assert.Error(t, cmd.Execute())
}

//Flags set on one command must not bleed into the next invocation:
//a zpebop1 run followed by a flagless run has to come back to the
//zpebop2 default.
func TestRunsAreIndependent(t *testing.T) {
	out := runCLI(t, "-f", fixture, "--model", "zpebop1")
	assert.Contains(t, out, "SUMMARY OF ZPEBOP-1 CALCULATION")
	out = runCLI(t, "-f", fixture, "--param-folder", paramFolder)
	assert.Contains(t, out, "SUMMARY OF ZPEBOP-2 CALCULATION")
	assert.NotContains(t, out, "ISOTOPE ZPE")

	out = runCLI(t, "-f", fixture, "--param-folder", paramFolder, "--isotope", "1:D")
	assert.Contains(t, out, "ISOTOPE ZPE")
	out = runCLI(t, "-f", fixture, "--param-folder", paramFolder)
	assert.NotContains(t, out, "ISOTOPE ZPE")
}

func TestParseIsotopes(t *testing.T) {
	m, err := parseIsotopes([]string{"1:D", "3:18.5"})
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: zpebop.CommonIsotopes["D"], 3: 18.5}, m)

	m, err = parseIsotopes(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	for _, bad := range []string{"nope", "x:2.0", "1:Q"} {
		_, err := parseIsotopes([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestTriangleLayout(t *testing.T) {
	rec, err := zpebop.ReadMinPopFile(fixture)
	require.NoError(t, err)
	params, err := zpebop.LoadParameters(paramFolder)
	require.NoError(t, err)
	res, err := zpebop.Compute(rec, params, zpebop.ZPEBOP2)
	require.NoError(t, err)

	var buf bytes.Buffer
	printLowerTriangle(&buf, res.TwoBody, rec.Atoms)
	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	//8 atoms: a block of 8 rows, then a block of 3, plus two headers.
	assert.Len(t, lines, 13)
	assert.Contains(t, string(lines[0]), "         1")
	assert.Contains(t, string(lines[1]), " 1     H")
	//first row of the second block belongs to atom 6
	assert.Contains(t, string(lines[9]), "         6")
	assert.Contains(t, string(lines[10]), " 6     H")
}
