/*
 * params_test.go, part of zpebop.
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
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestHarmonicParameters(Te *testing.T) {
	params := Zpebop1Parameters()
	if params.Model() != ZPEBOP1 {
		Te.Errorf("built-in set tagged %v", params.Model())
	}
	c, ok := params.Pair("H", "C")
	if !ok || c.BetaBond != 6.777104 {
		Te.Errorf("beta(H,C) = %v, %v", c.BetaBond, ok)
	}
	//lookups are order-blind.
	r, ok := params.Pair("C", "H")
	if !ok || r.BetaBond != c.BetaBond {
		Te.Errorf("beta(C,H) = %v, %v", r.BetaBond, ok)
	}
	hh, ok := params.Pair("H", "H")
	if !ok || hh.BetaBond != 7.887796 {
		Te.Errorf("beta(H,H) = %v, %v", hh.BetaBond, ok)
	}
	if hh.BetaAnti != hh.BetaBond {
		Te.Errorf("harmonic set distinguishes bonding from antibonding beta")
	}
	if c.HasAnharm || c.HasKappa {
		Te.Error("harmonic set carries anharmonic or three-body coefficients")
	}
	if _, ok := params.Pair("He", "He"); ok {
		Te.Error("He-He should be uncovered")
	}
}

func TestLoadParameters(Te *testing.T) {
	params, err := LoadParameters("opt_parameters")
	if err != nil {
		Te.Fatal(err)
	}
	if params.Model() != ZPEBOP2 {
		Te.Errorf("loaded set tagged %v", params.Model())
	}
	hc, ok := params.Pair("H", "C")
	if !ok || math.Abs(hc.BetaBond-6.44929219) > 1e-9 {
		Te.Errorf("beta(H,C) = %v, %v", hc.BetaBond, ok)
	}
	if hc.HasAnharm {
		Te.Error("H-C should carry no anharmonic coefficients")
	}
	hh, _ := params.Pair("H", "H")
	if !hh.HasAnharm {
		Te.Fatal("H-H should carry anharmonic coefficients")
	}
	if math.Abs(hh.PreExp-1.68693089099376) > 1e-12 ||
		math.Abs(hh.Zeta-2.41912455668393) > 1e-12 ||
		math.Abs(hh.RParam-0.833682918626989) > 1e-12 {
		Te.Errorf("H-H anharmonic coefficients: %+v", hh)
	}
	co, _ := params.Pair("O", "C")
	if !co.HasKappa || math.Abs(co.KappaBond-2.7224736105841) > 1e-12 {
		Te.Errorf("kappa(C,O) = %v, %v", co.KappaBond, co.HasKappa)
	}
	if co.Kappa(true) == co.Kappa(false) {
		Te.Error("C-O bonding and antibonding kappas should differ")
	}
}

func TestTripleKappa(Te *testing.T) {
	params, err := LoadParameters("opt_parameters")
	if err != nil {
		Te.Fatal(err)
	}
	//linear CO2: two bonding C-O legs, one antibonding O..O leg.
	k, ok := params.TripleKappa("O", "C", "O", false, true, false)
	if !ok {
		Te.Fatal("O-C-O triple should be covered")
	}
	if math.Abs(k-0.6559815130923229) > 1e-12 {
		Te.Errorf("triple kappa = %.15f", k)
	}
	if _, ok := params.TripleKappa("H", "C", "O", false, false, false); ok {
		Te.Error("H closes no triple")
	}
}

func TestLoadParametersMissingFolder(Te *testing.T) {
	_, err := LoadParameters("testdata/no_such_folder")
	if err == nil {
		Te.Fatal("expected an error for a missing folder")
	}
	var pl *ParameterLoadError
	if !errors.As(err, &pl) {
		Te.Fatalf("got %T, want *ParameterLoadError", err)
	}
}

func TestLoadParametersBadJSON(Te *testing.T) {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := LoadParameters(dir)
	if err == nil {
		Te.Fatal("expected an error for malformed JSON")
	}
	var pl *ParameterLoadError
	if !errors.As(err, &pl) {
		Te.Fatalf("got %T, want *ParameterLoadError", err)
	}
}

func TestLoadParametersEmptyFolder(Te *testing.T) {
	_, err := LoadParameters(Te.TempDir())
	if err == nil {
		Te.Fatal("expected an error for a folder without parameter files")
	}
}
