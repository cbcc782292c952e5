/*
 * params.go, part of zpebop.
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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

//PairCoeffs holds the fitted coefficients of one element pair. Beta
//is the harmonic constant in kcal/mol, with a separate value for
//antibonding (negative bond order) pairs. PreExp (kcal/mol), Zeta
//(1/Angstrom) and RParam (Angstrom) define the anharmonic correction
//and are only meaningful when HasAnharm is set; likewise the kappa
//three-body couplings and HasKappa.
type PairCoeffs struct {
	BetaBond  float64
	BetaAnti  float64
	PreExp    float64
	Zeta      float64
	RParam    float64
	KappaBond float64
	KappaAnti float64
	HasAnharm bool
	HasKappa  bool
}

//Beta returns the harmonic constant for the given bonding state.
func (c *PairCoeffs) Beta(anti bool) float64 {
	if anti {
		return c.BetaAnti
	}
	return c.BetaBond
}

//Kappa returns the three-body coupling for the given bonding state.
func (c *PairCoeffs) Kappa(anti bool) float64 {
	if anti {
		return c.KappaAnti
	}
	return c.KappaBond
}

//ParameterSet is an immutable store of per-pair coefficients. A set is
//safe for concurrent readers once built.
type ParameterSet struct {
	model Model
	pairs map[string]*PairCoeffs
}

//Model returns the model the set parameterizes.
func (p *ParameterSet) Model() Model { return p.model }

//pairKey builds the canonical unordered key for an element pair:
//the lower atomic number goes first, so A~B and B~A resolve the same.
func pairKey(a, b string) string {
	if symbolZ[a] > symbolZ[b] {
		a, b = b, a
	}
	return a + "~" + b
}

//Pair returns the coefficients for an element pair, in either symbol
//order. A pair absent from the set yields a zero-valued PairCoeffs and
//ok=false; absence is not an error, such pairs just contribute nothing.
func (p *ParameterSet) Pair(a, b string) (*PairCoeffs, bool) {
	c, ok := p.pairs[pairKey(a, b)]
	if !ok {
		return &PairCoeffs{}, false
	}
	return c, true
}

//TripleKappa returns the product of the three pairwise kappa couplings
//of an atom triple, each taken in the bonding or antibonding state
//given by the corresponding anti flag. The second value is false if
//any of the three pairs lacks kappa coefficients.
func (p *ParameterSet) TripleKappa(a, b, c string, antiAB, antiAC, antiBC bool) (float64, bool) {
	ab, ok1 := p.pairs[pairKey(a, b)]
	ac, ok2 := p.pairs[pairKey(a, c)]
	bc, ok3 := p.pairs[pairKey(b, c)]
	if !ok1 || !ok2 || !ok3 || !ab.HasKappa || !ac.HasKappa || !bc.HasKappa {
		return 0, false
	}
	return ab.Kappa(antiAB) * ac.Kappa(antiAC) * bc.Kappa(antiBC), true
}

//Zpebop1Parameters returns the built-in ZPEBOP-1 parameter set.
//In the published table the bonding and antibonding constants
//coincide, so a single beta per pair is stored.
func Zpebop1Parameters() *ParameterSet {
	pairs := make(map[string]*PairCoeffs, len(betaZPEBOP1))
	for k, beta := range betaZPEBOP1 {
		pairs[k] = &PairCoeffs{BetaBond: beta, BetaAnti: beta}
	}
	return &ParameterSet{model: ZPEBOP1, pairs: pairs}
}

//jsonPair mirrors the on-disk record of one pair. Pointer fields
//distinguish "absent" from zero.
type jsonPair struct {
	BetaBond  *float64 `json:"beta_bond"`
	BetaAnti  *float64 `json:"beta_anti"`
	PreExp    *float64 `json:"pre_exp"`
	Zeta      *float64 `json:"zeta"`
	RParam    *float64 `json:"r_param"`
	KappaBond *float64 `json:"kappa_bond"`
	KappaAnti *float64 `json:"kappa_anti"`
}

//LoadParameters builds a ZPEBOP-2 parameter set from a folder of JSON
//files. Every *.json file in the folder holds a map from pair keys
//("A~B") to coefficient records; records for the same pair found in
//several files are merged, so two-body and three-body coefficients may
//be shipped separately. Keys are re-canonicalized on load, so files may
//use either symbol order.
func LoadParameters(folder string) (*ParameterSet, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, newParameterLoadError("can't read parameter folder %s: %v", folder, err)
	}
	pairs := make(map[string]*PairCoeffs)
	nfiles := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		nfiles++
		path := filepath.Join(folder, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, newParameterLoadError("can't read %s: %v", path, err)
		}
		var recs map[string]jsonPair
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil, newParameterLoadError("malformed JSON in %s: %v", path, err)
		}
		for key, r := range recs {
			el := strings.Split(key, "~")
			if len(el) != 2 {
				return nil, newParameterLoadError("bad pair key %q in %s", key, path)
			}
			k := pairKey(el[0], el[1])
			c, ok := pairs[k]
			if !ok {
				c = &PairCoeffs{}
				pairs[k] = c
			}
			mergePair(c, &r)
		}
	}
	if nfiles == 0 {
		return nil, newParameterLoadError("no *.json parameter files in %s", folder)
	}
	return &ParameterSet{model: ZPEBOP2, pairs: pairs}, nil
}

func mergePair(c *PairCoeffs, r *jsonPair) {
	if r.BetaBond != nil {
		c.BetaBond = *r.BetaBond
	}
	if r.BetaAnti != nil {
		c.BetaAnti = *r.BetaAnti
	}
	if r.PreExp != nil && r.Zeta != nil && r.RParam != nil {
		c.PreExp = *r.PreExp
		c.Zeta = *r.Zeta
		c.RParam = *r.RParam
		c.HasAnharm = true
	}
	if r.KappaBond != nil && r.KappaAnti != nil {
		c.KappaBond = *r.KappaBond
		c.KappaAnti = *r.KappaAnti
		c.HasKappa = true
	}
}
