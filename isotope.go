/*
 * isotope.go, part of zpebop.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//IsotopeResult holds an isotope-corrected ZPE next to its
//unsubstituted reference. All matrices are indexed like the record's
//atoms; Factors carries the per-pair sqrt(mu_n/mu_s) scale, 1 for
//pairs not touching a substituted atom.
type IsotopeResult struct {
	Normal    *Result
	Total     float64       //isotope-corrected ZPE, kcal/mol
	TwoBody   *mat.SymDense //scaled two-body energies
	ThreeBody *mat.SymDense //scaled three-body shares
	Factors   *mat.SymDense
	Isotopes  map[int]float64 //the substitutions applied, by atom index
}

//Difference returns the ZPE lowered (or raised) by substitution:
//normal minus isotope-corrected.
func (r *IsotopeResult) Difference() float64 {
	return r.Normal.Total - r.Total
}

//Ratio returns isotope-corrected over normal total.
func (r *IsotopeResult) Ratio() float64 {
	return r.Total / r.Normal.Total
}

//Net returns the corrected two-body energies with the corrected
//three-body shares folded in, in a new matrix.
func (r *IsotopeResult) Net() *mat.SymDense {
	out := mat.NewSymDense(r.TwoBody.SymmetricDim(), nil)
	out.CopySym(r.TwoBody)
	out.AddSym(out, r.ThreeBody)
	return out
}

//ComputeIsotope rescales a computed result for isotopic substitution.
//isotopes maps 1-based atom indices to the substituted mass in amu.
//Every pair energy (and its three-body share) involving a substituted
//atom is scaled by sqrt(mu_n/mu_s), the square root of the ratio of the
//normal to the substituted reduced mass of the pair; pairs of two
//unsubstituted atoms pass through unchanged. An empty map is a no-op
//that reproduces the input totals. The electronic structure is not
//recomputed: bond orders are isotope-independent.
func ComputeIsotope(res *Result, rec *PopulationRecord, isotopes map[int]float64) (*IsotopeResult, error) {
	if res == nil {
		panic(ErrNilResult)
	}
	if rec == nil {
		panic(ErrNilRecord)
	}
	n := rec.Len()
	if res.TwoBody.SymmetricDim() != n {
		return nil, newInvariantViolation("result matrices do not match %d atoms", n)
	}
	for idx, m := range isotopes {
		if idx < 1 || idx > n {
			return nil, newInvalidIsotopeError(idx, "isotope atom index %d out of range (%d atoms)", idx, n)
		}
		if m <= 0 {
			return nil, newInvalidIsotopeError(idx, "isotope mass %g for atom %d is not positive", m, idx)
		}
	}
	factors := mat.NewSymDense(n, nil)
	two := mat.NewSymDense(n, nil)
	three := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f := 1.0
			_, si := isotopes[i+1]
			_, sj := isotopes[j+1]
			if si || sj {
				f = pairFactor(rec.Atoms[i], rec.Atoms[j], isotopes)
			}
			factors.SetSym(i, j, f)
			two.SetSym(i, j, res.TwoBody.At(i, j)*f)
			three.SetSym(i, j, res.ThreeBody.At(i, j)*f)
		}
	}
	applied := make(map[int]float64, len(isotopes))
	for k, v := range isotopes {
		applied[k] = v
	}
	return &IsotopeResult{
		Normal:    res,
		Total:     upperSum(two) + upperSum(three),
		TwoBody:   two,
		ThreeBody: three,
		Factors:   factors,
		Isotopes:  applied,
	}, nil
}

//pairFactor is sqrt(mu_n/mu_s) for one pair, with mu the reduced mass
//m1*m2/(m1+m2) built from reference masses (mu_n) and from masses with
//the substitutions applied (mu_s).
func pairFactor(a, b *Atom, isotopes map[int]float64) float64 {
	ma, mb := a.Mass, b.Mass
	sa, sb := ma, mb
	if m, ok := isotopes[a.Index]; ok {
		sa = m
	}
	if m, ok := isotopes[b.Index]; ok {
		sb = m
	}
	mun := ma * mb / (ma + mb)
	mus := sa * sb / (sa + sb)
	return math.Sqrt(mun / mus)
}
