/*
 * engine.go, part of zpebop.
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

//Bond orders at or below this magnitude do not couple in the
//three-body term.
const negligibleBO = 1e-9

//Compute evaluates the requested model on a population record and
//returns the total zero-point energy together with the per-pair
//decomposition. The record is not modified; results are freshly
//allocated on every call.
//
//ZPEBOP-1 is the harmonic sum 2*beta*|P| over all parameterized pairs.
//ZPEBOP-2 adds, per pair with anharmonic coefficients, the correction
//A*exp(-zeta*(R-R0)), and a three-body coupling over atom triples
//whose three pairs all carry kappa coefficients; each triple's energy
//is split back onto its pairs in proportion to their two-body share.
//Pairs or triples without coefficients contribute exactly zero.
func Compute(rec *PopulationRecord, params *ParameterSet, model Model) (*Result, error) {
	if rec == nil {
		panic(ErrNilRecord)
	}
	if params == nil {
		panic(ErrNilParameters)
	}
	if model != ZPEBOP1 && model != ZPEBOP2 {
		return nil, newInvariantViolation("unknown model %d", int(model))
	}
	n := rec.Len()
	if rec.BondOrders == nil || rec.BondOrders.SymmetricDim() != n {
		return nil, newInvariantViolation("bond-order matrix does not match %d atoms", n)
	}
	if model == ZPEBOP2 && (rec.Distances == nil || rec.Distances.SymmetricDim() != n) {
		return nil, newInvariantViolation("distance matrix does not match %d atoms", n)
	}
	two := mat.NewSymDense(n, nil)
	three := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := rec.BondOrders.At(i, j)
			c, ok := params.Pair(rec.Atoms[i].Symbol, rec.Atoms[j].Symbol)
			if !ok {
				continue
			}
			e := 2.0 * c.Beta(antibonding(p, n)) * math.Abs(p)
			if model == ZPEBOP2 && c.HasAnharm {
				e += c.PreExp * math.Exp(-c.Zeta*(rec.Distances.At(i, j)-c.RParam))
			}
			two.SetSym(i, j, e)
		}
	}
	if model == ZPEBOP2 {
		threeBody(rec, params, two, three)
	}
	return &Result{
		Model:     model,
		Total:     upperSum(two) + upperSum(three),
		TwoBody:   two,
		ThreeBody: three,
	}, nil
}

//A negative bond order marks an antibonding pair, except in diatomics
//where the published parameterization always uses the bonding column.
func antibonding(p float64, natoms int) bool {
	return p < 0 && natoms > 2
}

//threeBody adds every triple's coupling into the decomposition matrix.
//Triples run over i > j > k so each one is visited once; contributions
//from distinct triples sharing a pair accumulate.
func threeBody(rec *PopulationRecord, params *ParameterSet, two, three *mat.SymDense) {
	n := rec.Len()
	bo := rec.BondOrders
	dm := rec.Distances
	for i := 2; i < n; i++ {
		for j := 1; j < i; j++ {
			for k := 0; k < j; k++ {
				pij := bo.At(i, j)
				pik := bo.At(i, k)
				pjk := bo.At(j, k)
				if math.Abs(pij) <= negligibleBO || math.Abs(pik) <= negligibleBO || math.Abs(pjk) <= negligibleBO {
					continue
				}
				kappa, ok := params.TripleKappa(
					rec.Atoms[i].Symbol, rec.Atoms[j].Symbol, rec.Atoms[k].Symbol,
					antibonding(pij, n), antibonding(pik, n), antibonding(pjk, n))
				if !ok {
					continue
				}
				rij := dm.At(i, j)
				rik := dm.At(i, k)
				rjk := dm.At(j, k)
				cosIJ := clampCos((rik*rik + rjk*rjk - rij*rij) / (2 * rik * rjk))
				cosIK := clampCos((rij*rij + rjk*rjk - rik*rik) / (2 * rij * rjk))
				cosJK := clampCos((rij*rij + rik*rik - rjk*rjk) / (2 * rij * rik))
				val := kappa * (2 * math.Abs(pij)) * (2 * math.Abs(pik)) * (2 * math.Abs(pjk)) *
					cosIJ * cosIK * cosJK
				eij := two.At(i, j)
				eik := two.At(i, k)
				ejk := two.At(j, k)
				sum := eij + eik + ejk
				if sum == 0 {
					continue
				}
				three.SetSym(j, i, three.At(i, j)+val*(eij/sum))
				three.SetSym(k, i, three.At(i, k)+val*(eik/sum))
				three.SetSym(k, j, three.At(j, k)+val*(ejk/sum))
			}
		}
	}
}

//The law of cosines can wander out of [-1,1] for nearly collinear
//triples, from rounding in the distance matrix.
func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}
