/*
 * report.go, part of zpebop.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//DefaultBondThreshold is the magnitude below which a pair energy is
//left out of sorted bond-energy listings.
const DefaultBondThreshold = 0.01

//BondEnergy is one pair entry of a sorted bond-energy listing.
//I and J are 1-based atom indices with I < J.
type BondEnergy struct {
	I, J   int
	Label  string //e.g. "C2-H1", substituted atoms marked with "*"
	Energy float64 //kcal/mol
}

//SortOptions controls SortedBondEnergies. The zero value sorts
//ascending and applies DefaultBondThreshold; a negative Threshold
//keeps every pair. Atoms listed in Isotopes get a "*" mark in labels.
type SortOptions struct {
	Descending bool
	Threshold  float64
	Isotopes   map[int]float64
}

//SortedBondEnergies flattens a pair-energy matrix into a list sorted
//by energy. Ties are broken by atom indices so the order is stable.
func SortedBondEnergies(m *mat.SymDense, atoms []*Atom, opts SortOptions) []BondEnergy {
	thr := opts.Threshold
	if thr == 0 {
		thr = DefaultBondThreshold
	}
	n := m.SymmetricDim()
	var out []BondEnergy
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e := m.At(i, j)
			if math.Abs(e) < thr {
				continue
			}
			out = append(out, BondEnergy{
				I:      i + 1,
				J:      j + 1,
				Label:  starLabel(atoms[i], opts.Isotopes) + "-" + starLabel(atoms[j], opts.Isotopes),
				Energy: e,
			})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		x, y := out[a], out[b]
		if x.Energy != y.Energy {
			if opts.Descending {
				return x.Energy > y.Energy
			}
			return x.Energy < y.Energy
		}
		if x.I != y.I {
			return x.I < y.I
		}
		return x.J < y.J
	})
	return out
}

func starLabel(a *Atom, isotopes map[int]float64) string {
	l := a.Label()
	if _, ok := isotopes[a.Index]; ok {
		l += "*"
	}
	return l
}

//Composite merges the gross (two-body) and net (two-body plus
//three-body) matrices into one square table: gross energies above the
//diagonal, net energies below, zeros on it. This is the layout of the
//printed bond-energy table for ZPEBOP-2 runs.
func Composite(gross, net *mat.SymDense) *mat.Dense {
	n := gross.SymmetricDim()
	if net.SymmetricDim() != n {
		panic(ErrShape)
	}
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out.Set(i, j, gross.At(i, j))
			out.Set(j, i, net.At(i, j))
		}
	}
	return out
}
