/*
 * zpebop.go, part of zpebop.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Hartree2Kcal converts Hartree to kcal/mol.
const Hartree2Kcal = 627.5096

//Version is reported in output headers and serialized results.
const Version = "1.0.0"

//Model selects the level of the bond-order ZPE expansion.
type Model int

const (
	//ZPEBOP1 is the harmonic model.
	ZPEBOP1 Model = iota + 1
	//ZPEBOP2 adds anharmonic and three-body coupling terms.
	ZPEBOP2
)

func (m Model) String() string {
	switch m {
	case ZPEBOP1:
		return "ZPEBOP-1"
	case ZPEBOP2:
		return "ZPEBOP-2"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

//ParseModel returns the Model named by s, accepting the forms
//"zpebop1", "zpebop-1", "1" and the corresponding v2 spellings.
func ParseModel(s string) (Model, error) {
	switch s {
	case "zpebop1", "zpebop-1", "ZPEBOP1", "ZPEBOP-1", "1":
		return ZPEBOP1, nil
	case "zpebop2", "zpebop-2", "ZPEBOP2", "ZPEBOP-2", "2":
		return ZPEBOP2, nil
	}
	return 0, &ParseError{baseError: baseError{message: fmt.Sprintf("zpebop: unknown model %q", s)}}
}

//Atom is one center of a MinPop calculation, in input order.
type Atom struct {
	Index  int    //position in the output, starting at 1
	Symbol string
	Mass   float64 //mass of the most abundant isotope, in amu
}

//Label returns the atom's display label, e.g. "C2".
func (a *Atom) Label() string {
	return fmt.Sprintf("%s%d", a.Symbol, a.Index)
}

//PopulationRecord holds everything extracted from one MinPop output:
//the atoms, the Mulliken bond-order matrix, the interatomic distance
//matrix derived from the last standard orientation, the net Mulliken
//charges and the 2s orbital occupations of the non-hydrogen atoms.
type PopulationRecord struct {
	Atoms      []*Atom
	BondOrders *mat.SymDense //Mulliken bond orders; the diagonal is zeroed
	Distances  *mat.SymDense //interatomic distances, Angstrom
	Charges    []float64     //net Mulliken charges, one per atom
	Occ2S      map[int]float64 //2s occupations keyed by 1-based atom index
}

//Len returns the number of atoms in the record.
func (r *PopulationRecord) Len() int {
	return len(r.Atoms)
}

//Result holds the outcome of a ZPE computation. Both matrices are
//symmetric with a zero diagonal; entry (i,j) is the contribution of
//the i-j atom pair in kcal/mol.
type Result struct {
	Model     Model
	Total     float64       //total zero-point energy, kcal/mol
	TwoBody   *mat.SymDense //harmonic plus anharmonic pair energies
	ThreeBody *mat.SymDense //three-body couplings decomposed onto pairs; all zero for ZPEBOP1
}

//Gross returns a copy of the two-body bond energy matrix.
func (r *Result) Gross() *mat.SymDense {
	n := r.TwoBody.SymmetricDim()
	g := mat.NewSymDense(n, nil)
	g.CopySym(r.TwoBody)
	return g
}

//Net returns the two-body matrix with the three-body decomposition
//added in, so that its upper-triangle sum equals Total.
func (r *Result) Net() *mat.SymDense {
	n := r.TwoBody.SymmetricDim()
	net := mat.NewSymDense(n, nil)
	net.AddSym(r.TwoBody, r.ThreeBody)
	return net
}

//upperSum adds up the strict upper triangle of a symmetric matrix.
func upperSum(m *mat.SymDense) float64 {
	n := m.SymmetricDim()
	var tot float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			tot += m.At(i, j)
		}
	}
	return tot
}
