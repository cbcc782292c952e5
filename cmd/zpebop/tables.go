/*
 * tables.go, part of zpebop.
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
	"fmt"
	"io"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	zpebop "github.com/crudechem/zpebop"
)

//The report layout follows the historical output of the reference
//program: a centered title block, lower-triangular tables in blocks of
//five columns, and a composite table with gross energies above the
//diagonal and net energies below it.

func printTitle(w io.Writer, file, folder string, res *zpebop.Result) {
	now := time.Now()
	fmt.Fprintf(w, "\n\n\n%sSUMMARY OF %s CALCULATION\n\n", strings.Repeat(" ", 20), res.Model.String())
	fmt.Fprintf(w, "%s%s (Version %s)\n", strings.Repeat(" ", 24), res.Model.String(), zpebop.Version)
	fmt.Fprintf(w, "%s%s %s\n\n\n", strings.Repeat(" ", 23), now.Format("02-January-2006"), now.Format("15:04:05"))
	fmt.Fprintf(w, "   HARTREE-FOCK OUTPUT:  %s\n\n", file)
	fmt.Fprintf(w, "   ZPE-BOP PARAMETER FOLDER: %s\n\n\n", folder)
	fmt.Fprintf(w, "  ZERO-POINT ENERGY (0 K)  =     %.3f KCAL/MOL\n\n\n", res.Total)
}

func printIsotopeSummary(w io.Writer, iso *zpebop.IsotopeResult) {
	fmt.Fprintf(w, "  ISOTOPE ZPE (0 K)        =     %.3f KCAL/MOL\n", iso.Total)
	fmt.Fprintf(w, "  DELTA ZPE (NORMAL-ISO)   =     %.3f KCAL/MOL\n", iso.Difference())
	fmt.Fprintf(w, "  ZPE RATIO (ISO/NORMAL)   =     %.6f\n\n\n", iso.Ratio())
}

func printBondTables(w io.Writer, res *zpebop.Result, atoms []*zpebop.Atom) {
	gross := res.Gross()
	net := res.Net()
	fmt.Fprintf(w, "   GROSS TOTAL BOND ENERGIES\n")
	printLowerTriangle(w, gross, atoms)
	fmt.Fprintf(w, "\n\n   TOTAL GROSS ENERGY     =     %.2f KCAL/MOL\n\n\n", pairSum(gross))
	fmt.Fprintf(w, "   NET TOTAL ENERGIES\n")
	printLowerTriangle(w, net, atoms)
	fmt.Fprintf(w, "\n\n   TOTAL NET ENERGY     =     %.2f KCAL/MOL\n\n\n", pairSum(net))
	fmt.Fprintf(w, "   COMPOSITE TABLE:    0            EIJ(GROSS)\n%sEJI(NET)     0\n", strings.Repeat(" ", 23))
	printComposite(w, zpebop.Composite(gross, net), atoms)
	fmt.Fprint(w, "\n\n\n")
}

func printIsotopeTables(w io.Writer, iso *zpebop.IsotopeResult, atoms []*zpebop.Atom) {
	net := iso.Net()
	fmt.Fprintf(w, "   ISOTOPE-CORRECTED NET ENERGIES\n")
	printLowerTriangle(w, net, atoms)
	fmt.Fprintf(w, "\n\n   TOTAL ISOTOPE ENERGY     =     %.2f KCAL/MOL\n\n\n", pairSum(net))
	fmt.Fprintf(w, "   ISOTOPE CORRECTION FACTORS\n")
	printLowerTriangle(w, iso.Factors, atoms)
	fmt.Fprint(w, "\n\n\n")
}

func printSorted(w io.Writer, list []zpebop.BondEnergy, desc bool) {
	order := "LOWEST TO HIGHEST"
	if desc {
		order = "HIGHEST TO LOWEST"
	}
	fmt.Fprintf(w, "  SORTED NET VIB. BONDING ENERGIES (%s)\n\n", order)
	fmt.Fprintf(w, "  ----------------------------\n")
	fmt.Fprintf(w, "     BOND       BOND ENERGIES \n")
	fmt.Fprintf(w, "   IDENTITY       (KCAL/MOL)  \n")
	fmt.Fprintf(w, "  ----------------------------\n")
	for _, be := range list {
		fmt.Fprintf(w, "  %9s         %-5.2f\n", be.Label, be.Energy)
	}
	fmt.Fprintf(w, "  ----------------------------\n\n")
}

//printHeader writes one block's column numbers, right-aligned in ten
//characters each.
func printHeader(w io.Writer, from, to int) {
	fmt.Fprint(w, strings.Repeat(" ", 10))
	for c := from; c < to; c++ {
		sep := " "
		if c == to-1 {
			sep = "\n"
		}
		fmt.Fprintf(w, "%10d%s", c+1, sep)
	}
}

//printLowerTriangle prints the diagonal and everything below it, five
//columns at a time.
func printLowerTriangle(w io.Writer, m *mat.SymDense, atoms []*zpebop.Atom) {
	n := len(atoms)
	for p := 0; p < n; p += 5 {
		last := p + 5
		if last > n {
			last = n
		}
		printHeader(w, p, last)
		for l := p; l < n; l++ {
			fmt.Fprintf(w, "    %2d  %4s", l+1, atoms[l].Symbol)
			cols := l - p + 1
			if cols > 5 {
				cols = 5
			}
			for j := 0; j < cols; j++ {
				sep := "  "
				if j == cols-1 {
					sep = "\n"
				}
				fmt.Fprintf(w, "%9.2f%s", m.At(l, p+j), sep)
			}
		}
	}
}

//printComposite prints every row of the full square table, five
//columns at a time.
func printComposite(w io.Writer, m *mat.Dense, atoms []*zpebop.Atom) {
	n := len(atoms)
	for p := 0; p < n; p += 5 {
		last := p + 5
		if last > n {
			last = n
		}
		printHeader(w, p, last)
		for l := 0; l < n; l++ {
			fmt.Fprintf(w, "    %2d  %4s", l+1, atoms[l].Symbol)
			for c := p; c < last; c++ {
				sep := "  "
				if c == last-1 {
					sep = "\n"
				}
				fmt.Fprintf(w, "%9.2f%s", m.At(l, c), sep)
			}
		}
	}
}

func pairSum(m *mat.SymDense) float64 {
	n := m.SymmetricDim()
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += m.At(i, j)
		}
	}
	return sum
}
