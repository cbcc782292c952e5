/*
 * doc.go, part of zpebop.
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

//Package zpebop estimates molecular zero-point vibrational energies from
//Mulliken bond orders and populations, as printed by Gaussian MinPop
//(Pop=(Full) with IOp(6/27=122)) output files.
//
//Two models are available. ZPEBOP-1 is purely harmonic: each atom pair
//contributes 2*beta*|P|, with beta an element-pair constant and P the
//Mulliken bond order. ZPEBOP-2 adds a short-range anharmonic correction
//A*exp(-zeta*(R-R0)) for parameterized pairs and a three-body coupling
//term over triples of B, C, N and O atoms, decomposed back onto the pairs.
//An isotope corrector rescales per-bond energies by the square root of the
//reduced-mass ratio, which gives isotopic ZPE shifts without recomputing
//the electronic structure.
//
//The usual workflow is
//
//	rec, err := zpebop.ReadMinPopFile("mol.out")
//	par, err := zpebop.LoadParameters("opt_parameters")
//	res, err := zpebop.Compute(rec, par, zpebop.ZPEBOP2)
//
//All energies are in kcal/mol, distances in Angstrom and masses in amu.
package zpebop
