/*
 * atomicdata.go, part of zpebop.
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

//A map for assigning mass to elements.
//These are the masses of the most abundant isotope of each element,
//which the isotope corrector uses as the unsubstituted reference.
//Only the first-three-row elements covered by the parameter tables
//are present.
var symbolMass = map[string]float64{
	"H":  1.00782503207,
	"He": 4.00260325415,
	"Li": 7.01600455,
	"Be": 9.0121822,
	"B":  11.0093054,
	"C":  12.0000000,
	"N":  14.0030740048,
	"O":  15.99491461956,
	"F":  18.99840322,
	"Ne": 19.9924401754,
	"Na": 22.9897692809,
	"Mg": 23.9850417,
	"Al": 26.98153863,
	"Si": 27.9769265325,
	"P":  30.97376163,
	"S":  31.97207100,
	"Cl": 34.96885268,
	"Ar": 39.9623831225,
}

//Atomic numbers for the supported elements, and the reverse map,
//for reading Gaussian orientation blocks.
var symbolZ = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18,
}

var zSymbol = map[int]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O",
	9: "F", 10: "Ne", 11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar",
}

//CommonIsotopes maps spectroscopic isotope labels to masses in amu, so
//substitutions can be requested by name (1:D) as well as by numeric mass.
var CommonIsotopes = map[string]float64{
	"D":    2.01410177812,
	"T":    3.0160492779,
	"C12":  12.0000000,
	"C13":  13.00335483507,
	"C14":  14.0032419884,
	"N14":  14.00307400443,
	"N15":  15.00010889888,
	"O16":  15.99491461957,
	"O17":  16.99913175650,
	"O18":  17.99915961286,
	"S32":  31.9720711744,
	"S33":  32.9714589098,
	"S34":  33.967867004,
	"Cl35": 34.968852682,
	"Cl37": 36.965902602,
}

//SymbolMass returns the reference (most abundant isotope) mass for an
//element symbol, in amu.
func SymbolMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}
