/*
 * json.go, part of zpebop.
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

package bopjson

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	zpebop "github.com/crudechem/zpebop"
)

//An easily JSON-serializable error type.
type Error struct {
	deco     []string
	IsError  bool   //false means the other fields are at their zero values
	Function string //which function gave the error
	Message  string //the error itself
}

//Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

//Decorate will add the dec string to the decoration slice of strings
//of the error, and return the resulting slice.
func (e *Error) Decorate(dec string) []string {
	if dec != "" {
		e.deco = append(e.deco, dec)
	}
	return e.deco
}

//Critical implements zpebop.Error.
func (e *Error) Critical() bool { return e.IsError }

//Marshal serializes the error. Panics on failure.
func (e *Error) Marshal() []byte {
	ret, err2 := json.Marshal(e)
	if err2 != nil {
		panic(e.Message + " - " + err2.Error())
	}
	return ret
}

func newError(function string, err error) *Error {
	return &Error{IsError: true, Function: function, Message: err.Error()}
}

//A ready-to-serialize matrix of pair energies, rows in atom order.
type Matrix struct {
	Total [][]float64 `json:"total"`
}

//BondEnergies holds the gross (two-body) and net (two-body plus
//three-body) pair-energy matrices, and the composite table that prints
//gross energies above the diagonal and net energies below it.
type BondEnergies struct {
	Gross     Matrix      `json:"gross"`
	Net       Matrix      `json:"net"`
	Composite [][]float64 `json:"composite table"`
}

//SortedEnergies is the sorted bond-energy listing, labels and values
//in matching order.
type SortedEnergies struct {
	Bonds    []string  `json:"sorted bonds"`
	Energies []float64 `json:"bond energies"`
}

//Isotope reports a mass-substituted recomputation next to the normal
//one. Masses is keyed by 1-based atom index.
type Isotope struct {
	Masses map[int]float64 `json:"masses"`
	Total  float64         `json:"zero point energy"`
	Delta  float64         `json:"delta zpe"`
	Ratio  float64         `json:"ratio"`
}

//Document is the full serializable result of a run. The field layout
//and key names follow the historical bopout.json format, so files
//written here stay readable by existing tooling.
type Document struct {
	Method       string          `json:"method"`
	Version      string          `json:"version"`
	InputFile    string          `json:"HF output file"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	ZeroPoint    float64         `json:"zero point energy"`
	BondEnergies *BondEnergies   `json:"bond energies,omitempty"`
	Sorted       *SortedEnergies `json:"sorted net bond energies,omitempty"`
	Isotope      *Isotope        `json:"isotope substitution,omitempty"`
}

//NewDocument starts a document for one computed result, stamped with
//the current date and time.
func NewDocument(res *zpebop.Result, inputFile string) *Document {
	now := time.Now()
	return &Document{
		Method:    res.Model.String(),
		Version:   zpebop.Version,
		InputFile: inputFile,
		Date:      now.Format("02-January-2006"),
		Time:      now.Format("15:04:05"),
		ZeroPoint: res.Total,
	}
}

//AddBondEnergies attaches the gross, net and composite tables.
func (d *Document) AddBondEnergies(res *zpebop.Result) {
	gross := res.Gross()
	net := res.Net()
	d.BondEnergies = &BondEnergies{
		Gross:     Matrix{Total: symRows(gross)},
		Net:       Matrix{Total: symRows(net)},
		Composite: denseRows(zpebop.Composite(gross, net)),
	}
}

//AddSorted attaches a sorted bond-energy listing.
func (d *Document) AddSorted(list []zpebop.BondEnergy) {
	s := &SortedEnergies{
		Bonds:    make([]string, len(list)),
		Energies: make([]float64, len(list)),
	}
	for i, be := range list {
		s.Bonds[i] = be.Label
		s.Energies[i] = be.Energy
	}
	d.Sorted = s
}

//AddIsotope attaches the isotope comparison block.
func (d *Document) AddIsotope(iso *zpebop.IsotopeResult) {
	masses := make(map[int]float64, len(iso.Isotopes))
	for k, v := range iso.Isotopes {
		masses[k] = v
	}
	d.Isotope = &Isotope{
		Masses: masses,
		Total:  iso.Total,
		Delta:  iso.Difference(),
		Ratio:  iso.Ratio(),
	}
}

//Send writes the document to out as indented JSON.
func (d *Document) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return newError("bopjson.Document.Send", err)
	}
	return nil
}

//Read decodes a document written by Send.
func Read(r io.Reader) (*Document, *Error) {
	d := new(Document)
	dec := json.NewDecoder(r)
	if err := dec.Decode(d); err != nil {
		return nil, newError("bopjson.Read", err)
	}
	return d, nil
}

func symRows(m *mat.SymDense) [][]float64 {
	n := m.SymmetricDim()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

func denseRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

//SymFromRows rebuilds a symmetric matrix from serialized rows, e.g.
//to feed a decoded document back into sorting or plotting.
func SymFromRows(rows [][]float64) (*mat.SymDense, *Error) {
	n := len(rows)
	out := mat.NewSymDense(n, nil)
	for i, row := range rows {
		if len(row) != n {
			return nil, newError("bopjson.SymFromRows",
				fmt.Errorf("row %d has %d columns, want %d", i, len(row), n))
		}
		for j := i; j < n; j++ {
			out.SetSym(i, j, rows[i][j])
		}
	}
	return out, nil
}
