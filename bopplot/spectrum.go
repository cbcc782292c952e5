/*
 * spectrum.go, part of zpebop.
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

//Package bopplot draws bond-energy spectra: one bar per pair, sorted
//by energy, so the stiff bonds of a molecule stand out at a glance.
package bopplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	zpebop "github.com/crudechem/zpebop"
)

//Spectrum builds a bar chart from a sorted bond-energy listing.
func Spectrum(list []zpebop.BondEnergy, title string) (*plot.Plot, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("Spectrum: empty bond-energy listing")
	}
	vals := make(plotter.Values, len(list))
	labels := make([]string, len(list))
	for i, be := range list {
		vals[i] = be.Energy
		labels[i] = be.Label
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Bond energy (kcal/mol)"
	bars, err := plotter.NewBarChart(vals, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %v", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 50, G: 90, B: 160, A: 255}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.6
	return p, nil
}

//SpectrumFile draws the spectrum and saves it under filename. The
//format follows the filename extension (png, svg, pdf and the other
//formats plot.Save knows).
func SpectrumFile(list []zpebop.BondEnergy, title, filename string) error {
	p, err := Spectrum(list, title)
	if err != nil {
		return err
	}
	width := vg.Points(float64(40*len(list)) + 120)
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	if err := p.Save(width, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("SpectrumFile: %v", err)
	}
	return nil
}
