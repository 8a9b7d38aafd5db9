/*
 * cell.go, part of goXtal.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package xtalplot plots 2D projections of crystal cells. It is meant for
// quick visual checks, say, that a primitive cell obtained with
// xtal.Primitive looks reasonable, not for publication-quality figures.
package xtalplot

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	xtal "github.com/rmera/goxtal"
)

// The pairs of fractional axes that can be projected on.
var planes = map[string][2]int{"ab": {0, 1}, "bc": {1, 2}, "ca": {2, 0}}

func basicCellPlot(title, plane string) (*plot.Plot, error) {
	if _, ok := planes[plane]; !ok {
		return nil, fmt.Errorf("xtalplot: unknown projection plane %q (want ab, bc or ca)", plane)
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	labels := strings.Split(plane, "")
	p.X.Label.Text = labels[0] + " (fractional)"
	p.Y.Label.Text = labels[1] + " (fractional)"
	//The cell spans [0,1) in fractional coordinates. A bit of margin so
	//atoms at the borders don't sit on the frame.
	p.X.Min = -0.1
	p.X.Max = 1.1
	p.Y.Min = -0.1
	p.Y.Max = 1.1
	p.Add(plotter.NewGrid())
	return p, nil
}

// The cell outline, a unit square in fractional coordinates.
func outline() plotter.XYs {
	return plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
}

// Cell plots the atoms of S projected on the given plane of fractional
// coordinates ("ab", "bc" or "ca"), one color per atom type, with the cell
// outline, and saves it as plotname.png. Coordinates are wrapped into [0,1)
// before plotting.
func Cell(S *xtal.Structure, plane, title, plotname string) error {
	if err := S.Corrupted(); err != nil {
		return err
	}
	p, err := basicCellPlot(title, plane)
	if err != nil {
		return err
	}
	ax := planes[plane]
	W := S.Wrap()
	//One scatter per atom type, so each gets its own color and legend entry.
	bytype := make(map[string]plotter.XYs)
	order := make([]string, 0, 2)
	for i := 0; i < W.Len(); i++ {
		t := W.Types[i]
		if _, ok := bytype[t]; !ok {
			order = append(order, t)
		}
		bytype[t] = append(bytype[t], plotter.XY{X: W.Coords.At(i, ax[0]), Y: W.Coords.At(i, ax[1])})
	}
	box, err := plotter.NewLine(outline())
	if err != nil {
		return err
	}
	p.Add(box)
	for key, t := range order {
		s, err := plotter.NewScatter(bytype[t])
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(key)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(t, s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename)
}
