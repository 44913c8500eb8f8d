/*
 * plot.go, part of gocrystal.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// Package crystalplot draws the histograms produced by gocrystal, such as pair-distance
// distributions, using gonum/plot.
package crystalplot

import (
	"fmt"
	"io"

	"github.com/rmera/gocrystal/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default size of the saved plots.
const (
	Width  = 12 * vg.Centimeter
	Height = 8 * vg.Centimeter
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Histograms returns a plot with one line per histogram in hs, going through the bin
// centers. The label of each histogram, if any, goes in the legend.
func Histograms(hs []*histo.Data, title, xlabel, ylabel string) (*plot.Plot, error) {
	if len(hs) == 0 {
		return nil, fmt.Errorf("gocrystal/crystalplot.Histograms: no histograms given")
	}
	p := basicPlot(title, xlabel, ylabel)
	for key, h := range hs {
		centers := h.Centers()
		bins := h.View()
		pts := make(plotter.XYs, len(centers))
		for i := range pts {
			pts[i].X = centers[i]
			pts[i].Y = bins[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("gocrystal/crystalplot.Histograms: histogram %d: %v", key, err)
		}
		l.LineStyle.Color = lineColor(key, len(hs))
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		if h.Label() != "" {
			p.Legend.Add(h.Label(), l)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// DistanceHistograms plots pair-distance histograms, with distances in Angstrom.
func DistanceHistograms(hs []*histo.Data, title string) (*plot.Plot, error) {
	ylabel := "Pairs"
	if len(hs) > 0 && hs[0].Normalized() {
		ylabel = "Fraction of pairs"
	}
	return Histograms(hs, title, "Distance (Å)", ylabel)
}

// SaveDistanceHistograms saves a plot of the pair-distance histograms hs to the
// file filename. The format is taken from the extension of the file (i.e. png, svg, pdf).
func SaveDistanceHistograms(hs []*histo.Data, title, filename string) error {
	p, err := DistanceHistograms(hs, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, filename)
}

// WriteDistanceHistograms writes a plot of the pair-distance histograms hs to w, in
// the given format (i.e. "png", "svg").
func WriteDistanceHistograms(w io.Writer, hs []*histo.Data, title, format string) error {
	p, err := DistanceHistograms(hs, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
