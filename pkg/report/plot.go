// Histogram of gene GC3 for one genome.

package report

import (
	"image/color"
	"path/filepath"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const nBins = 50

// PlotName is where the histogram for a species goes.
func PlotName(dir, species string) string {
	return filepath.Join(dir, species+"_GC3.svg")
}

// PlotGC3 draws the distribution of gene GC3 with the cutoff as a
// dashed line. A genome with no genes gets no plot and no error.
func PlotGC3(fname string, s *genome.Summary, cutoff int) error {
	var vals plotter.Values
	for _, c := range s.Chroms {
		for _, g := range c.Genes {
			vals = append(vals, g.GC3)
		}
	}
	if len(vals) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = s.Species + " (" + s.Clade + ")"
	p.X.Label.Text = "GC3 %"
	p.Y.Label.Text = "Genes"

	h, err := plotter.NewHist(vals, nBins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(h)

	ymax := 0.
	for _, b := range h.Bins {
		if b.Weight > ymax {
			ymax = b.Weight
		}
	}
	x := float64(cutoff)
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.RGBA{R: 200, A: 255}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line)
	p.Legend.Add("cutoff", line)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}
