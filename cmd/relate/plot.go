package main

import (
	"fmt"
	"image/color"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/relate"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func (cmd *Plot) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}

	rule, err := boundaryRule(cmd.Rule)
	if err != nil {
		return err
	}
	a, err := loadGeometry(cmd.A, cmd.Project)
	if err != nil {
		return err
	}
	b, err := loadGeometry(cmd.B, cmd.Project)
	if err != nil {
		return err
	}

	opts := &relate.Options{BoundaryRule: rule}
	preparedA, preparedB := relate.Prepare(a, opts), relate.Prepare(b, opts)
	im := relate.RelatePrepared(preparedA, preparedB)

	p := plot.New()
	p.Title.Text = im.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	fills := [2]color.Color{
		color.NRGBA{R: colornames.Steelblue.R, G: colornames.Steelblue.G, B: colornames.Steelblue.B, A: 0x60},
		color.NRGBA{R: colornames.Orange.R, G: colornames.Orange.G, B: colornames.Orange.B, A: 0x60},
	}
	strokes := [2]color.Color{colornames.Steelblue, colornames.Darkorange}
	for i, prepared := range []*relate.PreparedGeometry{preparedA, preparedB} {
		name := string(rune('A' + i))
		if err := addGeometry(p, name, prepared.Geometry(), fills[i], strokes[i]); err != nil {
			return err
		}
		if err := addNodes(p, name, prepared.Nodes(), strokes[i]); err != nil {
			return err
		}
	}

	size := vg.Length(cmd.Size) * vg.Centimeter
	if err := p.Save(size, size, cmd.Output); err != nil {
		return errors.Wrap(err, cmd.Output)
	}
	return nil
}

func pointsXYs(points []orb.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt[0], pt[1]
	}
	return xys
}

// addGeometry draws polygons filled, lines stroked and points as crosses.
func addGeometry(p *plot.Plot, name string, g orb.Geometry, fill, stroke color.Color) error {
	points := []orb.Point{}
	var legend plot.Thumbnailer

	var add func(orb.Geometry) error
	add = func(g orb.Geometry) error {
		switch g := g.(type) {
		case orb.Point:
			points = append(points, g)
		case orb.MultiPoint:
			points = append(points, g...)
		case orb.LineString:
			l, err := plotter.NewLine(pointsXYs(g))
			if err != nil {
				return err
			}
			l.LineStyle.Color = stroke
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
			legend = l
		case orb.MultiLineString:
			for _, ls := range g {
				if err := add(ls); err != nil {
					return err
				}
			}
		case orb.Ring:
			return add(orb.Polygon{g})
		case orb.Polygon:
			rings := []plotter.XYer{}
			for _, ring := range g {
				rings = append(rings, pointsXYs(ring))
			}
			poly, err := plotter.NewPolygon(rings...)
			if err != nil {
				return err
			}
			poly.Color = fill
			poly.LineStyle.Color = stroke
			p.Add(poly)
			legend = poly
		case orb.MultiPolygon:
			for _, poly := range g {
				if err := add(poly); err != nil {
					return err
				}
			}
		case orb.Collection:
			for _, child := range g {
				if err := add(child); err != nil {
					return err
				}
			}
		case orb.Bound:
			return add(g.ToPolygon())
		}
		return nil
	}
	if err := add(g); err != nil {
		return errors.Wrapf(err, "geometry %s", name)
	}

	if 0 < len(points) {
		s, err := plotter.NewScatter(pointsXYs(points))
		if err != nil {
			return errors.Wrapf(err, "geometry %s", name)
		}
		s.GlyphStyle.Color = stroke
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		legend = s
	}
	if legend != nil {
		p.Legend.Add(name, legend)
	}
	return nil
}

// addNodes marks the graph nodes, with boundary nodes drawn as open circles.
func addNodes(p *plot.Plot, name string, nodes []relate.Node, c color.Color) error {
	interior, boundary := []orb.Point{}, []orb.Point{}
	for _, n := range nodes {
		if n.Position == relate.OnBoundary {
			boundary = append(boundary, n.Coord)
		} else {
			interior = append(interior, n.Coord)
		}
	}

	for _, group := range []struct {
		points []orb.Point
		shape  draw.GlyphDrawer
		label  string
	}{
		{interior, draw.CircleGlyph{}, "interior"},
		{boundary, draw.RingGlyph{}, "boundary"},
	} {
		if len(group.points) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pointsXYs(group.points))
		if err != nil {
			return errors.Wrapf(err, "nodes of %s", name)
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Shape = group.shape
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("%s %s nodes", name, group.label), s)
	}
	return nil
}
