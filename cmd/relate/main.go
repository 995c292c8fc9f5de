package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/relate"
)

type Matrix struct {
	Rule    string `short:"r" default:"mod2" desc:"Boundary node rule: mod2, endpoint, multivalent or monovalent"`
	Project int    `desc:"Project longitude/latitude input to the given EPSG code"`
	Verbose bool   `short:"v" desc:"Log the matrix computation"`
	A       string `index:"0" desc:"Geometry A as WKT or a .wkt, .geojson, .json or .osm file"`
	B       string `index:"1" desc:"Geometry B as WKT or a .wkt, .geojson, .json or .osm file"`
}

type Match struct {
	Pattern string `short:"p" desc:"DE-9IM pattern, such as T*F**F***"`
	Rule    string `short:"r" default:"mod2" desc:"Boundary node rule: mod2, endpoint, multivalent or monovalent"`
	Project int    `desc:"Project longitude/latitude input to the given EPSG code"`
	A       string `index:"0" desc:"Geometry A"`
	B       string `index:"1" desc:"Geometry B"`
}

type Position struct {
	Coord   string `short:"x" desc:"Coordinate as \"X Y\""`
	Rule    string `short:"r" default:"mod2" desc:"Boundary node rule: mod2, endpoint, multivalent or monovalent"`
	Project int    `desc:"Project longitude/latitude input to the given EPSG code"`
	Input   string `index:"0" desc:"Geometry"`
}

type Plot struct {
	Output  string  `short:"o" default:"relate.png" desc:"Output file, the extension selects the image format"`
	Size    float64 `short:"s" default:"12" desc:"Image size in centimeters"`
	Rule    string  `short:"r" default:"mod2" desc:"Boundary node rule: mod2, endpoint, multivalent or monovalent"`
	Project int     `desc:"Project longitude/latitude input to the given EPSG code"`
	A       string  `index:"0" desc:"Geometry A"`
	B       string  `index:"1" desc:"Geometry B"`
}

func main() {
	root := argp.NewCmd(&Matrix{}, "DE-9IM spatial relationship toolkit")
	root.AddCmd(&Match{}, "match", "Match the intersection matrix against a pattern")
	root.AddCmd(&Position{}, "position", "Locate a coordinate in a geometry")
	root.AddCmd(&Plot{}, "plot", "Plot two geometries and the nodes of their graphs")
	root.Parse()
	root.PrintHelp()
}

func boundaryRule(name string) (relate.BoundaryRule, error) {
	switch name {
	case "", "mod2":
		return relate.Mod2BoundaryRule, nil
	case "endpoint":
		return relate.EndPointBoundaryRule, nil
	case "multivalent":
		return relate.MultivalentEndPointBoundaryRule, nil
	case "monovalent":
		return relate.MonovalentEndPointBoundaryRule, nil
	}
	return nil, errors.Errorf("unknown boundary rule %q", name)
}

func (cmd *Matrix) Run() error {
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

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cmd.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	im := relate.RelateWithOptions(a, b, &relate.Options{
		BoundaryRule: rule,
		Log:          log,
	})
	fmt.Println(im)
	fmt.Println("Dimensions:", relate.Dimensions(a), relate.Dimensions(b))
	for _, predicate := range []struct {
		name string
		ok   bool
	}{
		{"intersects", im.IsIntersects()},
		{"disjoint", im.IsDisjoint()},
		{"contains", im.IsContains()},
		{"contains properly", im.IsContainsProperly()},
		{"within", im.IsWithin()},
		{"covers", im.IsCovers()},
		{"covered by", im.IsCoveredBy()},
		{"touches", im.IsTouches()},
		{"crosses", im.IsCrosses()},
		{"overlaps", im.IsOverlaps()},
		{"equals", im.IsEqualTopo()},
	} {
		fmt.Printf("%18s: %v\n", predicate.name, predicate.ok)
	}
	return nil
}

func (cmd *Match) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	} else if cmd.Pattern == "" {
		fmt.Println("ERROR: must specify pattern")
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

	im := relate.RelateWithOptions(a, b, &relate.Options{BoundaryRule: rule})
	match, err := im.Matches(cmd.Pattern)
	if err != nil {
		return err
	}
	fmt.Println(im, match)
	if !match {
		os.Exit(1)
	}
	return nil
}

func (cmd *Position) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Coord == "" {
		fmt.Println("ERROR: must specify coordinate")
		return argp.ShowUsage
	}

	rule, err := boundaryRule(cmd.Rule)
	if err != nil {
		return err
	}
	g, err := loadGeometry(cmd.Input, cmd.Project)
	if err != nil {
		return err
	}
	p, err := parseCoord(cmd.Coord)
	if err != nil {
		return err
	}
	if cmd.Project != 0 {
		if p, err = projectPoint(p, cmd.Project); err != nil {
			return err
		}
	}
	fmt.Println(relate.PositionWithRule(g, p, rule))
	return nil
}
