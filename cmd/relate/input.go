package main

import (
	"encoding/xml"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/wroge/wgs84/v2"
)

// loadGeometry reads a geometry from a WKT string or from a file, projecting it from longitude/latitude to the EPSG code if it is not zero.
func loadGeometry(arg string, epsg int) (orb.Geometry, error) {
	var g orb.Geometry
	var err error
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".wkt":
		g, err = readWKT(arg)
	case ".geojson", ".json":
		g, err = readGeoJSON(arg)
	case ".osm":
		g, err = readOSM(arg)
	default:
		g, err = wkt.Unmarshal(arg)
		err = errors.Wrapf(err, "invalid WKT %q", arg)
	}
	if err != nil {
		return nil, err
	} else if epsg != 0 {
		return projectGeometry(g, epsg)
	}
	return g, nil
}

func readWKT(filename string) (orb.Geometry, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	g, err := wkt.Unmarshal(string(parse.TrimWhitespace(b)))
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return g, nil
}

// readGeoJSON reads a feature collection, a single feature or a bare geometry. Multiple features are combined into a collection.
func readGeoJSON(filename string) (orb.Geometry, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	if fc, err := geojson.UnmarshalFeatureCollection(b); err == nil && fc.Type == "FeatureCollection" {
		return featuresGeometry(fc.Features), nil
	} else if f, err := geojson.UnmarshalFeature(b); err == nil && f.Type == "Feature" {
		return f.Geometry, nil
	}
	g, err := geojson.UnmarshalGeometry(b)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return g.Geometry(), nil
}

func readOSM(filename string) (orb.Geometry, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	o := &osm.OSM{}
	if err := xml.Unmarshal(b, o); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return featuresGeometry(fc.Features), nil
}

func featuresGeometry(features []*geojson.Feature) orb.Geometry {
	if len(features) == 1 {
		return features[0].Geometry
	}
	c := orb.Collection{}
	for _, f := range features {
		c = append(c, f.Geometry)
	}
	return c
}

func transformer(epsg int) func(orb.Point) orb.Point {
	transform := wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(epsg))
	return func(p orb.Point) orb.Point {
		x, y, _ := transform(p[0], p[1], 0.0)
		return orb.Point{x, y}
	}
}

func projectGeometry(g orb.Geometry, epsg int) (orb.Geometry, error) {
	g = project.Geometry(orb.Clone(g), transformer(epsg))
	b := g.Bound()
	if math.IsNaN(b.Min[0]) || math.IsNaN(b.Min[1]) || math.IsNaN(b.Max[0]) || math.IsNaN(b.Max[1]) {
		return nil, errors.Errorf("cannot project to EPSG:%d", epsg)
	}
	return g, nil
}

func projectPoint(p orb.Point, epsg int) (orb.Point, error) {
	q := transformer(epsg)(p)
	if math.IsNaN(q[0]) || math.IsNaN(q[1]) {
		return orb.Point{}, errors.Errorf("cannot project to EPSG:%d", epsg)
	}
	return q, nil
}

// parseCoord parses two numbers separated by whitespace or a comma.
func parseCoord(s string) (orb.Point, error) {
	b := parse.TrimWhitespace([]byte(s))
	x, n := strconv.ParseFloat(b)
	if n == 0 {
		return orb.Point{}, errors.Errorf("invalid coordinate %q", s)
	}
	b = b[n:]
	for 0 < len(b) && (parse.IsWhitespace(b[0]) || b[0] == ',') {
		b = b[1:]
	}
	y, m := strconv.ParseFloat(b)
	if m == 0 || m != len(b) {
		return orb.Point{}, errors.Errorf("invalid coordinate %q", s)
	}
	return orb.Point{x, y}, nil
}
