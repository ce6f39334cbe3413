// Copyright 2019, GeoSpectra Labs, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geometry

import (
	"strconv"
	"strings"

	"github.com/venicegeo/geojson-go/geojson"
)

// ToWKT encodes any supported geometry as a well-known-text string in
// the longitude-first axis order the catalog expects.
//
// Point and BoundingBox values are emitted directly. GeoJSON geometries
// are emitted from their coordinate arrays, which are already
// longitude-first by convention. Anything implementing WKTGeometry has
// its native WKT re-ordered, since geometry libraries typically emit
// latitude first.
func ToWKT(geometry interface{}) (string, error) {
	switch geom := geometry.(type) {
	case Point:
		return "POINT (" + position(geom.Lon, geom.Lat) + ")", nil
	case *Point:
		return ToWKT(*geom)
	case BoundingBox:
		return "POLYGON ((" + boxRing(geom) + "))", nil
	case *BoundingBox:
		return ToWKT(*geom)
	case *geojson.Point:
		pos, err := geoJSONPosition(geom.Coordinates)
		if err != nil {
			return "", err
		}
		return "POINT (" + pos + ")", nil
	case *geojson.LineString:
		line, err := geoJSONLine(geom.Coordinates)
		if err != nil {
			return "", err
		}
		return "LINESTRING (" + line + ")", nil
	case *geojson.Polygon:
		rings, err := geoJSONRings(geom.Coordinates)
		if err != nil {
			return "", err
		}
		return "POLYGON (" + rings + ")", nil
	case *geojson.MultiPolygon:
		polygons := make([]string, len(geom.Coordinates))
		for i, coordinates := range geom.Coordinates {
			rings, err := geoJSONRings(coordinates)
			if err != nil {
				return "", err
			}
			polygons[i] = "(" + rings + ")"
		}
		return "MULTIPOLYGON (" + strings.Join(polygons, ", ") + ")", nil
	case WKTGeometry:
		return reverseAxisOrder(geom.WKT())
	default:
		return "", UnsupportedGeometryError{Geometry: geometry}
	}
}

func position(lon, lat float64) string {
	return coord(lon) + " " + coord(lat)
}

func coord(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// boxRing traverses the box corners UL, UR, LR, LL and closes the ring
func boxRing(box BoundingBox) string {
	corners := []string{
		position(box.ULLon, box.ULLat),
		position(box.LRLon, box.ULLat),
		position(box.LRLon, box.LRLat),
		position(box.ULLon, box.LRLat),
		position(box.ULLon, box.ULLat),
	}
	return strings.Join(corners, ", ")
}

func geoJSONPosition(coordinates []float64) (string, error) {
	if len(coordinates) < 2 {
		return "", MalformedGeometryError{Reason: "position with fewer than two coordinates"}
	}
	return position(coordinates[0], coordinates[1]), nil
}

func geoJSONLine(coordinates [][]float64) (string, error) {
	positions := make([]string, len(coordinates))
	for i, pos := range coordinates {
		var err error
		if positions[i], err = geoJSONPosition(pos); err != nil {
			return "", err
		}
	}
	return strings.Join(positions, ", "), nil
}

func geoJSONRings(coordinates [][][]float64) (string, error) {
	rings := make([]string, len(coordinates))
	for i, ring := range coordinates {
		line, err := geoJSONLine(ring)
		if err != nil {
			return "", err
		}
		rings[i] = "(" + line + ")"
	}
	return strings.Join(rings, ", "), nil
}

// reverseAxisOrder swaps the first two coordinates of every pair in a
// WKT string, preserving the shape keyword, parenthesis nesting and
// pair separators as found. The coordinate list grammar is tokenized
// outright rather than pattern-matched, so nested multi-ring and
// multi-part shapes pass through with only their pairs touched.
func reverseAxisOrder(wkt string) (string, error) {
	open := strings.Index(wkt, "(")
	if open < 0 {
		return "", MalformedGeometryError{WKT: wkt, Reason: "no coordinate list"}
	}

	var out strings.Builder
	out.WriteString(wkt[:open])

	var token strings.Builder
	pairs := 0
	flush := func() error {
		raw := token.String()
		token.Reset()
		body := strings.TrimSpace(raw)
		if body == "" {
			out.WriteString(raw)
			return nil
		}
		fields := strings.Fields(body)
		if len(fields) < 2 {
			return MalformedGeometryError{WKT: wkt, Reason: "coordinate without a pair: " + body}
		}
		for _, field := range fields {
			if _, err := strconv.ParseFloat(field, 64); err != nil {
				return MalformedGeometryError{WKT: wkt, Reason: "non-numeric coordinate: " + field}
			}
		}
		fields[0], fields[1] = fields[1], fields[0]
		leading := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
		trailing := raw[len(strings.TrimRight(raw, " \t")):]
		out.WriteString(leading + strings.Join(fields, " ") + trailing)
		pairs++
		return nil
	}

	depth := 0
	for _, r := range wkt[open:] {
		switch r {
		case '(', ')', ',':
			if err := flush(); err != nil {
				return "", err
			}
			if r == '(' {
				depth++
			} else if r == ')' {
				depth--
				if depth < 0 {
					return "", MalformedGeometryError{WKT: wkt, Reason: "unbalanced parentheses"}
				}
			}
			out.WriteRune(r)
		default:
			token.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return "", err
	}
	if depth != 0 {
		return "", MalformedGeometryError{WKT: wkt, Reason: "unbalanced parentheses"}
	}
	if pairs == 0 {
		return "", MalformedGeometryError{WKT: wkt, Reason: "no coordinates"}
	}
	return out.String(), nil
}
