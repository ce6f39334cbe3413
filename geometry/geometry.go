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

import "fmt"

// Point is a single coordinate, latitude and longitude in degrees
type Point struct {
	Lat float64
	Lon float64
}

// BoundingBox is an axis-aligned box given by its upper-left and
// lower-right corners. No ordering between the corners is enforced;
// inconsistent corners produce a degenerate or inverted polygon.
type BoundingBox struct {
	ULLat float64
	ULLon float64
	LRLat float64
	LRLon float64
}

// WKTGeometry is implemented by caller-owned geometries that carry
// their own well-known-text representation. The coordinate axis order
// of the native WKT is taken to be latitude first, as most geometry
// libraries emit it, and is corrected during encoding.
type WKTGeometry interface {
	WKT() string
}

// UnsupportedGeometryError indicates a geometry of a type the encoder
// does not recognize
type UnsupportedGeometryError struct {
	Geometry interface{}
}

// Error implements the error interface
func (err UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("unsupported geometry type %T", err.Geometry)
}

// MalformedGeometryError indicates a native WKT string the encoder
// could not correct: no coordinates at all, unbalanced parentheses, or
// a coordinate that is not a numeric pair
type MalformedGeometryError struct {
	WKT    string
	Reason string
}

// Error implements the error interface
func (err MalformedGeometryError) Error() string {
	return fmt.Sprintf("malformed geometry WKT (%s): %s", err.Reason, err.WKT)
}
