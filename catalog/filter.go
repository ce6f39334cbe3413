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

package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/geospectra/cdse-broker/geometry"
	"github.com/geospectra/cdse-broker/model"
	"github.com/geospectra/cdse-broker/util"
)

// The catalog serves footprints in WGS 84
const filterSRID = "SRID=4326"

const defaultTop = 100

// BuildFilter composes the catalog's $filter expression from the given
// satellite and options. Predicates are joined with `and` in a fixed
// order so the same inputs always produce the same query string.
func BuildFilter(satellite Satellite, options SearchOptions) (string, error) {
	if !satellite.valid() {
		return "", util.InvalidArgument{Message: fmt.Sprintf("unrecognized satellite %q: expected one of %s, %s, %s", satellite, Sentinel1, Sentinel2, Sentinel3)}
	}

	predicates := []string{fmt.Sprintf("Collection/Name eq '%s'", satellite)}

	if options.Product != "" {
		predicates = append(predicates, containsNamePredicate(options.Product))
	}

	if (options.From == nil) != (options.To == nil) {
		return "", util.InvalidArgument{Message: "date filters require both From and To"}
	}
	if options.From != nil {
		if options.From.After(*options.To) {
			return "", util.InvalidArgument{Message: fmt.Sprintf("date range starts after it ends: %v > %v", options.From, options.To)}
		}
		predicates = append(predicates, contentDatePredicate(*options.From, *options.To))
	}

	if options.Tile != "" {
		if satellite != Sentinel2 {
			return "", util.InvalidArgument{Message: fmt.Sprintf("tile filters are only valid for %s, not %s", Sentinel2, satellite)}
		}
		predicates = append(predicates, fmt.Sprintf("Attributes/OData.CSC.StringAttribute/any(att:att/Name eq 'tileId' and att/OData.CSC.StringAttribute/Value eq '%s')", options.Tile))
	}

	if options.MaxCloudCover != nil {
		if satellite == Sentinel1 {
			return "", util.InvalidArgument{Message: fmt.Sprintf("cloud cover filters are not valid for %s", Sentinel1)}
		}
		predicates = append(predicates, fmt.Sprintf("Attributes/OData.CSC.DoubleAttribute/any(att:att/Name eq 'cloudCover' and att/OData.CSC.DoubleAttribute/Value lt %.2f)", *options.MaxCloudCover))
	}

	if options.Geometry != nil {
		wkt, err := geometry.ToWKT(options.Geometry)
		if err != nil {
			return "", err
		}
		predicates = append(predicates, fmt.Sprintf("OData.CSC.Intersects(area=geography'%s;%s')", filterSRID, wkt))
	}

	return strings.Join(predicates, " and "), nil
}

func containsNamePredicate(substring string) string {
	return fmt.Sprintf("contains(Name,'%s')", substring)
}

func contentDatePredicate(from, to time.Time) string {
	return fmt.Sprintf("ContentDate/Start gt %s and ContentDate/Start lt %s",
		from.UTC().Format(model.StandardTimeLayout), to.UTC().Format(model.StandardTimeLayout))
}
