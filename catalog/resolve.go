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
	"regexp"
	"strings"
	"time"

	"github.com/geospectra/cdse-broker/util"
)

// Scene names embed their acquisition timestamp as an 8-digit date
// immediately followed by a literal T, e.g. S2B_MSIL2A_20200804T183919_...
var sceneDatePattern = regexp.MustCompile(`([0-9]{8})T`)

// ResolveSceneID resolves a scene name to the catalog's stable product
// identifier. When the name carries an acquisition date, a one-day
// padded date window narrows the lookup to disambiguate identically
// named variants.
func ResolveSceneID(sceneName string, context *Context) (string, error) {
	predicates := []string{containsNamePredicate(sceneName)}

	if match := sceneDatePattern.FindStringSubmatch(sceneName); match != nil {
		if senseDate, err := time.Parse("20060102", match[1]); err == nil {
			predicates = append(predicates, contentDatePredicate(senseDate.AddDate(0, 0, -1), senseDate.AddDate(0, 0, 1)))
		}
	}

	filter := strings.Join(predicates, " and ")
	results, err := catalogQuery(filter, defaultTop, context)
	if err != nil {
		return "", err
	}
	if len(results.Value) == 0 {
		return "", util.InvalidArgument{Message: fmt.Sprintf("no matching scene for %q", sceneName)}
	}

	return results.Value[0].ID, nil
}
