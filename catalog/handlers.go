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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/geospectra/cdse-broker/geometry"
	"github.com/geospectra/cdse-broker/model"
	"github.com/geospectra/cdse-broker/util"
	"github.com/gorilla/mux"
	"github.com/venicegeo/geojson-go/geojson"
)

// DiscoverHandler is a handler for /discover/{satellite}
// @Title discoverHandler
// @Description discovers scenes from the Data Space catalog
// @Accept  plain
// @Param   satellite     path    string  true         "SENTINEL-1, SENTINEL-2 or SENTINEL-3"
// @Param   product       query   string  false        "A scene name substring, e.g. L2A"
// @Param   from          query   string  false        "The minimum (earliest) acquisition date, as RFC 3339"
// @Param   to            query   string  false        "The maximum acquisition date, as RFC 3339"
// @Param   tile          query   string  false        "An MGRS tile id (SENTINEL-2 only)"
// @Param   maxCloudCover query   string  false        "The maximum cloud cover, as a percentage (0-100)"
// @Param   bbox          query   string  false        "The bounding box, as a GeoJSON Bounding box (x1,y1,x2,y2)"
// @Param   top           query   int     false        "The result cap (default 100)"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /discover/{satellite} [get]
type DiscoverHandler struct {
	Context Context
}

// NewDiscoverHandler creates a new handler using configuration
// from environment variables
func NewDiscoverHandler() *DiscoverHandler {
	return &DiscoverHandler{
		Context: Context{BaseCatalogURL: util.GetCatalogURL()},
	}
}

// ServeHTTP implements the http.Handler interface for the DiscoverHandler type
func (h DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	satellite := Satellite(mux.Vars(r)["satellite"])

	options := SearchOptions{
		Product: r.FormValue("product"),
		Tile:    r.FormValue("tile"),
	}

	if r.FormValue("from") != "" || r.FormValue("to") != "" {
		from, err := model.ParseODataTime(r.FormValue("from"))
		if err != nil {
			message := fmt.Sprintf("The from value of %v is invalid", r.FormValue("from"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		to, err := model.ParseODataTime(r.FormValue("to"))
		if err != nil {
			message := fmt.Sprintf("The to value of %v is invalid", r.FormValue("to"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		options.From, options.To = &from, &to
	}

	if r.FormValue("maxCloudCover") != "" {
		maxCloudCover, err := strconv.ParseFloat(r.FormValue("maxCloudCover"), 64)
		if err != nil {
			message := fmt.Sprintf("The maxCloudCover value of %v is invalid", r.FormValue("maxCloudCover"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		options.MaxCloudCover = &maxCloudCover
	}

	if r.FormValue("bbox") != "" {
		bbox, err := geojson.NewBoundingBox(r.FormValue("bbox"))
		if err != nil || len(bbox) < 4 {
			message := fmt.Sprintf("The bbox value of %v is invalid", r.FormValue("bbox"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		options.Geometry = geometry.BoundingBox{ULLat: bbox[3], ULLon: bbox[0], LRLat: bbox[1], LRLon: bbox[2]}
	}

	if r.FormValue("top") != "" {
		top, err := strconv.Atoi(r.FormValue("top"))
		if err != nil {
			message := fmt.Sprintf("The top value of %v is invalid", r.FormValue("top"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
		options.Top = top
	}

	records, err := SearchScenes(satellite, options, &h.Context)
	if err != nil {
		writeSearchError(w, r, &h.Context, err)
		return
	}

	featureCollection, err := model.MultiSceneResult{Records: records}.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(featureCollection.String()))
}

// SceneIDHandler is a handler for /scene/{name}/id
// @Title sceneIDHandler
// @Description resolves a scene name to its catalog identifier
// @Accept  plain
// @Param   name          path    string  true         "The scene name"
// @Success 200 {object}  string
// @Failure 404 {object}  string
// @Router /scene/{name}/id [get]
type SceneIDHandler struct {
	Context Context
}

// NewSceneIDHandler creates a new handler using configuration
// from environment variables
func NewSceneIDHandler() *SceneIDHandler {
	return &SceneIDHandler{
		Context: Context{BaseCatalogURL: util.GetCatalogURL()},
	}
}

// ServeHTTP implements the http.Handler interface for the SceneIDHandler type
func (h SceneIDHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sceneName := mux.Vars(r)["name"]

	id, err := ResolveSceneID(sceneName, &h.Context)
	if err != nil {
		writeSearchError(w, r, &h.Context, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"id": id, "name": sceneName})
}

// writeSearchError maps the error kinds of the catalog operations onto
// response statuses: caller mistakes are 400s, empty and unresolved
// lookups are 404s, upstream failures are 502s
func writeSearchError(w http.ResponseWriter, r *http.Request, ctx util.LogContext, err error) {
	var invalidArgument util.InvalidArgument
	var emptyResult util.EmptyResult
	var httpErr util.HTTPErr

	switch {
	case errors.As(err, &emptyResult):
		util.HTTPError(r, w, ctx, err.Error(), http.StatusNotFound)
	case errors.As(err, &invalidArgument):
		status := http.StatusBadRequest
		// An unresolved scene name is a lookup miss, not a malformed request
		if _, resolving := mux.Vars(r)["name"]; resolving {
			status = http.StatusNotFound
		}
		util.HTTPError(r, w, ctx, err.Error(), status)
	case errors.As(err, &httpErr):
		util.HTTPError(r, w, ctx, err.Error(), http.StatusBadGateway)
	default:
		util.HTTPError(r, w, ctx, err.Error(), http.StatusInternalServerError)
	}
}
