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
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func newTestRouter(catalogURL string) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/discover/{satellite}", DiscoverHandler{Context: Context{BaseCatalogURL: catalogURL}})
	router.Handle("/scene/{name}/id", SceneIDHandler{Context: Context{BaseCatalogURL: catalogURL}})
	return router
}

func TestDiscoverHandler(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusOK, searchResponseBody, nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/discover/SENTINEL-2?product=L2A&maxCloudCover=10", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusOK, response.Code)
	body, _ := ioutil.ReadAll(response.Result().Body)

	parsed, err := geojson.Parse(body)
	assert.Nil(t, err)
	collection, ok := parsed.(*geojson.FeatureCollection)
	assert.True(t, ok, "expected a FeatureCollection, got %T", parsed)
	assert.Len(t, collection.Features, 2)
}

func TestDiscoverHandler_BadCloudCover(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusOK, searchResponseBody, nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/discover/SENTINEL-2?maxCloudCover=cloudy", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestDiscoverHandler_BadSatellite(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusOK, searchResponseBody, nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/discover/LANDSAT-8", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestDiscoverHandler_EmptyResultIs404(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusOK, `{"value": []}`, nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/discover/SENTINEL-2", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusNotFound, response.Code)
}

func TestDiscoverHandler_UpstreamFailureIs502(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusInternalServerError, "boom", nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/discover/SENTINEL-2", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusBadGateway, response.Code)
}

func TestSceneIDHandler(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusOK, searchResponseBody, nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/scene/"+resolveSceneName+"/id", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusOK, response.Code)

	var payload map[string]string
	assert.Nil(t, json.NewDecoder(response.Result().Body).Decode(&payload))
	assert.Equal(t, "f2e3a4b5-0001-4c4d-9e8f-aabbccddee01", payload["id"])
	assert.Equal(t, resolveSceneName, payload["name"])
}

func TestSceneIDHandler_UnresolvedIs404(t *testing.T) {
	catalogServer := newMockCatalog(http.StatusOK, `{"value": []}`, nil)
	defer catalogServer.Close()
	router := newTestRouter(catalogServer.URL)

	request := httptest.NewRequest("GET", "/scene/foo/id", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusNotFound, response.Code)
}
