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
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/geospectra/cdse-broker/util"
	"github.com/stretchr/testify/assert"
)

const goodSceneName = "S2B_MSIL2A_20200804T183919_N0500_R070_T11UPT_20230321T050221.SAFE"
const offlineSceneName = "S2B_MSIL2A_20200804T183919_N0214_R070_T11UPT_20200804T225232.SAFE"
const noCloudSceneName = "S1A_IW_GRDH_1SDV_20200804T013443_20200804T013508_033724_03E8D7_54E2.SAFE"

const searchResponseBody = `{
	"value": [
		{
			"Id": "f2e3a4b5-0001-4c4d-9e8f-aabbccddee01",
			"Name": "` + goodSceneName + `",
			"Online": true,
			"ContentDate": {"Start": "2020-08-04T18:39:19.024Z", "End": "2020-08-04T18:39:42.000Z"},
			"PublicationDate": "2023-03-21T05:02:21.000Z",
			"GeoFootprint": {"type": "Polygon", "coordinates": [[[30, 10], [40, 40], [20, 40], [10, 20], [30, 10]]]},
			"Attributes": [
				{"Name": "tileId", "Value": "11UPT", "ValueType": "String"},
				{"Name": "cloudCover", "Value": 7.25, "ValueType": "Double"}
			]
		},
		{
			"Id": "f2e3a4b5-0002-4c4d-9e8f-aabbccddee02",
			"Name": "` + offlineSceneName + `",
			"Online": false,
			"ContentDate": {"Start": "2020-08-04T18:39:19.024Z", "End": "2020-08-04T18:39:42.000Z"},
			"PublicationDate": "2020-08-04T22:52:32.000Z",
			"Attributes": []
		},
		{
			"Id": "f2e3a4b5-0003-4c4d-9e8f-aabbccddee03",
			"Name": "` + noCloudSceneName + `",
			"Online": true,
			"ContentDate": {"Start": "2020-08-04T01:34:43.000Z", "End": "2020-08-04T01:35:08.000Z"},
			"PublicationDate": "2020-08-04T05:00:00.000Z",
			"Attributes": [
				{"Name": "orbitDirection", "Value": "ASCENDING", "ValueType": "String"}
			]
		}
	]
}`

// newMockCatalog serves body for every request, recording the last
// query string received
func newMockCatalog(status int, body string, lastQuery *url.Values) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			*lastQuery = r.URL.Query()
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestSearchScenes_ProjectsRecords(t *testing.T) {
	server := newMockCatalog(http.StatusOK, searchResponseBody, nil)
	defer server.Close()

	records, err := SearchScenes(Sentinel2, SearchOptions{Product: "L2A"}, &Context{BaseCatalogURL: server.URL})
	assert.Nil(t, err)
	assert.Len(t, records, 2, "the offline scene must not be projected")

	first := records[0]
	assert.Equal(t, goodSceneName, first.Name)
	assert.Equal(t, "f2e3a4b5-0001-4c4d-9e8f-aabbccddee01", first.ID)
	assert.Equal(t, time.Date(2020, 8, 4, 18, 39, 19, 24000000, time.UTC), first.AcquisitionDate)
	assert.Equal(t, time.Date(2023, 3, 21, 5, 2, 21, 0, time.UTC), first.PublicationDate)
	assert.NotNil(t, first.CloudCover)
	assert.Equal(t, 7.25, *first.CloudCover)
	assert.NotNil(t, first.Geometry, "the footprint must be carried when the catalog returns one")

	second := records[1]
	assert.Equal(t, noCloudSceneName, second.Name)
	assert.Nil(t, second.CloudCover, "CloudCover must be nil when the catalog returned no cloudCover attribute")
}

func TestSearchScenes_SendsQueryParameters(t *testing.T) {
	var lastQuery url.Values
	server := newMockCatalog(http.StatusOK, searchResponseBody, &lastQuery)
	defer server.Close()

	_, err := SearchScenes(Sentinel2, SearchOptions{Product: "L2A"}, &Context{BaseCatalogURL: server.URL})
	assert.Nil(t, err)

	assert.Contains(t, lastQuery.Get("$filter"), "Collection/Name eq 'SENTINEL-2'")
	assert.Contains(t, lastQuery.Get("$filter"), "contains(Name,'L2A')")
	assert.Equal(t, "Attributes", lastQuery.Get("$expand"))
	assert.Equal(t, "100", lastQuery.Get("$top"))
	assert.Equal(t, "ContentDate/Start asc", lastQuery.Get("$orderby"))
}

func TestSearchScenes_TopOverride(t *testing.T) {
	var lastQuery url.Values
	server := newMockCatalog(http.StatusOK, searchResponseBody, &lastQuery)
	defer server.Close()

	_, err := SearchScenes(Sentinel2, SearchOptions{Top: 5}, &Context{BaseCatalogURL: server.URL})
	assert.Nil(t, err)
	assert.Equal(t, "5", lastQuery.Get("$top"))
}

func TestSearchScenes_EmptyResult(t *testing.T) {
	server := newMockCatalog(http.StatusOK, `{"value": []}`, nil)
	defer server.Close()

	_, err := SearchScenes(Sentinel2, SearchOptions{}, &Context{BaseCatalogURL: server.URL})
	assert.NotNil(t, err)
	var emptyResult util.EmptyResult
	assert.True(t, errors.As(err, &emptyResult))
	assert.Contains(t, emptyResult.Filter, "Collection/Name eq 'SENTINEL-2'")
}

func TestSearchScenes_RemoteError(t *testing.T) {
	server := newMockCatalog(http.StatusServiceUnavailable, "catalog down", nil)
	defer server.Close()

	_, err := SearchScenes(Sentinel2, SearchOptions{}, &Context{BaseCatalogURL: server.URL})
	assert.NotNil(t, err)
	var httpErr util.HTTPErr
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Contains(t, httpErr.Message, "catalog down")
}

func TestSearchScenes_MalformedResponse(t *testing.T) {
	server := newMockCatalog(http.StatusOK, "<html>not json</html>", nil)
	defer server.Close()

	_, err := SearchScenes(Sentinel2, SearchOptions{}, &Context{BaseCatalogURL: server.URL})
	assert.NotNil(t, err)
}

func TestSearchScenes_InvalidOptionsDoNotReachTheCatalog(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	_, err := SearchScenes(Sentinel1, SearchOptions{Tile: "11UPT"}, &Context{BaseCatalogURL: server.URL})
	assertInvalidArgument(t, err)
	assert.False(t, requested)
}
