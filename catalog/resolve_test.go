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
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

const resolveSceneName = "S2B_MSIL2A_20200804T183919_N0500_R070_T11UPT_20230321T050221"

func TestResolveSceneID(t *testing.T) {
	var lastQuery url.Values
	server := newMockCatalog(http.StatusOK, searchResponseBody, &lastQuery)
	defer server.Close()

	id, err := ResolveSceneID(resolveSceneName, &Context{BaseCatalogURL: server.URL})
	assert.Nil(t, err)
	assert.Equal(t, "f2e3a4b5-0001-4c4d-9e8f-aabbccddee01", id, "the first result's identifier must be returned")

	filter := lastQuery.Get("$filter")
	assert.Contains(t, filter, "contains(Name,'"+resolveSceneName+"')")
	assert.Contains(t, filter, "ContentDate/Start gt 2020-08-03T00:00:00.000Z", "the embedded date must narrow the window by one day back")
	assert.Contains(t, filter, "ContentDate/Start lt 2020-08-05T00:00:00.000Z", "the embedded date must narrow the window by one day forward")
	assert.Equal(t, "Attributes", lastQuery.Get("$expand"))
}

func TestResolveSceneID_NoDateInName(t *testing.T) {
	var lastQuery url.Values
	server := newMockCatalog(http.StatusOK, searchResponseBody, &lastQuery)
	defer server.Close()

	_, err := ResolveSceneID("S2B_MSIL2A_NODATE", &Context{BaseCatalogURL: server.URL})
	assert.Nil(t, err)
	assert.NotContains(t, lastQuery.Get("$filter"), "ContentDate", "no date window without an embedded date")
}

func TestResolveSceneID_NoMatch(t *testing.T) {
	server := newMockCatalog(http.StatusOK, `{"value": []}`, nil)
	defer server.Close()

	_, err := ResolveSceneID("foo", &Context{BaseCatalogURL: server.URL})
	assertInvalidArgument(t, err)
	assert.Contains(t, err.Error(), "no matching scene")
}

func TestResolveSceneID_RemoteError(t *testing.T) {
	server := newMockCatalog(http.StatusBadGateway, "upstream broke", nil)
	defer server.Close()

	_, err := ResolveSceneID(resolveSceneName, &Context{BaseCatalogURL: server.URL})
	assert.NotNil(t, err)
}
