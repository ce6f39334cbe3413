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
	"fmt"
	"io/ioutil"
	"net/url"
	"strconv"
	"strings"

	"github.com/geospectra/cdse-broker/model"
	"github.com/geospectra/cdse-broker/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// SearchScenes returns the scene records matching the given options,
// ordered by ascending acquisition start time. Scenes the service
// marks offline are dropped. A query matching zero scenes is an
// EmptyResult error.
func SearchScenes(satellite Satellite, options SearchOptions, context *Context) ([]model.SceneRecord, error) {
	filter, err := BuildFilter(satellite, options)
	if err != nil {
		return nil, err
	}

	top := options.Top
	if top <= 0 {
		top = defaultTop
	}

	results, err := catalogQuery(filter, top, context)
	if err != nil {
		return nil, err
	}
	if len(results.Value) == 0 {
		return nil, util.EmptyResult{Filter: filter}
	}

	records := make([]model.SceneRecord, 0, len(results.Value))
	for _, product := range results.Value {
		if product.Online != nil && !*product.Online {
			continue
		}
		record, err := sceneRecordFromProduct(product)
		if err != nil {
			return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to read catalog record %v.", product.Name), err)
		}
		records = append(records, record)
	}

	return records, nil
}

// catalogQuery issues one GET against the catalog's Products endpoint
// with the composed filter, attribute expansion, a result cap and
// ascending acquisition order
func catalogQuery(filter string, top int, context *Context) (*productsResponse, error) {
	query := url.Values{}
	query.Set("$filter", filter)
	query.Set("$expand", "Attributes")
	query.Set("$top", strconv.Itoa(top))
	query.Set("$orderby", "ContentDate/Start asc")
	requestURL := strings.TrimRight(context.BaseCatalogURL, "/") + "/Products?" + query.Encode()

	util.LogAudit(context, util.LogAuditInput{Actor: "catalog/query", Action: "GET", Actee: requestURL, Message: "Querying the scene catalog", Severity: util.INFO})
	response, err := util.HTTPClient().Get(requestURL)
	if err != nil {
		return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to complete catalog request %v.", requestURL), err)
	}
	defer response.Body.Close()
	body, _ := ioutil.ReadAll(response.Body)

	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("Failed to query the scene catalog: %v. ", response.Status)
		util.LogAlert(context, message+string(body))
		return nil, util.HTTPErr{Status: response.StatusCode, Message: message + string(body)}
	case response.StatusCode >= 500:
		message := fmt.Sprintf("The scene catalog failed to answer: %v. ", response.Status)
		util.Error{LogMsg: message, SimpleMsg: message, Response: string(body), URL: requestURL, HTTPStatus: response.StatusCode}.Log(context, "")
		return nil, util.HTTPErr{Status: response.StatusCode, Message: message + string(body)}
	default:
		//no op
	}

	var results productsResponse
	if err = json.Unmarshal(body, &results); err != nil {
		plErr := util.Error{LogMsg: "Failed to Unmarshal response from the catalog: " + err.Error(),
			SimpleMsg:  "The catalog returned an unexpected response for this request. See log for further details.",
			Response:   string(body),
			URL:        requestURL,
			HTTPStatus: response.StatusCode}
		return nil, plErr.Log(context, "")
	}

	return &results, nil
}

// sceneRecordFromProduct projects a raw catalog record onto the output
// columns: Name, Id, acquisition start, publication date, cloud cover
func sceneRecordFromProduct(product productRecord) (model.SceneRecord, error) {
	acquired, err := model.ParseODataTime(product.ContentDate.Start)
	if err != nil {
		return model.SceneRecord{}, err
	}

	record := model.SceneRecord{
		Name:            product.Name,
		ID:              product.ID,
		AcquisitionDate: acquired,
	}

	if product.PublicationDate != "" {
		if record.PublicationDate, err = model.ParseODataTime(product.PublicationDate); err != nil {
			return model.SceneRecord{}, err
		}
	}

	for _, att := range product.Attributes {
		if att.Name == "cloudCover" {
			if value, ok := att.Value.(float64); ok {
				cloudCover := value
				record.CloudCover = &cloudCover
			}
			break
		}
	}

	// The footprint is informational; a record without one is still a result
	if len(product.GeoFootprint) > 0 && string(product.GeoFootprint) != "null" {
		if footprint, err := geojson.Parse(product.GeoFootprint); err == nil {
			record.Geometry = footprint
		}
	}

	return record, nil
}
