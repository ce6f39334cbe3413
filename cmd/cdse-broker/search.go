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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/geospectra/cdse-broker/catalog"
	"github.com/geospectra/cdse-broker/geometry"
	"github.com/geospectra/cdse-broker/model"
	"github.com/geospectra/cdse-broker/util"
	cli "gopkg.in/urfave/cli.v1"
)

func searchAction(c *cli.Context) {
	logContext := &(util.BasicLogContext{})

	options := catalog.SearchOptions{
		Product: c.String("product"),
		Tile:    c.String("tile"),
		Top:     c.Int("top"),
	}

	if c.String("from") != "" || c.String("to") != "" {
		from, err := parseCliDate(c.String("from"))
		if err != nil {
			util.LogAlert(logContext, fmt.Sprintf("The from value of %v is invalid: %v", c.String("from"), err))
			return
		}
		to, err := parseCliDate(c.String("to"))
		if err != nil {
			util.LogAlert(logContext, fmt.Sprintf("The to value of %v is invalid: %v", c.String("to"), err))
			return
		}
		options.From, options.To = &from, &to
	}

	if maxCloudCover := c.Float64("max-cloud-cover"); maxCloudCover >= 0 {
		options.MaxCloudCover = &maxCloudCover
	}

	if c.String("bbox") != "" {
		box, err := parseCliBbox(c.String("bbox"))
		if err != nil {
			util.LogAlert(logContext, fmt.Sprintf("The bbox value of %v is invalid: %v", c.String("bbox"), err))
			return
		}
		options.Geometry = box
	}

	context := &catalog.Context{BaseCatalogURL: util.GetCatalogURL()}
	records, err := catalog.SearchScenes(catalog.Satellite(c.String("satellite")), options, context)
	if err != nil {
		util.LogAlert(logContext, fmt.Sprintf("Search failed: %v", err))
		return
	}

	printSceneTable(records)
}

// parseCliDate accepts a bare date or a full RFC 3339 timestamp
func parseCliDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return model.ParseODataTime(value)
}

// parseCliBbox parses west,south,east,north into a BoundingBox
func parseCliBbox(value string) (geometry.BoundingBox, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return geometry.BoundingBox{}, fmt.Errorf("expected 4 comma-separated values, got %d", len(parts))
	}
	coords := make([]float64, 4)
	for i, part := range parts {
		var err error
		if coords[i], err = strconv.ParseFloat(strings.TrimSpace(part), 64); err != nil {
			return geometry.BoundingBox{}, err
		}
	}
	return geometry.BoundingBox{ULLon: coords[0], LRLat: coords[1], LRLon: coords[2], ULLat: coords[3]}, nil
}

func printSceneTable(records []model.SceneRecord) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tID\tACQUIRED\tPUBLISHED\tCLOUD COVER")
	for _, record := range records {
		cloudCover := "-"
		if record.CloudCover != nil {
			cloudCover = strconv.FormatFloat(*record.CloudCover, 'f', 2, 64)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			record.Name,
			record.ID,
			record.AcquisitionDate.Format(model.StandardTimeLayout),
			record.PublicationDate.Format(model.StandardTimeLayout),
			cloudCover,
		)
	}
	writer.Flush()
}
