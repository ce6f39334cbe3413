package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// SceneRecord holds the projected fields of one catalog scene
type SceneRecord struct {
	Name            string
	ID              string
	AcquisitionDate time.Time
	PublicationDate time.Time
	// CloudCover is nil when the catalog returned no cloudCover
	// attribute for the scene
	CloudCover *float64
	// Geometry is the scene's GeoJSON footprint, when the catalog
	// returned one
	Geometry interface{}
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (record SceneRecord) GeoJSONFeature() (*geojson.Feature, error) {
	properties := map[string]interface{}{
		"name":            record.Name,
		"acquisitionDate": record.AcquisitionDate.Format(StandardTimeLayout),
		"publicationDate": record.PublicationDate.Format(StandardTimeLayout),
	}
	if record.CloudCover != nil {
		properties["cloudCover"] = *record.CloudCover
	}

	f := geojson.NewFeature(record.Geometry, record.ID, properties)
	if record.Geometry != nil {
		f.Bbox = f.ForceBbox()
	}
	return f, nil
}

// MultiSceneResult is a container type for bundling multiple scene
// records together, e.g. as results from a discovery endpoint
type MultiSceneResult struct {
	Records []SceneRecord
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiSceneResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.Records))
	for i, record := range result.Records {
		features[i], err = record.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
