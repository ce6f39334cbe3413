package catalog

import (
	"encoding/json"
	"time"

	"github.com/geospectra/cdse-broker/util"
)

// Satellite names one of the catalog's mission collections
type Satellite string

// The collections the catalog recognizes
const (
	Sentinel1 Satellite = "SENTINEL-1"
	Sentinel2 Satellite = "SENTINEL-2"
	Sentinel3 Satellite = "SENTINEL-3"
)

func (s Satellite) valid() bool {
	switch s {
	case Sentinel1, Sentinel2, Sentinel3:
		return true
	}
	return false
}

// Context is the context for a catalog operation
type Context struct {
	BaseCatalogURL string
	sessionID      string
}

// AppName returns the name of this application
func (c *Context) AppName() string {
	return "cdse-broker"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

// SearchOptions are the optional constraints of a catalog search. Each
// present field contributes one predicate to the composed filter, in
// the order product, dates, tile, clouds, geometry, after the always
// present collection predicate.
type SearchOptions struct {
	// Product restricts results to scene names containing this substring
	Product string
	// From and To bound the acquisition start time; both must be set
	// together, and From must not be after To
	From *time.Time
	To   *time.Time
	// Tile matches the tileId string attribute; only valid for SENTINEL-2
	Tile string
	// MaxCloudCover caps the cloudCover double attribute, as a
	// percentage; not valid for SENTINEL-1
	MaxCloudCover *float64
	// Geometry is intersected against scene footprints; any geometry
	// the WKT encoder supports
	Geometry interface{}
	// Top overrides the default result cap of 100
	Top int
}

type productsResponse struct {
	Value []productRecord `json:"value"`
}

type productRecord struct {
	ID              string          `json:"Id"`
	Name            string          `json:"Name"`
	Online          *bool           `json:"Online"`
	ContentDate     contentDate     `json:"ContentDate"`
	PublicationDate string          `json:"PublicationDate"`
	GeoFootprint    json.RawMessage `json:"GeoFootprint"`
	Attributes      []attribute     `json:"Attributes"`
}

type contentDate struct {
	Start string `json:"Start"`
	End   string `json:"End"`
}

type attribute struct {
	Name      string      `json:"Name"`
	Value     interface{} `json:"Value"`
	ValueType string      `json:"ValueType"`
}
