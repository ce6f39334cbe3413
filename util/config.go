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

package util

import "os"

// Environment variables
const (
	CDSE_CATALOG_URL  = "CDSE_CATALOG_URL"
	CDSE_DOWNLOAD_URL = "CDSE_DOWNLOAD_URL"
	CDSE_TOKEN_URL    = "CDSE_TOKEN_URL"
	CDSE_USERNAME     = "CDSE_USERNAME"
	CDSE_PASSWORD     = "CDSE_PASSWORD"
)

// Public Copernicus Data Space endpoints, used when no override is present
const (
	defaultCatalogURL  = "https://catalogue.dataspace.copernicus.eu/odata/v1"
	defaultDownloadURL = "https://zipper.dataspace.copernicus.eu/odata/v1"
	defaultTokenURL    = "https://identity.dataspace.copernicus.eu/auth/realms/CDSE/protocol/openid-connect/token"
)

// GetCatalogURL returns the catalog base URL from the CDSE_CATALOG_URL
// environment variable, or the public Data Space catalog when unset
func GetCatalogURL() string {
	if catalogURL, ok := os.LookupEnv(CDSE_CATALOG_URL); ok {
		return catalogURL
	}
	return defaultCatalogURL
}

// GetDownloadURL returns the archive base URL from the CDSE_DOWNLOAD_URL
// environment variable, or the public Data Space zipper when unset
func GetDownloadURL() string {
	if downloadURL, ok := os.LookupEnv(CDSE_DOWNLOAD_URL); ok {
		return downloadURL
	}
	return defaultDownloadURL
}

// GetTokenURL returns the token exchange URL from the CDSE_TOKEN_URL
// environment variable, or the public Data Space identity service when unset
func GetTokenURL() string {
	if tokenURL, ok := os.LookupEnv(CDSE_TOKEN_URL); ok {
		return tokenURL
	}
	return defaultTokenURL
}

// GetUsername returns a string for the CDSE_USERNAME environment variable
func GetUsername() string {
	username, ok := os.LookupEnv(CDSE_USERNAME)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get a Data Space username from the environment. Authenticated downloads will not be available.")
	}
	return username
}

// GetPassword returns a string for the CDSE_PASSWORD environment variable
func GetPassword() string {
	password, ok := os.LookupEnv(CDSE_PASSWORD)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get a Data Space password from the environment. Authenticated downloads will not be available.")
	}
	return password
}
