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

package archive

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/geospectra/cdse-broker/catalog"
	"github.com/geospectra/cdse-broker/util"
)

// Context is the context for an archive retrieval
type Context struct {
	BaseDownloadURL string
	BaseCatalogURL  string
	sessionID       string
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

// RetrieveScene resolves the named scene to its catalog identifier,
// streams its archive into destDir using the given bearer token, and
// returns the path to the result. With unpack set, the archive is
// extracted in place, the zip file removed, and the extracted
// top-level path returned instead.
//
// Each step is one blocking call; a failed download is not retried.
func RetrieveScene(sceneName, accessToken, destDir string, unpack bool, context *Context) (string, error) {
	catalogContext := &catalog.Context{BaseCatalogURL: context.BaseCatalogURL}
	id, err := catalog.ResolveSceneID(sceneName, catalogContext)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(destDir, 0755); err != nil {
		return "", util.LogSimpleErr(context, fmt.Sprintf("Failed to create destination directory %v.", destDir), err)
	}

	archivePath := filepath.Join(destDir, sceneName+".zip")
	if err = downloadArchive(id, accessToken, archivePath, context); err != nil {
		return "", err
	}

	if !unpack {
		return archivePath, nil
	}

	topLevel, err := extractArchive(archivePath, destDir)
	if err != nil {
		return "", err
	}
	if err = os.Remove(archivePath); err != nil {
		return "", util.LogSimpleErr(context, fmt.Sprintf("Failed to remove archive %v after extraction.", archivePath), err)
	}

	return filepath.Join(destDir, topLevel), nil
}

// downloadArchive streams the archive for one product ID to disk
func downloadArchive(id, accessToken, archivePath string, context *Context) error {
	downloadURL := fmt.Sprintf("%s/Products(%s)/$value", strings.TrimRight(context.BaseDownloadURL, "/"), id)

	request, err := http.NewRequest("GET", downloadURL, nil)
	if err != nil {
		return util.LogSimpleErr(context, fmt.Sprintf("Failed to make a new HTTP request for %v.", downloadURL), err)
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)

	util.LogAudit(context, util.LogAuditInput{Actor: "archive/download", Action: "GET", Actee: downloadURL, Message: "Downloading scene archive", Severity: util.INFO})
	response, err := util.HTTPClient().Do(request)
	if err != nil {
		return util.LogSimpleErr(context, fmt.Sprintf("Failed to complete archive request %v.", downloadURL), err)
	}
	defer response.Body.Close()

	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		body, _ := ioutil.ReadAll(response.Body)
		message := fmt.Sprintf("Failed to download scene %v: %v. ", id, response.Status)
		util.LogAlert(context, message+string(body))
		return util.HTTPErr{Status: response.StatusCode, Message: message + string(body)}
	case response.StatusCode >= 500:
		body, _ := ioutil.ReadAll(response.Body)
		message := fmt.Sprintf("The archive endpoint failed to answer for scene %v: %v. ", id, response.Status)
		util.Error{LogMsg: message, SimpleMsg: message, Response: string(body), URL: downloadURL, HTTPStatus: response.StatusCode}.Log(context, "")
		return util.HTTPErr{Status: response.StatusCode, Message: message + string(body)}
	default:
		//no op
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return util.LogSimpleErr(context, fmt.Sprintf("Failed to create archive file %v.", archivePath), err)
	}
	defer out.Close()

	if _, err = io.Copy(out, response.Body); err != nil {
		return util.LogSimpleErr(context, fmt.Sprintf("Failed to write archive %v to disk.", archivePath), err)
	}

	return nil
}
