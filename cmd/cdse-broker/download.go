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

	"github.com/geospectra/cdse-broker/archive"
	"github.com/geospectra/cdse-broker/auth"
	"github.com/geospectra/cdse-broker/util"
	cli "gopkg.in/urfave/cli.v1"
)

func downloadAction(c *cli.Context) {
	logContext := &(util.BasicLogContext{})

	sceneName := c.String("scene")
	if sceneName == "" {
		util.LogAlert(logContext, "No scene name given; use --scene")
		return
	}

	accessToken := c.String("token")
	if accessToken == "" {
		token, ok := auth.Token(&auth.Context{TokenURL: util.GetTokenURL()})
		if !ok {
			util.LogAlert(logContext, "No access token available; set CDSE_USERNAME and CDSE_PASSWORD or pass --token")
			return
		}
		accessToken = token
	}

	context := &archive.Context{
		BaseDownloadURL: util.GetDownloadURL(),
		BaseCatalogURL:  util.GetCatalogURL(),
	}
	path, err := archive.RetrieveScene(sceneName, accessToken, c.String("dir"), c.Bool("unpack"), context)
	if err != nil {
		util.LogAlert(logContext, fmt.Sprintf("Download failed: %v", err))
		return
	}

	fmt.Println(path)
}

func tokenAction(c *cli.Context) {
	logContext := &(util.BasicLogContext{})

	token, ok := auth.Token(&auth.Context{TokenURL: util.GetTokenURL()})
	if !ok {
		util.LogAlert(logContext, "No access token available; set CDSE_USERNAME and CDSE_PASSWORD")
		return
	}

	fmt.Println(token)
}
