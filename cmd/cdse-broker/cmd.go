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
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "search",
		Aliases: []string{"q"},
		Usage:   "Search the scene catalog",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "satellite", Value: "SENTINEL-2", Usage: "SENTINEL-1, SENTINEL-2 or SENTINEL-3"},
			cli.StringFlag{Name: "product", Usage: "A scene name substring, e.g. L2A"},
			cli.StringFlag{Name: "from", Usage: "The earliest acquisition date (2006-01-02 or RFC 3339)"},
			cli.StringFlag{Name: "to", Usage: "The latest acquisition date (2006-01-02 or RFC 3339)"},
			cli.StringFlag{Name: "tile", Usage: "An MGRS tile id (SENTINEL-2 only)"},
			cli.Float64Flag{Name: "max-cloud-cover", Value: -1, Usage: "The maximum cloud cover, as a percentage (0-100)"},
			cli.StringFlag{Name: "bbox", Usage: "A bounding box: west,south,east,north"},
			cli.IntFlag{Name: "top", Usage: "The result cap (default 100)"},
		},
		Action: searchAction,
	},
	cli.Command{
		Name:    "download",
		Aliases: []string{"d"},
		Usage:   "Download a scene archive by name",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "scene", Usage: "The scene name to download"},
			cli.StringFlag{Name: "dir", Value: ".", Usage: "The destination directory"},
			cli.BoolFlag{Name: "unpack", Usage: "Extract the archive and remove the zip"},
			cli.StringFlag{Name: "token", Usage: "A bearer token (fetched from CDSE_USERNAME/CDSE_PASSWORD when omitted)"},
		},
		Action: downloadAction,
	},
	cli.Command{
		Name:    "token",
		Aliases: []string{"t"},
		Usage:   "Print an access token for the configured credentials",
		Action:  tokenAction,
	},
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the cdse-broker webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the Broker CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "cdse-broker"
	app.Usage = "Discover and retrieve Copernicus Data Space scenes"
	app.Commands = commands
	return
}
