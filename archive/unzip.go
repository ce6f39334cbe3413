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
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/geospectra/cdse-broker/util"
)

// extractArchive unpacks the zip at zipPath into destDir and returns
// the archive's top-level entry whose name contains the archive base
// name. The top-level entry is captured from the zip's own file list
// while extracting, not re-derived from the filesystem afterwards.
func extractArchive(zipPath, destDir string) (string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	base := strings.TrimSuffix(filepath.Base(zipPath), filepath.Ext(zipPath))
	topLevel := ""
	for _, entry := range reader.File {
		if err := extractEntry(entry, destDir); err != nil {
			return "", err
		}
		if segment := topSegment(entry.Name); topLevel == "" && strings.Contains(segment, base) {
			topLevel = segment
		}
	}

	if topLevel == "" {
		return "", util.NotFound{Message: fmt.Sprintf("no entry matching %q found in extracted archive %v", base, zipPath)}
	}
	return topLevel, nil
}

// topSegment returns the first path segment of a zip entry name
func topSegment(name string) string {
	clean := path.Clean(name)
	if i := strings.IndexRune(clean, '/'); i >= 0 {
		return clean[:i]
	}
	return clean
}

// extractEntry writes one zip entry under destDir. Directory entries
// create directories; file entries get their parent directories created
// as needed. Entries must stay inside destDir.
func extractEntry(entry *zip.File, destDir string) error {
	cleanDest := filepath.Clean(destDir)
	target := filepath.Join(cleanDest, filepath.FromSlash(entry.Name))
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return util.InvalidArgument{Message: fmt.Sprintf("archive entry escapes the destination directory: %s", entry.Name)}
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
