/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package version reports the build stamped into NetWatch binaries.
package version

import "runtime"

// Set with -ldflags "-X github.com/carverauto/netwatch/pkg/version.version=..."
//
//nolint:gochecknoglobals // These are intentionally global for ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

// BuildInfo is the version block reported by /api/health and -version.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildID   string `json:"buildId"`
	GoVersion string `json:"goVersion"`
}

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetBuildID returns the build identifier.
func GetBuildID() string {
	return buildID
}

// GetFullVersion returns version with build ID
func GetFullVersion() string {
	return version + " (build: " + buildID + ")"
}

// Get returns the full build info.
func Get() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildID:   buildID,
		GoVersion: runtime.Version(),
	}
}
