// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// buildInfo is the part of the embedded build info that --version prints
type buildInfo struct {
	version  string
	revision string
	time     string
	dirty    bool
}

func readBuildInfo() buildInfo {
	bi := buildInfo{version: "dev"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.version = v
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			bi.revision = setting.Value
		case "vcs.time":
			bi.time = setting.Value
		case "vcs.modified":
			bi.dirty = setting.Value == "true"
		}
	}

	return bi
}

// versionTemplate is handed to cobra, which fills in the name and version.
func (bi buildInfo) versionTemplate() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{{.Name}} {{.Version}} (%s %s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if bi.revision != "" {
		fmt.Fprintf(&sb, "commit %s", bi.revision)
		if bi.dirty {
			sb.WriteString(" (dirty)")
		}
		if bi.time != "" {
			fmt.Fprintf(&sb, ", built %s", bi.time)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
