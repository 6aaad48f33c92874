// Copyright © 2026 corvid contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log is a thin wrapper over the standard library's log
// package for diagnostic output; no other package in this module
// imports it. UCI replies go
// to stdout through pkg/uci; everything here goes to stderr, so a
// GUI parsing stdout never sees it.
package log

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "corvid: ", log.LstdFlags)

// Printf logs a formatted diagnostic line.
func Printf(format string, v ...any) {
	std.Printf(format, v...)
}

// Info logs search/engine progress, e.g. "info depth 8 nodes 120345".
func Info(depth, nodes int, score string) {
	std.Printf("info depth %d nodes %d score %s", depth, nodes, score)
}
