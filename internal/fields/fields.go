// Copyright 2026 The annot authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fields provides support for parsing the fields of tab-separated
// annotation files.
package fields

import (
	"fmt"
	"strconv"
	"strings"
)

// IsComment reports whether line is a comment line (first non-blank
// character is '#').
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// KeyValue splits a "key:value" token on its first colon.  The key must be
// non-empty; the value may be empty.
func KeyValue(token string) (string, string, error) {
	i := strings.IndexByte(token, ':')
	if i < 0 {
		return "", "", fmt.Errorf("token %q has no key:value delimiter", token)
	}
	if i == 0 {
		return "", "", fmt.Errorf("token %q has an empty key", token)
	}
	return token[:i], token[i+1:], nil
}

// Classify reports whether the value fields of a track line are numeric.
// A line whose every field parses as a float is numeric; one where no field
// parses is symbolic.  Anything in between is a mixed line, which is a
// format error.
func Classify(values []string) (bool, error) {
	if len(values) == 0 {
		return false, fmt.Errorf("no values to classify")
	}
	parsed := 0
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			parsed++
		}
	}
	switch parsed {
	case len(values):
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("mixed numeric and symbolic values (%d of %d numeric)", parsed, len(values))
	}
}

// FormatFloat renders a float the way the writers emit numeric fields.  The
// shortest representation that round-trips is used, so a written file reads
// back to the same values and a second write is byte-identical.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
