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

package fields

import (
	"strconv"
	"testing"
)

func TestKeyValue(t *testing.T) {
	testCases := []struct {
		name  string
		token string
		key   string
		value string
		ok    bool
	}{
		{"simple", "pfam:PF00076", "pfam", "PF00076", true},
		{"value with colon", "url:http://x", "url", "http://x", true},
		{"empty value", "flag:", "flag", "", true},
		{"no delimiter", "justakey", "", "", false},
		{"empty key", ":value", "", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, value, err := KeyValue(tc.token)
			if tc.ok != (err == nil) {
				t.Fatalf("KeyValue(%q) error = %v, want ok=%v", tc.token, err, tc.ok)
			}
			if key != tc.key || value != tc.value {
				t.Errorf("KeyValue(%q) = %q, %q, want %q, %q", tc.token, key, value, tc.key, tc.value)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name    string
		values  []string
		numeric bool
		ok      bool
	}{
		{"all numeric", []string{"1", "0.5", "-3e2"}, true, true},
		{"all symbolic", []string{"H", "C", "E"}, false, true},
		{"mixed", []string{"1", "H", "2"}, false, false},
		{"empty", nil, false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			numeric, err := Classify(tc.values)
			if tc.ok != (err == nil) {
				t.Fatalf("Classify(%v) error = %v, want ok=%v", tc.values, err, tc.ok)
			}
			if err == nil && numeric != tc.numeric {
				t.Errorf("Classify(%v) = %v, want %v", tc.values, numeric, tc.numeric)
			}
		})
	}
}

func TestIsComment(t *testing.T) {
	for line, want := range map[string]bool{
		"# comment":      true,
		"   # indented":  true,
		"P1\t2\t4\ttype": false,
		"":               false,
	} {
		if got := IsComment(line); got != want {
			t.Errorf("IsComment(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestFormatFloat_RoundTrips(t *testing.T) {
	for _, s := range []string{"1", "0.5", "-3", "0.123456789"} {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", s, err)
		}
		if got := FormatFloat(f); got != s {
			t.Errorf("FormatFloat(%s) = %q, want %q", s, got, s)
		}
	}
}
