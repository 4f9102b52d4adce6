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

// Package annotio provides support for reading and writing the flat
// tab-separated annotation file formats: domains, sites, tracks, protein
// attributes and proteins.
//
// Every reader shares one contract.  Lines whose leading unique ID is not
// already present in the proteome are skipped before any further parsing;
// this keeps load cost proportional to matching lines.  Malformed lines
// never abort a load: they are counted in the returned Report, which keeps
// at most MaxReportMessages messages but always the full count.  Each file
// reader is a thin tokenizer in front of a records-based loader that does
// all validation and attachment, and that loader is exported so callers
// holding pre-parsed records can skip the file layer.  Writers emit records
// in insertion order so that a write, read, write cycle is byte-identical
// on the second write.
package annotio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seqannot/annot/internal/fields"
	"github.com/seqannot/annot/proteome"
)

// MaxReportMessages is the maximum number of per-line error messages kept
// in a Report.  Counts are always complete even when messages are dropped.
const MaxReportMessages = 10

// KeyValue is one attribute entry parsed from a trailing key:value token.
// Order is preserved so writers can reproduce the original column order.
type KeyValue struct {
	Key   string
	Value string
}

// Report describes the outcome of one bulk load.
type Report struct {
	// Lines is the number of non-comment lines seen.
	Lines int
	// Matched is the number of lines whose unique ID was in the proteome.
	Matched int
	// Added is the number of annotations attached.
	Added int
	// Bad is the total number of malformed or rejected records.
	Bad int
	// Messages holds the first MaxReportMessages error messages.
	Messages []string
}

func (r *Report) errorf(format string, args ...interface{}) {
	r.Bad++
	if len(r.Messages) < MaxReportMessages {
		r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
	}
}

// Summary returns a one-line description of the load outcome.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d lines, %d matched, %d added, %d bad", r.Lines, r.Matched, r.Added, r.Bad)
}

// knownIDs builds the hash set of unique IDs consulted before any record is
// constructed.  The pre-pass is what makes selective ingestion cheap.
func knownIDs(p *proteome.Proteome) map[string]struct{} {
	ids := p.UniqueIDs()
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return known
}

// forEachMatch scans r line by line, skips comments and lines whose leading
// ID is not in known, and hands every remaining line to fn already split
// into fields.  Only scanner failures are returned as errors; per-line
// problems belong in the report.
func forEachMatch(r io.Reader, known map[string]struct{}, rep *Report, fn func(line int, fields []string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || fields.IsComment(text) {
			continue
		}
		rep.Lines++
		id := text
		if i := strings.IndexByte(text, '\t'); i >= 0 {
			id = text[:i]
		}
		if _, ok := known[id]; !ok {
			continue
		}
		rep.Matched++
		fn(line, strings.Split(text, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading annotation file: %v", err)
	}
	return nil
}

// parseKeyValues parses trailing key:value tokens, reporting the malformed
// record through rep and returning false if any token is broken.
func parseKeyValues(tokens []string, line int, rep *Report) ([]KeyValue, bool) {
	var out []KeyValue
	for _, token := range tokens {
		k, v, err := fields.KeyValue(token)
		if err != nil {
			rep.errorf("line %d: %v", line, err)
			return nil, false
		}
		out = append(out, KeyValue{Key: k, Value: v})
	}
	return out, true
}

// applyAttributes copies parsed key:value pairs into an attribute store as
// string values, preserving order.
func applyAttributes(attrs *proteome.Attributes, pairs []KeyValue) {
	for _, kv := range pairs {
		attrs.Set(kv.Key, proteome.StringValue(kv.Value))
	}
}

// writeAttributes appends the key:value columns for an attribute store.
// Keys are emitted in insertion order using each value's canonical string
// form, which is what makes a second write byte-identical.
func writeAttributes(b *strings.Builder, attrs *proteome.Attributes) {
	for _, name := range attrs.Names() {
		v, _ := attrs.Get(name)
		b.WriteByte('\t')
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(v.String())
	}
}

// typeSet converts an optional type-label filter to a lookup set.  A nil
// slice means no filtering; an explicit empty slice selects nothing.
func typeSet(types []string) map[string]struct{} {
	if types == nil {
		return nil
	}
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func typeSelected(set map[string]struct{}, label string) bool {
	if set == nil {
		return true
	}
	_, ok := set[label]
	return ok
}

func loadFile(path string, fn func(io.Reader) (*Report, error)) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", path, err)
	}
	defer f.Close()
	return fn(f)
}

func saveFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %v", path, err)
	}
	return f.Close()
}
