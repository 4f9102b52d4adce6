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

package annotio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/seqannot/annot/internal/fields"
	"github.com/seqannot/annot/proteome"
)

// ProteinRecord is one parsed line of a proteins file:
//
//	Unique_ID  name  sequence  [key:value ...]
//
// Unlike the annotation formats, this format creates proteins, so records
// keep their file order and a unique ID may appear only once.
type ProteinRecord struct {
	UniqueID   string
	Name       string
	Sequence   string
	Attributes []KeyValue
}

// LoadProteins reads a proteins file from path into p.
func LoadProteins(p *proteome.Proteome, path string) (*Report, error) {
	return loadFile(path, func(r io.Reader) (*Report, error) {
		return ReadProteins(p, r)
	})
}

// ReadProteins reads protein lines from r into p.  There is no selective
// filter here: every line defines a new protein.  Malformed lines and
// duplicate IDs are aggregated into the report.
func ReadProteins(p *proteome.Proteome, r io.Reader) (*Report, error) {
	rep := &Report{}
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
		rep.Matched++
		f := strings.Split(text, "\t")
		if len(f) < 3 {
			rep.errorf("line %d: protein record has %d columns, want at least 3", line, len(f))
			continue
		}
		pairs, ok := parseKeyValues(f[3:], line, rep)
		if !ok {
			continue
		}
		rec := ProteinRecord{UniqueID: f[0], Name: f[1], Sequence: f[2], Attributes: pairs}
		addProtein(p, rec, fmt.Sprintf("line %d", line), rep)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading proteins file: %v", err)
	}
	return rep, nil
}

// AddProteins inserts already-parsed protein records into p in slice order.
func AddProteins(p *proteome.Proteome, records []ProteinRecord) *Report {
	rep := &Report{}
	for i, rec := range records {
		rep.Matched++
		addProtein(p, rec, fmt.Sprintf("record %d (%q)", i, rec.UniqueID), rep)
	}
	return rep
}

func addProtein(p *proteome.Proteome, rec ProteinRecord, ref string, rep *Report) {
	prot, err := p.AddProtein(rec.UniqueID, rec.Name, rec.Sequence)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	applyAttributes(prot.Attributes(), rec.Attributes)
	rep.Added++
}

// SaveProteins writes the proteins of p to path.
func SaveProteins(p *proteome.Proteome, path string) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteProteins(p, w)
	})
}

// WriteProteins writes one line per protein in insertion order, including
// protein-level attributes.
func WriteProteins(p *proteome.Proteome, w io.Writer) error {
	var b strings.Builder
	for _, prot := range p.Proteins() {
		b.Reset()
		fmt.Fprintf(&b, "%s\t%s\t%s", prot.UniqueID(), prot.Name(), prot.Sequence())
		writeAttributes(&b, prot.Attributes())
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("writing protein %q: %v", prot.UniqueID(), err)
		}
	}
	return nil
}
