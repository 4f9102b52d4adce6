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
	"fmt"
	"io"
	"strings"

	"github.com/seqannot/annot/proteome"
)

// LoadProteinAttributes reads a protein-attributes file from path into p.
// The format is one protein per line:
//
//	Unique_ID  key1:value1  [key2:value2 ...]
func LoadProteinAttributes(p *proteome.Proteome, path string) (*Report, error) {
	return loadFile(path, func(r io.Reader) (*Report, error) {
		return ReadProteinAttributes(p, r)
	})
}

// ReadProteinAttributes reads protein-attribute lines from r into p.
func ReadProteinAttributes(p *proteome.Proteome, r io.Reader) (*Report, error) {
	rep := &Report{}
	err := forEachMatch(r, knownIDs(p), rep, func(line int, f []string) {
		if len(f) < 2 {
			rep.errorf("line %d: attribute record has no key:value columns", line)
			return
		}
		pairs, ok := parseKeyValues(f[1:], line, rep)
		if !ok {
			return
		}
		addProteinAttributes(p, f[0], pairs, fmt.Sprintf("line %d", line), rep)
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// AddProteinAttributes attaches already-parsed attribute pairs, keyed by
// unique ID, to the matching proteins in p.
func AddProteinAttributes(p *proteome.Proteome, records map[string][]KeyValue) *Report {
	rep := &Report{}
	for _, prot := range p.Proteins() {
		pairs, ok := records[prot.UniqueID()]
		if !ok {
			continue
		}
		rep.Matched++
		addProteinAttributes(p, prot.UniqueID(), pairs, fmt.Sprintf("record for %q", prot.UniqueID()), rep)
	}
	return rep
}

func addProteinAttributes(p *proteome.Proteome, uniqueID string, pairs []KeyValue, ref string, rep *Report) {
	prot, err := p.Protein(uniqueID)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	applyAttributes(prot.Attributes(), pairs)
	rep.Added += len(pairs)
}

// SaveProteinAttributes writes the protein attributes of p to path.
func SaveProteinAttributes(p *proteome.Proteome, path string) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteProteinAttributes(p, w)
	})
}

// WriteProteinAttributes writes one line per protein that has attributes,
// in insertion order.  Proteins without attributes produce no line.
func WriteProteinAttributes(p *proteome.Proteome, w io.Writer) error {
	var b strings.Builder
	for _, prot := range p.Proteins() {
		if prot.Attributes().Len() == 0 {
			continue
		}
		b.Reset()
		b.WriteString(prot.UniqueID())
		writeAttributes(&b, prot.Attributes())
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("writing attributes for %q: %v", prot.UniqueID(), err)
		}
	}
	return nil
}
