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

// Package fasta provides support for building proteomes from FASTA files
// and writing them back out.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seqannot/annot/proteome"
)

// lineWidth is the sequence wrap width used by Write.
const lineWidth = 60

// Record is one FASTA entry.  ID is the first whitespace-delimited token of
// the header and becomes the unique ID; the full header becomes the name.
type Record struct {
	ID       string
	Header   string
	Sequence string
}

// Read parses FASTA records from r in file order.
func Read(r io.Reader) ([]Record, error) {
	var (
		records []Record
		current *Record
		seq     strings.Builder
	)
	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
			seq.Reset()
		}
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, ">") {
			flush()
			header := strings.TrimSpace(text[1:])
			if header == "" {
				return nil, fmt.Errorf("line %d: empty FASTA header", line)
			}
			current = &Record{ID: strings.Fields(header)[0], Header: header}
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: sequence data before first header", line)
		}
		seq.WriteString(text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading FASTA: %v", err)
	}
	flush()
	return records, nil
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", path, err)
	}
	defer f.Close()
	return Read(f)
}

// ToProteome builds a proteome from FASTA records.  Duplicate IDs fail the
// same way duplicate proteome inserts do.
func ToProteome(records []Record) (*proteome.Proteome, error) {
	p := proteome.New()
	for _, rec := range records {
		if _, err := p.AddProtein(rec.ID, rec.Header, rec.Sequence); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// LoadProteome reads the FASTA file at path into a fresh proteome.
func LoadProteome(path string) (*proteome.Proteome, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ToProteome(records)
}

// Write writes the proteome as FASTA in insertion order, wrapping sequence
// lines at 60 columns.
func Write(p *proteome.Proteome, w io.Writer) error {
	for _, prot := range p.Proteins() {
		header := prot.Name()
		if header == "" {
			header = prot.UniqueID()
		}
		if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
			return fmt.Errorf("writing header for %q: %v", prot.UniqueID(), err)
		}
		seq := prot.Sequence()
		for start := 0; start < len(seq); start += lineWidth {
			end := start + lineWidth
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", seq[start:end]); err != nil {
				return fmt.Errorf("writing sequence for %q: %v", prot.UniqueID(), err)
			}
		}
	}
	return nil
}
