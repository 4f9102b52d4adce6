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

package fasta

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqannot/annot/proteome"
)

const sample = `>P1 protein one
MAEPQRDG
>P2 protein two
GGGGCCCC
AAAA
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Got %d records, want 2", len(records))
	}
	if records[0].ID != "P1" || records[0].Sequence != "MAEPQRDG" {
		t.Errorf("First record = %s %q", records[0].ID, records[0].Sequence)
	}
	if records[1].ID != "P2" || records[1].Sequence != "GGGGCCCCAAAA" {
		t.Errorf("Multi-line sequence = %s %q, want P2 GGGGCCCCAAAA", records[1].ID, records[1].Sequence)
	}
	if records[1].Header != "P2 protein two" {
		t.Errorf("Header = %q, want %q", records[1].Header, "P2 protein two")
	}
}

func TestRead_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"sequence before header", "MAEPQRDG\n"},
		{"empty header", ">\nMAEP\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tc.input)); err == nil {
				t.Error("Unexpected success")
			}
		})
	}
}

func TestToProteome(t *testing.T) {
	records, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	p, err := ToProteome(records)
	if err != nil {
		t.Fatalf("ToProteome failed: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Proteome has %d proteins, want 2", p.Len())
	}
	prot, err := p.Protein("P1")
	if err != nil {
		t.Fatalf("Protein lookup failed: %v", err)
	}
	if prot.Name() != "P1 protein one" {
		t.Errorf("Name = %q, want full header", prot.Name())
	}

	dup := append(records, records[0])
	if _, err := ToProteome(dup); err == nil {
		t.Error("Duplicate FASTA IDs unexpectedly accepted")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	p := proteome.New()
	long := strings.Repeat("MAEPQRDGVL", 13) // 130 residues forces wrapping
	if _, err := p.AddProtein("P1", "P1 protein one", long); err != nil {
		t.Fatalf("AddProtein failed: %v", err)
	}

	var out bytes.Buffer
	if err := Write(p, &out); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	records, err := Read(&out)
	if err != nil {
		t.Fatalf("Re-reading written FASTA failed: %v", err)
	}
	if len(records) != 1 || records[0].Sequence != long {
		t.Errorf("Round trip lost sequence data")
	}
}
