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
	"bytes"
	"strings"
	"testing"

	"github.com/seqannot/annot/proteome"
)

func seededProteome(t *testing.T, ids ...string) *proteome.Proteome {
	t.Helper()
	p := proteome.New()
	for _, id := range ids {
		if _, err := p.AddProtein(id, id, "MAEPQRDG"); err != nil {
			t.Fatalf("Failed to seed protein %s: %v", id, err)
		}
	}
	return p
}

func TestReadDomains_ConcreteScenario(t *testing.T) {
	p := seededProteome(t, "P1")
	rep, err := ReadDomains(p, strings.NewReader("P1\t2\t4\ttest_domain\n"))
	if err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}
	if rep.Added != 1 || rep.Bad != 0 {
		t.Fatalf("Report = %s, want 1 added, 0 bad", rep.Summary())
	}

	prot, _ := p.Protein("P1")
	domains := prot.Domains()
	if len(domains) != 1 {
		t.Fatalf("Protein has %d domains, want 1", len(domains))
	}
	d := domains[0]
	if d.Start() != 2 || d.End() != 4 || d.Type() != "test_domain" {
		t.Errorf("Domain = %s, want test_domain 2-4", d)
	}
	region, err := prot.Region(d.Start(), d.End())
	if err != nil {
		t.Fatalf("Region failed: %v", err)
	}
	if region != "AEP" {
		t.Errorf("Region(2, 4) = %q, want AEP", region)
	}
}

func TestReadDomains_SelectiveIngestion(t *testing.T) {
	p := seededProteome(t, "A", "C")
	input := "A\t1\t3\td1\n" +
		"B\t2\t4\td1\n" +
		"C\t5\t8\td2\n"
	rep, err := ReadDomains(p, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}
	if rep.Lines != 3 || rep.Matched != 2 || rep.Added != 2 {
		t.Errorf("Report = %s, want 3 lines, 2 matched, 2 added", rep.Summary())
	}
	if rep.Bad != 0 {
		t.Errorf("Skipped line for B was counted as bad: %s", rep.Summary())
	}
	for id, want := range map[string]int{"A": 1, "C": 1} {
		prot, _ := p.Protein(id)
		if got := len(prot.Domains()); got != want {
			t.Errorf("Protein %s has %d domains, want %d", id, got, want)
		}
	}
}

func TestReadDomains_PartialFailure(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t1\t2\tok\n" +
		"P1\t2\n" + // too few columns
		"P1\t2\t4\tok\n" +
		"P1\tx\t4\tbad\n" + // unparsable start
		"P1\t5\t8\tok\n"
	rep, err := ReadDomains(p, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}
	if rep.Added != 3 {
		t.Errorf("Added = %d, want 3", rep.Added)
	}
	if rep.Bad != 2 {
		t.Errorf("Bad = %d, want 2", rep.Bad)
	}
	if len(rep.Messages) != 2 {
		t.Errorf("Messages = %d entries, want 2", len(rep.Messages))
	}
	prot, _ := p.Protein("P1")
	if got := len(prot.Domains()); got != 3 {
		t.Errorf("Protein has %d domains, want 3", got)
	}
}

func TestReadDomains_MessageCapKeepsFullCount(t *testing.T) {
	p := seededProteome(t, "P1")
	var b strings.Builder
	for i := 0; i < 25; i++ {
		b.WriteString("P1\tbroken\n")
	}
	rep, err := ReadDomains(p, strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}
	if rep.Bad != 25 {
		t.Errorf("Bad = %d, want 25", rep.Bad)
	}
	if len(rep.Messages) != MaxReportMessages {
		t.Errorf("Messages = %d entries, want %d", len(rep.Messages), MaxReportMessages)
	}
}

func TestReadDomains_RejectedIntervalsReported(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t4\t2\tinverted\n" +
		"P1\t2\t400\ttoo_long\n"
	rep, err := ReadDomains(p, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}
	if rep.Added != 0 || rep.Bad != 2 {
		t.Errorf("Report = %s, want 0 added, 2 bad", rep.Summary())
	}
}

func TestDomains_RoundTrip(t *testing.T) {
	p := seededProteome(t, "P1", "P2")
	input := "P1\t2\t4\ttest_domain\tpfam:PF00076\tscore:0.95\n" +
		"P1\t5\t8\tother\n" +
		"P2\t1\t8\ttest_domain\tnote:full length\n"
	if _, err := ReadDomains(p, strings.NewReader(input)); err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}

	var first bytes.Buffer
	if err := WriteDomains(p, &first, nil); err != nil {
		t.Fatalf("WriteDomains failed: %v", err)
	}
	if first.String() != input {
		t.Errorf("First write differs from input:\ngot:  %q\nwant: %q", first.String(), input)
	}

	// Read the written output into a fresh proteome seeded with the same
	// sequences and write again: the second write must be byte-identical.
	fresh := seededProteome(t, "P1", "P2")
	if _, err := ReadDomains(fresh, bytes.NewReader(first.Bytes())); err != nil {
		t.Fatalf("Re-reading written domains failed: %v", err)
	}
	var second bytes.Buffer
	if err := WriteDomains(fresh, &second, nil); err != nil {
		t.Fatalf("Second WriteDomains failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("Write-read-write not byte-identical:\nfirst:  %q\nsecond: %q", first.String(), second.String())
	}
}

func TestWriteDomains_TypeFilter(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t1\t2\tkeep\nP1\t3\t4\tdrop\nP1\t5\t6\tkeep\n"
	if _, err := ReadDomains(p, strings.NewReader(input)); err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}

	var out bytes.Buffer
	if err := WriteDomains(p, &out, []string{"keep"}); err != nil {
		t.Fatalf("WriteDomains failed: %v", err)
	}
	want := "P1\t1\t2\tkeep\nP1\t5\t6\tkeep\n"
	if out.String() != want {
		t.Errorf("Filtered output = %q, want %q", out.String(), want)
	}

	out.Reset()
	if err := WriteDomains(p, &out, []string{}); err != nil {
		t.Fatalf("WriteDomains with empty filter failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Empty filter wrote %q, want nothing", out.String())
	}
}

func TestAddDomains_Dictionary(t *testing.T) {
	p := seededProteome(t, "P1", "P2")
	records := map[string][]DomainRecord{
		"P1": {{Start: 2, End: 4, DomainType: "test_domain",
			Attributes: []KeyValue{{Key: "pfam", Value: "PF00076"}}}},
		"P3": {{Start: 1, End: 2, DomainType: "ignored"}},
	}
	rep := AddDomains(p, records)
	if rep.Added != 1 || rep.Bad != 0 {
		t.Errorf("Report = %s, want 1 added, 0 bad", rep.Summary())
	}
	prot, _ := p.Protein("P1")
	d := prot.Domains()[0]
	if v, ok := d.Attributes().Get("pfam"); !ok || v.String() != "PF00076" {
		t.Errorf("Attribute pfam = %v, %v, want PF00076", v, ok)
	}
}

func TestReadDomains_SkipsCommentsAndBlankLines(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "# domains for the test set\n\nP1\t2\t4\ttest_domain\n"
	rep, err := ReadDomains(p, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDomains failed: %v", err)
	}
	if rep.Lines != 1 || rep.Added != 1 {
		t.Errorf("Report = %s, want 1 line, 1 added", rep.Summary())
	}
}
