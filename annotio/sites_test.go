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
)

func TestReadSites_PlaceholdersBecomeAbsent(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t3\tphosphosite\tS\t0.75\n" +
		"P1\t5\tcleavage\t-\tNone\n"
	rep, err := ReadSites(p, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSites failed: %v", err)
	}
	if rep.Added != 2 || rep.Bad != 0 {
		t.Fatalf("Report = %s, want 2 added, 0 bad", rep.Summary())
	}

	prot, _ := p.Protein("P1")
	sites := prot.Sites()

	if sites[0].Symbol() != "S" {
		t.Errorf("First site symbol = %q, want S", sites[0].Symbol())
	}
	if v, ok := sites[0].Value(); !ok || v != 0.75 {
		t.Errorf("First site value = %v, %v, want 0.75", v, ok)
	}

	if sites[1].Symbol() != "" {
		t.Errorf("Placeholder symbol survived: %q", sites[1].Symbol())
	}
	if _, ok := sites[1].Value(); ok {
		t.Error("None value parsed as a number, want absent")
	}
}

func TestSites_RoundTrip(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t3\tphosphosite\tS\t0.75\tsource:mass_spec\n" +
		"P1\t5\tcleavage\t-\tNone\n" +
		"P1\t5\tcleavage\t-\t1\n"
	if _, err := ReadSites(p, strings.NewReader(input)); err != nil {
		t.Fatalf("ReadSites failed: %v", err)
	}

	var first bytes.Buffer
	if err := WriteSites(p, &first, nil); err != nil {
		t.Fatalf("WriteSites failed: %v", err)
	}
	if first.String() != input {
		t.Errorf("Round trip differs:\ngot:  %q\nwant: %q", first.String(), input)
	}

	fresh := seededProteome(t, "P1")
	if _, err := ReadSites(fresh, bytes.NewReader(first.Bytes())); err != nil {
		t.Fatalf("Re-reading written sites failed: %v", err)
	}
	var second bytes.Buffer
	if err := WriteSites(fresh, &second, nil); err != nil {
		t.Fatalf("Second WriteSites failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("Write-read-write on sites not byte-identical")
	}
}

func TestReadSites_BadLines(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t3\tphosphosite\tS\t0.75\n" +
		"P1\tnotanumber\tphosphosite\tS\t1\n" +
		"P1\t4\tphosphosite\tS\tnotafloat\n" +
		"P1\t4\tshort\n" +
		"P1\t99\tphosphosite\tS\t1\n"
	rep, err := ReadSites(p, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadSites failed: %v", err)
	}
	if rep.Added != 1 || rep.Bad != 4 {
		t.Errorf("Report = %s, want 1 added, 4 bad", rep.Summary())
	}
}

func TestWriteSites_TypeFilter(t *testing.T) {
	p := seededProteome(t, "P1")
	input := "P1\t1\tkeep\t-\tNone\nP1\t2\tdrop\t-\tNone\n"
	if _, err := ReadSites(p, strings.NewReader(input)); err != nil {
		t.Fatalf("ReadSites failed: %v", err)
	}
	var out bytes.Buffer
	if err := WriteSites(p, &out, []string{"keep"}); err != nil {
		t.Fatalf("WriteSites failed: %v", err)
	}
	if want := "P1\t1\tkeep\t-\tNone\n"; out.String() != want {
		t.Errorf("Filtered output = %q, want %q", out.String(), want)
	}
}

func TestAddSites_Dictionary(t *testing.T) {
	p := seededProteome(t, "P1")
	value := 2.5
	rep := AddSites(p, map[string][]SiteRecord{
		"P1": {
			{Position: 2, SiteType: "mark", Symbol: "K", Value: &value},
			{Position: 40, SiteType: "mark"},
		},
	})
	if rep.Added != 1 || rep.Bad != 1 {
		t.Errorf("Report = %s, want 1 added, 1 bad", rep.Summary())
	}
}
