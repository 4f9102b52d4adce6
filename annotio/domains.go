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
	"strconv"
	"strings"

	"github.com/seqannot/annot/proteome"
)

// DomainRecord is one parsed line of a domains file:
//
//	Unique_ID  start  end  domain_type  [key:value ...]
type DomainRecord struct {
	Start      int
	End        int
	DomainType string
	Attributes []KeyValue
}

// LoadDomains reads a domains file from path into p.
func LoadDomains(p *proteome.Proteome, path string) (*Report, error) {
	return loadFile(path, func(r io.Reader) (*Report, error) {
		return ReadDomains(p, r)
	})
}

// ReadDomains reads domain lines from r into p.  Lines for unknown unique
// IDs are skipped without error; malformed lines and rejected intervals are
// aggregated into the report.
func ReadDomains(p *proteome.Proteome, r io.Reader) (*Report, error) {
	rep := &Report{}
	err := forEachMatch(r, knownIDs(p), rep, func(line int, f []string) {
		if len(f) < 4 {
			rep.errorf("line %d: domain record has %d columns, want at least 4", line, len(f))
			return
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			rep.errorf("line %d: bad start %q", line, f[1])
			return
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			rep.errorf("line %d: bad end %q", line, f[2])
			return
		}
		pairs, ok := parseKeyValues(f[4:], line, rep)
		if !ok {
			return
		}
		rec := DomainRecord{Start: start, End: end, DomainType: f[3], Attributes: pairs}
		attachDomain(p, f[0], rec, fmt.Sprintf("line %d", line), rep)
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// AddDomains attaches already-parsed domain records, keyed by unique ID, to
// the matching proteins in p.  Records for unknown IDs are skipped.  This
// is the attachment path the file reader feeds as well.
func AddDomains(p *proteome.Proteome, records map[string][]DomainRecord) *Report {
	rep := &Report{}
	for _, prot := range p.Proteins() {
		recs, ok := records[prot.UniqueID()]
		if !ok {
			continue
		}
		for i, rec := range recs {
			rep.Matched++
			attachDomain(p, prot.UniqueID(), rec, fmt.Sprintf("record %d for %q", i, prot.UniqueID()), rep)
		}
	}
	return rep
}

func attachDomain(p *proteome.Proteome, uniqueID string, rec DomainRecord, ref string, rep *Report) {
	prot, err := p.Protein(uniqueID)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	d, err := prot.AddDomain(rec.Start, rec.End, rec.DomainType)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	applyAttributes(d.Attributes(), rec.Attributes)
	rep.Added++
}

// SaveDomains writes the domains of p to path.  A nil domainTypes writes
// every domain; otherwise only domains whose type is listed are written.
func SaveDomains(p *proteome.Proteome, path string, domainTypes []string) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteDomains(p, w, domainTypes)
	})
}

// WriteDomains writes domain lines for p to w in insertion order.
func WriteDomains(p *proteome.Proteome, w io.Writer, domainTypes []string) error {
	set := typeSet(domainTypes)
	var b strings.Builder
	for _, prot := range p.Proteins() {
		for _, d := range prot.Domains() {
			if !typeSelected(set, d.Type()) {
				continue
			}
			b.Reset()
			fmt.Fprintf(&b, "%s\t%d\t%d\t%s", prot.UniqueID(), d.Start(), d.End(), d.Type())
			writeAttributes(&b, d.Attributes())
			b.WriteByte('\n')
			if _, err := io.WriteString(w, b.String()); err != nil {
				return fmt.Errorf("writing domain %s: %v", d, err)
			}
		}
	}
	return nil
}
