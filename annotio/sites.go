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

	"github.com/seqannot/annot/internal/fields"
	"github.com/seqannot/annot/proteome"
)

// Placeholders used by the sites format for "no symbol" and "no value".
// They exist only at the file boundary; in memory a site carries an
// explicit absent state instead.
const (
	noSymbol = "-"
	noValue  = "None"
)

// SiteRecord is one parsed line of a sites file:
//
//	Unique_ID  position  site_type  symbol  value  [key:value ...]
//
// Symbol "" and Value nil stand for the "-" and "None" placeholders.
type SiteRecord struct {
	Position   int
	SiteType   string
	Symbol     string
	Value      *float64
	Attributes []KeyValue
}

// LoadSites reads a sites file from path into p.
func LoadSites(p *proteome.Proteome, path string) (*Report, error) {
	return loadFile(path, func(r io.Reader) (*Report, error) {
		return ReadSites(p, r)
	})
}

// ReadSites reads site lines from r into p under the shared selective
// ingestion and partial-failure contract.
func ReadSites(p *proteome.Proteome, r io.Reader) (*Report, error) {
	rep := &Report{}
	err := forEachMatch(r, knownIDs(p), rep, func(line int, f []string) {
		if len(f) < 5 {
			rep.errorf("line %d: site record has %d columns, want at least 5", line, len(f))
			return
		}
		position, err := strconv.Atoi(f[1])
		if err != nil {
			rep.errorf("line %d: bad position %q", line, f[1])
			return
		}
		symbol := f[3]
		if symbol == noSymbol {
			symbol = ""
		}
		var value *float64
		if f[4] != noValue {
			v, err := strconv.ParseFloat(f[4], 64)
			if err != nil {
				rep.errorf("line %d: bad value %q", line, f[4])
				return
			}
			value = &v
		}
		pairs, ok := parseKeyValues(f[5:], line, rep)
		if !ok {
			return
		}
		rec := SiteRecord{Position: position, SiteType: f[2], Symbol: symbol, Value: value, Attributes: pairs}
		attachSite(p, f[0], rec, fmt.Sprintf("line %d", line), rep)
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// AddSites attaches already-parsed site records, keyed by unique ID, to the
// matching proteins in p.
func AddSites(p *proteome.Proteome, records map[string][]SiteRecord) *Report {
	rep := &Report{}
	for _, prot := range p.Proteins() {
		recs, ok := records[prot.UniqueID()]
		if !ok {
			continue
		}
		for i, rec := range recs {
			rep.Matched++
			attachSite(p, prot.UniqueID(), rec, fmt.Sprintf("record %d for %q", i, prot.UniqueID()), rep)
		}
	}
	return rep
}

func attachSite(p *proteome.Proteome, uniqueID string, rec SiteRecord, ref string, rep *Report) {
	prot, err := p.Protein(uniqueID)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	s, err := prot.AddSite(rec.Position, rec.SiteType, rec.Symbol, rec.Value)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	applyAttributes(s.Attributes(), rec.Attributes)
	rep.Added++
}

// SaveSites writes the sites of p to path, optionally restricted to the
// listed site types.
func SaveSites(p *proteome.Proteome, path string, siteTypes []string) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteSites(p, w, siteTypes)
	})
}

// WriteSites writes site lines for p to w in insertion order.  Absent
// symbols and values come out as the "-" and "None" placeholders and read
// back in as absent.
func WriteSites(p *proteome.Proteome, w io.Writer, siteTypes []string) error {
	set := typeSet(siteTypes)
	var b strings.Builder
	for _, prot := range p.Proteins() {
		for _, s := range prot.Sites() {
			if !typeSelected(set, s.Type()) {
				continue
			}
			symbol := s.Symbol()
			if symbol == "" {
				symbol = noSymbol
			}
			value := noValue
			if v, ok := s.Value(); ok {
				value = fields.FormatFloat(v)
			}
			b.Reset()
			fmt.Fprintf(&b, "%s\t%d\t%s\t%s\t%s", prot.UniqueID(), s.Position(), s.Type(), symbol, value)
			writeAttributes(&b, s.Attributes())
			b.WriteByte('\n')
			if _, err := io.WriteString(w, b.String()); err != nil {
				return fmt.Errorf("writing site %s: %v", s, err)
			}
		}
	}
	return nil
}
