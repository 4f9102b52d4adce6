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

// TrackRecord is one parsed line of a tracks file:
//
//	Unique_ID  track_name  v1  v2  ...  vN
//
// Exactly one of Values and Symbols is set; N must equal the owning
// sequence length, which is checked at attachment.
type TrackRecord struct {
	Name    string
	Values  []float64
	Symbols []string
}

// LoadTracks reads a tracks file from path into p.
func LoadTracks(p *proteome.Proteome, path string) (*Report, error) {
	return loadFile(path, func(r io.Reader) (*Report, error) {
		return ReadTracks(p, r)
	})
}

// ReadTracks reads track lines from r into p.  A line is numeric when all
// of its value fields parse as floats and symbolic when none do; mixed
// lines are reported as format errors.
func ReadTracks(p *proteome.Proteome, r io.Reader) (*Report, error) {
	rep := &Report{}
	err := forEachMatch(r, knownIDs(p), rep, func(line int, f []string) {
		if len(f) < 3 {
			rep.errorf("line %d: track record has %d columns, want at least 3", line, len(f))
			return
		}
		raw := f[2:]
		numeric, err := fields.Classify(raw)
		if err != nil {
			rep.errorf("line %d: track %q: %v", line, f[1], err)
			return
		}
		rec := TrackRecord{Name: f[1]}
		if numeric {
			rec.Values = make([]float64, len(raw))
			for i, v := range raw {
				// Classify already proved these parse.
				rec.Values[i], _ = strconv.ParseFloat(v, 64)
			}
		} else {
			rec.Symbols = append([]string(nil), raw...)
		}
		attachTrack(p, f[0], rec, fmt.Sprintf("line %d", line), rep)
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// AddTracks attaches already-parsed track records, keyed by unique ID, to
// the matching proteins in p.
func AddTracks(p *proteome.Proteome, records map[string][]TrackRecord) *Report {
	rep := &Report{}
	for _, prot := range p.Proteins() {
		recs, ok := records[prot.UniqueID()]
		if !ok {
			continue
		}
		for i, rec := range recs {
			rep.Matched++
			attachTrack(p, prot.UniqueID(), rec, fmt.Sprintf("record %d for %q", i, prot.UniqueID()), rep)
		}
	}
	return rep
}

func attachTrack(p *proteome.Proteome, uniqueID string, rec TrackRecord, ref string, rep *Report) {
	prot, err := p.Protein(uniqueID)
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	if rec.Values != nil {
		_, err = prot.AddValuesTrack(rec.Name, rec.Values)
	} else {
		_, err = prot.AddSymbolsTrack(rec.Name, rec.Symbols)
	}
	if err != nil {
		rep.errorf("%s: %v", ref, err)
		return
	}
	rep.Added++
}

// SaveTracks writes the tracks of p to path, optionally restricted to the
// listed track names.
func SaveTracks(p *proteome.Proteome, path string, trackNames []string) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteTracks(p, w, trackNames)
	})
}

// WriteTracks writes track lines for p to w in insertion order.
func WriteTracks(p *proteome.Proteome, w io.Writer, trackNames []string) error {
	set := typeSet(trackNames)
	var b strings.Builder
	for _, prot := range p.Proteins() {
		for _, t := range prot.Tracks() {
			if !typeSelected(set, t.Name()) {
				continue
			}
			b.Reset()
			b.WriteString(prot.UniqueID())
			b.WriteByte('\t')
			b.WriteString(t.Name())
			if t.Numeric() {
				values, _ := t.Values()
				for _, v := range values {
					b.WriteByte('\t')
					b.WriteString(fields.FormatFloat(v))
				}
			} else {
				symbols, _ := t.Symbols()
				for _, s := range symbols {
					b.WriteByte('\t')
					b.WriteString(s)
				}
			}
			b.WriteByte('\n')
			if _, err := io.WriteString(w, b.String()); err != nil {
				return fmt.Errorf("writing track %s: %v", t, err)
			}
		}
	}
	return nil
}
