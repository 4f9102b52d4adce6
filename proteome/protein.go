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

package proteome

import (
	"fmt"
	"strings"
)

// StandardAminoAcids is the default allowed alphabet for sequence validity
// checks.
const StandardAminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// Protein is one annotated sequence.  The sequence string is immutable;
// annotations are attached and removed through the methods below and are
// owned exclusively by their protein.
type Protein struct {
	uniqueID   string
	name       string
	sequence   string
	proteome   *Proteome
	attributes Attributes
	domains    []*Domain
	sites      []*Site
	trackOrder []*Track
	tracks     map[string]*Track
}

// UniqueID returns the protein's unique identifier.
func (p *Protein) UniqueID() string { return p.uniqueID }

// Name returns the protein's display name.
func (p *Protein) Name() string { return p.name }

// Sequence returns the full sequence.
func (p *Protein) Sequence() string { return p.sequence }

// Len returns the sequence length.
func (p *Protein) Len() int { return len(p.sequence) }

// Proteome returns the owning proteome, or nil once the protein has been
// removed from it.
func (p *Protein) Proteome() *Proteome { return p.proteome }

// Attributes returns the protein-level attribute store.
func (p *Protein) Attributes() *Attributes { return &p.attributes }

func (p *Protein) checkPosition(position int) error {
	if position < 1 || position > len(p.sequence) {
		return fmt.Errorf("protein %q: position %d outside [1, %d]: %w",
			p.uniqueID, position, len(p.sequence), ErrOutOfRange)
	}
	return nil
}

// Residue returns the residue at a 1-based position.
func (p *Protein) Residue(position int) (byte, error) {
	if err := p.checkPosition(position); err != nil {
		return 0, err
	}
	return p.sequence[position-1], nil
}

// Region returns the inclusive 1-based subsequence from start to end.  Both
// bounds must lie in [1, length] and start must not exceed end.
func (p *Protein) Region(start, end int) (string, error) {
	if start > end {
		return "", fmt.Errorf("protein %q: region %d-%d inverted: %w",
			p.uniqueID, start, end, ErrInvalidInterval)
	}
	if err := p.checkPosition(start); err != nil {
		return "", err
	}
	if err := p.checkPosition(end); err != nil {
		return "", err
	}
	return p.sequence[start-1 : end], nil
}

// Context returns the subsequence within window residues of position,
// clipped to the sequence bounds.  Unlike Region, boundary positions never
// fail; the returned window is simply shorter.  The position itself must
// still be valid.
func (p *Protein) Context(position, window int) (string, error) {
	if err := p.checkPosition(position); err != nil {
		return "", err
	}
	if window < 0 {
		window = 0
	}
	start := position - window
	if start < 1 {
		start = 1
	}
	end := position + window
	if end > len(p.sequence) {
		end = len(p.sequence)
	}
	return p.sequence[start-1 : end], nil
}

// SequenceValid reports whether every residue is in the allowed alphabet.
// An empty alphabet means StandardAminoAcids.
func (p *Protein) SequenceValid(alphabet string) bool {
	if alphabet == "" {
		alphabet = StandardAminoAcids
	}
	for i := 0; i < len(p.sequence); i++ {
		if strings.IndexByte(alphabet, p.sequence[i]) < 0 {
			return false
		}
	}
	return true
}

// ConvertToValid returns a copy of the sequence with every residue outside
// the allowed alphabet replaced by placeholder, along with the 1-based
// positions that changed.  The protein itself is not modified.  An empty
// alphabet means StandardAminoAcids.
func (p *Protein) ConvertToValid(alphabet string, placeholder byte) (string, []int) {
	if alphabet == "" {
		alphabet = StandardAminoAcids
	}
	var changed []int
	out := []byte(p.sequence)
	for i := 0; i < len(out); i++ {
		if strings.IndexByte(alphabet, out[i]) < 0 {
			out[i] = placeholder
			changed = append(changed, i+1)
		}
	}
	return string(out), changed
}

// AddDomain attaches a new domain covering the inclusive interval
// [start, end].  The interval must satisfy 1 <= start <= end <= length.
func (p *Protein) AddDomain(start, end int, domainType string) (*Domain, error) {
	if start > end {
		return nil, fmt.Errorf("protein %q: domain %d-%d inverted: %w",
			p.uniqueID, start, end, ErrInvalidInterval)
	}
	if start < 1 || end > len(p.sequence) {
		return nil, fmt.Errorf("protein %q: domain %d-%d outside [1, %d]: %w",
			p.uniqueID, start, end, len(p.sequence), ErrOutOfRange)
	}
	d := &Domain{start: start, end: end, domainType: domainType, protein: p}
	p.domains = append(p.domains, d)
	return d, nil
}

// Domains returns the attached domains in insertion order.
func (p *Protein) Domains() []*Domain {
	return append([]*Domain(nil), p.domains...)
}

// RemoveDomain detaches d from the protein.
func (p *Protein) RemoveDomain(d *Domain) error {
	for i, have := range p.domains {
		if have == d {
			p.domains = append(p.domains[:i], p.domains[i+1:]...)
			d.protein = nil
			return nil
		}
	}
	return fmt.Errorf("protein %q: removing domain %s: %w", p.uniqueID, d, ErrNotAttached)
}

// DomainsByPosition returns the domains whose interval contains position.
func (p *Protein) DomainsByPosition(position int) []*Domain {
	var out []*Domain
	for _, d := range p.domains {
		if d.Contains(position) {
			out = append(out, d)
		}
	}
	return out
}

// DomainsByType returns the domains with exactly the given type.
func (p *Protein) DomainsByType(domainType string) []*Domain {
	var out []*Domain
	for _, d := range p.domains {
		if d.domainType == domainType {
			out = append(out, d)
		}
	}
	return out
}

// DomainTypes returns the distinct domain types on the protein in
// first-seen order.
func (p *Protein) DomainTypes() []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range p.domains {
		if !seen[d.domainType] {
			seen[d.domainType] = true
			out = append(out, d.domainType)
		}
	}
	return out
}

// AddSite attaches a new site at a 1-based position.  A nil value means the
// site carries no numeric value.  Multiple sites may share a position.
func (p *Protein) AddSite(position int, siteType, symbol string, value *float64) (*Site, error) {
	if err := p.checkPosition(position); err != nil {
		return nil, fmt.Errorf("adding site %q: %w", siteType, err)
	}
	s := &Site{position: position, siteType: siteType, symbol: symbol, protein: p}
	if value != nil {
		v := *value
		s.value = &v
	}
	p.sites = append(p.sites, s)
	return s, nil
}

// Sites returns the attached sites in insertion order.
func (p *Protein) Sites() []*Site {
	return append([]*Site(nil), p.sites...)
}

// RemoveSite detaches s from the protein.
func (p *Protein) RemoveSite(s *Site) error {
	for i, have := range p.sites {
		if have == s {
			p.sites = append(p.sites[:i], p.sites[i+1:]...)
			s.protein = nil
			return nil
		}
	}
	return fmt.Errorf("protein %q: removing site %s: %w", p.uniqueID, s, ErrNotAttached)
}

// SitesByPosition returns the sites at exactly the given position.
func (p *Protein) SitesByPosition(position int) []*Site {
	var out []*Site
	for _, s := range p.sites {
		if s.position == position {
			out = append(out, s)
		}
	}
	return out
}

// SitesByRange returns the sites whose position lies in the inclusive
// interval [start, end].
func (p *Protein) SitesByRange(start, end int) ([]*Site, error) {
	if start > end {
		return nil, fmt.Errorf("protein %q: site range %d-%d inverted: %w",
			p.uniqueID, start, end, ErrInvalidInterval)
	}
	var out []*Site
	for _, s := range p.sites {
		if s.position >= start && s.position <= end {
			out = append(out, s)
		}
	}
	return out, nil
}

// SitesByType returns the sites matching any of the given types.
func (p *Protein) SitesByType(siteTypes ...string) []*Site {
	var out []*Site
	for _, s := range p.sites {
		for _, t := range siteTypes {
			if s.siteType == t {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// SiteTypes returns the distinct site types on the protein in first-seen
// order.
func (p *Protein) SiteTypes() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range p.sites {
		if !seen[s.siteType] {
			seen[s.siteType] = true
			out = append(out, s.siteType)
		}
	}
	return out
}

func (p *Protein) attachTrack(t *Track, n int) error {
	if n != len(p.sequence) {
		return fmt.Errorf("protein %q: track %q has %d entries for sequence of length %d: %w",
			p.uniqueID, t.name, n, len(p.sequence), ErrLengthMismatch)
	}
	if _, ok := p.tracks[t.name]; ok {
		return fmt.Errorf("protein %q: track %q: %w", p.uniqueID, t.name, ErrDuplicateTrack)
	}
	p.tracks[t.name] = t
	p.trackOrder = append(p.trackOrder, t)
	return nil
}

// AddValuesTrack attaches a numeric track.  The number of values must equal
// the sequence length and the name must be unused on this protein.
func (p *Protein) AddValuesTrack(name string, values []float64) (*Track, error) {
	t := &Track{name: name, protein: p, values: append([]float64(nil), values...)}
	if err := p.attachTrack(t, len(values)); err != nil {
		return nil, err
	}
	return t, nil
}

// AddSymbolsTrack attaches a symbolic track under the same constraints as
// AddValuesTrack.
func (p *Protein) AddSymbolsTrack(name string, symbols []string) (*Track, error) {
	t := &Track{name: name, protein: p, symbols: append([]string(nil), symbols...)}
	if err := p.attachTrack(t, len(symbols)); err != nil {
		return nil, err
	}
	return t, nil
}

// Track returns the track with the given name.
func (p *Protein) Track(name string) (*Track, error) {
	t, ok := p.tracks[name]
	if !ok {
		return nil, fmt.Errorf("protein %q: track %q: %w", p.uniqueID, name, ErrUnknownTrack)
	}
	return t, nil
}

// Tracks returns the attached tracks in insertion order.
func (p *Protein) Tracks() []*Track {
	return append([]*Track(nil), p.trackOrder...)
}

// TrackNames returns the track names in insertion order.
func (p *Protein) TrackNames() []string {
	out := make([]string, 0, len(p.trackOrder))
	for _, t := range p.trackOrder {
		out = append(out, t.name)
	}
	return out
}

// RemoveTrack detaches the named track.
func (p *Protein) RemoveTrack(name string) error {
	t, ok := p.tracks[name]
	if !ok {
		return fmt.Errorf("protein %q: removing track %q: %w", p.uniqueID, name, ErrUnknownTrack)
	}
	delete(p.tracks, name)
	for i, have := range p.trackOrder {
		if have == t {
			p.trackOrder = append(p.trackOrder[:i], p.trackOrder[i+1:]...)
			break
		}
	}
	t.protein = nil
	return nil
}

func (p *Protein) String() string {
	return fmt.Sprintf("[protein %s: %d residues]", p.uniqueID, len(p.sequence))
}
