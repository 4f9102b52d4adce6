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

// Package proteome implements the hierarchical annotation model: a Proteome
// owns Proteins, and each Protein owns its Domains, Sites, Tracks and
// Attributes.  All public coordinates are 1-based and inclusive on both
// ends: position 1 is the first residue, and the region 2-4 of MAEPQRDG is
// AEP.
package proteome

import "fmt"

// Proteome is an insertion-ordered collection of Proteins keyed by unique
// ID.  It is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize externally.
type Proteome struct {
	ids        []string
	proteins   map[string]*Protein
	attributes Attributes
}

// New returns an empty Proteome.
func New() *Proteome {
	return &Proteome{proteins: make(map[string]*Protein)}
}

// AddProtein inserts a new protein and returns it.  The unique ID must not
// already be present.
func (p *Proteome) AddProtein(uniqueID, name, sequence string) (*Protein, error) {
	if _, ok := p.proteins[uniqueID]; ok {
		return nil, fmt.Errorf("adding protein %q: %w", uniqueID, ErrDuplicateID)
	}
	prot := &Protein{
		uniqueID: uniqueID,
		name:     name,
		sequence: sequence,
		proteome: p,
		tracks:   make(map[string]*Track),
	}
	p.ids = append(p.ids, uniqueID)
	p.proteins[uniqueID] = prot
	return prot, nil
}

// Protein returns the protein with the given unique ID.
func (p *Proteome) Protein(uniqueID string) (*Protein, error) {
	prot, ok := p.proteins[uniqueID]
	if !ok {
		return nil, fmt.Errorf("looking up protein %q: %w", uniqueID, ErrUnknownProtein)
	}
	return prot, nil
}

// Contains reports whether the proteome holds the given unique ID.
func (p *Proteome) Contains(uniqueID string) bool {
	_, ok := p.proteins[uniqueID]
	return ok
}

// Proteins returns the proteins in insertion order.
func (p *Proteome) Proteins() []*Protein {
	out := make([]*Protein, 0, len(p.ids))
	for _, id := range p.ids {
		out = append(out, p.proteins[id])
	}
	return out
}

// UniqueIDs returns the protein IDs in insertion order.
func (p *Proteome) UniqueIDs() []string {
	return append([]string(nil), p.ids...)
}

// Len returns the number of proteins.
func (p *Proteome) Len() int {
	return len(p.ids)
}

// RemoveProtein removes the protein with the given unique ID.  The removed
// protein is detached: its back-reference to the proteome is severed and
// every annotation it owns goes with it.
func (p *Proteome) RemoveProtein(uniqueID string) error {
	prot, ok := p.proteins[uniqueID]
	if !ok {
		return fmt.Errorf("removing protein %q: %w", uniqueID, ErrUnknownProtein)
	}
	delete(p.proteins, uniqueID)
	for i, id := range p.ids {
		if id == uniqueID {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			break
		}
	}
	prot.proteome = nil
	return nil
}

// Attributes returns the proteome-level attribute store.
func (p *Proteome) Attributes() *Attributes {
	return &p.attributes
}

// DomainsByType returns every domain of the given type across all proteins,
// in protein insertion order and then domain insertion order.
func (p *Proteome) DomainsByType(domainType string) []*Domain {
	var out []*Domain
	for _, id := range p.ids {
		out = append(out, p.proteins[id].DomainsByType(domainType)...)
	}
	return out
}

// SitesByType returns every site matching one of the given types across all
// proteins, in insertion order.
func (p *Proteome) SitesByType(siteTypes ...string) []*Site {
	var out []*Site
	for _, id := range p.ids {
		out = append(out, p.proteins[id].SitesByType(siteTypes...)...)
	}
	return out
}

// DomainTypes returns the distinct domain types present in the proteome, in
// first-seen order.
func (p *Proteome) DomainTypes() []string {
	return distinct(p.ids, func(id string) []string {
		return p.proteins[id].DomainTypes()
	})
}

// SiteTypes returns the distinct site types present in the proteome, in
// first-seen order.
func (p *Proteome) SiteTypes() []string {
	return distinct(p.ids, func(id string) []string {
		return p.proteins[id].SiteTypes()
	})
}

// TrackNames returns the distinct track names present in the proteome, in
// first-seen order.
func (p *Proteome) TrackNames() []string {
	return distinct(p.ids, func(id string) []string {
		return p.proteins[id].TrackNames()
	})
}

func distinct(ids []string, get func(string) []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, id := range ids {
		for _, v := range get(id) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func (p *Proteome) String() string {
	return fmt.Sprintf("[proteome: %d proteins]", len(p.ids))
}
