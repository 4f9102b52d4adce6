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

import "fmt"

// Site is a single-position annotation.  The symbol and the numeric value
// are both optional: an empty symbol means none, and an absent value is
// represented explicitly (Value returns ok=false) rather than by any
// placeholder number.  Placeholders exist only in the file formats.
type Site struct {
	position   int
	siteType   string
	symbol     string
	value      *float64
	protein    *Protein
	attributes Attributes
}

// Position returns the 1-based position of the site.
func (s *Site) Position() int { return s.position }

// Type returns the site type label.
func (s *Site) Type() string { return s.siteType }

// Symbol returns the site symbol, or "" when the site has none.
func (s *Site) Symbol() string { return s.symbol }

// Value returns the numeric value and whether the site has one.
func (s *Site) Value() (float64, bool) {
	if s.value == nil {
		return 0, false
	}
	return *s.value, true
}

// SetValue sets the numeric value; a nil pointer clears it.
func (s *Site) SetValue(value *float64) {
	if value == nil {
		s.value = nil
		return
	}
	v := *value
	s.value = &v
}

// SetSymbol sets the symbol; "" clears it.
func (s *Site) SetSymbol(symbol string) {
	s.symbol = symbol
}

// Protein returns the owning protein, or nil after removal.
func (s *Site) Protein() *Protein { return s.protein }

// Attributes returns the site-level attribute store.
func (s *Site) Attributes() *Attributes { return &s.attributes }

// Residue returns the residue at the site's position.
func (s *Site) Residue() byte {
	if s.protein == nil {
		return 0
	}
	return s.protein.sequence[s.position-1]
}

// Context returns the sequence around the site, clipped to the sequence
// bounds like Protein.Context.
func (s *Site) Context(window int) string {
	if s.protein == nil {
		return ""
	}
	ctx, _ := s.protein.Context(s.position, window)
	return ctx
}

// Domains returns the owning protein's domains that contain the site.
func (s *Site) Domains() []*Domain {
	if s.protein == nil {
		return nil
	}
	return s.protein.DomainsByPosition(s.position)
}

func (s *Site) String() string {
	id := "?"
	if s.protein != nil {
		id = s.protein.uniqueID
	}
	return fmt.Sprintf("[site %s %s @ %d]", id, s.siteType, s.position)
}
