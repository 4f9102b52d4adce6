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

// Domain is a contiguous annotation over the closed interval [start, end].
// Intervals are validated at attachment; a constructed Domain always
// satisfies 1 <= start <= end <= sequence length.
type Domain struct {
	start      int
	end        int
	domainType string
	protein    *Protein
	attributes Attributes
}

// Start returns the 1-based inclusive start position.
func (d *Domain) Start() int { return d.start }

// End returns the 1-based inclusive end position.
func (d *Domain) End() int { return d.end }

// Type returns the domain type label.
func (d *Domain) Type() string { return d.domainType }

// Len returns the number of residues covered.
func (d *Domain) Len() int { return d.end - d.start + 1 }

// Protein returns the owning protein, or nil after removal.
func (d *Domain) Protein() *Protein { return d.protein }

// Attributes returns the domain-level attribute store.
func (d *Domain) Attributes() *Attributes { return &d.attributes }

// Sequence returns the residues covered by the domain.
func (d *Domain) Sequence() string {
	if d.protein == nil {
		return ""
	}
	return d.protein.sequence[d.start-1 : d.end]
}

// Contains reports whether the 1-based position lies inside the domain.
func (d *Domain) Contains(position int) bool {
	return position >= d.start && position <= d.end
}

// Sites returns the owning protein's sites that fall inside the domain.
func (d *Domain) Sites() []*Site {
	if d.protein == nil {
		return nil
	}
	var out []*Site
	for _, s := range d.protein.sites {
		if d.Contains(s.position) {
			out = append(out, s)
		}
	}
	return out
}

func (d *Domain) String() string {
	id := "?"
	if d.protein != nil {
		id = d.protein.uniqueID
	}
	return fmt.Sprintf("[domain %s %s %d-%d]", id, d.domainType, d.start, d.end)
}

// Overlap reports whether the closed intervals of a and b share at least
// one position.  The two domains are compared purely as intervals; whether
// they come from the same protein is the caller's concern.
func Overlap(a, b *Domain) bool {
	return a.start <= b.end && b.start <= a.end
}

// OverlapDenominator selects the denominator used by OverlapFraction.
type OverlapDenominator int

const (
	// DenomFirst divides by the length of the first domain.
	DenomFirst OverlapDenominator = iota
	// DenomSecond divides by the length of the second domain.
	DenomSecond
	// DenomShorter divides by the length of the shorter domain.
	DenomShorter
	// DenomLonger divides by the length of the longer domain.
	DenomLonger
)

// OverlapFraction returns the intersection length of a and b divided by the
// selected denominator.  The denominator is required because each choice
// yields a different, asymmetric answer.
func OverlapFraction(a, b *Domain, denom OverlapDenominator) (float64, error) {
	var n int
	switch denom {
	case DenomFirst:
		n = a.Len()
	case DenomSecond:
		n = b.Len()
	case DenomShorter:
		n = a.Len()
		if b.Len() < n {
			n = b.Len()
		}
	case DenomLonger:
		n = a.Len()
		if b.Len() > n {
			n = b.Len()
		}
	default:
		return 0, fmt.Errorf("overlap fraction of %s and %s: unknown denominator %d", a, b, denom)
	}
	lo := a.start
	if b.start > lo {
		lo = b.start
	}
	hi := a.end
	if b.end < hi {
		hi = b.end
	}
	if hi < lo {
		return 0, nil
	}
	return float64(hi-lo+1) / float64(n), nil
}
