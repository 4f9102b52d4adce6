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

// Package annotools provides derived annotation operations built on the
// public proteome contracts: gap filling, region detection from tracks and
// site density vectors.
package annotools

import (
	"fmt"

	"github.com/seqannot/annot/proteome"
)

// BuildMissingDomains attaches one domain of the given type per maximal run
// of residues not covered by any existing domain, and returns the new
// domains in position order.  A fully covered sequence yields none.
func BuildMissingDomains(p *proteome.Protein, domainType string) ([]*proteome.Domain, error) {
	covered := make([]bool, p.Len())
	for _, d := range p.Domains() {
		for i := d.Start(); i <= d.End(); i++ {
			covered[i-1] = true
		}
	}
	var out []*proteome.Domain
	for _, run := range runs(len(covered), func(i int) bool { return !covered[i-1] }) {
		d, err := p.AddDomain(run[0], run[1], domainType)
		if err != nil {
			return nil, fmt.Errorf("filling gap %d-%d: %v", run[0], run[1], err)
		}
		out = append(out, d)
	}
	return out, nil
}

// BuildDomainsFromTrackValues scans a numeric track left to right and
// attaches one domain of the given type per maximal run of consecutive
// positions whose value satisfies pred, including runs touching either
// sequence boundary.  The new domains are returned in position order.
func BuildDomainsFromTrackValues(t *proteome.Track, pred func(float64) bool, domainType string) ([]*proteome.Domain, error) {
	prot := t.Protein()
	if prot == nil {
		return nil, fmt.Errorf("track %q is not attached to a protein", t.Name())
	}
	values, err := t.Values()
	if err != nil {
		return nil, fmt.Errorf("building domains from track %q: %v", t.Name(), err)
	}
	var out []*proteome.Domain
	for _, run := range runs(len(values), func(i int) bool { return pred(values[i-1]) }) {
		d, err := prot.AddDomain(run[0], run[1], domainType)
		if err != nil {
			return nil, fmt.Errorf("building domain %d-%d from track %q: %v", run[0], run[1], t.Name(), err)
		}
		out = append(out, d)
	}
	return out, nil
}

// BuildSiteDensityVector attaches and returns a numeric track named
// "<siteType>_density_w<windowSize>" where each position holds the count of
// sites of the given type within a centered window of windowSize residues,
// clipped at the sequence boundaries.
func BuildSiteDensityVector(p *proteome.Protein, siteType string, windowSize int) (*proteome.Track, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("site density for %q: window size %d must be positive", siteType, windowSize)
	}
	n := p.Len()
	counts := make([]float64, n)
	half := windowSize / 2
	for _, s := range p.SitesByType(siteType) {
		lo := s.Position() - half
		if lo < 1 {
			lo = 1
		}
		hi := s.Position() + half
		if hi > n {
			hi = n
		}
		for i := lo; i <= hi; i++ {
			counts[i-1]++
		}
	}
	name := fmt.Sprintf("%s_density_w%d", siteType, windowSize)
	return p.AddValuesTrack(name, counts)
}

// runs returns the maximal runs of 1-based positions in [1, n] satisfying
// keep, as [start, end] pairs in ascending order.
func runs(n int, keep func(int) bool) [][2]int {
	var out [][2]int
	start := 0
	for i := 1; i <= n; i++ {
		switch {
		case keep(i) && start == 0:
			start = i
		case !keep(i) && start != 0:
			out = append(out, [2]int{start, i - 1})
			start = 0
		}
	}
	if start != 0 {
		out = append(out, [2]int{start, n})
	}
	return out
}
