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

// Track is a per-residue vector annotation with exactly one entry per
// residue of the owning sequence.  A track is either entirely numeric or
// entirely symbolic, never mixed; the length invariant is enforced at
// attachment.
type Track struct {
	name       string
	protein    *Protein
	values     []float64
	symbols    []string
	attributes Attributes
}

// Name returns the track name, unique per protein.
func (t *Track) Name() string { return t.name }

// Protein returns the owning protein, or nil after removal.
func (t *Track) Protein() *Protein { return t.protein }

// Attributes returns the track-level attribute store.
func (t *Track) Attributes() *Attributes { return &t.attributes }

// Numeric reports whether the track holds numeric values.
func (t *Track) Numeric() bool { return t.values != nil }

// Symbolic reports whether the track holds symbolic values.
func (t *Track) Symbolic() bool { return t.symbols != nil }

// Len returns the number of entries, equal to the owning sequence length.
func (t *Track) Len() int {
	if t.values != nil {
		return len(t.values)
	}
	return len(t.symbols)
}

// Values returns a copy of the numeric entries.
func (t *Track) Values() ([]float64, error) {
	if t.values == nil {
		return nil, fmt.Errorf("track %q is symbolic: %w", t.name, ErrSymbolicTrack)
	}
	return append([]float64(nil), t.values...), nil
}

// Symbols returns a copy of the symbolic entries.
func (t *Track) Symbols() ([]string, error) {
	if t.symbols == nil {
		return nil, fmt.Errorf("track %q is numeric: %w", t.name, ErrSymbolicTrack)
	}
	return append([]string(nil), t.symbols...), nil
}

func (t *Track) checkPosition(position int) error {
	if position < 1 || position > t.Len() {
		return fmt.Errorf("track %q: position %d outside [1, %d]: %w",
			t.name, position, t.Len(), ErrOutOfRange)
	}
	return nil
}

// Value returns the numeric entry at a 1-based position.
func (t *Track) Value(position int) (float64, error) {
	if t.values == nil {
		return 0, fmt.Errorf("track %q is symbolic: %w", t.name, ErrSymbolicTrack)
	}
	if err := t.checkPosition(position); err != nil {
		return 0, err
	}
	return t.values[position-1], nil
}

// Symbol returns the symbolic entry at a 1-based position.
func (t *Track) Symbol(position int) (string, error) {
	if t.symbols == nil {
		return "", fmt.Errorf("track %q is numeric: %w", t.name, ErrSymbolicTrack)
	}
	if err := t.checkPosition(position); err != nil {
		return "", err
	}
	return t.symbols[position-1], nil
}

func (t *Track) checkRegion(start, end int) error {
	if start > end {
		return fmt.Errorf("track %q: region %d-%d inverted: %w", t.name, start, end, ErrInvalidInterval)
	}
	if err := t.checkPosition(start); err != nil {
		return err
	}
	return t.checkPosition(end)
}

// ValuesRegion returns a copy of the numeric entries over the inclusive
// interval [start, end].
func (t *Track) ValuesRegion(start, end int) ([]float64, error) {
	if t.values == nil {
		return nil, fmt.Errorf("track %q is symbolic: %w", t.name, ErrSymbolicTrack)
	}
	if err := t.checkRegion(start, end); err != nil {
		return nil, err
	}
	return append([]float64(nil), t.values[start-1:end]...), nil
}

// SymbolsRegion returns a copy of the symbolic entries over the inclusive
// interval [start, end].
func (t *Track) SymbolsRegion(start, end int) ([]string, error) {
	if t.symbols == nil {
		return nil, fmt.Errorf("track %q is numeric: %w", t.name, ErrSymbolicTrack)
	}
	if err := t.checkRegion(start, end); err != nil {
		return nil, err
	}
	return append([]string(nil), t.symbols[start-1:end]...), nil
}

func (t *Track) String() string {
	id := "?"
	if t.protein != nil {
		id = t.protein.uniqueID
	}
	kind := "values"
	if t.symbols != nil {
		kind = "symbols"
	}
	return fmt.Sprintf("[track %s %s: %d %s]", id, t.name, t.Len(), kind)
}
