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
	"encoding/base64"
	"fmt"
	"strconv"
)

// ValueKind identifies the variant stored inside a Value.
type ValueKind int

const (
	StringKind ValueKind = iota
	IntKind
	FloatKind
	BoolKind
	BytesKind
)

// Value is a tagged attribute value.  String, integer, float and boolean
// variants have a canonical string form and survive file round trips; the
// bytes variant is for in-memory use and is serialized as base64 when
// written out.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
	raw  []byte
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{kind: StringKind, s: s}
}

// IntValue returns a Value holding i.
func IntValue(i int64) Value {
	return Value{kind: IntKind, i: i}
}

// FloatValue returns a Value holding f.
func FloatValue(f float64) Value {
	return Value{kind: FloatKind, f: f}
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// BytesValue returns a Value holding a copy of raw.
func BytesValue(raw []byte) Value {
	return Value{kind: BytesKind, raw: append([]byte(nil), raw...)}
}

// Kind returns the variant stored in v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int returns the integer variant and whether v holds one.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == IntKind
}

// Float returns the float variant and whether v holds one.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == FloatKind
}

// Bool returns the boolean variant and whether v holds one.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// Bytes returns a copy of the bytes variant and whether v holds one.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != BytesKind {
		return nil, false
	}
	return append([]byte(nil), v.raw...), true
}

// String returns the canonical string form of v.
func (v Value) String() string {
	switch v.kind {
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.b)
	case BytesKind:
		return base64.StdEncoding.EncodeToString(v.raw)
	default:
		return v.s
	}
}

// Attributes is an insertion-ordered key to Value map.  Every entity in the
// hierarchy (Proteome, Protein, Domain, Site, Track) carries one under the
// same contract.
type Attributes struct {
	keys   []string
	values map[string]Value
}

// Get returns the value stored under name and whether it exists.
func (a *Attributes) Get(name string) (Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Set stores value under name, overwriting any previous value.  Keys keep
// their first-insertion position so enumeration order is stable.
func (a *Attributes) Set(name string, value Value) {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Remove deletes name and reports whether it was present.
func (a *Attributes) Remove(name string) bool {
	if _, ok := a.values[name]; !ok {
		return false
	}
	delete(a.values, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return true
}

// Names returns the attribute keys in insertion order.
func (a *Attributes) Names() []string {
	return append([]string(nil), a.keys...)
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

func (a *Attributes) String() string {
	return fmt.Sprintf("[attributes: %d keys]", len(a.keys))
}
