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

import "errors"

// Error kinds returned by the model.  Callers match them with errors.Is;
// every returned error also names the identifier, position or field that
// triggered it.
var (
	// ErrDuplicateID is returned when inserting a protein whose unique ID
	// already exists in the proteome.
	ErrDuplicateID = errors.New("duplicate unique ID")

	// ErrUnknownProtein is returned when looking up a unique ID that is not
	// in the proteome.
	ErrUnknownProtein = errors.New("unknown protein")

	// ErrOutOfRange is returned when a position or interval falls outside
	// [1, length] of the owning sequence.
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidInterval is returned for inverted intervals (start > end).
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrLengthMismatch is returned when a track's entry count differs from
	// the owning sequence length.
	ErrLengthMismatch = errors.New("track length mismatch")

	// ErrDuplicateTrack is returned when adding a track under a name the
	// protein already has.
	ErrDuplicateTrack = errors.New("duplicate track name")

	// ErrUnknownTrack is returned when looking up a track name the protein
	// does not have.
	ErrUnknownTrack = errors.New("unknown track")

	// ErrNotAttached is returned when removing an annotation that does not
	// belong to the protein it was offered to.
	ErrNotAttached = errors.New("annotation not attached to protein")

	// ErrSymbolicTrack is returned when numeric values are requested from a
	// symbolic track, and vice versa.
	ErrSymbolicTrack = errors.New("track holds no values of that kind")
)
