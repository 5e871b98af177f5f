// Package song contains data structures for songs and methods for managing
// and interpreting song data. A Song owns its parts in a flat arena, parts
// reference each other by arena index.
package song

import "strings"

//go:generate go tool go-enum --nocase

// Classification of a song part inside the song structure.
// ENUM(verse, chorus, bridge, intro, outro, interlude, instrumental, solo, preChorus, postChorus, refrain, other)
type PartType int

// Repeatable reports whether a part of this type may legitimately recur in a
// song with all of its contents (refrains and alike), as opposed to parts
// which are sung once (verses, bridges, etc.).
func (t PartType) Repeatable() bool {
	switch t {
	case PartTypeChorus, PartTypePreChorus, PartTypePostChorus, PartTypeRefrain:
		return true
	default:
		return false
	}
}

// PartTypeFromString maps a free-form string to a part type. Matching is
// case-insensitive and unknown strings map to PartTypeOther, mirroring the
// permissive classic format.
func PartTypeFromString(s string) PartType {
	for t, name := range _PartTypeMap {
		if strings.EqualFold(name, s) {
			return t
		}
	}
	return PartTypeOther
}

// Kind of a single voice/content element inside a song part.
// ENUM(leadVoice, supranoVoice, altoVoice, tenorVoice, bassVoice, instrumental, solo, chords, lyrics)
type ContentKind int
