package song

import (
	"fmt"

	"golang.org/x/text/language"
)

// VoiceType tags a content element of a part: one of the voices, chords or
// lyrics. Language is meaningful only for lyrics; the zero tag means "no
// specific language information is given". VoiceType is comparable, equality
// includes the language.
type VoiceType struct {
	Kind     ContentKind  `json:"kind"`
	Language language.Tag `json:"language,omitzero"`
}

// Voice returns a VoiceType for a non-lyrics kind.
func Voice(kind ContentKind) VoiceType {
	return VoiceType{Kind: kind}
}

// Lyrics returns a lyrics VoiceType in the given language. Use the zero tag
// for the default language.
func Lyrics(lang language.Tag) VoiceType {
	return VoiceType{Kind: ContentKindLyrics, Language: lang}
}

func (v VoiceType) IsLyrics() bool {
	return v.Kind == ContentKindLyrics
}

func (v VoiceType) String() string {
	if v.Kind == ContentKindLyrics && v.Language != (language.Tag{}) {
		return fmt.Sprintf("%s (%s)", v.Kind, v.Language)
	}
	return v.Kind.String()
}

// Content is a single voice element of a part together with its text blob
// (lyrics, chord line, etc.).
type Content struct {
	Voice VoiceType `json:"voice"`
	Text  string    `json:"text"`
}
