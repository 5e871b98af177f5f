// Package slides turns classic song format text into an ordered sequence of
// presentation slides. It is independent of the document parser in importer:
// both read the same grammar, but this package keeps a secondary "spoiler"
// track per stanza and enforces a maximum line count per slide.
package slides

import "strings"

// Presentation is an ordered list of slides ready for display software.
type Presentation []Slide

// Slide is a tagged record: Kind selects the variant, the remaining fields
// are populated per variant and omitted from JSON otherwise.
type Slide struct {
	Kind SlideKind `json:"kind"`

	// Title variant.
	TitleText string `json:"title_text,omitempty"`

	// SingleContent variant. MainText is mandatory, SpoilerText and
	// MetaText are optional and never hold whitespace-only values.
	MainText    string `json:"main_text,omitempty"`
	SpoilerText string `json:"spoiler_text,omitempty"`

	// MultiContent variant, one entry per parallel language track.
	MainTexts    []string `json:"main_texts,omitempty"`
	SpoilerTexts []string `json:"spoiler_texts,omitempty"`

	// Shared by Title and content variants.
	MetaText string `json:"meta_text,omitempty"`

	// Picture variant.
	PicturePath string `json:"picture_path,omitempty"`

	// Empty variant. When true the display replaces the default
	// background with a black one.
	BlackBackground bool `json:"black_background,omitempty"`
}

// NewTitleSlide creates the opening slide of a song.
func NewTitleSlide(titleText, metaText string) Slide {
	return Slide{
		Kind:      SlideKindTitle,
		TitleText: titleText,
		MetaText:  normalizeOptional(metaText),
	}
}

// NewContentSlide creates a single-track content slide. Whitespace-only
// spoiler or meta text is normalized to absent.
func NewContentSlide(mainText, spoilerText, metaText string) Slide {
	return Slide{
		Kind:        SlideKindSingleContent,
		MainText:    mainText,
		SpoilerText: normalizeOptional(spoilerText),
		MetaText:    normalizeOptional(metaText),
	}
}

// NewPictureSlide creates a slide showing a single image.
func NewPictureSlide(path string) Slide {
	return Slide{Kind: SlideKindPicture, PicturePath: path}
}

// NewEmptySlide creates a slide without content.
func NewEmptySlide(blackBackground bool) Slide {
	return Slide{Kind: SlideKindEmpty, BlackBackground: blackBackground}
}

// HasSpoiler reports whether the slide carries secondary preview text.
func (s Slide) HasSpoiler() bool {
	switch s.Kind {
	case SlideKindSingleContent:
		return s.SpoilerText != ""
	case SlideKindMultiContent:
		return len(s.SpoilerTexts) > 0
	default:
		return false
	}
}

func normalizeOptional(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}
