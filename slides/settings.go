package slides

// Settings controls the structure of a generated presentation. It concerns
// what slides are produced, not how they are styled.
type Settings struct {
	// ShowTitleSlide emits a title slide before the content slides.
	ShowTitleSlide bool
	// ShowSpoiler fills the spoiler text of content slides, either from
	// the stanza's secondary track or from the next stanza's main text.
	ShowSpoiler bool
	// ShowMetaInformation selects the slides carrying rendered meta text.
	ShowMetaInformation MetaDisplay
	// MetaSyntax is the template the meta text is rendered from, with the
	// song's metadata tags as data ("{{.title}} ({{.author}})").
	MetaSyntax string
	// EmptyLastSlide appends one empty slide after all content.
	EmptyLastSlide bool
	// MaxLines caps the line count per content slide, 0 means unlimited.
	MaxLines int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ShowTitleSlide:      true,
		ShowSpoiler:         true,
		ShowMetaInformation: MetaDisplayFirstSlideAndLastSlide,
		MetaSyntax:          "{{.title}}",
		EmptyLastSlide:      true,
		MaxLines:            0,
	}
}
