package slides

//go:generate go tool go-enum --nocase --marshal

// SlideKind selects the slide variant.
// ENUM(title, singleContent, multiContent, picture, empty)
type SlideKind int

// MetaDisplay selects on which slides the rendered meta text appears.
// ENUM(none, firstSlide, lastSlide, firstSlideAndLastSlide)
type MetaDisplay int

// OnFirst reports whether meta text goes on the first content slide.
func (x MetaDisplay) OnFirst() bool {
	return x == MetaDisplayFirstSlide || x == MetaDisplayFirstSlideAndLastSlide
}

// OnLast reports whether meta text goes on the last content slide.
func (x MetaDisplay) OnLast() bool {
	return x == MetaDisplayLastSlide || x == MetaDisplayFirstSlideAndLastSlide
}
