package song

import "strings"

// NoPart marks an absent arena reference.
const NoPart = -1

// Part is one structural element of a song. Parts live in the arena of their
// Song; IsRepetitionOf and OccursAfter are arena indexes of earlier parts
// (NoPart when unset), so repetition links always point backwards and cannot
// form cycles.
type Part struct {
	ID             PartID    `json:"id"`
	Type           PartType  `json:"type"`
	Number         int       `json:"number"`
	Contents       []Content `json:"contents,omitempty"`
	IsRepetitionOf int       `json:"is_repetition_of"`
	OccursAfter    int       `json:"occurs_after"`
}

// NewPart constructs a part from a validated ID. The part type is derived
// from the ID prefix. A non-positive number defaults to 1.
func NewPart(id PartID, number int) Part {
	if number <= 0 {
		number = 1
	}
	return Part{
		ID:             id,
		Type:           id.Type(),
		Number:         number,
		IsRepetitionOf: NoPart,
		OccursAfter:    NoPart,
	}
}

func (p *Part) AddContent(c Content) {
	p.Contents = append(p.Contents, c)
}

// Content returns the first content element with the given voice type.
func (p *Part) Content(voice VoiceType) (Content, bool) {
	for _, c := range p.Contents {
		if c.Voice == voice {
			return c, true
		}
	}
	return Content{}, false
}

// HasLyrics reports whether any content element of the part carries lyrics.
func (p *Part) HasLyrics() bool {
	for _, c := range p.Contents {
		if c.Voice.IsLyrics() {
			return true
		}
	}
	return false
}

func (p *Part) Repeatable() bool {
	return p.Type.Repeatable()
}

// Song represents one song document: a title, free-form tags and an ordered
// arena of parts.
type Song struct {
	Title string            `json:"title"`
	Tags  map[string]string `json:"tags,omitempty"`
	Parts []Part            `json:"parts,omitempty"`
}

func New(title string) *Song {
	return &Song{
		Title: title,
		Tags:  make(map[string]string),
	}
}

// AddTag inserts a tag, overwriting any previous value for the key.
func (s *Song) AddTag(key, value string) {
	if s.Tags == nil {
		s.Tags = make(map[string]string)
	}
	s.Tags[key] = value
}

// Tag returns the value of a tag.
func (s *Song) Tag(key string) (string, bool) {
	v, ok := s.Tags[key]
	return v, ok
}

// AddPart appends a part to the arena and returns its index. ID uniqueness
// is not checked here.
func (s *Song) AddPart(p Part) int {
	s.Parts = append(s.Parts, p)
	return len(s.Parts) - 1
}

// AddPartOfType appends a new empty part of the given type and returns its
// arena index. When number is not positive it defaults to the count of
// existing parts of that type plus one.
func (s *Song) AddPartOfType(t PartType, number int) int {
	if number <= 0 {
		number = s.PartCount(t) + 1
	}
	return s.AddPart(NewPart(MakePartID(t, number), number))
}

// ReclassifyPart changes type and number of an existing part in place and
// re-derives its ID accordingly.
func (s *Song) ReclassifyPart(idx int, t PartType, number int) {
	p := &s.Parts[idx]
	p.Type = t
	p.Number = number
	p.ID = MakePartID(t, number)
}

// PartCount returns the number of parts of a specific type.
func (s *Song) PartCount(t PartType) int {
	count := 0
	for i := range s.Parts {
		if s.Parts[i].Type == t {
			count++
		}
	}
	return count
}

// TotalPartCount returns the number of parts in the song.
func (s *Song) TotalPartCount() int {
	return len(s.Parts)
}

// FindContentInParts returns arena indexes of all parts holding a content
// element whose text equals the given text. The comparison is
// case-insensitive.
func (s *Song) FindContentInParts(text string) []int {
	var found []int
	for i := range s.Parts {
		for _, c := range s.Parts[i].Contents {
			if strings.EqualFold(c.Text, text) {
				found = append(found, i)
				break
			}
		}
	}
	return found
}

// FindFirstContentInParts returns the arena index of the first part matching
// FindContentInParts, or NoPart.
func (s *Song) FindFirstContentInParts(text string) int {
	if found := s.FindContentInParts(text); len(found) > 0 {
		return found[0]
	}
	return NoPart
}

// PartByID returns the arena index of the part with the given textual ID, or
// NoPart.
func (s *Song) PartByID(id string) int {
	for i := range s.Parts {
		if s.Parts[i].ID.String() == id {
			return i
		}
	}
	return NoPart
}

// PartsByType returns arena indexes of all parts of the given type, in
// document order.
func (s *Song) PartsByType(t PartType) []int {
	var found []int
	for i := range s.Parts {
		if s.Parts[i].Type == t {
			found = append(found, i)
		}
	}
	return found
}

// ContentTypes returns all voice types used anywhere in the song, in order
// of first appearance.
func (s *Song) ContentTypes() []VoiceType {
	var types []VoiceType
	seen := make(map[VoiceType]struct{})
	for i := range s.Parts {
		for _, c := range s.Parts[i].Contents {
			if _, ok := seen[c.Voice]; ok {
				continue
			}
			seen[c.Voice] = struct{}{}
			types = append(types, c.Voice)
		}
	}
	return types
}
