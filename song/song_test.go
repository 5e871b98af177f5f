package song

import (
	"testing"

	"golang.org/x/text/language"
)

func TestPartID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ParsePartID("verse.1")
		if err != nil {
			t.Fatalf("ParsePartID() error = %v", err)
		}
		if id.String() != "verse.1" {
			t.Errorf("String() = %q, want %q", id.String(), "verse.1")
		}
		if id.Type() != PartTypeVerse {
			t.Errorf("Type() = %v, want %v", id.Type(), PartTypeVerse)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, bad := range []string{"abcdefg", "verse.", ".1", "verse.one", "verse.1.2", ""} {
			if _, err := ParsePartID(bad); err == nil {
				t.Errorf("ParsePartID(%q) expected error", bad)
			}
		}
	})

	t.Run("case insensitive type", func(t *testing.T) {
		id, err := ParsePartID("Chorus.2")
		if err != nil {
			t.Fatalf("ParsePartID() error = %v", err)
		}
		if id.Type() != PartTypeChorus {
			t.Errorf("Type() = %v, want %v", id.Type(), PartTypeChorus)
		}
	})
}

func TestPartTypeRepeatable(t *testing.T) {
	repeatable := map[PartType]bool{
		PartTypeVerse:        false,
		PartTypeChorus:       true,
		PartTypeBridge:       false,
		PartTypeIntro:        false,
		PartTypeOutro:        false,
		PartTypeInterlude:    false,
		PartTypeInstrumental: false,
		PartTypeSolo:         false,
		PartTypePreChorus:    true,
		PartTypePostChorus:   true,
		PartTypeRefrain:      true,
		PartTypeOther:        false,
	}
	for pt, want := range repeatable {
		if got := pt.Repeatable(); got != want {
			t.Errorf("%s.Repeatable() = %v, want %v", pt, got, want)
		}
	}
}

func TestAddTag(t *testing.T) {
	s := New("Test Song")
	s.AddTag("key", "value")
	s.AddTag("key2", "value2")

	if v, ok := s.Tag("key"); !ok || v != "value" {
		t.Errorf("Tag(key) = %q, %v", v, ok)
	}

	// last write wins
	s.AddTag("key", "updated")
	if v, _ := s.Tag("key"); v != "updated" {
		t.Errorf("Tag(key) after overwrite = %q, want %q", v, "updated")
	}
}

func TestAddPartOfType(t *testing.T) {
	s := New("Test Song")

	first := s.AddPartOfType(PartTypeVerse, 0)
	second := s.AddPartOfType(PartTypeVerse, 0)

	if got := s.Parts[first].ID.String(); got != "verse.1" {
		t.Errorf("first verse id = %q, want %q", got, "verse.1")
	}
	if got := s.Parts[second].ID.String(); got != "verse.2" {
		t.Errorf("second verse id = %q, want %q", got, "verse.2")
	}
	if got := s.PartCount(PartTypeVerse); got != 2 {
		t.Errorf("PartCount(verse) = %d, want 2", got)
	}
	if got := s.TotalPartCount(); got != 2 {
		t.Errorf("TotalPartCount() = %d, want 2", got)
	}
}

// ID uniqueness is a documented property, not an enforced one: a caller may
// add two parts carrying the same ID and the arena accepts both.
func TestAddPartDuplicateIDRepresentable(t *testing.T) {
	s := New("Test Song")
	id, _ := ParsePartID("verse.1")
	s.AddPart(NewPart(id, 1))
	s.AddPart(NewPart(id, 1))

	if got := s.TotalPartCount(); got != 2 {
		t.Fatalf("TotalPartCount() = %d, want 2", got)
	}
	if got := s.PartByID("verse.1"); got != 0 {
		t.Errorf("PartByID returns first match = %d, want 0", got)
	}
}

func TestFindContentInParts(t *testing.T) {
	s := New("Amazing Grace")

	idx := s.AddPartOfType(PartTypeVerse, 0)
	s.Parts[idx].AddContent(Content{
		Voice: Lyrics(language.Tag{}),
		Text:  "Amazing Grace, how sweet the sound...",
	})

	idx = s.AddPartOfType(PartTypeChorus, 0)
	s.Parts[idx].AddContent(Content{
		Voice: Voice(ContentKindLeadVoice),
		Text:  "c4 d4 e4 f4 g4",
	})

	// full-content match only, not substring
	if got := s.FindContentInParts("Amazing Grace"); len(got) != 0 {
		t.Errorf("substring matched: %v", got)
	}
	// case-insensitive full match
	got := s.FindContentInParts("amazing grace, HOW sweet the sound...")
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("FindContentInParts = %v, want [0]", got)
	}
	if got := s.FindFirstContentInParts("no such stanza"); got != NoPart {
		t.Errorf("FindFirstContentInParts = %d, want NoPart", got)
	}
}

func TestContentTypes(t *testing.T) {
	s := New("Test Song")

	idx := s.AddPartOfType(PartTypeVerse, 0)
	s.Parts[idx].AddContent(Content{Voice: Lyrics(language.Tag{}), Text: "la la la"})

	idx = s.AddPartOfType(PartTypeChorus, 0)
	s.Parts[idx].AddContent(Content{Voice: Voice(ContentKindLeadVoice), Text: "c4 d4"})
	s.Parts[idx].AddContent(Content{Voice: Lyrics(language.Tag{}), Text: "la la la"})

	types := s.ContentTypes()
	if len(types) != 2 {
		t.Fatalf("ContentTypes() = %v, want 2 entries", types)
	}
	if !types[0].IsLyrics() || types[1].Kind != ContentKindLeadVoice {
		t.Errorf("ContentTypes() order = %v", types)
	}

	// lyrics in a specific language is a distinct voice type
	s.Parts[idx].AddContent(Content{Voice: Lyrics(language.German), Text: "la la la"})
	if got := len(s.ContentTypes()); got != 3 {
		t.Errorf("ContentTypes() after German lyrics = %d, want 3", got)
	}
}

func TestReclassifyPart(t *testing.T) {
	s := New("Test Song")
	idx := s.AddPartOfType(PartTypeVerse, 0)

	s.ReclassifyPart(idx, PartTypeChorus, 1)

	p := s.Parts[idx]
	if p.Type != PartTypeChorus || p.Number != 1 || p.ID.String() != "chorus.1" {
		t.Errorf("after reclassify: type=%v number=%d id=%q", p.Type, p.Number, p.ID)
	}
}
