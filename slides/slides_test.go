package slides

import "testing"

func TestNewEmptySlide(t *testing.T) {
	slide := NewEmptySlide(false)
	if slide.Kind != SlideKindEmpty {
		t.Errorf("Kind = %v, want empty", slide.Kind)
	}
	if slide.HasSpoiler() {
		t.Error("empty slide must not have a spoiler")
	}
}

func TestHasSpoiler(t *testing.T) {
	withSpoiler := NewContentSlide("Test", "Hallo", "")
	if !withSpoiler.HasSpoiler() {
		t.Error("slide with spoiler text reports none")
	}

	// whitespace-only optional texts normalize to absent
	blankOptional := NewContentSlide("Test", "", " ")
	if blankOptional.HasSpoiler() {
		t.Error("blank spoiler text must normalize to absent")
	}
	if blankOptional.MetaText != "" {
		t.Errorf("MetaText = %q, want empty", blankOptional.MetaText)
	}

	if NewTitleSlide("Title", "meta").HasSpoiler() {
		t.Error("title slide must not have a spoiler")
	}
}

func TestSlideKindParse(t *testing.T) {
	kind, err := ParseSlideKind("singlecontent")
	if err != nil {
		t.Fatalf("ParseSlideKind() error = %v", err)
	}
	if kind != SlideKindSingleContent {
		t.Errorf("ParseSlideKind() = %v", kind)
	}
	if _, err := ParseSlideKind("nope"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestMetaDisplayPolicy(t *testing.T) {
	cases := []struct {
		policy  MetaDisplay
		first   bool
		last    bool
	}{
		{MetaDisplayNone, false, false},
		{MetaDisplayFirstSlide, true, false},
		{MetaDisplayLastSlide, false, true},
		{MetaDisplayFirstSlideAndLastSlide, true, true},
	}
	for _, tc := range cases {
		if tc.policy.OnFirst() != tc.first || tc.policy.OnLast() != tc.last {
			t.Errorf("%s: OnFirst/OnLast = %v/%v, want %v/%v",
				tc.policy, tc.policy.OnFirst(), tc.policy.OnLast(), tc.first, tc.last)
		}
	}
}
