package importer

import "testing"

func TestParseMetadataBlock(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		metadata := ParseMetadataBlock("#title: Test \n#author: J.S. Bach")
		if len(metadata) != 2 {
			t.Fatalf("len = %d, want 2: %v", len(metadata), metadata)
		}
		if metadata["title"] != "Test" {
			t.Errorf("title = %q, want %q", metadata["title"], "Test")
		}
		if metadata["author"] != "J.S. Bach" {
			t.Errorf("author = %q, want %q", metadata["author"], "J.S. Bach")
		}
	})

	t.Run("keys lowercased", func(t *testing.T) {
		metadata := ParseMetadataBlock("#Title: Mixed\n#AUTHOR: Someone")
		if metadata["title"] != "Mixed" || metadata["author"] != "Someone" {
			t.Errorf("unexpected mapping: %v", metadata)
		}
	})

	t.Run("duplicate key last wins", func(t *testing.T) {
		metadata := ParseMetadataBlock("#title: A\n#title: B")
		if metadata["title"] != "B" {
			t.Errorf("title = %q, want %q", metadata["title"], "B")
		}
	})

	t.Run("non matching lines ignored", func(t *testing.T) {
		metadata := ParseMetadataBlock("just a line\n#title: X\n# spaced: out")
		if len(metadata) != 1 || metadata["title"] != "X" {
			t.Errorf("unexpected mapping: %v", metadata)
		}
	})

	t.Run("leading whitespace allowed", func(t *testing.T) {
		metadata := ParseMetadataBlock("   #key: C")
		if metadata["key"] != "C" {
			t.Errorf("key = %q, want %q", metadata["key"], "C")
		}
	})
}

func TestTitleFromContent(t *testing.T) {
	if title, ok := TitleFromContent("Stanza\n\n#title: Found Me\n\nMore"); !ok || title != "Found Me" {
		t.Errorf("TitleFromContent = %q, %v", title, ok)
	}
	if _, ok := TitleFromContent("no tags at all"); ok {
		t.Error("TitleFromContent found a title in tagless content")
	}
}

func TestFileStem(t *testing.T) {
	cases := map[string]string{
		"test.song":                "test",
		"/a/v/c/Amazing Grace.xml": "Amazing Grace",
		"hallo welt":               "hallo welt",
	}
	for in, want := range cases {
		if got := FileStem(in); got != want {
			t.Errorf("FileStem(%q) = %q, want %q", in, got, want)
		}
	}
}
