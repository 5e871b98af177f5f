package importer

import (
	"strings"
	"testing"

	"github.com/CantaraProject/cantara-songlib/song"
)

const openLyricsDoc = `<?xml version="1.0" encoding="UTF-8"?>
<song xmlns="http://openlyrics.info/namespace/2009/song" version="0.8">
  <properties>
    <titles>
      <title>Amazing Grace</title>
    </titles>
    <authors>
      <author>John Newton</author>
      <author>Trad.</author>
    </authors>
    <copyright>public domain</copyright>
    <key>G</key>
    <themes>
      <theme>Grace</theme>
    </themes>
  </properties>
  <lyrics>
    <verse name="v1">
      <lines>Amazing grace how sweet the sound<br/>that saved a wretch like me</lines>
    </verse>
    <verse name="c">
      <lines>Praise God<br/>praise God</lines>
    </verse>
    <verse name="v2" lang="en">
      <lines>I once was lost but now am found<br/>was blind but now I see</lines>
    </verse>
  </lyrics>
</song>`

func TestImportOpenLyrics(t *testing.T) {
	s, err := ImportOpenLyrics(strings.NewReader(openLyricsDoc))
	if err != nil {
		t.Fatalf("ImportOpenLyrics() error = %v", err)
	}
	if s.Title != "Amazing Grace" {
		t.Errorf("Title = %q, want %q", s.Title, "Amazing Grace")
	}
	if v, _ := s.Tag("author"); v != "John Newton, Trad." {
		t.Errorf("Tag(author) = %q, want %q", v, "John Newton, Trad.")
	}
	if v, _ := s.Tag("copyright"); v != "public domain" {
		t.Errorf("Tag(copyright) = %q", v)
	}
	if v, _ := s.Tag("key"); v != "G" {
		t.Errorf("Tag(key) = %q, want G", v)
	}
	if _, ok := s.Tag("themes"); ok {
		t.Error("nested property lists must not become tags")
	}

	if got := s.PartCount(song.PartTypeVerse); got != 2 {
		t.Errorf("PartCount(verse) = %d, want 2", got)
	}
	if got := s.PartCount(song.PartTypeChorus); got != 1 {
		t.Errorf("PartCount(chorus) = %d, want 1", got)
	}
	if idx := s.PartByID("verse.1"); idx == song.NoPart {
		t.Fatal("verse.1 not found")
	} else if got := s.Parts[idx].Contents[0].Text; got != "Amazing grace how sweet the sound\nthat saved a wretch like me" {
		t.Errorf("verse.1 text = %q", got)
	}
}

func TestImportOpenLyrics_Errors(t *testing.T) {
	if _, err := ImportOpenLyrics(strings.NewReader("<notasong/>")); err == nil {
		t.Error("expected error for wrong root element")
	}
	if _, err := ImportOpenLyrics(strings.NewReader("")); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestSplitOpenLyricsVerseName(t *testing.T) {
	cases := []struct {
		name   string
		typ    song.PartType
		number int
	}{
		{"v1", song.PartTypeVerse, 1},
		{"v12", song.PartTypeVerse, 12},
		{"c", song.PartTypeChorus, 0},
		{"C2", song.PartTypeChorus, 2},
		{"b1", song.PartTypeBridge, 1},
		{"p1", song.PartTypePreChorus, 1},
		{"i", song.PartTypeIntro, 0},
		{"e", song.PartTypeOutro, 0},
		{"x9", song.PartTypeOther, 9},
	}
	for _, tc := range cases {
		typ, number := splitOpenLyricsVerseName(tc.name)
		if typ != tc.typ || number != tc.number {
			t.Errorf("splitOpenLyricsVerseName(%q) = %v, %d, want %v, %d", tc.name, typ, number, tc.typ, tc.number)
		}
	}
}
