package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"

	"github.com/CantaraProject/cantara-songlib/song"
)

// OpenLyrics XML import. We want exhaustive but permissive parsing: unknown
// elements are skipped, the structural elements we do know are mapped onto
// the Song model. See https://docs.openlyrics.org/ for the schema.

// ImportOpenLyrics reads an OpenLyrics XML document and constructs a song.
func ImportOpenLyrics(r io.Reader) (*song.Song, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read OpenLyrics XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrNoContent
	}
	if root.Tag != "song" {
		return nil, fmt.Errorf("unexpected root element %q, want \"song\"", root.Tag)
	}

	s := song.New("")
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "properties":
			parseOpenLyricsProperties(child, s)
		case "lyrics":
			parseOpenLyricsLyrics(child, s)
		}
	}
	return s, nil
}

func parseOpenLyricsProperties(el *etree.Element, s *song.Song) {
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "titles":
			if t := child.SelectElement("title"); t != nil {
				s.Title = strings.TrimSpace(t.Text())
				s.AddTag("title", s.Title)
			}
		case "authors":
			var authors []string
			for _, a := range child.SelectElements("author") {
				if name := strings.TrimSpace(a.Text()); name != "" {
					authors = append(authors, name)
				}
			}
			if len(authors) > 0 {
				s.AddTag("author", strings.Join(authors, ", "))
			}
		case "songbooks", "themes", "comments":
			// no tag mapping for nested property lists
		default:
			// flat properties (copyright, ccliNo, key, tempo, ...) become tags
			if v := strings.TrimSpace(child.Text()); v != "" {
				s.AddTag(strings.ToLower(child.Tag), v)
			}
		}
	}
}

func parseOpenLyricsLyrics(el *etree.Element, s *song.Song) {
	for _, verse := range el.SelectElements("verse") {
		partType, number := splitOpenLyricsVerseName(verse.SelectAttrValue("name", ""))

		lang := language.Tag{}
		if l := verse.SelectAttrValue("lang", ""); l != "" {
			if parsed, err := language.Parse(l); err == nil {
				lang = parsed
			}
		}

		var stanzas []string
		for _, lines := range verse.SelectElements("lines") {
			if text := flattenOpenLyricsLines(lines); text != "" {
				stanzas = append(stanzas, text)
			}
		}
		if len(stanzas) == 0 {
			continue
		}

		idx := s.AddPartOfType(partType, number)
		s.Parts[idx].AddContent(song.Content{
			Voice: song.Lyrics(lang),
			Text:  strings.Join(stanzas, "\n"),
		})
	}
}

// splitOpenLyricsVerseName maps verse names like "v1", "c", "b2" to a part
// type and number. Zero number lets the song pick the next free one.
func splitOpenLyricsVerseName(name string) (song.PartType, int) {
	name = strings.ToLower(strings.TrimSpace(name))
	letters := strings.TrimRightFunc(name, unicode.IsDigit)
	number := 0
	if digits := name[len(letters):]; digits != "" {
		number, _ = strconv.Atoi(digits)
	}

	var partType song.PartType
	switch letters {
	case "v":
		partType = song.PartTypeVerse
	case "c":
		partType = song.PartTypeChorus
	case "p":
		partType = song.PartTypePreChorus
	case "b":
		partType = song.PartTypeBridge
	case "i":
		partType = song.PartTypeIntro
	case "e":
		partType = song.PartTypeOutro
	default:
		partType = song.PartTypeOther
	}
	return partType, number
}

// flattenOpenLyricsLines joins the mixed content of a <lines> element,
// turning <br/> into line breaks and dropping chord markup.
func flattenOpenLyricsLines(el *etree.Element) string {
	var b strings.Builder
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			b.WriteString(node.Data)
		case *etree.Element:
			if node.Tag == "br" {
				b.WriteString("\n")
			}
			// <chord> and other inline markup contribute nothing
		}
	}

	lines := strings.Split(b.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
