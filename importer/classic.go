package importer

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/CantaraProject/cantara-songlib/song"
)

// ImportClassicSong parses a string in the classic song format and returns
// the structured song document. Part types are guessed from the content:
// every stanza starts out as a verse, a stanza repeating an earlier one
// verbatim promotes that earlier part to the chorus. Song order is kept as
// provided.
func ImportClassicSong(content string) (*song.Song, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoContent
	}

	// The title may also be picked up from a tag block below, but a
	// '#title:' line buried inside a lyric stanza still counts.
	title, _ := TitleFromContent(content)
	s := song.New(title)

	var block []string
	flush := func() {
		if len(block) > 0 {
			parseClassicBlock(s, strings.Join(block, "\n"))
			block = block[:0]
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	return s, nil
}

// parseClassicBlock folds a single stanza into the song: tag stanzas merge
// into the tag mapping, lyric stanzas become parts.
func parseClassicBlock(s *song.Song, block string) {
	if strings.HasPrefix(block, "#") {
		for key, value := range ParseMetadataBlock(block) {
			s.AddTag(key, value)
			if key == "title" {
				s.Title = value
			}
		}
		return
	}

	// A stanza whose text already occurs in the song is most likely the
	// chorus: promote the latest occurrence instead of adding a new part.
	if found := s.FindContentInParts(block); len(found) > 0 {
		s.ReclassifyPart(found[len(found)-1], song.PartTypeChorus, 1)
		return
	}

	idx := s.AddPartOfType(song.PartTypeVerse, 0)
	s.Parts[idx].AddContent(song.Content{
		Voice: song.Lyrics(language.Tag{}),
		Text:  block,
	})
}
