package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CantaraProject/cantara-songlib/song"
)

//go:generate go tool go-enum --nocase

// Supported song file formats.
// ENUM(classicSong, cssf, ccliSongselect, openLyrics)
type FileType int

// ContainsSongStructure reports whether the format carries explicit part
// classification (verse/chorus markers) instead of relying on structural
// guessing.
func (t FileType) ContainsSongStructure() bool {
	switch t {
	case FileTypeClassicSong:
		return false
	case FileTypeCssf, FileTypeCcliSongselect, FileTypeOpenLyrics:
		return true
	default:
		return false
	}
}

// ContainsPresentationOrder reports whether the order of parts in the file
// is also the order in which they are presented.
func (t FileType) ContainsPresentationOrder() bool {
	switch t {
	case FileTypeClassicSong, FileTypeCssf:
		return true
	default:
		return false
	}
}

// FileTypeByExtension maps a file extension (with or without leading dot)
// to a song format.
func FileTypeByExtension(ext string) (FileType, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "song":
		return FileTypeClassicSong, nil
	case "cssf":
		return FileTypeCssf, nil
	case "ccli":
		return FileTypeCcliSongselect, nil
	case "xml":
		return FileTypeOpenLyrics, nil
	default:
		return FileType(0), fmt.Errorf("%w: %q", ErrUnknownFileExtension, ext)
	}
}

// ImportSong parses raw content in the given format.
func ImportSong(content string, fileType FileType) (*song.Song, error) {
	switch fileType {
	case FileTypeClassicSong:
		return ImportClassicSong(content)
	case FileTypeOpenLyrics:
		return ImportOpenLyrics(strings.NewReader(content))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)
	}
}

// ImportSongFromFile reads a song file, dispatches on the file extension and
// returns the parsed document. When the file carries no title the file stem
// is used.
func ImportSongFromFile(path string) (*song.Song, error) {
	fileType, err := FileTypeByExtension(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read song file %q: %w", path, err)
	}
	s, err := ImportSong(string(data), fileType)
	if err != nil {
		return nil, err
	}
	if s.Title == "" {
		s.Title = FileStem(path)
	}
	return s, nil
}
