// Package importer contains functions for importing songs from different
// formats. The primary format is the classic song format: a plain text file
// with stanzas separated by blank lines, where stanzas starting with '#'
// carry '#key: value' metadata tags.
package importer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Patterns are compiled once for the lifetime of the package.
var (
	tagLineRe = regexp.MustCompile(`(?im)^\s*#(\w+):\s*(.+)$`)
	titleRe   = regexp.MustCompile(`(?im)^\s*#title:\s*(.+?)\s*$`)
)

// ParseMetadataBlock extracts '#key: value' pairs from a block of text.
// Keys are lowercased and trimmed, values trimmed. Lines not matching the
// tag pattern are ignored, a duplicate key overwrites the earlier value.
func ParseMetadataBlock(block string) map[string]string {
	metadata := make(map[string]string)
	for _, m := range tagLineRe.FindAllStringSubmatch(block, -1) {
		key := strings.ToLower(strings.TrimSpace(m[1]))
		metadata[key] = strings.TrimSpace(m[2])
	}
	return metadata
}

// TitleFromContent returns the value of the first '#title:' tag line found
// anywhere in the content.
func TitleFromContent(content string) (string, bool) {
	if m := titleRe.FindStringSubmatch(content); m != nil {
		return m[1], true
	}
	return "", false
}

// FileStem returns the file name without directory and extension. It is used
// as the backup title when a song file carries no '#title:' tag.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
