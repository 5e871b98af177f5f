package slides

import (
	"strings"

	"github.com/CantaraProject/cantara-songlib/importer"
)

// Block is one stanza of a presentation track, kept as individual lines so
// the wrap engine can move lines between stanzas.
type Block []string

// Text joins the block's lines back into display text.
func (b Block) Text() string {
	return strings.Join(b, "\n")
}

// secondaryDelimiter switches the active write track within a stanza.
const secondaryDelimiter = "---"

// AssembleBlocks scans classic song format text into parallel main and
// secondary stanza tracks plus the merged metadata tags.
//
// A blank line ends the current stanza. The first line of a stanza decides
// its kind: "#" starts a metadata stanza, anything else a content stanza.
// Inside a content stanza a line consisting of "---" redirects all following
// lines of that stanza to the secondary track. The returned tracks always
// have equal length; a stanza without secondary lines contributes an empty
// entry. A missing "title" tag is backfilled from backupTitle.
func AssembleBlocks(content, backupTitle string) (blocks, secondary []Block, metadata map[string]string) {
	metadata = make(map[string]string)

	var (
		main, second Block
		metaLines    []string
		inBlock      bool
		inMeta       bool
		inSecondary  bool
	)
	flush := func() {
		if inMeta {
			for key, value := range importer.ParseMetadataBlock(strings.Join(metaLines, "\n")) {
				metadata[key] = value
			}
		} else if len(main) > 0 {
			blocks = append(blocks, main)
			secondary = append(secondary, second)
		}
		main, second, metaLines = nil, nil, nil
		inBlock, inMeta, inSecondary = false, false, false
	}

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if inBlock {
				flush()
			}
			continue
		}
		if !inBlock {
			inBlock = true
			inMeta = strings.HasPrefix(line, "#")
		}
		switch {
		case inMeta:
			metaLines = append(metaLines, line)
		case line == secondaryDelimiter:
			inSecondary = true
		case inSecondary:
			second = append(second, line)
		default:
			main = append(main, line)
		}
	}
	if inBlock {
		flush()
	}

	if _, ok := metadata["title"]; !ok && backupTitle != "" {
		metadata["title"] = backupTitle
	}
	return blocks, secondary, metadata
}
