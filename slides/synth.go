package slides

import (
	"strings"

	"github.com/CantaraProject/cantara-songlib/templating"
)

// FromClassicSong generates the full slide sequence for one classic song
// format text. backupTitle fills in when the text carries no title tag,
// typically the source file name without extension.
//
// The meta text is rendered once from Settings.MetaSyntax with the song's
// tags; a render error or an empty result disables the meta text rather
// than failing the presentation.
func FromClassicSong(content string, settings Settings, backupTitle string) Presentation {
	blocks, secondary, metadata := AssembleBlocks(content, backupTitle)
	if settings.MaxLines > 0 {
		tracks := WrapBlocks([][]Block{blocks, secondary}, settings.MaxLines)
		blocks, secondary = tracks[0], tracks[1]
	}

	metaText := ""
	if settings.ShowMetaInformation != MetaDisplayNone && strings.TrimSpace(settings.MetaSyntax) != "" {
		if rendered, err := templating.RenderMetadata(settings.MetaSyntax, metadata); err == nil {
			metaText = strings.TrimSpace(rendered)
		}
	}

	var presentation Presentation
	if settings.ShowTitleSlide {
		presentation = append(presentation, NewTitleSlide(metadata["title"], ""))
	}

	for i, block := range blocks {
		spoilerText := ""
		if settings.ShowSpoiler {
			if len(secondary[i]) > 0 {
				spoilerText = secondary[i].Text()
			} else if i+1 < len(blocks) {
				// preview of what is coming next
				spoilerText = blocks[i+1].Text()
			}
		}
		slideMeta := ""
		if (i == 0 && settings.ShowMetaInformation.OnFirst()) ||
			(i == len(blocks)-1 && settings.ShowMetaInformation.OnLast()) {
			slideMeta = metaText
		}
		presentation = append(presentation, NewContentSlide(block.Text(), spoilerText, slideMeta))
	}

	if path := strings.TrimSpace(metadata["picture"]); path != "" {
		presentation = append(presentation, NewPictureSlide(path))
	}
	if settings.EmptyLastSlide {
		presentation = append(presentation, NewEmptySlide(false))
	}
	return presentation
}
