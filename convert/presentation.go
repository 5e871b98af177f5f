package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CantaraProject/cantara-songlib/config"
	"github.com/CantaraProject/cantara-songlib/slides"
	"github.com/CantaraProject/cantara-songlib/state"
	"github.com/CantaraProject/cantara-songlib/utils/images"
)

// Presentation is the generated document written out as JSON for display
// software to pick up.
type Presentation struct {
	ID     string              `json:"id"`
	Title  string              `json:"title"`
	Tags   map[string]string   `json:"tags,omitempty"`
	Slides slides.Presentation `json:"slides"`
}

// buildPresentation generates the slide sequence for one song source.
// backupTitle fills in when the song text carries no title tag.
func buildPresentation(content, backupTitle string, env *state.LocalEnv) *Presentation {
	_, _, metadata := slides.AssembleBlocks(content, backupTitle)

	return &Presentation{
		ID:     newPresentationID(),
		Title:  metadata["title"],
		Tags:   metadata,
		Slides: slides.FromClassicSong(content, env.Cfg.Presentation.Settings(), backupTitle),
	}
}

// newPresentationID produces a time-ordered unique document id.
func newPresentationID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

// Marshal serializes the presentation document.
func (p *Presentation) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to marshal presentation: %w", err)
	}
	return data, nil
}

// preparePictures processes every picture slide of the presentation: the
// referenced image is read relative to baseDir, decoded (rasterizing SVG),
// resized per configuration and written as JPEG next to the presentation
// output. Slide paths are rewritten to the produced files. A broken picture
// reference degrades to dropping the slide rather than failing the song.
func preparePictures(p *Presentation, baseDir, outputName string, conf *config.PicturesConfig, log *zap.Logger) {
	kept := p.Slides[:0]
	seq := 0
	for _, slide := range p.Slides {
		if slide.Kind != slides.SlideKindPicture {
			kept = append(kept, slide)
			continue
		}

		src := slide.PicturePath
		if !filepath.IsAbs(src) {
			src = filepath.Join(baseDir, src)
		}
		seq++

		out, err := preparePicture(src, outputName, seq, conf)
		if err != nil {
			log.Warn("Dropping picture slide", zap.String("picture", src), zap.Error(err))
			continue
		}
		slide.PicturePath = out
		kept = append(kept, slide)
	}
	p.Slides = kept
}

func preparePicture(src, outputName string, seq int, conf *config.PicturesConfig) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	if conf.Resize == config.ImageResizeModeNone && !images.IsSVG(data) {
		// leave the original untouched, just make sure it is an image
		if _, err := images.DecodePicture(data, 0, 0); err != nil {
			return "", err
		}
		return src, nil
	}

	img, err := images.DecodePicture(data, conf.MaxWidth, conf.MaxHeight)
	if err != nil {
		return "", err
	}
	img = images.Fit(img, conf.MaxWidth, conf.MaxHeight, conf.Resize == config.ImageResizeModeStretch)

	encoded, err := images.EncodeJPEG(img, conf.JPEGQuality)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(outputName, filepath.Ext(outputName))
	out := fmt.Sprintf("%s-picture-%d.jpg", base, seq)
	if err := os.WriteFile(out, encoded, 0644); err != nil {
		return "", err
	}
	return out, nil
}
