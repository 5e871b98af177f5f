package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/CantaraProject/cantara-songlib/slides"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PicturesConfig struct {
		Resize      ImageResizeMode `yaml:"resize" validate:"gte=0"`
		MaxWidth    int             `yaml:"max_width" validate:"min=16"`
		MaxHeight   int             `yaml:"max_height" validate:"min=16"`
		JPEGQuality int             `yaml:"jpeg_quality_level" validate:"min=40,max=100"`
	}

	PresentationConfig struct {
		ShowTitleSlide        bool               `yaml:"show_title_slide"`
		ShowSpoiler           bool               `yaml:"show_spoiler"`
		ShowMetaInformation   slides.MetaDisplay `yaml:"show_meta_information" validate:"gte=0"`
		MetaSyntax            string             `yaml:"meta_syntax"`
		EmptyLastSlide        bool               `yaml:"empty_last_slide"`
		MaxLines              int                `yaml:"max_lines" validate:"gte=0"`
		OutputNameTemplate    string             `yaml:"output_name_template"`
		FileNameTransliterate bool               `yaml:"file_name_transliterate"`
		Pictures              PicturesConfig     `yaml:"pictures"`
	}

	Config struct {
		Version      int                `yaml:"version" validate:"eq=1"`
		Presentation PresentationConfig `yaml:"presentation"`
		Logging      LoggingConfig      `yaml:"logging"`
		Reporting    ReporterConfig     `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	MetaSyntaxTemplateFieldName TemplateFieldName = "meta_syntax"
)

// Template fields are expanded much later against song metadata, gencfg must
// leave them alone.
var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(MetaSyntaxTemplateFieldName)),
)

// Settings converts the presentation section into the slide generation
// settings consumed by the slides package.
func (conf *PresentationConfig) Settings() slides.Settings {
	return slides.Settings{
		ShowTitleSlide:      conf.ShowTitleSlide,
		ShowSpoiler:         conf.ShowSpoiler,
		ShowMetaInformation: conf.ShowMetaInformation,
		MetaSyntax:          conf.MetaSyntax,
		EmptyLastSlide:      conf.EmptyLastSlide,
		MaxLines:            conf.MaxLines,
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
