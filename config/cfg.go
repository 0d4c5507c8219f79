package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ElifeConfig struct {
		AssetsURL string `yaml:"assets_url" validate:"required,url"`
		VideoURL  string `yaml:"video_url" validate:"required,url"`
	}

	LandesConfig struct {
		AssetsURL string `yaml:"assets_url" validate:"required,url"`
	}

	PLOSConfig struct {
		ObjectURL string `yaml:"object_url" validate:"required,url"`
	}

	PublishersConfig struct {
		// empty means selection by publisher-name found in the article
		Force  string       `yaml:"force" validate:"omitempty,oneof=default elife landes plos"`
		Elife  ElifeConfig  `yaml:"elife"`
		Landes LandesConfig `yaml:"landes"`
		PLOS   PLOSConfig   `yaml:"plos"`
	}

	DocumentConfig struct {
		OutputNameTemplate    string           `yaml:"output_name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
		Publishers            PublishersConfig `yaml:"publishers"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// OutputNameTemplateFieldName is yaml name of the document field which keeps
// Go template, gencfg must leave it alone.
const OutputNameTemplateFieldName TemplateFieldName = "output_name_template"

var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
}

// decodeStrict applies yaml document on top of cfg, unknown keys are errors.
func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("unable to decode configuration: %w", err)
	}
	return nil
}

// LoadConfiguration expands embedded template into defaults, overlays file at
// path (when given) and checks the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	defaults, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to expand configuration template: %w", err)
	}

	cfg := &Config{}
	if err := decodeStrict(defaults, cfg); err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration file: %w", err)
		}
		if err := decodeStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("configuration file %s: %w", path, err)
		}
	}

	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, err
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Prepare returns embedded defaults as yaml document.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump serializes effective configuration.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}

// ForcedPublisher returns publisher requested by configuration, second value
// is false when selection should be left to the article itself.
func (conf *PublishersConfig) ForcedPublisher() (Publisher, bool) {
	if conf.Force == "" {
		return PublisherDefault, false
	}
	p, err := ParsePublisher(conf.Force)
	if err != nil {
		return PublisherDefault, false
	}
	return p, true
}
