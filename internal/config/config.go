package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed defaults.yaml
	defaultsYAML []byte

	//go:embed config.schema.json
	schemaJSON []byte
)

const schemaURL = "https://docstyle.local/config.schema.json"

// EnvMaxLineLength overrides Wrapping.MaxLength when set.
const EnvMaxLineLength = "DOCSTYLE_MAX_LINE_LENGTH"

var (
	schemaMu sync.Mutex
	schema   *jsonschema.Schema
)

// Config holds the word lists and widths the formatting filters consume. It is
// built once and treated as read-only afterwards.
type Config struct {
	Wrapping struct {
		MaxLength int `yaml:"max_length" json:"max_length"`
	} `yaml:"wrapping" json:"wrapping"`
	ThirdPerson ThirdPerson `yaml:"third_person" json:"third_person"`
}

// ThirdPerson configures the verb conversion of description text.
type ThirdPerson struct {
	BlockingWords []string          `yaml:"blocking_words" json:"blocking_words,omitempty"`
	Modals        []string          `yaml:"modals" json:"modals,omitempty"`
	Verbs         map[string]string `yaml:"verbs" json:"verbs,omitempty"` // base form -> third person singular
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg, err := decode(&Config{}, "built-in defaults", defaultsYAML)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load starts from the defaults, overlays the YAML file at path (if path is not
// empty) and applies environment overrides, reading .env first when present.
// Lists in the file replace the defaults; verbs are merged into them.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "could not open config")
		}
		if cfg, err = decode(cfg, path, file); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvMaxLineLength); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", EnvMaxLineLength)
		}
		cfg.Wrapping.MaxLength = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode checks the raw document against the schema, so unknown keys and
// wrong types are reported, then decodes it over cfg.
func decode(cfg *Config, name string, raw []byte) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "could not parse config %s", name)
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return nil, errors.Wrapf(err, "config %s", name)
		}
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config %s", name)
	}
	return cfg, nil
}

// Validate rejects settings the filters cannot honour. Shape and ranges come
// from the schema. A verb whose third person form is itself a base form would
// be converted again on every run.
func (c *Config) Validate() error {
	if err := validateSchema(c); err != nil {
		return err
	}
	for base, third := range c.ThirdPerson.Verbs {
		if _, ok := c.ThirdPerson.Verbs[third]; ok {
			return errors.Errorf("third_person.verbs: %q maps to %q, which is itself converted", base, third)
		}
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if schema != nil {
		return schema, nil
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, err
	}
	schema = compiled
	return schema, nil
}

// validateSchema round-trips v through JSON so the validator sees plain JSON
// values, then checks it against the embedded schema.
func validateSchema(v interface{}) error {
	s, err := compiledSchema()
	if err != nil {
		return errors.Wrap(err, "failed to compile config schema")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config for schema validation")
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(err, "failed to normalize config for schema validation")
	}
	if err := s.Validate(doc); err != nil {
		return errors.Wrap(err, "config schema validation failed")
	}
	return nil
}
