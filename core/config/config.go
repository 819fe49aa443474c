package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the name of the config file minish looks for in
	// its config path.
	ConfigurationName = "config.yaml"
)

// Configuration tunes the interpreter. The zero value is not usable; start
// from Default or Load.
type Configuration struct {
	// Prompt is the fixed marker printed after the working directory.
	Prompt string `json:"prompt" validate:"required"`

	// Color enables coloring the working directory in the prompt.
	Color bool `json:"color"`

	// MaxArgs bounds the number of arguments accepted per pipeline stage.
	MaxArgs int `json:"max_args" validate:"gte=1,lte=4096"`

	// MaxLineLen bounds one input line, in bytes.
	MaxLineLen int `json:"max_line_len" validate:"gte=1,lte=1048576"`

	// SessionLog is the path of a JSON lines log of evaluated commands,
	// empty to disable.
	SessionLog string `json:"session_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		// The embedded config is fixed at build time; failing to parse it is
		// a packaging bug.
		panic(err)
	}
	return &out
}
