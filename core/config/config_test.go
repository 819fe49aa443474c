package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefault(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())

	// The defaults must reproduce the reference interpreter's limits.
	assert.Equal(t, "mini-shell> ", cfg.Prompt)
	assert.Equal(t, 64, cfg.MaxArgs)
	assert.Equal(t, 1024, cfg.MaxLineLen)
	assert.Empty(t, cfg.SessionLog)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(c *Configuration)
		wantErr bool
	}{
		"default":       {func(c *Configuration) {}, false},
		"no-prompt":     {func(c *Configuration) { c.Prompt = "" }, true},
		"zero-max-args": {func(c *Configuration) { c.MaxArgs = 0 }, true},
		"huge-line-len": {func(c *Configuration) { c.MaxLineLen = 1 << 30 }, true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
