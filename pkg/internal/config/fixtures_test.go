package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type MockConfig struct {
	A string        `mapstructure:"a"`
	B int           `mapstructure:"b_with_long_name"`
	C SubConfig     `mapstructure:"c_sub_config"`
	L []string      `mapstructure:"list"`
	T time.Duration `mapstructure:"timeout"`
}

type SubConfig struct {
	D string `mapstructure:"d_nested_field"`
}

func Defaults() MockConfig {
	return MockConfig{
		A: "default_hello",
		B: 1,
		C: SubConfig{
			D: "default_world",
		},
		L: []string{"https://g1/", "https://g2/"},
		T: 5 * time.Second,
	}
}

var errNegative = errors.New("b must not be negative")

type ValidatedConfig struct {
	B int `mapstructure:"b_with_long_name"`
}

func (c *ValidatedConfig) Validate() error {
	if c.B < 0 {
		return errNegative
	}
	return nil
}

const yamlConfig = `
b_with_long_name: 3
c_sub_config:
  d_nested_field: file_world
list:
  - https://file/
timeout: 2s
`

const dotEnvConfig = `
TEST_B_WITH_LONG_NAME=4
TEST_C_SUB_CONFIG_D_NESTED_FIELD="dotenv_world"
`

const dotEnvConfigEmptyPrefix = `
B_WITH_LONG_NAME=4
C_SUB_CONFIG_D_NESTED_FIELD="dotenv_world"
`

const jsonConfig = `
{
	"b_with_long_name": 5,
	"c_sub_config": {
		"d_nested_field": "json_world"
	}
}
`

func tempConfig(t *testing.T, content, extension string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config."+extension)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
