package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/config"
	"github.com/stretchr/testify/require"
)

func TestExport_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		ext    string
		prefix string
	}{
		"YAML file.":          {ext: "yaml"},
		"JSON file.":          {ext: "json"},
		"Env file.":           {ext: "env", prefix: "TEST"},
		"Env file no prefix.": {ext: "env"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			expected := MockConfig{
				A: "exported",
				B: 7,
				C: SubConfig{D: "nested"},
				L: []string{"https://x/", "https://y/"},
				T: Defaults().T * 3,
			}
			path := filepath.Join(t.TempDir(), "exported."+tc.ext)

			// when:
			err := config.Export(expected, path, tc.prefix)

			// then:
			require.NoError(t, err)

			l := config.NewLoader(Defaults, tc.prefix)
			require.NoError(t, l.SetConfigFilePath(path))
			actual, err := l.Load()
			require.NoError(t, err)
			require.Equal(t, expected, actual)
		})
	}
}

func TestToEnvFile(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "exported.env")

	// when:
	err := config.ToEnvFile(Defaults(), path, "test")

	// then:
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `TEST_A="default_hello"
TEST_B_WITH_LONG_NAME="1"
TEST_C_SUB_CONFIG_D_NESTED_FIELD="default_world"
TEST_LIST="https://g1/,https://g2/"
TEST_TIMEOUT="5s"
`, string(data))
}

func TestExport_UnsupportedExtension(t *testing.T) {
	// when:
	err := config.Export(Defaults(), filepath.Join(t.TempDir(), "exported.txt"), "")

	// then:
	require.ErrorContains(t, err, "unsupported config file extension")
}
