package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvConfigDefaults(t *testing.T) {
	os.Setenv("REASONET_TEST_DURATION", "bad")
	os.Setenv("REASONET_TEST_LIST", "a, b,,c")
	defer os.Unsetenv("REASONET_TEST_DURATION")
	defer os.Unsetenv("REASONET_TEST_LIST")

	cfg := NewEnvConfig(logutil.NewStderrLog("test"))
	assert.Equal(t, time.Minute, cfg.GetDuration("reasonet_test_duration", time.Minute))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetStringList("reasonet_test_list"))
	assert.Equal(t, 5, cfg.GetInt("reasonet_test_missing", 5))
	assert.True(t, cfg.GetBool("reasonet_test_missing", true))
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir, err := ioutil.TempDir("", "dotenv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ".env"), []byte("REASONET_A=file\nREASONET_B=file\n"), 0600))
	os.Setenv("REASONET_A", "env")
	defer os.Unsetenv("REASONET_A")
	defer os.Unsetenv("REASONET_B")

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "env", os.Getenv("REASONET_A"))
	assert.Equal(t, "file", os.Getenv("REASONET_B"))
}

func TestMapConfig(t *testing.T) {
	cfg := MapConfig{"PORT": "8080", "DEBUG": "true", "TIMEOUT": "3s"}
	assert.Equal(t, 8080, cfg.GetInt("port", 1))
	assert.True(t, cfg.GetBool("debug", false))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("timeout", 0))
}
