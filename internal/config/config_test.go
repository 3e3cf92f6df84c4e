package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ELATO_APP_ID", "TAURI_BUNDLE_IDENTIFIER", "ELATO_DATA_DIR",
		"ELATO_VOICES_DIR", "ELATO_IMAGES_DIR", "ELATO_VOICE_BASE_URL",
		"ELATO_DOWNLOAD_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	data := t.TempDir()
	t.Setenv("ELATO_DATA_DIR", data)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, filepath.Join(data, "voices"), cfg.VoicesRoot())
	assert.Equal(t, filepath.Join(data, "images"), cfg.ImagesRoot())
	assert.Equal(t, "https://pub-6b92949063b142d59fc3478c56ec196c.r2.dev", cfg.VoiceBaseURL)
	assert.Zero(t, cfg.DownloadTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELATO_DATA_DIR", t.TempDir())
	voices := t.TempDir()
	t.Setenv("ELATO_VOICES_DIR", voices)
	t.Setenv("ELATO_DOWNLOAD_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, voices, cfg.VoicesRoot())
	assert.Equal(t, 30*time.Second, cfg.DownloadTimeout)
}

func TestLoadParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv("ELATO_DOWNLOAD_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestAppIDPrecedence(t *testing.T) {
	assert.Equal(t, DefaultAppID, (&Config{}).appID())
	assert.Equal(t, "bundle", (&Config{TauriBundle: "bundle"}).appID())
	assert.Equal(t, "app", (&Config{AppID: "app", TauriBundle: "bundle"}).appID())
}

func TestDefaultDataDirUsesAppID(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	cfg := &Config{AppID: "com.example.test"}
	require.NoError(t, cfg.resolveDirs())
	base, err := platformDataDir("linux")
	require.NoError(t, err)
	assert.Equal(t, xdg, base)
	assert.Equal(t, "com.example.test", filepath.Base(cfg.DataDir))
}

func TestPlatformDataDir(t *testing.T) {
	t.Setenv("APPDATA", `C:\Users\x\AppData\Roaming`)
	got, err := platformDataDir("windows")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\x\AppData\Roaming`, got)

	got, err = platformDataDir("darwin")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("Library", "Application Support"), filepath.Join(filepath.Base(filepath.Dir(got)), filepath.Base(got)))

	t.Setenv("XDG_DATA_HOME", "")
	got, err = platformDataDir("linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".local", "share"), filepath.Join(filepath.Base(filepath.Dir(got)), filepath.Base(got)))
}
