package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/restaurant/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// keepGlobalLevel 測試結束後還原 global level
func keepGlobalLevel(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

// syncBuffer watcher 在另一個 goroutine 寫 log
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewWithWriter(t *testing.T) {
	keepGlobalLevel(t)
	_, err := SetLevel("info")
	require.NoError(t, err)

	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	l.Debug().Msg("hidden")
	l.Info().Str("tax_id", "123").Msg("customer created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "restaurant", entry["service"])
	require.Equal(t, "123", entry["tax_id"])
	require.Equal(t, "customer created", entry["message"])
	require.NotContains(t, buf.String(), "hidden")
}

func TestNew_File(t *testing.T) {
	keepGlobalLevel(t)
	path := filepath.Join(t.TempDir(), "app.log")
	l, closer, err := New("warn", path)
	require.NoError(t, err)

	l.Info().Msg("skipped")
	l.Warn().Msg("written")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "written")
	require.NotContains(t, string(b), "skipped")
}

func TestSetLevel_LowersAndRaises(t *testing.T) {
	keepGlobalLevel(t)
	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	_, err := SetLevel("warn")
	require.NoError(t, err)
	l.Info().Msg("quiet")
	require.Empty(t, buf.String())

	lvl, err := SetLevel("debug")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)
	l.Debug().Msg("verbose")
	require.Contains(t, buf.String(), "verbose")

	lvl, err = SetLevel("loud")
	require.Error(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel_ConfigReload(t *testing.T) {
	keepGlobalLevel(t)
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=info\n"), 0o600))

	loader, err := config.LoadConfig(path)
	require.NoError(t, err)

	buf := &syncBuffer{}
	l := NewWithWriter(buf)
	_, err = SetLevel(loader.Config().LogLevel)
	require.NoError(t, err)

	l.Debug().Msg("before reload")
	require.NotContains(t, buf.String(), "before reload")

	loader.Watch(func(cf *config.Config) {
		if _, err := SetLevel(cf.LogLevel); err == nil {
			l.Debug().Msg("after reload")
		}
	})
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "after reload")
	}, 5*time.Second, 20*time.Millisecond)
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	require.Equal(t, "debug", loader.Config().LogLevel)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}
