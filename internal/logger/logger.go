package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "restaurant"

// New 建立 logger
// 有設定 file 時寫 json 到檔案, 避免干擾終端畫面; 否則輸出到 stderr
// level 套用在 global level, 之後可由 SetLevel 調高或調低
func New(level, file string) (*zerolog.Logger, io.Closer, error) {
	if _, err := SetLevel(level); err != nil {
		return nil, nil, err
	}

	var w io.Writer
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", file, err)
		}
		w = f
		closer = f
	} else {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	l := NewWithWriter(w)
	return l, closer, nil
}

// NewWithWriter 本身不過濾 level, 一律交給 global level
func NewWithWriter(w io.Writer) *zerolog.Logger {
	l := zerolog.New(w).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	return &l
}

func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// SetLevel 解析後設定 global level, 解析失敗時維持原本的 level
func SetLevel(level string) (zerolog.Level, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.GlobalLevel(), err
	}
	zerolog.SetGlobalLevel(lvl)
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
