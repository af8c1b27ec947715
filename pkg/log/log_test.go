package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/notify-hook/pkg/config"
	"github.com/matryer/is"
)

func TestGoodNewLogger(t *testing.T) {
	for _, c := range []*config.Config{
		config.DefaultConfig(),
		{},
		{Debug: true, Verbose: true},
		{Log: config.LogConfig{Path: filepath.Join(t.TempDir(), "logfile.txt")}},
	} {
		_, f, err := NewLogger(c)
		if err != nil {
			t.Errorf("NewLogger(%v) => _, _, %v, want _, _, nil", c, err)
		}
		if f != nil {
			f.Close()
		}
	}
}

func TestBadNewLogger(t *testing.T) {
	for _, c := range []*config.Config{
		nil,
		{Log: config.LogConfig{Path: "\x00"}},
	} {
		_, f, err := NewLogger(c)
		if err == nil {
			t.Errorf("NewLogger(%v) => _, _, nil, want _, _, %v", c, err)
		}
		if f != nil {
			f.Close()
		}
	}
}

func TestNewLoggerDebug(t *testing.T) {
	is := is.New(t)

	logger, _, err := NewLogger(&config.Config{Debug: true})
	is.NoErr(err)
	is.Equal(logger.GetLevel(), log.DebugLevel)

	logger, _, err = NewLogger(&config.Config{})
	is.NoErr(err)
	is.Equal(logger.GetLevel(), log.InfoLevel)
}

func TestNewLoggerFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "notify-hook.log")
	logger, f, err := NewLogger(&config.Config{Log: config.LogConfig{Format: "json", Path: path}})
	is.NoErr(err)
	logger.Info("webhook delivered", "status", 200)
	is.NoErr(f.Close())

	bts, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(strings.Contains(string(bts), `webhook delivered`))
	is.True(strings.HasPrefix(string(bts), "{"))
}
