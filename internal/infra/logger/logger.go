// Package logger holds the process-wide structured logger. It discards
// everything until Setup points it at a log file.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	dirName  = ".kml2waypoints"
	fileName = "kml2waypoints.log"
)

// Config selects where the log file lives and how verbose it is.
// Logs never go to stdout: the converter's output must stay line-exact.
type Config struct {
	// Root is the directory that receives .kml2waypoints/logs. Empty means
	// the working directory.
	Root  string
	Debug bool
}

// sink is replaced wholesale; its fields are never mutated.
type sink struct {
	log   *slog.Logger
	file  *os.File
	path  string
	since time.Time
}

var (
	quiet   = &sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	current atomic.Pointer[sink]
)

func init() {
	current.Store(quiet)
}

// Setup opens <root>/.kml2waypoints/logs/kml2waypoints.log and makes it the
// target of L(). The returned cleanup closes the file and, unless a later
// Setup has taken over, goes back to discarding. On error the discard logger stays in place and cleanup is nil.
func Setup(cfg Config) (func() error, error) {
	root, err := resolveRoot(cfg.Root)
	if err != nil {
		current.Store(quiet)
		return nil, err
	}

	s, err := openSink(root, cfg.Debug)
	if err != nil {
		current.Store(quiet)
		return nil, err
	}
	current.Store(s)
	s.log.Info("logger.initialized", "path", s.path, "debug", cfg.Debug)

	var once sync.Once
	var closeErr error
	return func() error {
		current.CompareAndSwap(s, quiet)
		once.Do(func() { closeErr = s.file.Close() })
		return closeErr
	}, nil
}

func resolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) != "" {
		return filepath.Clean(root), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return wd, nil
}

func openSink(root string, debug bool) (*sink, error) {
	dir := filepath.Join(root, dirName, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo, ReplaceAttr: utcTime}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	return &sink{
		log:   slog.New(slog.NewJSONHandler(f, opts)),
		file:  f,
		path:  path,
		since: time.Now().UTC(),
	}, nil
}

// utcTime renders record timestamps as RFC3339Nano in UTC.
func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func L() *slog.Logger { return current.Load().log }

// Path is the open log file, or "" while logging is discarded.
func Path() string { return current.Load().path }

func InitTime() time.Time { return current.Load().since }

func IsReady() error {
	if current.Load().file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}
