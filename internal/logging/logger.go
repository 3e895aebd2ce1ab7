// Package logging owns the process-wide structured logger.
//
// A terminal UI cannot write logs to the screen it draws on, so entries go
// to a rotating file under the user's state directory:
//
//	$XDG_STATE_HOME/<app>/<app>.log   or   ~/.local/state/<app>/<app>.log
//
// Until [Init] runs, [L] returns a no-op logger.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "TERMFOLIO_LOG_LEVEL"

var (
	logger = zap.NewNop().Sugar()
	level  zap.AtomicLevel
)

type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File overrides the default log path.
	File string
}

// L returns the global logger.
func L() *zap.SugaredLogger {
	return logger
}

// Init installs a file logger and returns the path it writes to.
func Init(appName string, opts Options) string {
	path := opts.File
	if path == "" {
		path = defaultPath(appName)
	} else {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}

	lv := opts.Level
	if env := os.Getenv(EnvLevel); env != "" {
		lv = env
	}
	level = zap.NewAtomicLevelAt(ParseLevel(lv))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)
	logger = zap.New(core, zap.AddCaller()).Sugar()
	logger.Infow("logger initialized", "path", path, "level", level.String())
	return path
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func defaultPath(appName string) string {
	fileName := appName + ".log"

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		dir := filepath.Join(xdg, appName)
		_ = os.MkdirAll(dir, 0755)
		return filepath.Join(dir, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(dir, 0755)
		return filepath.Join(dir, fileName)
	}

	dir := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, fileName)
}
