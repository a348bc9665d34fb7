package log

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// FormatType format for logging ENUM(
// text // logging as text
// json // JSON format
// )
type FormatType int

// Level log level ENUM(
// info
// trace
// debug
// warn
// error
// fatal
// )
type Level int

// Config defines all logging configurations
type Config struct {
	Level     Level      `yaml:"level" default:"info"`
	Format    FormatType `yaml:"format" default:"text"`
	Timestamp bool       `yaml:"timestamp" default:"true"`
}

// nolint:gochecknoglobals
var (
	logger = logrus.New()

	logrusLevels = map[Level]logrus.Level{
		LevelTrace: logrus.TraceLevel,
		LevelDebug: logrus.DebugLevel,
		LevelInfo:  logrus.InfoLevel,
		LevelWarn:  logrus.WarnLevel,
		LevelError: logrus.ErrorLevel,
		LevelFatal: logrus.FatalLevel,
	}

	lineBreaks = strings.NewReplacer("\n", "", "\r", "")
)

// nolint:gochecknoinits
func init() {
	ConfigureLogger(DefaultConfig())
}

// DefaultConfig returns a new Config initialized with default values.
func DefaultConfig() Config {
	return Config{
		Level:     LevelInfo,
		Format:    FormatTypeText,
		Timestamp: true,
	}
}

// Log returns the global logger
func Log() *logrus.Logger {
	return logger
}

// PrefixedLog return the global logger with prefix
func PrefixedLog(prefix string) *logrus.Entry {
	return logger.WithField("prefix", prefix)
}

// EscapeInput removes line breaks from user input before it is logged
func EscapeInput(input string) string {
	return lineBreaks.Replace(input)
}

// ConfigureLogger applies configuration to the global logger
func ConfigureLogger(cfg Config) {
	level, ok := logrusLevels[cfg.Level]
	if !ok {
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
	logger.SetFormatter(newFormatter(cfg))
}

func newFormatter(cfg Config) logrus.Formatter {
	if cfg.Format == FormatTypeJson {
		return &logrus.JSONFormatter{DisableTimestamp: !cfg.Timestamp}
	}

	f := &prefixed.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05",
		FullTimestamp:    true,
		ForceFormatting:  true,
		QuoteEmptyFields: true,
		DisableTimestamp: !cfg.Timestamp,
	}

	f.SetColorScheme(&prefixed.ColorScheme{
		PrefixStyle:    "blue+b",
		TimestampStyle: "white+h",
	})

	return f
}

// Silence disables the logger output
func Silence() {
	logger.Out = io.Discard
}
