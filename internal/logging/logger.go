package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName   string
	LogToConsole  bool
	LogLevel      string
	LogFormatJSON bool

	// Console defaults to stderr so command output on stdout stays clean.
	Console io.Writer
}

// Setup configures the standard logrus logger. The returned closer releases
// the log file, if any.
func Setup(params SetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: params.LogFileName == ""})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	console := params.Console
	if console == nil {
		console = os.Stderr
	}

	if params.LogFileName == "" {
		logrus.SetOutput(console)
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  true,
		Compress:   true,
	}

	if params.LogToConsole {
		logrus.SetOutput(NewCombinedWriter(console, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}
	logrus.Debugf("writing logs to %s", params.LogFileName)

	return lumberJackLogger
}

// GetLevel parses a level name. Unknown names fall back to warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.WarnLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
