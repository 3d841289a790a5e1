package config

import (
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const appName = "flow"

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// Console returns a configuration that logs to the console only.
func Console(debug bool) LoggingConfig {
	level := "normal"
	if debug {
		level = "debug"
	}
	return LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: level},
		FileLogger:    LoggerConfig{Level: "none"},
	}
}

// WithFile adds a file destination logging at the console level or above.
func (conf LoggingConfig) WithFile(path string, appendMode bool) LoggingConfig {
	conf.FileLogger = LoggerConfig{Level: conf.ConsoleLogger.Level, Destination: path, Mode: "overwrite"}
	if conf.FileLogger.Level == "none" {
		conf.FileLogger.Level = "normal"
	}
	if appendMode {
		conf.FileLogger.Mode = "append"
	}
	return conf
}

// Validate checks the configuration using its struct tags.
func (conf *LoggingConfig) Validate() error {
	err := gencfg.Validate(conf)
	if conf.FileLogger.Level != "none" && conf.FileLogger.Destination == "" {
		err = multierr.Append(err, fmt.Errorf("file logging at level %q needs a destination", conf.FileLogger.Level))
	}
	return err
}

// Prepare returns the program logger and a function that flushes it and
// closes the log file. Console output always goes to stderr so that
// command output on stdout stays machine readable.
func (conf *LoggingConfig) Prepare() (*zap.Logger, func() error, error) {
	if err := conf.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if term.IsTerminal(int(os.Stderr.Fd())) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	consoleCore := zapcore.NewNopCore()
	if lvl, ok := levelOf(conf.ConsoleLogger.Level); ok {
		consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), lvl)
	}

	var (
		fileCore = zapcore.NewNopCore()
		file     *os.File
	)
	if lvl, ok := levelOf(conf.FileLogger.Level); ok {
		flags := os.O_CREATE | os.O_WRONLY
		if conf.FileLogger.Mode == "append" {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(conf.FileLogger.Destination, flags, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		file = f
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), lvl)
	}

	log := zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller()).Named(appName)
	closer := func() (err error) {
		// Sync on a terminal returns EINVAL on some platforms.
		_ = log.Sync()
		if file != nil {
			err = multierr.Append(err, file.Close())
		}
		return err
	}
	return log, closer, nil
}

func levelOf(name string) (zapcore.Level, bool) {
	switch name {
	case "debug":
		return zapcore.DebugLevel, true
	case "normal":
		return zapcore.InfoLevel, true
	}
	return zapcore.InfoLevel, false
}
