package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func SetupLogger(writers ...io.Writer) *zerolog.Logger {
	writers = append(writers, os.Stderr)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return &logger
}

// SetupServiceLogger builds the logger of a long running command. An empty level keeps everything, a non-empty
// file path adds a file writer next to stderr.
func SetupServiceLogger(service, level, filePath string) (*zerolog.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if filePath != "" {
		file, err := OpenLogFile(filePath)
		if err != nil {
			return nil, nil, err
		}

		writers = append(writers, file)
		closer = file
	}

	logger := SetupLogger(writers...).With().Str("service", service).Logger()

	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			_ = closer.Close()
			return nil, nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
		}

		logger = logger.Level(parsed)
	}

	return &logger, closer, nil
}

func OpenLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file to write logs: %w", path, err)
	}

	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
