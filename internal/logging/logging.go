// internal/logging/logging.go

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Open creates (or appends to) the session log file and returns a logger
// writing to it, plus a close func for shutdown. The screen is owned by the
// renderer, so diagnostics never go to stdout.
func Open(path string) (*log.Logger, func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return log.New(file, "[picamui] ", log.LstdFlags), file.Close, nil
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
