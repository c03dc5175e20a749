package jieba

import (
	"io"

	"github.com/rs/zerolog"
)

// newDiscardLogger returns a logger that drops everything, so the library
// is silent by default. Callers opt into diagnostics with WithLogger.
func newDiscardLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
