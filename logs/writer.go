package logs

import (
	"io"
	"os"
)

type Writer io.Writer

func (Module) Writer() Writer {
	// program output owns stdout, diagnostics go to stderr
	return os.Stderr
}
