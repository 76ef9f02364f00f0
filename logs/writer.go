package logs

import (
	"io"
	"os"

	"github.com/reusee/taibf/cmds"
)

var logFile = cmds.Var[string]("-log-file", "append logs to a file instead of stderr")

type Writer io.Writer

// Writer defaults to stderr, stdout is left to the program being run.
// A log file that cannot be opened falls back to stderr.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}
