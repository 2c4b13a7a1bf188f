package diamondsquare

import (
	"io"
	"log"
	"os"
)

const logPrefix = "[diamondsquare] "

// newLogger creates a *log.Logger for w, or returns nil if w is nil.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, logPrefix, log.LstdFlags)
}

// defaultLogger writes diagnostics to stderr.
func defaultLogger() *log.Logger {
	return newLogger(os.Stderr)
}

// diagf logs to the diagnostics stream (missing PRNG, bad hook results,
// unknown config keys). A nil stream drops the message.
func (g *Generator) diagf(format string, args ...interface{}) {
	if g.diag != nil {
		g.diag.Printf(format, args...)
	}
}
