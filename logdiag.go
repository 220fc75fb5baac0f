package id3

import "log"

// LogDiagnostics adapts a *log.Logger into a Diagnostics sink, for
// callers who want the console-visible behavior the teacher's
// package-level Logging/LogFlag toggle used to give this decoder's
// ancestor. If Logger is nil, log.Default() is used.
type LogDiagnostics struct {
	Logger *log.Logger
}

func (l LogDiagnostics) Report(d Diagnostic) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Println(d.String())
}
