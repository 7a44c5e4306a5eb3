package textscan

import (
	"fmt"
	"log/slog"
	"os"
)

// ReportFunc handles a catastrophic, unrecoverable failure report. By library
// convention a report call does not return to its call site.
//
// The active handler is process-wide configuration: exactly one handler is
// installed at a time and the last writer wins. Reconfiguration is not
// synchronized; install handlers during program startup, not concurrently
// with calls to Report.
type ReportFunc func(msg string, args ...any)

var reportFunc ReportFunc = defaultReport

// SetReportFunc installs f as the active failure handler and returns the
// previously installed one. Passing nil restores the default handler, which
// logs the report and terminates the process.
func SetReportFunc(f ReportFunc) ReportFunc {
	prev := reportFunc
	if f == nil {
		f = defaultReport
	}
	reportFunc = f
	return prev
}

// Report invokes the active failure handler and never returns. If an
// installed handler returns anyway, Report panics so the call site still
// never resumes. None of the parsing or reading functions in this module
// call Report; they always return a result.
func Report(msg string, args ...any) {
	reportFunc(msg, args...)
	panic(fmt.Sprintf("textscan: failure handler returned: %s", msg))
}

func defaultReport(msg string, args ...any) {
	NewTextLogger(slog.LevelError).Error(msg, args...)
	os.Exit(1)
}
