// internal/crash/reporter.go
package crash

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"UEL/internal/logging"
)

// Report captures a launcher-side panic. Child-side crashes are covered by
// the interpreter's fault handler and are not reported here.
type Report struct {
	Timestamp    time.Time
	ErrorMessage string
	StackTrace   string
	Phase        string
	Extra        map[string]string
}

// Reporter writes crash reports for panics inside the launcher itself.
type Reporter struct {
	reportsDir string
	extra      map[string]string
}

// NewReporter creates a crash reporter writing into reportsDir, creating
// the directory on first use.
func NewReporter(reportsDir string) *Reporter {
	if reportsDir == "" {
		reportsDir = "crash_reports"
	}
	return &Reporter{
		reportsDir: reportsDir,
		extra:      map[string]string{},
	}
}

// Relocate moves future reports into dir. The reporter starts out relative
// to the invocation directory; once the project root is resolved, reports
// belong under it.
func (r *Reporter) Relocate(dir string) {
	if dir != "" {
		r.reportsDir = dir
	}
}

// SetDetail attaches a key/value pair to every subsequent report, such as
// the resolved project root or interpreter path.
func (r *Reporter) SetDetail(key, value string) {
	r.extra[key] = value
}

// Capture records a recovered panic value and returns the report path, or
// an empty string when the report could not be written.
func (r *Reporter) Capture(phase string, recovered interface{}) string {
	report := &Report{
		Timestamp:    time.Now(),
		ErrorMessage: fmt.Sprintf("%v", recovered),
		StackTrace:   string(debug.Stack()),
		Phase:        phase,
		Extra:        r.extra,
	}

	filePath := r.writeReport(report)
	if filePath != "" {
		logging.GetErrorLogger().Printf("CRASH in %s: %v (report written to %s)", phase, recovered, filePath)
	} else {
		logging.GetErrorLogger().Printf("CRASH in %s: %v", phase, recovered)
	}
	return filePath
}

func (r *Reporter) writeReport(report *Report) string {
	if err := os.MkdirAll(r.reportsDir, 0755); err != nil {
		return ""
	}

	filename := fmt.Sprintf("crash_%s_%s.txt",
		report.Timestamp.Format("20060102_150405"),
		sanitizeFilename(report.Phase))
	filePath := filepath.Join(r.reportsDir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return ""
	}
	defer file.Close()

	fmt.Fprintf(file, "Crash Report\n")
	fmt.Fprintf(file, "============\n")
	fmt.Fprintf(file, "Timestamp: %s\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(file, "Phase: %s\n", report.Phase)
	fmt.Fprintf(file, "Error: %s\n\n", report.ErrorMessage)

	if len(report.Extra) > 0 {
		fmt.Fprintf(file, "Additional Information\n")
		fmt.Fprintf(file, "=====================\n")
		for k, v := range report.Extra {
			fmt.Fprintf(file, "%s: %s\n", k, v)
		}
		fmt.Fprintf(file, "\n")
	}

	fmt.Fprintf(file, "Stack Trace\n")
	fmt.Fprintf(file, "===========\n")
	fmt.Fprintf(file, "%s\n", report.StackTrace)

	return filePath
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ":", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}
