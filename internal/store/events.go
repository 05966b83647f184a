package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/NotACat1/WeatherTerminal/pkg/fileutil"
	"github.com/NotACat1/WeatherTerminal/pkg/timeutil"
)

// LogEvent appends a formatted line to the current day's log file,
// creating the file and directory when absent. WARNING and ERROR lines
// are additionally surfaced on the echo sink; DEBUG and INFO are
// file-only. A failure to write skips the line and is itself echoed,
// never propagated.
func (s *Store) LogEvent(message string, severity Severity) {
	line := fmt.Sprintf("[%s] [%s] %s", timeutil.Stamp(s.clock.Now()), severity, message)

	if severity >= SeverityWarning {
		s.echo.Echo(severity, message)
	}

	if err := fileutil.EnsureDir(s.logsDir()); err != nil {
		s.echo.Echo(SeverityError, fmt.Sprintf("log skipped: %v", err))
		return
	}
	if err := fileutil.AppendLine(s.logPath(), line); err != nil {
		s.echo.Echo(SeverityError, fmt.Sprintf("log skipped: %v", err))
	}
}

// LogUsage appends a timestamped request line to the usage ledger,
// creating it with its header when absent.
func (s *Store) LogUsage(location string) {
	s.ensureUsageHeader()

	line := fmt.Sprintf("%s - Request for: %s", timeutil.Stamp(s.clock.Now()), location)
	if err := fileutil.AppendLine(s.usagePath(), line); err != nil {
		s.LogEvent(fmt.Sprintf("usage line skipped: %v", err), SeverityWarning)
	}
}

// UsageSummary reports how many requests the ledger holds and the most
// recent entry. A missing or unreadable ledger reads as empty.
func (s *Store) UsageSummary() (count int, last string) {
	raw, err := os.ReadFile(s.usagePath())
	if err != nil {
		return 0, ""
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == usageHeader {
			continue
		}
		count++
		last = line
	}
	return count, last
}
