package timeutil

import "time"

// Timestamp layouts shared by the cache snapshot, the daily log files
// and the usage ledger.
const (
	// StampLayout is the human-readable timestamp used in log and ledger lines.
	StampLayout = "2006-01-02 15:04:05"
	// DayLayout names the daily log file.
	DayLayout = "2006-01-02"
)

// Clock abstracts time.Now so cache expiry behavior can be tested
// without sleeping.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Stamp formats t with StampLayout.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// DayStamp formats t with DayLayout.
func DayStamp(t time.Time) string {
	return t.Format(DayLayout)
}
