package onair

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// StartTime is a wall-clock time of day in the station's timezone.
// It carries no date and no offset; the zone is implied by the station.
type StartTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// StartTimeOf truncates a point in time to its wall-clock minute.
func StartTimeOf(t time.Time) StartTime {
	return StartTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseStartTime parses a clock string in "HH:MM" or "HH:MM:SS" form.
// A seconds component is accepted and discarded.
func ParseStartTime(s string) (StartTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return StartTime{}, errors.Newf("malformed clock value: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return StartTime{}, errors.Wrapf(err, "malformed hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return StartTime{}, errors.Wrapf(err, "malformed minute in %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return StartTime{}, errors.Newf("clock value out of range: %q", s)
	}
	return StartTime{Hour: hour, Minute: minute}, nil
}

// String formats the time as "HH:MM:00".
func (t StartTime) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

// MarshalJSON encodes the time as its "HH:MM:00" string form.
func (t StartTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the "HH:MM:00" string form.
func (t *StartTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "start time must be a string")
	}
	parsed, err := ParseStartTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
