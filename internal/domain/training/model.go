package training

import (
	"fmt"
	"time"
)

// Intensity grades how demanding a session is.
type Intensity string

const (
	IntensityLow    Intensity = "LOW"
	IntensityMedium Intensity = "MEDIUM"
	IntensityHigh   Intensity = "HIGH"
)

var AllIntensities = map[Intensity]struct{}{
	IntensityLow:    {},
	IntensityMedium: {},
	IntensityHigh:   {},
}

// Session is a scheduled training session run by a coach (staff record).
type Session struct {
	ID              int64
	Date            time.Time
	Focus           string
	Location        string
	DurationMinutes int
	Intensity       Intensity
	CoachID         int64
	Notes           string
}

func (s Session) Validate() error {
	if s.Date.IsZero() {
		return fmt.Errorf("session date is required")
	}
	if s.Focus == "" {
		return fmt.Errorf("session focus is required")
	}
	if _, ok := AllIntensities[s.Intensity]; !ok {
		return fmt.Errorf("invalid session intensity: %s", s.Intensity)
	}
	if s.CoachID <= 0 {
		return fmt.Errorf("session coach id is required")
	}
	return nil
}

// AttendanceStatus records how a player turned up to a session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

var AllAttendanceStatuses = map[AttendanceStatus]struct{}{
	AttendancePresent: {},
	AttendanceLate:    {},
	AttendanceAbsent:  {},
	AttendanceExcused: {},
}

// AttendanceRecord links one player to one session. The (PlayerID, SessionID)
// pair is logically unique; writes go through upsert semantics.
type AttendanceRecord struct {
	ID         int64
	PlayerID   int64
	SessionID  int64
	Status     AttendanceStatus
	Notes      string
	RecordedAt *time.Time
}

func (r AttendanceRecord) Validate() error {
	if r.PlayerID <= 0 {
		return fmt.Errorf("attendance player id is required")
	}
	if r.SessionID <= 0 {
		return fmt.Errorf("attendance session id is required")
	}
	if _, ok := AllAttendanceStatuses[r.Status]; !ok {
		return fmt.Errorf("invalid attendance status: %s", r.Status)
	}
	return nil
}
