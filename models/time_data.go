package models

import "time"

// DayKeyLayout formats the keys of [TimeData.TimeData]. Days carry no
// time-of-day component; the layout keeps the midnight suffix the web
// frontend parses.
const DayKeyLayout = "2006-01-02T15:04:05"

// DailyTimeRecord is a persisted per-day total for one skillblock.
// At most one record exists per (BlockID, Day).
type DailyTimeRecord struct {
	ID           int64
	BlockID      int64
	Day          time.Time
	SecondsSpent int
}

// DayTotal is a (day, seconds) pair as read from or written to storage.
type DayTotal struct {
	Day     time.Time
	Seconds int
}

// DaySeries maps a calendar day (UTC midnight) to the seconds spent on it.
type DaySeries map[time.Time]int

// TimeData is the synchronized time series of a single skillblock, as
// returned by GET /api/skillblocks.
type TimeData struct {
	Category         string         `json:"category"`
	SkillName        string         `json:"skill_name"`
	SkillDescription string         `json:"skill_description"`
	TimeData         map[string]int `json:"time_data"`
}

// TimeWrapper wraps the per-skillblock series of a user.
type TimeWrapper struct {
	Data []TimeData `json:"data"`
}

// NewTimeData renders series into the response shape for block.
func NewTimeData(block Skillblock, series DaySeries) TimeData {
	data := make(map[string]int, len(series))
	for day, seconds := range series {
		data[day.Format(DayKeyLayout)] = seconds
	}

	return TimeData{
		Category:         block.Category,
		SkillName:        block.Name,
		SkillDescription: block.Description,
		TimeData:         data,
	}
}

// TruncateToDay returns t as a UTC-midnight calendar day.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
