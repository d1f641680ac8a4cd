package models

import "time"

// RestrictMode selects how the analytics source restricts a query, and with
// it the shape of the returned rows.
type RestrictMode string

const (
	// RestrictCategory restricts to an activity category. Used for offline
	// skillblocks.
	RestrictCategory RestrictMode = "category"
	// RestrictOverview restricts to an overview group. Used for online
	// skillblocks.
	RestrictOverview RestrictMode = "overview"
)

// ModeFor returns the query mode for a skillblock.
func ModeFor(block Skillblock) RestrictMode {
	if block.IsOfflineCategory {
		return RestrictCategory
	}
	return RestrictOverview
}

// AnalyticsQuery is a daily-resolution fetch of one category over an
// inclusive day range.
type AnalyticsQuery struct {
	APIKey string
	Begin  time.Time
	End    time.Time
	Mode   RestrictMode
	Target string
}

// AnalyticsRow is one decoded row of the analytics source: the day it
// belongs to and the seconds spent. Several rows may share a day.
type AnalyticsRow struct {
	Perspective time.Time
	TimeSpent   int
}
