package projections

import (
	"time"

	"reading-stats/internal/calendar"
	"reading-stats/internal/models"
)

type GoalProgress struct {
	TargetMinutes int  `json:"targetMinutes"`
	MetToday      bool `json:"metToday"`
	// RemainingMinutes is rounded up; zero once the target is met.
	RemainingMinutes int64 `json:"remainingMinutes"`
	// Streak counts consecutive days meeting the target, ending today when today is met and
	// yesterday otherwise.
	Streak int `json:"streak"`
	// MonthMetDays counts the days of the current month up to today that met the target.
	MonthMetDays int `json:"monthMetDays"`
}

// EvaluateGoal measures stats against a daily target of targetMinutes.
func EvaluateGoal(stats *models.Stats, targetMinutes int, now time.Time) GoalProgress {
	target := int64(targetMinutes) * 60
	progress := GoalProgress{TargetMinutes: targetMinutes}

	if stats.TodaySeconds >= target {
		progress.MetToday = true
	} else {
		remaining := target - stats.TodaySeconds
		progress.RemainingMinutes = (remaining + 59) / 60
	}

	day := calendar.DayStart(now)
	if stats.History[day.Unix()] < target {
		day = day.AddDate(0, 0, -1)
	}
	for {
		seconds, ok := stats.History[day.Unix()]
		if !ok || seconds < target {
			break
		}
		progress.Streak++
		day = day.AddDate(0, 0, -1)
	}

	y, m, _ := now.Date()
	nowUnix := now.Unix()
	for _, start := range calendar.MonthDayStarts(y, int(m), now.Location()) {
		if start > nowUnix {
			break
		}
		if stats.History[start] >= target {
			progress.MonthMetDays++
		}
	}

	return progress
}
