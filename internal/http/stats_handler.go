package http

import (
	"net/http"
	"strconv"
	"time"

	"reading-stats/internal/calendar"
	"reading-stats/internal/models"
	"reading-stats/internal/projections"
	"reading-stats/internal/sessions"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/stores"
)

// Clock supplies the current time in the configured zone.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func (c Clock) now() time.Time {
	return c.Now().In(c.Location)
}

type OverviewResponse struct {
	TotalSeconds int64                    `json:"totalSeconds"`
	TodaySeconds int64                    `json:"todaySeconds"`
	WeekSeconds  int64                    `json:"weekSeconds"`
	MonthSeconds int64                    `json:"monthSeconds"`
	Today        string                   `json:"today"`
	Loaded       bool                     `json:"loaded"`
	Goal         projections.GoalProgress `json:"goal"`
	LogDirBytes  int64                    `json:"logDirBytes"`
	LogDirSize   string                   `json:"logDirSize"`
}

type WeekResponse struct {
	WeekSeconds int64                     `json:"weekSeconds"`
	WeekStart   int64                     `json:"weekStart"`
	Days        [models.DaysPerWeek]int64 `json:"days"`
}

type MonthResponse struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	TotalSeconds int64   `json:"totalSeconds"`
	Days         []int64 `json:"days"`
}

type DayResponse struct {
	Date     string            `json:"date"`
	DayStart int64             `json:"dayStart"`
	Seconds  int64             `json:"seconds"`
	Buckets  models.DayBuckets `json:"buckets"`
}

type overviewHandler struct {
	session     sessions.StatsSession
	logStore    stores.LogStore
	goalMinutes int
	clock       Clock
}

func NewOverviewHandler(session sessions.StatsSession, logStore stores.LogStore, goalMinutes int, clock Clock) AppHttpHandler {
	return &overviewHandler{session: session, logStore: logStore, goalMinutes: goalMinutes, clock: clock}
}

// Handle serves GET /stats/overview.
func (h *overviewHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats := h.session.Snapshot()

	dirBytes, err := h.logStore.DirSize(r.Context())
	if err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to size log directory")
	}

	writeJSON(w, http.StatusOK, OverviewResponse{
		TotalSeconds: stats.TotalSeconds,
		TodaySeconds: stats.TodaySeconds,
		WeekSeconds:  stats.WeekSeconds,
		MonthSeconds: stats.MonthSeconds,
		Today:        projections.FormatHMS(stats.TodaySeconds),
		Loaded:       stats.Loaded,
		Goal:         projections.EvaluateGoal(stats, h.goalMinutes, h.clock.now()),
		LogDirBytes:  dirBytes,
		LogDirSize:   projections.FormatKiB(dirBytes),
	})
	return nil
}

type weekHandler struct {
	session sessions.StatsSession
	clock   Clock
}

func NewWeekHandler(session sessions.StatsSession, clock Clock) AppHttpHandler {
	return &weekHandler{session: session, clock: clock}
}

// Handle serves GET /stats/week, Monday first.
func (h *weekHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats := h.session.Snapshot()
	writeJSON(w, http.StatusOK, WeekResponse{
		WeekSeconds: stats.WeekSeconds,
		WeekStart:   calendar.WeekStart(h.clock.now()).Unix(),
		Days:        stats.WeekDays,
	})
	return nil
}

type monthHandler struct {
	session sessions.StatsSession
}

func NewMonthHandler(session sessions.StatsSession) AppHttpHandler {
	return &monthHandler{session: session}
}

// Handle serves GET /stats/month?year=&month=. Missing parameters keep the viewed month. Paging never
// reads the log files.
func (h *monthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	year, month := h.session.ViewedMonth()
	year, err := intParam(r, "year", year)
	if err != nil {
		return err
	}
	month, err = intParam(r, "month", month)
	if err != nil {
		return err
	}

	stats, err := h.session.LoadAndProject(r.Context(), year, month, false)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, MonthResponse{
		Year:         stats.ViewedYear,
		Month:        stats.ViewedMonth,
		TotalSeconds: projections.MonthTotal(stats),
		Days:         stats.ViewedMonthDays,
	})
	return nil
}

type dayHandler struct {
	session sessions.StatsSession
	clock   Clock
}

func NewDayHandler(session sessions.StatsSession, clock Clock) AppHttpHandler {
	return &dayHandler{session: session, clock: clock}
}

// Handle serves GET /stats/day. date=YYYY-MM-DD selects a day, shift=N moves the viewed day (or the
// given date) by N days, and no parameter returns the viewed day as is.
func (h *dayHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	shift := 0
	if query.Has("shift") {
		var err error
		if shift, err = intParam(r, "shift", 0); err != nil {
			return err
		}
	}

	// One session call per request, so the response describes the day this request moved to.
	var stats *models.Stats
	switch date := query.Get("date"); {
	case date != "":
		day, err := time.ParseInLocation(dateLayout, date, h.clock.Location)
		if err != nil {
			return errInvalidDate(date, err)
		}
		stats = h.session.SelectDay(ctx, day.AddDate(0, 0, shift))
	case query.Has("shift"):
		stats = h.session.ShiftViewedDay(ctx, shift)
	default:
		stats = h.session.Snapshot()
	}

	writeJSON(w, http.StatusOK, DayResponse{
		Date:     time.Unix(stats.ViewedDay, 0).In(h.clock.Location).Format(dateLayout),
		DayStart: stats.ViewedDay,
		Seconds:  stats.ViewedDaySeconds,
		Buckets:  stats.ViewedDayBuckets,
	})
	return nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQueryParam(name, raw)
	}
	return v, nil
}
