package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reading-stats/internal/events"
	"reading-stats/internal/models"
	sessionmocks "reading-stats/internal/sessions/mocks"
	"reading-stats/internal/shared/loggers"
	storemocks "reading-stats/internal/stores/mocks"
	streammocks "reading-stats/internal/streams/mocks"
	"reading-stats/internal/syncs"
	syncmocks "reading-stats/internal/syncs/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2024-03-06 is a Wednesday.
var testNow = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

type routerFixture struct {
	session     *sessionmocks.MockStatsSession
	logStore    *storemocks.MockLogStore
	producer    *streammocks.MockRefreshProducer
	syncService *syncmocks.MockSyncService
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	return &routerFixture{
		session:     sessionmocks.NewMockStatsSession(ctrl),
		logStore:    storemocks.NewMockLogStore(ctrl),
		producer:    streammocks.NewMockRefreshProducer(ctrl),
		syncService: syncmocks.NewMockSyncService(ctrl),
	}
}

func (f *routerFixture) router(withSync bool) http.Handler {
	deps := RouterDeps{
		Session:     f.session,
		LogStore:    f.logStore,
		Producer:    f.producer,
		GoalMinutes: 30,
		ShareDomain: "reading.example.org",
		Clock:       Clock{Location: time.UTC, Now: func() time.Time { return testNow }},
	}
	if withSync {
		deps.SyncService = f.syncService
	}
	return NewRouter(deps, loggers.Nop())
}

func serve(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func day(d int) int64 {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC).Unix()
}

func sampleStats() *models.Stats {
	stats := models.NewStats()
	stats.Loaded = true
	stats.TotalSeconds = 90000
	stats.TodaySeconds = 2400
	stats.WeekSeconds = 6000
	stats.MonthSeconds = 9000
	stats.History[day(6)] = 2400
	stats.History[day(5)] = 3600
	stats.WeekDays = [models.DaysPerWeek]int64{0, 3600, 2400}
	stats.ViewedYear = 2024
	stats.ViewedMonth = 3
	stats.ViewedMonthDays = make([]int64, 31)
	stats.ViewedMonthDays[4] = 3600
	stats.ViewedMonthDays[5] = 2400
	stats.ViewedDay = day(5)
	stats.ViewedDayBuckets[10] = 3600
	stats.ViewedDaySeconds = 3600
	return stats
}

func TestOverview(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().Snapshot().Return(sampleStats())
	f.logStore.EXPECT().DirSize(gomock.Any()).Return(int64(5*1024+100), nil)

	rr := serve(t, f.router(false), http.MethodGet, "/stats/overview")
	require.Equal(t, http.StatusOK, rr.Code)

	var body OverviewResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(90000), body.TotalSeconds)
	assert.Equal(t, "   0H 40m 00s", body.Today)
	assert.True(t, body.Goal.MetToday)
	assert.Equal(t, 2, body.Goal.Streak)
	assert.Equal(t, "5 KB", body.LogDirSize)
}

func TestOverview_DirSizeFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().Snapshot().Return(sampleStats())
	f.logStore.EXPECT().DirSize(gomock.Any()).Return(int64(0), errors.New("permission denied"))

	rr := serve(t, f.router(false), http.MethodGet, "/stats/overview")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWeek(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().Snapshot().Return(sampleStats())

	rr := serve(t, f.router(false), http.MethodGet, "/stats/week")
	require.Equal(t, http.StatusOK, rr.Code)

	var body WeekResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC).Unix(), body.WeekStart)
	assert.Equal(t, int64(3600), body.Days[1])
}

func TestMonth_PagesWithoutReload(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	gomock.InOrder(
		f.session.EXPECT().ViewedMonth().Return(2024, 2),
		f.session.EXPECT().LoadAndProject(gomock.Any(), 2024, 3, false).Return(sampleStats(), nil),
	)

	rr := serve(t, f.router(false), http.MethodGet, "/stats/month?month=3")
	require.Equal(t, http.StatusOK, rr.Code)

	var body MonthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Month)
	assert.Equal(t, int64(6000), body.TotalSeconds)
	assert.Len(t, body.Days, 31)
}

func TestMonth_InvalidParam(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().ViewedMonth().Return(2024, 3)

	rr := serve(t, f.router(false), http.MethodGet, "/stats/month?year=twenty")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "HTTP_1000")
}

func TestDay_SelectsDate(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().SelectDay(gomock.Any(), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)).Return(sampleStats())

	rr := serve(t, f.router(false), http.MethodGet, "/stats/day?date=2024-03-05")
	require.Equal(t, http.StatusOK, rr.Code)

	var body DayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "2024-03-05", body.Date)
	assert.Equal(t, int64(3600), body.Seconds)
	assert.Equal(t, int64(3600), body.Buckets[10])
}

func TestDay_Shift(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().ShiftViewedDay(gomock.Any(), -1).Return(sampleStats())

	rr := serve(t, f.router(false), http.MethodGet, "/stats/day?shift=-1")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDay_DateWithShiftIsOneSelection(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().SelectDay(gomock.Any(), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)).Return(sampleStats())

	rr := serve(t, f.router(false), http.MethodGet, "/stats/day?date=2024-03-05&shift=-1")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDay_NoParamsReturnsViewedDay(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().Snapshot().Return(sampleStats())

	rr := serve(t, f.router(false), http.MethodGet, "/stats/day")
	require.Equal(t, http.StatusOK, rr.Code)

	var body DayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "2024-03-05", body.Date)
}

func TestDay_InvalidDate(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	rr := serve(t, f.router(false), http.MethodGet, "/stats/day?date=06/03/2024")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "HTTP_1001")
}

func TestReload_Enqueues(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *events.RefreshEvent) error {
		assert.Equal(t, events.ReasonManual, event.Reason)
		assert.True(t, event.Rotate)
		assert.False(t, event.Upload)
		event.ID = "01HRA6Q2V7X3E9K1M5N8P0R4ST"
		return nil
	})

	rr := serve(t, f.router(false), http.MethodPost, "/stats/reload")
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"requestId":"01HRA6Q2V7X3E9K1M5N8P0R4ST","reason":"manual"}`, rr.Body.String())
}

func TestReload_QueueBusy(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

	rr := serve(t, f.router(false), http.MethodPost, "/stats/reload")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "HTTP_9000")
}

func TestSync_Disabled(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	router := f.router(false)

	assert.Equal(t, http.StatusConflict, serve(t, router, http.MethodPost, "/sync").Code)
	assert.Equal(t, http.StatusConflict, serve(t, router, http.MethodGet, "/sync").Code)
}

func TestSync_EnqueuesUpload(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *events.RefreshEvent) error {
		assert.Equal(t, events.ReasonSync, event.Reason)
		assert.True(t, event.Upload)
		return nil
	})

	rr := serve(t, f.router(true), http.MethodPost, "/sync")
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestSync_Status(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.syncService.EXPECT().Status(gomock.Any()).Return(&syncs.SyncStatus{LoggedIn: true, LastSyncText: "just now"})

	rr := serve(t, f.router(true), http.MethodGet, "/sync")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"lastSyncText":"just now"`)
}

func TestShare(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	f.session.EXPECT().Snapshot().Return(sampleStats())

	rr := serve(t, f.router(false), http.MethodGet, "/share")
	require.Equal(t, http.StatusOK, rr.Code)

	var body ShareResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.URL, "https://reading.example.org/share.php?year=2024&month=3&goal=30&1=0"))
	assert.Contains(t, body.URL, "&5=60&6=40")
	assert.Contains(t, body.URL, "&d11=60&d12=0")
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t)
	rr := serve(t, f.router(false), http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
}
