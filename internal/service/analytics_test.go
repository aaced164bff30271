package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/pawlog/backend/internal/analytics"
	"github.com/JonnyWalker81/pawlog/backend/internal/metrics"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/memory"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/seed"
)

func fixtureEvents() []models.BehaviorEvent {
	return []models.BehaviorEvent{
		{ID: 1, Type: "Barking", Trigger: "Doorbell", Intensity: 5, Timestamp: fixedNow.Add(-3 * time.Hour)},
		{ID: 2, Type: "Barking", Trigger: "Strangers", Intensity: 4, Timestamp: fixedNow.Add(-time.Hour)},
		{ID: 3, Type: "Chewing", Trigger: "Being Alone", Intensity: 2, Timestamp: fixedNow.AddDate(0, 0, -1)},
		{ID: 4, Type: models.CustomSentinel, CustomType: "Zoomies", Trigger: "Walk Time", Intensity: 1, Timestamp: fixedNow.AddDate(0, 0, -20)},
	}
}

func newAnalytics(events []models.BehaviorEvent, opts AnalyticsOptions, m *metrics.Metrics) AnalyticsService {
	return NewAnalyticsService(
		memory.NewEventRepository(events...),
		memory.NewCatalogRepository(seed.Default()),
		fixedClock(),
		opts,
		nopLog,
		m,
	)
}

func TestDashboard(t *testing.T) {
	svc := newAnalytics(fixtureEvents(), AnalyticsOptions{QuickAddLimit: 4}, nil)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DailySummary{
		TotalToday:         2,
		AverageIntensity:   4.5,
		MostCommonBehavior: "Barking",
		MostCommonTrigger:  "Doorbell",
	}, dash.Summary)

	require.Len(t, dash.TodayEvents, 2)
	assert.Equal(t, int64(2), dash.TodayEvents[0].ID, "newest first")

	require.Len(t, dash.QuickAddTypes, 4)
	assert.Equal(t, "Barking", dash.QuickAddTypes[0].Name)
}

func TestDashboard_EmptyLog(t *testing.T) {
	svc := newAnalytics(nil, AnalyticsOptions{}, nil)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, dash.Summary.TotalToday)
	assert.Empty(t, dash.Summary.MostCommonBehavior)
	assert.Empty(t, dash.TodayEvents)
	assert.Len(t, dash.QuickAddTypes, 8)
}

func TestDashboard_StorageFailure(t *testing.T) {
	svc := NewAnalyticsService(failingEventRepository{}, memory.NewCatalogRepository(seed.Default()),
		fixedClock(), AnalyticsOptions{}, nopLog, nil)

	_, err := svc.Dashboard(context.Background())
	assert.True(t, errors.Is(err, errStoreDown))
}

func TestHistory(t *testing.T) {
	svc := newAnalytics(fixtureEvents(), AnalyticsOptions{}, nil)

	all, err := svc.History(context.Background(), analytics.FilterSpec{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	assert.Equal(t, 4, all.Matched)
	assert.Equal(t, []string{"Barking", "Chewing", "Zoomies"}, all.AvailableTypes)
	assert.Equal(t, int64(2), all.Events[0].ID)

	week, err := svc.History(context.Background(), analytics.FilterSpec{DateRange: analytics.DateRangePastWeek, Type: "Barking"})
	require.NoError(t, err)
	assert.Equal(t, 4, week.Total)
	assert.Equal(t, 2, week.Matched)
	assert.Equal(t, []string{"Barking", "Chewing", "Zoomies"}, week.AvailableTypes)

	_, err = svc.History(context.Background(), analytics.FilterSpec{Intensity: 7})
	assert.True(t, IsValidation(err))
}

func TestInsights(t *testing.T) {
	m := metrics.New()
	svc := newAnalytics(fixtureEvents(), AnalyticsOptions{DefaultWindowDays: 30}, m)

	report, err := svc.Insights(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, report.WindowDays)
	assert.Equal(t, 3, report.TotalEvents)
	assert.Equal(t, 3.7, report.AverageIntensity)
	assert.Len(t, report.Trend, 7)
	assert.Equal(t, []string{
		analytics.DesensitizationMessage("Doorbell"),
		analytics.MsgGreatProgress,
	}, report.Recommendations)

	defaulted, err := svc.Insights(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, defaulted.WindowDays)
	assert.Equal(t, 4, defaulted.TotalEvents)

	expected := `
# HELP pawlog_insights_computed_total Insights reports computed
# TYPE pawlog_insights_computed_total counter
pawlog_insights_computed_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "pawlog_insights_computed_total"))

	_, err = svc.Insights(context.Background(), MaxWindowDays+1)
	assert.True(t, IsValidation(err))
}

func TestInsights_DefaultWindowCapped(t *testing.T) {
	svc := newAnalytics(fixtureEvents(), AnalyticsOptions{DefaultWindowDays: 400}, nil)

	report, err := svc.Insights(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, MaxWindowDays, report.WindowDays)
	assert.Len(t, report.Trend, MaxWindowDays)
}

func TestInsights_EmptyLog(t *testing.T) {
	svc := newAnalytics(nil, AnalyticsOptions{}, nil)

	report, err := svc.Insights(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, report.DataSufficient)
	assert.Equal(t, []string{analytics.MsgStartLogging}, report.Recommendations)
}

// countingEventRepository records concurrent List calls
type countingEventRepository struct {
	*memory.EventRepository
	lists atomic.Int32
}

func (r *countingEventRepository) List(ctx context.Context) ([]models.BehaviorEvent, error) {
	r.lists.Add(1)
	return r.EventRepository.List(ctx)
}

func TestAnalytics_SnapshotsRepository(t *testing.T) {
	repo := &countingEventRepository{EventRepository: memory.NewEventRepository(fixtureEvents()...)}
	svc := NewAnalyticsService(repo, memory.NewCatalogRepository(seed.Default()), fixedClock(), AnalyticsOptions{}, nopLog, nil)

	first, err := svc.Insights(context.Background(), 30)
	require.NoError(t, err)
	second, err := svc.Insights(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(2), repo.lists.Load())
}
