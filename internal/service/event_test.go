package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/pawlog/backend/internal/metrics"
	"github.com/JonnyWalker81/pawlog/backend/internal/models"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/memory"
)

func validRequest() *models.BehaviorEventRequest {
	return &models.BehaviorEventRequest{
		Type:      "Barking",
		Trigger:   "Doorbell",
		Intensity: 4,
		Timestamp: timePtr(time.Date(2024, time.March, 15, 9, 12, 33, 0, time.UTC)),
		Location:  strPtr("  Front door "),
		Duration:  intPtr(5),
		Notes:     strPtr(""),
	}
}

func TestLogBehavior_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, nil)

	created, err := svc.LogBehavior(ctx, validRequest())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, time.Date(2024, time.March, 15, 9, 12, 0, 0, time.UTC), created.Timestamp)
	assert.Equal(t, "Front door", *created.Location)
	assert.Nil(t, created.Notes)

	got, err := svc.GetBehavior(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestLogBehavior_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BehaviorEventRequest)
		fields []string
	}{
		{name: "intensity too high", mutate: func(r *models.BehaviorEventRequest) { r.Intensity = 6 }, fields: []string{"intensity"}},
		{name: "intensity zero", mutate: func(r *models.BehaviorEventRequest) { r.Intensity = 0 }, fields: []string{"intensity"}},
		{name: "missing type", mutate: func(r *models.BehaviorEventRequest) { r.Type = "  " }, fields: []string{"type"}},
		{name: "missing trigger", mutate: func(r *models.BehaviorEventRequest) { r.Trigger = "" }, fields: []string{"trigger"}},
		{name: "custom type without text", mutate: func(r *models.BehaviorEventRequest) { r.Type = models.CustomSentinel }, fields: []string{"custom_type"}},
		{name: "custom trigger without text", mutate: func(r *models.BehaviorEventRequest) { r.Trigger = models.CustomSentinel }, fields: []string{"custom_trigger"}},
		{name: "custom text on catalog type", mutate: func(r *models.BehaviorEventRequest) { r.CustomType = "Howling" }, fields: []string{"custom_type"}},
		{name: "custom text on catalog trigger", mutate: func(r *models.BehaviorEventRequest) { r.CustomTrigger = "Mailman" }, fields: []string{"custom_trigger"}},
		{name: "missing timestamp", mutate: func(r *models.BehaviorEventRequest) { r.Timestamp = nil }, fields: []string{"timestamp"}},
		{name: "zero duration", mutate: func(r *models.BehaviorEventRequest) { r.Duration = intPtr(0) }, fields: []string{"duration"}},
		{
			name: "reports every field",
			mutate: func(r *models.BehaviorEventRequest) {
				r.Type = ""
				r.Intensity = 9
				r.Timestamp = nil
			},
			fields: []string{"type", "intensity", "timestamp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewEventRepository()
			svc := NewBehaviorService(repo, fixedClock(), nopLog, nil)

			req := validRequest()
			tt.mutate(req)
			_, err := svc.LogBehavior(context.Background(), req)

			var v *ValidationError
			require.True(t, errors.As(err, &v), "want *ValidationError, got %v", err)
			var fields []string
			for _, f := range v.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.fields, fields)

			list, _ := repo.List(context.Background())
			assert.Empty(t, list, "invalid event must not be stored")
		})
	}
}

func TestUpdateBehavior_RejectsCustomTextOnCatalogLabels(t *testing.T) {
	ctx := context.Background()
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, nil)

	created, err := svc.LogBehavior(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CustomType = "Howling"
	req.CustomTrigger = "Mailman"
	_, err = svc.UpdateBehavior(ctx, created.ID, req)

	var v *ValidationError
	require.True(t, errors.As(err, &v), "want *ValidationError, got %v", err)
	require.Len(t, v.Fields, 2)
	assert.Equal(t, "not_allowed", v.Fields[0].Code)
	assert.Equal(t, "not_allowed", v.Fields[1].Code)

	stored, err := svc.GetBehavior(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.CustomType)
	assert.Empty(t, stored.CustomTrigger)
}

func TestLogBehavior_CustomLabels(t *testing.T) {
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, nil)

	req := validRequest()
	req.Type = models.CustomSentinel
	req.CustomType = "Counter surfing"
	req.Trigger = models.CustomSentinel
	req.CustomTrigger = "Dinner prep"

	created, err := svc.LogBehavior(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Counter surfing", created.CustomType)
	assert.Equal(t, "Dinner prep", created.CustomTrigger)
}

func TestLogBehavior_CountsMetric(t *testing.T) {
	m := metrics.New()
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, m)

	_, err := svc.LogBehavior(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.QuickAdd(context.Background(), &models.QuickAddRequest{Type: "Digging"})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "pawlog_behavior_events_logged_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestQuickAdd_Defaults(t *testing.T) {
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, nil)

	created, err := svc.QuickAdd(context.Background(), &models.QuickAddRequest{Type: "Barking"})
	require.NoError(t, err)

	assert.Equal(t, "Barking", created.Type)
	assert.Equal(t, models.QuickAddTrigger, created.Trigger)
	assert.Equal(t, models.QuickAddIntensity, created.Intensity)
	assert.Equal(t, fixedNow.Truncate(time.Minute), created.Timestamp)
	require.NotNil(t, created.Notes)
	assert.Equal(t, models.QuickAddNotes, *created.Notes)

	_, err = svc.QuickAdd(context.Background(), &models.QuickAddRequest{Type: " "})
	assert.True(t, IsValidation(err))
}

func TestListBehaviors_NewestFirst(t *testing.T) {
	repo := memory.NewEventRepository(
		models.BehaviorEvent{ID: 1, Type: "Barking", Timestamp: fixedNow.Add(-2 * time.Hour)},
		models.BehaviorEvent{ID: 2, Type: "Chewing", Timestamp: fixedNow},
		models.BehaviorEvent{ID: 3, Type: "Digging", Timestamp: fixedNow.Add(-2 * time.Hour)},
	)
	svc := NewBehaviorService(repo, fixedClock(), nopLog, nil)

	events, err := svc.ListBehaviors(context.Background())
	require.NoError(t, err)

	var ids []int64
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{2, 3, 1}, ids)
}

func TestUpdateBehavior_FullReplace(t *testing.T) {
	ctx := context.Background()
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, nil)

	created, err := svc.LogBehavior(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Type = "Whining"
	req.Location = nil
	req.Duration = nil
	updated, err := svc.UpdateBehavior(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Whining", updated.Type)
	assert.Nil(t, updated.Location)
	assert.Nil(t, updated.Duration)

	_, err = svc.UpdateBehavior(ctx, 404, validRequest())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteBehavior(t *testing.T) {
	ctx := context.Background()
	svc := NewBehaviorService(memory.NewEventRepository(), fixedClock(), nopLog, nil)

	created, err := svc.LogBehavior(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBehavior(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteBehavior(ctx, created.ID), repository.ErrNotFound)

	_, err = svc.GetBehavior(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBehaviorService_StorageFailure(t *testing.T) {
	svc := NewBehaviorService(failingEventRepository{}, fixedClock(), nopLog, nil)

	_, err := svc.ListBehaviors(context.Background())

	var repoErr *repository.RepositoryError
	assert.ErrorAs(t, err, &repoErr)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = svc.LogBehavior(context.Background(), validRequest())
	assert.ErrorIs(t, err, errStoreDown)
}
