package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"logrange-backend/config"
	"logrange-backend/internal/dto"
	service_mock "logrange-backend/internal/mocks/service"
	"logrange-backend/internal/model"
)

func testConfig(schedule string) *config.Config {
	return &config.Config{
		Query: config.QueryConfig{Timeout: time.Second},
		Chart: config.ChartConfig{RefreshSchedule: schedule, RefreshStore: "cratedb", RefreshWindow: time.Hour},
	}
}

func TestRefreshJob_QueriesTrailingWindow(t *testing.T) {
	svc := service_mock.NewMockLogQueryService(gomock.NewController(t))
	job := NewRefreshJob(testConfig(""), svc)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	job.now = func() time.Time { return now }

	want := model.QueryRange{Min: now.Add(-time.Hour), Max: now}
	svc.EXPECT().RefreshSeries(gomock.Any(), "cratedb", want).Return(&dto.SeriesResult{Path: "x.json"}, nil)

	require.NoError(t, job.Run(context.Background()))
}

func TestRefreshJob_PropagatesError(t *testing.T) {
	svc := service_mock.NewMockLogQueryService(gomock.NewController(t))
	job := NewRefreshJob(testConfig(""), svc)

	svc.EXPECT().RefreshSeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, model.ErrStoreUnavailable)
	assert.True(t, errors.Is(job.Run(context.Background()), model.ErrStoreUnavailable))
}

func TestNewScheduler(t *testing.T) {
	svc := service_mock.NewMockLogQueryService(gomock.NewController(t))

	c, err := NewScheduler(fxtest.NewLifecycle(t), testConfig(""), NewRefreshJob(testConfig(""), svc))
	assert.NoError(t, err)
	assert.Nil(t, c)

	_, err = NewScheduler(fxtest.NewLifecycle(t), testConfig("not a schedule"), NewRefreshJob(testConfig(""), svc))
	assert.Error(t, err)

	lc := fxtest.NewLifecycle(t)
	c, err = NewScheduler(lc, testConfig("0 */5 * * * *"), NewRefreshJob(testConfig(""), svc))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	lc.RequireStart().RequireStop()
}
