package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	reportMocks "innkeep/internal/domains/report/mocks"
	"innkeep/internal/domains/report/model/dto"
	"innkeep/internal/domains/report/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/failure"
)

func newReportService(ctrl *gomock.Controller) (service.Report, *reportMocks.MockReport, *cacheMocks.MockRedisCache) {
	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestReportService_Occupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newReportService(ctrl)

	tests := []struct {
		name      string
		req       dto.OccupancyRequest
		setupMock func()
		wantErr   bool
		wantKind  string
		wantRate  float64
	}{
		{
			name: "occupancy rate from counts",
			req:  dto.OccupancyRequest{Date: "2026-09-10"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					OccupiedRooms(gomock.Any(), gomock.Any()).
					Return(3, nil)

				mockRepo.EXPECT().
					TotalRooms(gomock.Any()).
					Return(10, nil)
			},
			wantRate: 0.3,
		},
		{
			name: "no rooms yields zero rate",
			req:  dto.OccupancyRequest{Date: "2026-09-10"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					OccupiedRooms(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					TotalRooms(gomock.Any()).
					Return(0, nil)
			},
			wantRate: 0,
		},
		{
			name:      "invalid date",
			req:       dto.OccupancyRequest{Date: "not-a-date"},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "repository error",
			req:  dto.OccupancyRequest{Date: "2026-09-10"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					OccupiedRooms(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Occupancy(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}

				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.wantRate, res.OccupancyRate, 1e-9)
		})
	}
}

func TestReportService_StatusBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newReportService(ctrl)

	statuses := []dto.StatusCount{
		{Status: "confirmed", Count: 4},
		{Status: "checked_in", Count: 2},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		StatusBreakdown(gomock.Any()).
		Return(statuses, nil)

	res, err := svc.StatusBreakdown(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, statuses, res.Statuses)
}

func TestReportService_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newReportService(ctrl)

	tests := []struct {
		name      string
		req       dto.RevenueRequest
		setupMock func()
		wantErr   bool
		wantKind  string
		want      float64
	}{
		{
			name: "summed revenue for the range",
			req:  dto.RevenueRequest{From: "2026-09-01", To: "2026-09-30"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Revenue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(12500.0, nil)
			},
			want: 12500.0,
		},
		{
			name:      "range must cover at least one day",
			req:       dto.RevenueRequest{From: "2026-09-30", To: "2026-09-01"},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name:      "invalid range",
			req:       dto.RevenueRequest{From: "not-a-date", To: "2026-09-30"},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Revenue(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res.Revenue)
		})
	}
}
