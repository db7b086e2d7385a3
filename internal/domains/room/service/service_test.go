package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	s3Mocks "innkeep/infras/s3/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

type roomMocksBundle struct {
	repo        *roomMocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
}

func newRoomService(ctrl *gomock.Controller) (service.Room, roomMocksBundle) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, roomMocksBundle{
		repo:        mockRepo,
		bookingRepo: mockBookingRepo,
		cache:       mockCache,
		s3:          mockS3,
	}
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	req := dto.CreateRoomRequest{
		RoomNumber:    "101",
		Type:          "double",
		Capacity:      2,
		PricePerNight: 120,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "successful creation",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate room number",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(testCtx(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	room := model.Room{
		ID:         "room-1",
		RoomNumber: "101",
		Type:       "double",
		Capacity:   4,
		Status:     model.StatusAvailable,
	}

	one := 1
	six := 6

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "successful update",
			req:  dto.UpdateRoomRequest{Type: "suite"},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{Type: "suite"},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "new room number already in use",
			req:  dto.UpdateRoomRequest{RoomNumber: "202"},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "capacity cannot drop below an active party",
			req:  dto.UpdateRoomRequest{Capacity: &one},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.bookingRepo.EXPECT().
					MaxActiveGuests(gomock.Any(), "room-1").
					Return(3, nil)
			},
			wantErr:  true,
			wantKind: failure.KindCapacityExceeded,
		},
		{
			name: "capacity shrinks but still fits the largest party",
			req:  dto.UpdateRoomRequest{Capacity: &one},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.bookingRepo.EXPECT().
					MaxActiveGuests(gomock.Any(), "room-1").
					Return(1, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "capacity grows without a booking check",
			req:  dto.UpdateRoomRequest{Capacity: &six},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(testCtx(), tt.req, "room-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "successful delete",
			id:   "room-1",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			id:   "missing",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "room holds active bookings",
			id:   "room-1",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(testCtx(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
