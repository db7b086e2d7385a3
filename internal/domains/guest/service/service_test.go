package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	guestMocks "innkeep/internal/domains/guest/mocks"
	"innkeep/internal/domains/guest/model"
	"innkeep/internal/domains/guest/model/dto"
	"innkeep/internal/domains/guest/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestGuestService_ResolveTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	existing := model.Guest{
		ID:    "guest-1",
		Email: "jane@example.com",
	}
	profile := &dto.CreateGuestRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
	}

	tests := []struct {
		name      string
		ref       service.Ref
		setupMock func()
		wantErr   bool
		wantKind  string
		wantID    string
	}{
		{
			name: "known guest by id",
			ref:  service.Ref{GuestID: "guest-1"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(existing, nil)
			},
			wantID: "guest-1",
		},
		{
			name: "unknown guest id",
			ref:  service.Ref{GuestID: "missing"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name:      "neither id nor profile",
			ref:       service.Ref{},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "known email reuses the existing guest",
			ref:  service.Ref{Profile: profile},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(existing, nil)
			},
			wantID: "guest-1",
		},
		{
			name: "new email creates the guest",
			ref:  service.Ref{Profile: profile},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "insert failure",
			ref:  service.Ref{Profile: profile},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			guest, err := svc.ResolveTx(testCtx(), nil, tt.ref)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, guest.ID)

			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, guest.ID)
			}
		})
	}
}

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	req := dto.CreateGuestRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
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
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate email",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
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

func TestGuestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
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

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "successful delete",
			id:   "guest-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "guest not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "guest holds active bookings",
			id:   "guest-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)
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

func TestGuestService_UpdateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	existing := model.Guest{
		ID:    "guest-1",
		Email: "jane@example.com",
		Phone: "555-0100",
	}

	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func()
		wantErr   bool
		wantKind  string
	}{
		{
			name: "patch applied through the caller's transaction",
			req:  dto.UpdateGuestRequest{Phone: "555-0199"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(existing, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "555-0199", fields["phone"])

						return nil
					})
			},
		},
		{
			name:      "empty patch",
			req:       dto.UpdateGuestRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "guest not found",
			req:  dto.UpdateGuestRequest{Phone: "555-0199"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateTx(testCtx(), nil, tt.req, "guest-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
		})
	}
}
