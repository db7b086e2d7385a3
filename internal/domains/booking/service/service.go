package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	auditModel "innkeep/internal/domains/audit/model"
	auditRepo "innkeep/internal/domains/audit/repository"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/repository"
	guestService "innkeep/internal/domains/guest/service"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, req dto.CheckOutBookingRequest, id string) error
	MarkPaid(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, req dto.PaymentRequest, id string) error
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.AvailabilityResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	guestSvc   guestService.Guest
	auditRepo  auditRepo.Audit
	transactor postgres.Transactor
	kafka      kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestSvc guestService.Guest,
	auditRepo auditRepo.Audit,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		guestSvc:   guestSvc,
		auditRepo:  auditRepo,
		transactor: transactor,
		kafka:      kafka,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.Validation("invalid booking dates") // nolint:wrapcheck
	}

	if err = validateStayDates(checkIn, checkOut); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		room, err := s.lockRoom(ctx, sqltx, req.RoomID)
		if err != nil {
			return err
		}

		if err = bookable(room); err != nil {
			return err
		}

		numberOfGuests := req.NumberOfGuests
		if numberOfGuests == 0 {
			numberOfGuests = 1
		}

		if numberOfGuests > room.Capacity {
			return failure.CapacityExceeded(fmt.Sprintf("room %s sleeps at most %d guests", room.RoomNumber, room.Capacity)) // nolint:wrapcheck
		}

		overlapping, err := s.repo.CountOverlappingTx(ctx, sqltx, room.ID, checkIn, checkOut, constant.Empty)
		if err != nil {
			log.Error().Err(err).Msg("failed to check room availability")

			return fmt.Errorf("failed to check room availability: %w", err)
		}

		if overlapping > 0 {
			return failure.RoomUnavailable(fmt.Sprintf("room %s is already booked for these dates", room.RoomNumber)) // nolint:wrapcheck
		}

		guest, err := s.guestSvc.ResolveTx(ctx, sqltx, guestService.Ref{
			GuestID: req.Guest.GuestID,
			Profile: req.Guest.Profile,
		})
		if err != nil {
			return err // nolint:wrapcheck
		}

		totalPrice := model.TotalPrice(checkIn, checkOut, room.PricePerNight)
		booking = req.ToModel(user, guest.ID, checkIn, checkOut, totalPrice, s.defaultStatus())

		if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		s.audit(ctx, sqltx, auditModel.NewLog(auditModel.ActionCreate, auditModel.EntityBooking, booking.ID, user, nil, booking))

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	s.invalidate(ctx, booking.ID)
	s.publish(ctx, eventBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update patches a booking. Room and date changes re-run the availability
// check behind the room lock and recompute the price from the room's current
// rate.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return failure.Validation("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var updated model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err := s.loadBookingTx(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if model.IsTerminal(booking.Status) {
			return failure.ImmutableState(fmt.Sprintf("booking is %s and can no longer be modified", booking.Status)) // nolint:wrapcheck
		}

		before := booking

		reschedule := req.RoomID != constant.Empty || req.CheckInDate != constant.Empty || req.CheckOutDate != constant.Empty

		if req.RoomID != constant.Empty {
			booking.RoomID = req.RoomID
		}

		if req.CheckInDate != constant.Empty {
			if booking.CheckInDate, err = timezone.Parse(model.DateFormat, req.CheckInDate); err != nil {
				return failure.Validation("invalid check in date") // nolint:wrapcheck
			}
		}

		if req.CheckOutDate != constant.Empty {
			if booking.CheckOutDate, err = timezone.Parse(model.DateFormat, req.CheckOutDate); err != nil {
				return failure.Validation("invalid check out date") // nolint:wrapcheck
			}
		}

		if req.NumberOfGuests != nil {
			booking.NumberOfGuests = *req.NumberOfGuests
		}

		if req.SpecialRequests != nil {
			booking.SpecialRequests = *req.SpecialRequests
		}

		if reschedule {
			if !booking.CheckOutDate.After(booking.CheckInDate) {
				return failure.Validation("check out date must be after check in date") // nolint:wrapcheck
			}

			// Only a changed arrival date has to lie in the future; an
			// in-house guest extending the stay keeps the original one.
			if req.CheckInDate != constant.Empty && startOfDay(booking.CheckInDate).Before(startOfDay(timezone.Now())) {
				return failure.Validation("check in date cannot be in the past") // nolint:wrapcheck
			}
		}

		room, err := s.lockRoom(ctx, sqltx, booking.RoomID)
		if err != nil {
			return err
		}

		// Moving to a different room needs that room open for bookings.
		// Staying put is fine whatever the room's status reads: this very
		// booking may be why it is occupied.
		if booking.RoomID != before.RoomID {
			if err = bookable(room); err != nil {
				return err
			}
		}

		if booking.NumberOfGuests > room.Capacity {
			return failure.CapacityExceeded(fmt.Sprintf("room %s sleeps at most %d guests", room.RoomNumber, room.Capacity)) // nolint:wrapcheck
		}

		if reschedule {
			overlapping, err := s.repo.CountOverlappingTx(ctx, sqltx, room.ID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
			if err != nil {
				log.Error().Err(err).Msg("failed to check room availability")

				return fmt.Errorf("failed to check room availability: %w", err)
			}

			if overlapping > 0 {
				return failure.RoomUnavailable(fmt.Sprintf("room %s is already booked for these dates", room.RoomNumber)) // nolint:wrapcheck
			}

			booking.TotalPrice = model.TotalPrice(booking.CheckInDate, booking.CheckOutDate, room.PricePerNight)
		}

		booking.ModifiedBy = user
		booking.ModifiedAt = timezone.Now()

		if err = s.repo.UpdateTx(ctx, sqltx, bookingFields(booking), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		if req.Guest != nil {
			if err = s.guestSvc.UpdateTx(ctx, sqltx, *req.Guest, booking.GuestID); err != nil {
				return err // nolint:wrapcheck
			}
		}

		s.audit(ctx, sqltx, auditModel.NewLog(auditModel.ActionUpdate, auditModel.EntityBooking, booking.ID, user, before, booking))

		updated = booking

		return nil
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	s.invalidate(ctx, id)
	s.publish(ctx, eventBookingUpdated, updated)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCancelled, eventBookingCancelled, req.Reason, nil)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	warn := func(booking model.Booking) {
		today := startOfDay(timezone.Now())
		arrival := startOfDay(booking.CheckInDate)

		switch {
		case today.Before(arrival):
			log.Warn().Str("bookingID", booking.ID).Msg("guest checked in before the booked arrival date")
		case today.After(arrival):
			log.Warn().Str("bookingID", booking.ID).Msg("guest checked in after the booked arrival date")
		}

		if !today.Before(startOfDay(booking.CheckOutDate)) {
			log.Warn().Str("bookingID", booking.ID).Msg("guest checked in on or after the booked departure date")
		}
	}

	return s.transition(ctx, id, model.StatusCheckedIn, eventBookingCheckedIn, constant.Empty, warn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCheckedOut, eventBookingCheckedOut, req.Notes, nil)
}

func (s *serviceImpl) MarkPaid(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.updatePayment(ctx, id, model.PaymentPaid, constant.Empty)
}

func (s *serviceImpl) MarkFailed(ctx context.Context, req dto.PaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkFailed")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.updatePayment(ctx, id, model.PaymentFailed, req.Reason)
}

// CheckAvailability answers without locking; it is advisory. The booking
// write path re-checks behind the room lock.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := timezone.Parse(model.DateFormat, req.CheckInDate)
	if err != nil {
		return res, failure.Validation("invalid check in date") // nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(model.DateFormat, req.CheckOutDate)
	if err != nil {
		return res, failure.Validation("invalid check out date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.Validation("check out date must be after check in date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.RoomID = room.ID

	if room.Status != roomModel.StatusAvailable {
		return res, nil
	}

	overlapping, err := s.repo.CountOverlapping(ctx, room.ID, checkIn, checkOut, req.ExcludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	res.Available = overlapping == 0

	return res, nil
}

// Delete removes a booking outright, bypassing the lifecycle. The route is
// restricted to administrators.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err := s.loadBookingTx(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if err = s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		s.audit(ctx, sqltx, auditModel.NewLog(auditModel.ActionDelete, auditModel.EntityBooking, booking.ID, user, booking, nil))

		return nil
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// transition moves a booking to the target status inside one transaction,
// enforcing the lifecycle table.
func (s *serviceImpl) transition(ctx context.Context, id, target, event, note string, inspect func(model.Booking)) (err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var updated model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err := s.loadBookingTx(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if !model.CanTransition(booking.Status, target) {
			return failure.InvalidTransition(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, target)) // nolint:wrapcheck
		}

		if inspect != nil {
			inspect(booking)
		}

		before := booking

		booking.Status = target
		booking.ModifiedBy = user
		booking.ModifiedAt = timezone.Now()

		if note != constant.Empty {
			booking.SpecialRequests = appendNote(booking.SpecialRequests, note)
		}

		fields := map[string]any{
			model.FieldStatus:          booking.Status,
			model.FieldSpecialRequests: booking.SpecialRequests,
			constant.FieldModifiedAt:   booking.ModifiedAt,
			constant.FieldModifiedBy:   booking.ModifiedBy,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		// A cancellation terminates the booking, so the trail records it
		// like a removal rather than an ordinary status change.
		action := auditModel.ActionStatusChange
		if target == model.StatusCancelled {
			action = auditModel.ActionCancel
		}

		s.audit(ctx, sqltx, auditModel.NewLog(action, auditModel.EntityBooking, booking.ID, user, before, booking))

		updated = booking

		return nil
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	s.invalidate(ctx, id)
	s.publish(ctx, event, updated)

	return nil
}

func (s *serviceImpl) updatePayment(ctx context.Context, id, target, note string) (err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var updated model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, err := s.loadBookingTx(ctx, sqltx, id)
		if err != nil {
			return err
		}

		if booking.Status == model.StatusCancelled {
			return failure.ImmutableState("payment cannot change on a cancelled booking") // nolint:wrapcheck
		}

		// Marking paid twice is an operator mistake; a failure mark on a
		// paid booking is the correction for the opposite mistake, so it
		// goes through.
		if target == model.PaymentPaid && booking.PaymentStatus == model.PaymentPaid {
			return failure.Conflict("booking is already paid") // nolint:wrapcheck
		}

		before := booking

		booking.PaymentStatus = target
		booking.ModifiedBy = user
		booking.ModifiedAt = timezone.Now()

		if note != constant.Empty {
			booking.SpecialRequests = appendNote(booking.SpecialRequests, note)
		}

		fields := map[string]any{
			model.FieldPaymentStatus:   booking.PaymentStatus,
			model.FieldSpecialRequests: booking.SpecialRequests,
			constant.FieldModifiedAt:   booking.ModifiedAt,
			constant.FieldModifiedBy:   booking.ModifiedBy,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update payment status")

			return fmt.Errorf("failed to update payment status: %w", err)
		}

		s.audit(ctx, sqltx, auditModel.NewLog(auditModel.ActionPayment, auditModel.EntityBooking, booking.ID, user, before, booking))

		updated = booking

		return nil
	})
	if err != nil {
		return err // nolint:wrapcheck
	}

	s.invalidate(ctx, id)
	s.publish(ctx, eventBookingPayment, updated)

	return nil
}

func (s *serviceImpl) loadBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) loadBookingTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// lockRoom locks the room row for the rest of the transaction.
func (s *serviceImpl) lockRoom(ctx context.Context, sqltx *sqlx.Tx, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.LockTx(ctx, sqltx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock room")

		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

// bookable rejects rooms whose status keeps them off the books, which is
// every status other than available.
func bookable(room roomModel.Room) error {
	if room.Status != roomModel.StatusAvailable {
		return failure.RoomUnavailable(fmt.Sprintf("room %s is %s and cannot take new bookings", room.RoomNumber, room.Status)) // nolint:wrapcheck
	}

	return nil
}

// audit records the change inside the same transaction so the trail rolls
// back with the operation. A failed audit write never fails the operation.
func (s *serviceImpl) audit(ctx context.Context, sqltx *sqlx.Tx, entry auditModel.Log) {
	if err := s.auditRepo.InsertTx(ctx, sqltx, entry); err != nil {
		log.Error().Err(err).Str("entity", entry.Entity).Str("entityID", entry.EntityID).Msg("failed to write audit log")
	}
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: booking.ID,
			Value: bookingEvent{
				Type:         event,
				BookingID:    booking.ID,
				RoomID:       booking.RoomID,
				GuestID:      booking.GuestID,
				CheckInDate:  booking.CheckInDate.Format(model.DateFormat),
				CheckOutDate: booking.CheckOutDate.Format(model.DateFormat),
				Status:       booking.Status,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", event).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) defaultStatus() string {
	status := s.cfg.Booking.DefaultStatus
	if !model.ValidStatus(status) || model.IsTerminal(status) {
		return model.StatusConfirmed
	}

	return status
}

const (
	eventBookingCreated    = "booking.created"
	eventBookingUpdated    = "booking.updated"
	eventBookingCancelled  = "booking.cancelled"
	eventBookingCheckedIn  = "booking.checked_in"
	eventBookingCheckedOut = "booking.checked_out"
	eventBookingPayment    = "booking.payment"
)

type bookingEvent struct {
	Type         string `json:"type"`
	BookingID    string `json:"booking_id"`
	RoomID       string `json:"room_id"`
	GuestID      string `json:"guest_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
}

// validateStayDates enforces the calendar rules shared by create and
// reschedule: at least one night, and no check in before today.
func validateStayDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return failure.Validation("check out date must be after check in date") // nolint:wrapcheck
	}

	if startOfDay(checkIn).Before(startOfDay(timezone.Now())) {
		return failure.Validation("check in date cannot be in the past") // nolint:wrapcheck
	}

	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func appendNote(existing, note string) string {
	if existing == constant.Empty {
		return note
	}

	return strings.Join([]string{existing, note}, "; ")
}

func bookingFields(booking model.Booking) map[string]any {
	return map[string]any{
		model.FieldRoomID:          booking.RoomID,
		model.FieldCheckInDate:     booking.CheckInDate,
		model.FieldCheckOutDate:    booking.CheckOutDate,
		model.FieldNumberOfGuests:  booking.NumberOfGuests,
		model.FieldTotalPrice:      booking.TotalPrice,
		model.FieldSpecialRequests: booking.SpecialRequests,
		constant.FieldModifiedAt:   booking.ModifiedAt,
		constant.FieldModifiedBy:   booking.ModifiedBy,
	}
}
