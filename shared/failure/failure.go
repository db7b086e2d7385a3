package failure

import (
	"errors"
	"net/http"
)

// Kind is a stable, machine-readable classification of a failure. Callers
// branch on Kind instead of matching message strings.
const (
	KindValidation        = "validation"
	KindNotFound          = "not_found"
	KindRoomUnavailable   = "room_unavailable"
	KindCapacityExceeded  = "capacity_exceeded"
	KindInvalidTransition = "invalid_transition"
	KindImmutableState    = "immutable_state"
	KindConflict          = "conflict"
	KindUnauthorized      = "unauthorized"
	KindForbidden         = "forbidden"
	KindInternal          = "internal"
	KindUnimplemented     = "unimplemented"
)

// Failure is a wrapper for error messages, kinds and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation is an alias for BadRequestFromString kept for readability at call
// sites that reject domain input rather than malformed transport payloads.
func Validation(msg string) error {
	return BadRequestFromString(msg)
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// RoomUnavailable reports a booking conflict: an overlapping reservation holds
// the room, or the room is not in available status.
func RoomUnavailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindRoomUnavailable,
		Message: msg,
	}
}

// CapacityExceeded reports a guest count above the room capacity.
func CapacityExceeded(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindCapacityExceeded,
		Message: msg,
	}
}

// InvalidTransition reports a booking status change outside the lifecycle table.
func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: msg,
	}
}

// ImmutableState reports a mutation attempt on a booking in a terminal status.
func ImmutableState(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindImmutableState,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the stable kind of an error interface, or KindInternal for
// errors that are not a Failure.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err is a Failure carrying the given kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
