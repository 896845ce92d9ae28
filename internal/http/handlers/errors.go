package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/omxqn/api-application/domain"
)

// statusFor maps a domain error to its HTTP status. Unknown errors fall
// through to 500 and are never echoed to the caller.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountExists),
		errors.Is(err, domain.ErrProfileExists),
		errors.Is(err, domain.ErrInvitationExists),
		errors.Is(err, domain.ErrInvitationNotPending),
		errors.Is(err, domain.ErrDriverAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrOTPNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrRoleUnknown),
		errors.Is(err, domain.ErrBusNotFound),
		errors.Is(err, domain.ErrTripNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRegisterType),
		errors.Is(err, domain.ErrContactRequired),
		errors.Is(err, domain.ErrOTPInvalid),
		errors.Is(err, domain.ErrOTPExpired),
		errors.Is(err, domain.ErrInviteeNotCaptain):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrNotBusOwner),
		errors.Is(err, domain.ErrDriverNotAssigned):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrDeliveryFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes the mapped status with the domain error text, or a
// generic message for anything unexpected so store internals never leak.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	if status == http.StatusBadGateway {
		c.JSON(status, gin.H{"error": domain.ErrDeliveryFailed.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindingErrors collects every field failure from a binding error so the
// caller sees all problems in one round-trip.
func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Field()+" failed validation on "+fe.Tag())
		}
		return msgs
	}
	return []string{err.Error()}
}

// respondBindingError returns the collected field errors as a 400.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
}
