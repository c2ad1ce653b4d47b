package adaptor

import (
	"errors"
	"net/http"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/usecase"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Room    *RoomHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Invoice *InvoiceHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Invoice: NewInvoiceHandler(service.Invoice, log),
	}
}

// respondError maps domain errors to HTTP status codes.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var notFound entity.NotFoundError
	var validation entity.ValidationError
	var conflict entity.ConflictError

	switch {
	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &validation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &conflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
