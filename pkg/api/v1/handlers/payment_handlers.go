package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/services"
)

// handlePaymentMethod routes payment methods to their respective handlers
func (h *RPCHandler) handlePaymentMethod(c *fiber.Ctx, req RPCRequest) error {
	switch req.Method {
	case PaymentCreate:
		return h.createPayment(c, req)
	case PaymentGetAll:
		return h.listPayments(c, req)
	case PaymentGetByID:
		return h.getPayment(c, req)
	case PaymentGetByJob:
		return h.listPaymentsByJob(c, req)
	case PaymentGetByDateRange:
		return h.listPaymentsByDateRange(c, req)
	case PaymentUpdate:
		return h.updatePayment(c, req)
	case PaymentDelete:
		return h.deletePayment(c, req)
	case PaymentGetStats:
		return h.paymentStats(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

func (h *RPCHandler) createPayment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[services.PaymentCreate](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	payment, err := h.payments.Create(c.Context(), params)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentCreateFailed, err.Error(), req.ID)
	}
	return respondWithData(c, payment, req.ID)
}

func (h *RPCHandler) listPayments(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ListParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	payments, err := h.payments.GetAll(c.Context(), params.Options())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, payments, req.ID)
}

func (h *RPCHandler) getPayment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	payment, err := h.payments.GetByID(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentListFailed, err.Error(), req.ID)
	}
	if payment == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgPaymentNotFound, nil, req.ID)
	}
	return respondWithData(c, payment, req.ID)
}

func (h *RPCHandler) listPaymentsByJob(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[PaymentByJobParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	payments, err := h.payments.GetByJob(c.Context(), params.JobID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, payments, req.ID)
}

func (h *RPCHandler) listPaymentsByDateRange(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[PaymentDateRangeParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	payments, err := h.payments.GetByDateRange(c.Context(), params.Start, params.End)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, payments, req.ID)
}

func (h *RPCHandler) updatePayment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[PaymentUpdateParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	payment, err := h.payments.Update(c.Context(), params.ID, params.Update)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentUpdateFailed, err.Error(), req.ID)
	}
	if payment == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgPaymentNotFound, nil, req.ID)
	}
	return respondWithData(c, payment, req.ID)
}

func (h *RPCHandler) deletePayment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	removed, err := h.payments.Delete(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentDeleteFailed, err.Error(), req.ID)
	}
	return respondWithData(c, removed, req.ID)
}

func (h *RPCHandler) paymentStats(c *fiber.Ctx, req RPCRequest) error {
	stats, err := h.payments.Stats(c.Context())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgPaymentStatsFailed, err.Error(), req.ID)
	}
	return respondWithData(c, stats, req.ID)
}
