package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/services"
)

// handleAttachmentMethod routes attachment methods to their respective handlers
func (h *RPCHandler) handleAttachmentMethod(c *fiber.Ctx, req RPCRequest) error {
	switch req.Method {
	case AttachmentCreate:
		return h.createAttachment(c, req)
	case AttachmentGetAll:
		return h.listAttachments(c, req)
	case AttachmentGetByID:
		return h.getAttachment(c, req)
	case AttachmentGetByJob:
		return h.listAttachmentsByJob(c, req)
	case AttachmentDelete:
		return h.deleteAttachment(c, req)
	case AttachmentSaveFile:
		return h.saveAttachmentFile(c, req)
	case AttachmentGetContent:
		return h.attachmentContent(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

func (h *RPCHandler) createAttachment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[services.AttachmentCreate](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	attachment, err := h.attachments.Create(c.Context(), params)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentCreateFailed, err.Error(), req.ID)
	}
	return respondWithData(c, attachment, req.ID)
}

func (h *RPCHandler) listAttachments(c *fiber.Ctx, req RPCRequest) error {
	attachments, err := h.attachments.GetAll(c.Context())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, attachments, req.ID)
}

func (h *RPCHandler) getAttachment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	attachment, err := h.attachments.GetByID(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentListFailed, err.Error(), req.ID)
	}
	if attachment == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgAttachmentNotFound, nil, req.ID)
	}
	return respondWithData(c, attachment, req.ID)
}

func (h *RPCHandler) listAttachmentsByJob(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[PaymentByJobParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	attachments, err := h.attachments.GetByJob(c.Context(), params.JobID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, attachments, req.ID)
}

func (h *RPCHandler) deleteAttachment(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	removed, err := h.attachments.Delete(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentDeleteFailed, err.Error(), req.ID)
	}
	return respondWithData(c, removed, req.ID)
}

func (h *RPCHandler) saveAttachmentFile(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[AttachmentSaveFileParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	attachment, err := h.attachments.SaveFile(c.Context(), params.FileName, params.Data, params.JobID, params.PaymentID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentSaveFailed, err.Error(), req.ID)
	}
	return respondWithData(c, attachment, req.ID)
}

func (h *RPCHandler) attachmentContent(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	data, err := h.attachments.Content(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgAttachmentReadFailed, err.Error(), req.ID)
	}
	if data == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgAttachmentNotFound, nil, req.ID)
	}
	return respondWithData(c, data, req.ID)
}
