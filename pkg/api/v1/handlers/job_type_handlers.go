package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/services"
)

// handleJobTypeMethod routes job type methods to their respective handlers
func (h *RPCHandler) handleJobTypeMethod(c *fiber.Ctx, req RPCRequest) error {
	switch req.Method {
	case JobTypeCreate:
		return h.createJobType(c, req)
	case JobTypeGetAll:
		return h.listJobTypes(c, req)
	case JobTypeGetByID:
		return h.getJobType(c, req)
	case JobTypeUpdate:
		return h.updateJobType(c, req)
	case JobTypeDelete:
		return h.deleteJobType(c, req)
	case JobTypeSearch:
		return h.searchJobTypes(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

func (h *RPCHandler) createJobType(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[services.JobTypeCreate](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	jobType, err := h.jobTypes.Create(c.Context(), params)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobTypeCreateFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobType, req.ID)
}

func (h *RPCHandler) listJobTypes(c *fiber.Ctx, req RPCRequest) error {
	jobTypes, err := h.jobTypes.GetAll(c.Context())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobTypeListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobTypes, req.ID)
}

func (h *RPCHandler) getJobType(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobType, err := h.jobTypes.GetByID(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobTypeListFailed, err.Error(), req.ID)
	}
	if jobType == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgJobTypeNotFound, nil, req.ID)
	}
	return respondWithData(c, jobType, req.ID)
}

func (h *RPCHandler) updateJobType(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[JobTypeUpdateParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobType, err := h.jobTypes.Update(c.Context(), params.ID, params.Update)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobTypeUpdateFailed, err.Error(), req.ID)
	}
	if jobType == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgJobTypeNotFound, nil, req.ID)
	}
	return respondWithData(c, jobType, req.ID)
}

func (h *RPCHandler) deleteJobType(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	removed, err := h.jobTypes.Delete(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobTypeDeleteFailed, err.Error(), req.ID)
	}
	return respondWithData(c, removed, req.ID)
}

func (h *RPCHandler) searchJobTypes(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[SearchParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobTypes, err := h.jobTypes.Search(c.Context(), params.Term)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobTypeListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobTypes, req.ID)
}
