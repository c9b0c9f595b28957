package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/services"
)

// handleJobMethod routes job methods to their respective handlers
func (h *RPCHandler) handleJobMethod(c *fiber.Ctx, req RPCRequest) error {
	switch req.Method {
	case JobCreate:
		return h.createJob(c, req)
	case JobGetAll:
		return h.listJobs(c, req)
	case JobGetByID:
		return h.getJob(c, req)
	case JobGetByClient:
		return h.listJobsByClient(c, req)
	case JobGetByStatus:
		return h.listJobsByStatus(c, req)
	case JobGetByDateRange:
		return h.listJobsByDateRange(c, req)
	case JobUpdate:
		return h.updateJob(c, req)
	case JobUpdateStatus:
		return h.updateJobStatus(c, req)
	case JobDelete:
		return h.deleteJob(c, req)
	case JobSearch:
		return h.searchJobs(c, req)
	case JobGetStats:
		return h.jobStats(c, req)
	case JobGetHighestPrice:
		return h.highestPricedJobs(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

func (h *RPCHandler) createJob(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[services.JobCreate](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	job, err := h.jobs.Create(c.Context(), params)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobCreateFailed, err.Error(), req.ID)
	}
	return respondWithData(c, job, req.ID)
}

func (h *RPCHandler) listJobs(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ListParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	jobs, err := h.jobs.GetAll(c.Context(), params.Options())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobs, req.ID)
}

func (h *RPCHandler) getJob(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	job, err := h.jobs.GetByID(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	if job == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgJobNotFound, nil, req.ID)
	}
	return respondWithData(c, job, req.ID)
}

func (h *RPCHandler) listJobsByClient(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[JobByClientParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobs, err := h.jobs.GetByClient(c.Context(), params.ClientID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobs, req.ID)
}

func (h *RPCHandler) listJobsByStatus(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[JobByStatusParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobs, err := h.jobs.GetByStatus(c.Context(), params.Status)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobs, req.ID)
}

func (h *RPCHandler) listJobsByDateRange(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[JobDateRangeParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobs, err := h.jobs.GetByDateRange(c.Context(), params.Start, params.End, params.Status)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobs, req.ID)
}

func (h *RPCHandler) updateJob(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[JobUpdateParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	job, err := h.jobs.Update(c.Context(), params.ID, params.Update)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobUpdateFailed, err.Error(), req.ID)
	}
	if job == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgJobNotFound, nil, req.ID)
	}
	return respondWithData(c, job, req.ID)
}

func (h *RPCHandler) updateJobStatus(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[JobUpdateStatusParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	job, err := h.jobs.UpdateStatus(c.Context(), params.ID, params.Status)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobUpdateFailed, err.Error(), req.ID)
	}
	if job == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgJobNotFound, nil, req.ID)
	}
	return respondWithData(c, job, req.ID)
}

func (h *RPCHandler) deleteJob(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	removed, err := h.jobs.Delete(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobDeleteFailed, err.Error(), req.ID)
	}
	return respondWithData(c, removed, req.ID)
}

func (h *RPCHandler) searchJobs(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[SearchParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	jobs, err := h.jobs.Search(c.Context(), params.Term)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobs, req.ID)
}

func (h *RPCHandler) jobStats(c *fiber.Ctx, req RPCRequest) error {
	stats, err := h.jobs.Stats(c.Context())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobStatsFailed, err.Error(), req.ID)
	}
	return respondWithData(c, stats, req.ID)
}

func (h *RPCHandler) highestPricedJobs(c *fiber.Ctx, req RPCRequest) error {
	jobs, err := h.jobs.HighestPriced(c.Context())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgJobListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, jobs, req.ID)
}
