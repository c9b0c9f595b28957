package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
)

// handleConfigMethod routes config methods to their respective handlers
func (h *RPCHandler) handleConfigMethod(c *fiber.Ctx, req RPCRequest) error {
	switch req.Method {
	case ConfigGet:
		return h.getConfig(c, req)
	case ConfigSet:
		return h.setConfig(c, req)
	case ConfigGetAll:
		return h.listConfig(c, req)
	case ConfigDelete:
		return h.deleteConfig(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

func (h *RPCHandler) getConfig(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ConfigKeyParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	value, err := h.config.Get(c.Context(), params.Key)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgConfigGetFailed, err.Error(), req.ID)
	}
	return respondWithData(c, value, req.ID)
}

func (h *RPCHandler) setConfig(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ConfigSetParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	config, err := h.config.Set(c.Context(), params.Key, params.Value)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgConfigSetFailed, err.Error(), req.ID)
	}
	return respondWithData(c, config, req.ID)
}

func (h *RPCHandler) listConfig(c *fiber.Ctx, req RPCRequest) error {
	configs, err := h.config.GetAll(c.Context())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgConfigListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, configs, req.ID)
}

func (h *RPCHandler) deleteConfig(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ConfigKeyParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	removed, err := h.config.Delete(c.Context(), params.Key)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgConfigDeleteFailed, err.Error(), req.ID)
	}
	return respondWithData(c, removed, req.ID)
}
