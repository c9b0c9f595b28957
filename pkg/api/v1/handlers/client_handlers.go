package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/atelierhq/atelier/internal/services"
)

// handleClientMethod routes client methods to their respective handlers
func (h *RPCHandler) handleClientMethod(c *fiber.Ctx, req RPCRequest) error {
	switch req.Method {
	case ClientCreate:
		return h.createClient(c, req)
	case ClientGetAll:
		return h.listClients(c, req)
	case ClientGetByID:
		return h.getClient(c, req)
	case ClientUpdate:
		return h.updateClient(c, req)
	case ClientDelete:
		return h.deleteClient(c, req)
	case ClientSearch:
		return h.searchClients(c, req)
	default:
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgUnknownMethod, req.Method, req.ID)
	}
}

func (h *RPCHandler) createClient(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[services.ClientCreate](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	client, err := h.clients.Create(c.Context(), params)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgClientCreateFailed, err.Error(), req.ID)
	}
	return respondWithData(c, client, req.ID)
}

func (h *RPCHandler) listClients(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ListParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	clients, err := h.clients.GetAll(c.Context(), params.Options())
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgClientListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, clients, req.ID)
}

func (h *RPCHandler) getClient(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	client, err := h.clients.GetByID(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgClientListFailed, err.Error(), req.ID)
	}
	if client == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgClientNotFound, nil, req.ID)
	}
	return respondWithData(c, client, req.ID)
}

func (h *RPCHandler) updateClient(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[ClientUpdateParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	client, err := h.clients.Update(c.Context(), params.ID, params.Update)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgClientUpdateFailed, err.Error(), req.ID)
	}
	if client == nil {
		return respondWithRPCError(c, fiber.StatusNotFound, ErrMsgClientNotFound, nil, req.ID)
	}
	return respondWithData(c, client, req.ID)
}

func (h *RPCHandler) deleteClient(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[IDParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	removed, err := h.clients.Delete(c.Context(), params.ID)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgClientDeleteFailed, err.Error(), req.ID)
	}
	return respondWithData(c, removed, req.ID)
}

func (h *RPCHandler) searchClients(c *fiber.Ctx, req RPCRequest) error {
	params, err := parseParams[SearchParams](req)
	if err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, ErrMsgInvalidParams, err.Error(), req.ID)
	}
	if err := params.Validate(); err != nil {
		return respondWithRPCError(c, fiber.StatusBadRequest, err.Error(), nil, req.ID)
	}

	clients, err := h.clients.Search(c.Context(), params.Term)
	if err != nil {
		return respondWithRPCError(c, serviceErrorStatus(err), ErrMsgClientListFailed, err.Error(), req.ID)
	}
	return respondWithData(c, clients, req.ID)
}
