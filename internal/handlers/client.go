package handlers

import (
	"errors"
	"strconv"

	"paydesk/internal/services/client"
	"paydesk/internal/utils/response"
	"paydesk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	clients client.Service
}

func NewClientHandler(clients client.Service) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var input struct {
		Name       string `json:"name" validate:"required"`
		Surname    string `json:"surname" validate:"required"`
		MiddleName string `json:"middle_name" validate:"required"`
		Birth      string `json:"birth" validate:"required"`
		Phone      string `json:"phone" validate:"required"`
		Wallet     string `json:"wallet" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	created, err := h.clients.Register(c.Context(), client.RegisterInput{
		Name:       input.Name,
		Surname:    input.Surname,
		MiddleName: input.MiddleName,
		Birth:      input.Birth,
		Phone:      input.Phone,
		Wallet:     input.Wallet,
	})
	if err != nil {
		return response.ServerError(c, "Failed to create client")
	}

	return response.Success(c, fiber.Map{
		"message": "Client added successfully!",
		"data":    created,
	})
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.clients.List(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to fetch clients")
	}
	return response.Success(c, clients)
}

// CheckClient looks a client up by the full name triple. Absence is a valid
// result, reported as exists false.
func (h *ClientHandler) CheckClient(c *fiber.Ctx) error {
	var input struct {
		Name       string `json:"name" validate:"required"`
		Surname    string `json:"surname" validate:"required"`
		MiddleName string `json:"middle_name" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.clients.CheckByName(c.Context(), input.Name, input.Surname, input.MiddleName)
	if err != nil {
		return response.ServerError(c, "Failed to check client")
	}
	if !result.Exists {
		return response.Success(c, fiber.Map{"exists": false})
	}

	return response.Success(c, fiber.Map{
		"exists": true,
		"user": fiber.Map{
			"id":          result.Client.ID,
			"name":        result.Client.Name,
			"surname":     result.Client.Surname,
			"middle_name": result.Client.MiddleName,
			"wallet":      result.Client.Wallet,
		},
		"transactions": result.Transactions,
	})
}

func (h *ClientHandler) GetClientID(c *fiber.Ctx) error {
	name := c.Query("name")
	surname := c.Query("surname")
	middleName := c.Query("middle_name")
	if name == "" || surname == "" || middleName == "" {
		return response.BadRequest(c, "name, surname and middle_name are required")
	}

	id, err := h.clients.IDByName(c.Context(), name, surname, middleName)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return response.NotFound(c, "Client not found")
		}
		return response.ServerError(c, "Failed to look up client")
	}
	return response.Success(c, fiber.Map{"clientId": id})
}

func (h *ClientHandler) GetClientNumber(c *fiber.Ctx) error {
	clientID, err := strconv.ParseUint(c.Query("clientId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "clientId is required")
	}

	phone, err := h.clients.PhoneByID(c.Context(), uint(clientID))
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return response.NotFound(c, "Client not found")
		}
		return response.ServerError(c, "Failed to get client")
	}
	return response.Success(c, fiber.Map{"phone": phone})
}
