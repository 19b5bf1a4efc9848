package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shrimp-assist/internal/domain/entity"
	"shrimp-assist/internal/usecase"
)

// Handler is the delivery layer over the chat service. It maps business
// errors to HTTP status codes and mints session ids for new clients.
type Handler struct {
	chat *usecase.ChatService
}

func NewHandler(chat *usecase.ChatService) *Handler {
	return &Handler{chat: chat}
}

type predictRequest struct {
	SessionID string             `json:"session_id"`
	Sample    entity.WaterSample `json:"sample"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

func sessionOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func (h *Handler) HandlePredict(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	sid := sessionOrNew(req.SessionID)

	result, err := h.chat.Predict(c.Context(), sid, &req.Sample)
	if err != nil {
		var infErr *entity.InferenceError
		if errors.As(err, &infErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "prediction failed",
				"stage": infErr.Stage,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session_id": sid,
		"result":     result,
	})
}

func (h *Handler) HandleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	sid := sessionOrNew(req.SessionID)

	reply, err := h.chat.Chat(c.Context(), sid, req.Question)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyQuestion) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		// Reply generation failed; the client decides the user-visible
		// fallback text.
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "assistant unavailable"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session_id": sid,
		"reply":      reply,
	})
}

func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	sid := c.Query("session_id")
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id required"})
	}
	turns, err := h.chat.History(c.Context(), sid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session_id": sid,
		"history":    turns,
	})
}

func (h *Handler) HandleClearChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id required"})
	}
	if err := h.chat.Clear(c.Context(), req.SessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
