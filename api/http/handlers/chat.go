package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/productbot/api/http/presenter"
	"github.com/artem13815/productbot/pkg/chatbot"
)

type ChatHandler struct {
	uc       chatbot.UseCase
	validate *validator.Validate
}

func NewChatHandler(uc chatbot.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc, validate: validator.New()}
}

type ChatRequest struct {
	Message string `json:"message" validate:"required" example:"Tell me more about Kiwi"`
}

type ChatResponse struct {
	Response string `json:"response" example:"Kiwi is a nutrient-rich fruit priced at $2.49, rated 4.9 stars."`
}

// Chat answers a product question with the LLM grounded on catalog data.
// @Summary Chat with the product assistant
// @Description Handles queries like "Tell me about Kiwi", "What's the price of mango?", "Show me electronics" or "Products with ratings above 4".
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body ChatRequest true "User message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := h.validate.Struct(req); err != nil || strings.TrimSpace(req.Message) == "" {
		return presenter.Error(c, http.StatusBadRequest, "Message cannot be empty")
	}

	answer, err := h.uc.Process(c.UserContext(), req.Message)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError,
			"An error occurred while processing your request: "+err.Error())
	}
	return presenter.JSON(c, http.StatusOK, ChatResponse{Response: answer})
}
