package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-seed-service/internal/usecase/fruit"
	apperrors "user-seed-service/pkg/errors"
)

// FruitHandler handles HTTP requests for fruit operations
type FruitHandler struct {
	uc  fruit.Usecase
	log *zap.Logger
}

// NewFruitHandler creates a new FruitHandler instance
func NewFruitHandler(uc fruit.Usecase, log *zap.Logger) *FruitHandler {
	return &FruitHandler{
		uc:  uc,
		log: log,
	}
}

// CreateFruitRequest represents the HTTP request body for creating a fruit
type CreateFruitRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,max=50"`
}

// UpdateFruitRequest represents the HTTP request body for updating a fruit
type UpdateFruitRequest struct {
	Name  string `json:"name" binding:"omitempty,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,max=50"`
}

// FruitResponse represents the HTTP response for fruit data
type FruitResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateFruit handles POST /v1/fruits
func (h *FruitHandler) CreateFruit(c *gin.Context) {
	var req CreateFruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create fruit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: err.Error()})
		return
	}

	resp, err := h.uc.CreateFruit(c.Request.Context(), fruit.CreateFruitRequest{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": resp.ID})
}

// GetFruit handles GET /v1/fruits/:id
func (h *FruitHandler) GetFruit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be an integer"})
		return
	}

	f, err := h.uc.GetFruit(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, FruitResponse{ID: f.ID, Name: f.Name, Color: f.Color})
}

// UpdateFruit handles PUT /v1/fruits/:id
func (h *FruitHandler) UpdateFruit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be an integer"})
		return
	}

	var req UpdateFruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update fruit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: err.Error()})
		return
	}

	resp, err := h.uc.UpdateFruit(c.Request.Context(), fruit.UpdateFruitRequest{
		ID:    id,
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": resp.ID})
}

// DeleteFruit handles DELETE /v1/fruits/:id
func (h *FruitHandler) DeleteFruit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_id", Message: "id must be an integer"})
		return
	}

	if err := h.uc.DeleteFruit(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFruits handles GET /v1/fruits
func (h *FruitHandler) ListFruits(c *gin.Context) {
	fruits, err := h.uc.ListFruits(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]FruitResponse, len(fruits))
	for i, f := range fruits {
		out[i] = FruitResponse{ID: f.ID, Name: f.Name, Color: f.Color}
	}

	c.JSON(http.StatusOK, gin.H{"fruits": out})
}

// handleError maps usecase errors to HTTP responses.
func (h *FruitHandler) handleError(c *gin.Context, err error) {
	h.log.Warn("fruit request failed", zap.Error(err))

	var statuser apperrors.HTTPStatuser
	if errors.As(err, &statuser) {
		c.JSON(statuser.HTTPStatus(), ErrorResponse{Error: "request_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: err.Error()})
}
