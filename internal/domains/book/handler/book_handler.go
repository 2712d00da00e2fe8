package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"
	"book-catalog/internal/shared/response"
	"book-catalog/pkg/logger"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(service service.ServiceInterface) *BookHandler {
	return &BookHandler{service: service}
}

// ListBooks handles GET /books.
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list books", err)
		response.Error(c, http.StatusUnprocessableEntity, "could not load books")
		return
	}

	response.Data(c, http.StatusOK, books)
}

// SubmitBook handles POST /books: validate, enqueue, respond 201.
// Validation failures come back as 422 with per-field messages; queue
// failures as a generic 422 so broker details never leak to clients.
func (h *BookHandler) SubmitBook(c *gin.Context) {
	var req model.SubmitBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "malformed request body")
		return
	}

	validationErrs, err := h.service.Submit(c.Request.Context(), req)
	if len(validationErrs) > 0 {
		response.FieldErrors(c, validationErrs)
		return
	}
	if err != nil {
		if errors.Is(err, model.ErrPublishFailed) {
			response.Error(c, http.StatusUnprocessableEntity, model.ErrPublishFailed.Error())
			return
		}
		logger.Error("Failed to submit book", err)
		response.Error(c, http.StatusUnprocessableEntity, "could not process submission")
		return
	}

	response.Status(c, http.StatusCreated, "Sent!")
}
