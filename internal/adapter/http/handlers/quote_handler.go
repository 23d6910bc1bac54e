package handlers

import (
	"errors"
	"log"
	"net/http"

	request "editora_prisma/internal/adapter/http/dto/request"
	response "editora_prisma/internal/adapter/http/dto/response"
	"editora_prisma/internal/usecase"
	"editora_prisma/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes (orçamentos).
//
// Approve and GeneratePDF are front-end callable endpoints and answer with
// the short error codes the front end matches on (unauthenticated, not-found,
// internal); the remaining CRUD endpoints use the regular error envelope.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	pdf     usecase.IQuotePDFUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, pdf usecase.IQuotePDFUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, pdf: pdf}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	quote, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	quote, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ApproveQuote marks a quote as signed. The approval cascade itself runs in
// the background off the resulting status change.
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[quote][handler] approve start quote_id=%s", id)

	_, err := h.usecase.Approve(c.Request.Context(), id)
	if err != nil {
		appErr := mapCallableError(err)
		log.Printf("[quote][handler] approve failed quote_id=%s err=%v", id, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] approve success quote_id=%s", id)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GenerateQuotePDF renders the quote, stores it and returns a signed URL.
func (h *QuoteHandler) GenerateQuotePDF(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[quote][handler] pdf start quote_id=%s", id)

	url, err := h.pdf.Generate(c.Request.Context(), id)
	if err != nil {
		appErr := mapCallableError(err)
		log.Printf("[quote][handler] pdf failed quote_id=%s err=%v", id, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] pdf success quote_id=%s", id)

	c.JSON(http.StatusOK, gin.H{"success": true, "pdf_url": url})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotTransition):
		return pkg.NewDomainErrorSimple("QUOTE_INVALID_TRANSITION", "Quote is not in the expected status for this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapCallableError keeps callable responses down to the three short codes the
// front end understands. Anything unexpected is hidden behind "internal".
func mapCallableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("not-found", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotTransition):
		return pkg.NewDomainErrorSimple("failed-precondition", "Orçamento não está em um estado aprovável", http.StatusConflict)
	default:
		return pkg.NewDomainError("internal", "Erro interno", err, http.StatusInternalServerError)
	}
}
