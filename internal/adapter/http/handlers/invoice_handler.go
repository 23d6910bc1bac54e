package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "editora_prisma/internal/adapter/http/dto/response"
	"editora_prisma/internal/usecase"
	"editora_prisma/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices and their payments.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoicesByOrder(c *gin.Context) {
	invoices, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// CollectInvoicePayment charges one invoice through the payment gateway.
// The body is forwarded to the provider; amount and reference come from the
// stored invoice, not from the caller.
func (h *InvoiceHandler) CollectInvoicePayment(c *gin.Context) {
	invoiceID := c.Param("id")
	log.Printf("[invoice][handler] collect start invoice_id=%s", invoiceID)

	mpPayload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[invoice][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	invoice, err := h.usecase.CollectPayment(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		log.Printf("[invoice][handler] collect failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] collect success invoice_id=%s payment_id=%s", invoiceID, invoice.PaymentID)

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
