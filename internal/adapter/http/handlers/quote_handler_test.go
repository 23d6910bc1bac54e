package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"editora_prisma/internal/adapter/http/handlers/mocks"
	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return body.Code, body.Message
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code, _ := decodeErrorBody(t, w); code != "INVALID_QUOTE_INPUT" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("invalid items map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidQuoteItems)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		payload := `{"items":[{"description":"Capa","quantity":0,"unit_price":10}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if len(q.Items) != 1 || q.Items[0].Description != "Diagramação" {
					t.Fatalf("unexpected entity from payload: %+v", q)
				}
				q.ID = "q-1"
				q.Status = entities.QuoteStatusRascunho
				return q, nil
			},
		)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		payload := `{"items":[{"description":"Diagramação","quantity":2,"unit_price":150}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "q-1" || body.Status != "rascunho" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code, _ := decodeErrorBody(t, w); code != "QUOTE_NOT_FOUND" {
			t.Fatalf("unexpected code %q", code)
		}
	})
}

func TestQuoteHandler_SendQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wrong status maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Send(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotTransition)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code, _ := decodeErrorBody(t, w); code != "QUOTE_INVALID_TRANSITION" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Send(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusEnviado}, nil)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/send", h.SendQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ApproveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Approve(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAssinado}, nil)

		r := gin.New()
		r.POST("/v1/quotes/:id/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["success"] != true {
			t.Fatalf("expected success true, got %v", body)
		}
	})

	t.Run("not found uses short code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Approve(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.POST("/v1/quotes/:id/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		code, message := decodeErrorBody(t, w)
		if code != "not-found" {
			t.Fatalf("unexpected code %q", code)
		}
		if message != "Orçamento não encontrado" {
			t.Fatalf("unexpected message %q", message)
		}
	})

	t.Run("wrong status uses failed-precondition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Approve(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotTransition)

		r := gin.New()
		r.POST("/v1/quotes/:id/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code, _ := decodeErrorBody(t, w); code != "failed-precondition" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("unexpected error hides behind internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().Approve(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("dynamo down"))

		r := gin.New()
		r.POST("/v1/quotes/:id/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		code, message := decodeErrorBody(t, w)
		if code != "internal" || message != "Erro interno" {
			t.Fatalf("unexpected body code=%q message=%q", code, message)
		}
	})
}

func TestQuoteHandler_GenerateQuotePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns signed url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		pdf := mocks.NewMockIQuotePDFUseCase(ctrl)
		h := NewQuoteHandler(uc, pdf)

		pdf.EXPECT().Generate(gomock.Any(), "q-1").Return("https://signed/quotes/q-1.pdf", nil)

		r := gin.New()
		r.POST("/v1/quotes/:id/pdf", h.GenerateQuotePDF)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["success"] != true || body["pdf_url"] != "https://signed/quotes/q-1.pdf" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found uses short code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		pdf := mocks.NewMockIQuotePDFUseCase(ctrl)
		h := NewQuoteHandler(uc, pdf)

		pdf.EXPECT().Generate(gomock.Any(), "q-1").Return("", usecase.ErrQuoteNotFound)

		r := gin.New()
		r.POST("/v1/quotes/:id/pdf", h.GenerateQuotePDF)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code, _ := decodeErrorBody(t, w); code != "not-found" {
			t.Fatalf("unexpected code %q", code)
		}
	})
}
