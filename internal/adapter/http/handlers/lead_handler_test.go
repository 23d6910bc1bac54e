package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"editora_prisma/internal/adapter/http/handlers/mocks"
	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrInvalidLeadName)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"name":"   "}`))
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
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Name != "Maria Lima" || l.Source != entities.LeadSourceSite {
					t.Fatalf("unexpected entity from payload: %+v", l)
				}
				l.ID = "l-1"
				l.Stage = entities.LeadStageNovo
				return l, nil
			},
		)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		payload := `{"name":"Maria Lima","email":"maria@example.com","source":"site"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ID    string `json:"id"`
			Stage string `json:"stage"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "l-1" || body.Stage != "novo" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/l-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestLeadHandler_UpdateLeadStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/v1/leads/:id/stage", h.UpdateLeadStage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/l-1/stage", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown stage maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().UpdateStage(gomock.Any(), "l-1", entities.LeadStage("descartado")).
			Return(entities.Lead{}, usecase.ErrInvalidLeadStage)

		r := gin.New()
		r.PATCH("/v1/leads/:id/stage", h.UpdateLeadStage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/l-1/stage", bytes.NewBufferString(`{"stage":"descartado"}`))
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
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().UpdateStage(gomock.Any(), "l-1", entities.LeadStageContatado).
			Return(entities.Lead{ID: "l-1", Stage: entities.LeadStageContatado}, nil)

		r := gin.New()
		r.PATCH("/v1/leads/:id/stage", h.UpdateLeadStage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/l-1/stage", bytes.NewBufferString(`{"stage":"contatado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
