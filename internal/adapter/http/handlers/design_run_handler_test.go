package handlers

import (
	"net/http"
	"testing"

	"insurance_designer/internal/adapter/http/handlers/mocks"
	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDesignRunRouter(h *DesignRunHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/design-runs/:id", h.GetByID)
	r.GET("/v1/policies/:id/design-runs", h.ListByPolicyID)
	return r
}

func TestDesignRunHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		run    entities.DesignRun
		err    error
		status int
	}{
		{"found", entities.DesignRun{ID: "run-1", PolicyID: "pol-1"}, nil, http.StatusOK},
		{"not found", entities.DesignRun{}, usecase.ErrDesignRunNotFound, http.StatusNotFound},
		{"disabled", entities.DesignRun{}, usecase.ErrDesignRunsDisabled, http.StatusServiceUnavailable},
		{"invalid id", entities.DesignRun{}, usecase.ErrInvalidDesignRunID, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIDesignRunUseCase(ctrl)
			uc.EXPECT().GetByID(gomock.Any(), "run-1").Return(tc.run, tc.err)

			w := doJSON(newDesignRunRouter(NewDesignRunHandler(uc)), http.MethodGet, "/v1/design-runs/run-1", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestDesignRunHandler_ListByPolicyID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDesignRunUseCase(ctrl)
	uc.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return([]entities.DesignRun{{ID: "run-1"}}, nil)

	w := doJSON(newDesignRunRouter(NewDesignRunHandler(uc)), http.MethodGet, "/v1/policies/pol-1/design-runs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String()[0] != '[' {
		t.Fatalf("expected a json array, got %s", w.Body.String())
	}
}
