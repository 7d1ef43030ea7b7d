package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurance_designer/internal/adapter/http/handlers/mocks"
	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const designBody = `{
	"policyName": "Test Auto",
	"policyType": "Auto",
	"accountId": "A1",
	"coverageOptions": [{"coverageType": "Liability", "coverageAmount": 50000, "premium": 500, "isOptional": false, "coverageDescription": "x"}],
	"pricingModel": {"totalPremiumAmount": 500, "premiumFrequency": "Monthly", "premiumCalculationMethod": "Fixed"},
	"policyTerms": {"termStartDate": "2025-01-01", "termEndDate": "2026-01-01", "termType": "Annual", "renewalChannel": "Automatic", "cancellationProcessType": "standard"}
}`

func newPolicyRouter(h *PolicyHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/policies/design", h.Design)
	r.POST("/v1/policies/clone", h.Clone)
	r.GET("/v1/policies", h.List)
	r.GET("/v1/policies/:id", h.Details)
	r.POST("/v1/operations", h.ExecuteOperation)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPolicyHandler_Design(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), mocks.NewMockIPolicyQueryUseCase(ctrl))

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/policies/design", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "INVALID_INPUT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{fmt.Errorf("%w: accountId is required", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_INPUT"},
			{fmt.Errorf("%w: account A1 does not exist", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
			{fmt.Errorf("%w: %w", usecase.ErrInternal, errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			design := mocks.NewMockIPolicyDesignUseCase(ctrl)
			h := NewPolicyHandler(design, mocks.NewMockIPolicyQueryUseCase(ctrl))
			design.EXPECT().Design(gomock.Any(), gomock.Any()).Return(entities.DesignResult{}, tc.err)

			w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/policies/design", designBody)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeError(t, w)
			if body["code"] != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, body["code"])
			}
			if tc.code == "INTERNAL_ERROR" && body["details"] == "" {
				t.Fatalf("expected details on internal errors")
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		design := mocks.NewMockIPolicyDesignUseCase(ctrl)
		h := NewPolicyHandler(design, mocks.NewMockIPolicyQueryUseCase(ctrl))

		design.EXPECT().Design(gomock.Any(), gomock.AssignableToTypeOf(entities.DesignRequest{})).DoAndReturn(
			func(_ interface{}, req entities.DesignRequest) (entities.DesignResult, error) {
				if req.PolicyType != entities.PolicyTypeAuto || len(req.CoverageOptions) != 1 || req.PolicyTerms == nil {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.DesignResult{InsurancePolicyID: "pol-1", ProductID: "prod-1", CoverageCount: 1}, nil
			},
		)

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/policies/design", designBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["insurancePolicyId"] != "pol-1" || body["coverageCount"] != 1.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPolicyHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), mocks.NewMockIPolicyQueryUseCase(ctrl))

		w := doJSON(newPolicyRouter(h), http.MethodGet, "/v1/policies?limit=ten", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPolicyQueryUseCase(ctrl)
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), query)

		query.EXPECT().List(gomock.Any(), "Home", 5).Return(entities.PolicyList{
			Summary: entities.PolicyListSummary{ByStatus: map[entities.PolicyStatus]int{entities.PolicyStatusInForce: 0}},
		}, nil)

		w := doJSON(newPolicyRouter(h), http.MethodGet, "/v1/policies?policyType=Home&limit=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"averagePremium":null`)) {
			t.Fatalf("expected null average, got %s", w.Body.String())
		}
	})
}

func TestPolicyHandler_Details(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	query := mocks.NewMockIPolicyQueryUseCase(ctrl)
	h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), query)

	query.EXPECT().Details(gomock.Any(), "pol-404").Return(entities.PolicyDetails{}, fmt.Errorf("%w: policy pol-404 does not exist", usecase.ErrNotFound))
	query.EXPECT().Details(gomock.Any(), "pol-1").Return(entities.PolicyDetails{Policy: entities.Record{"id": "pol-1"}}, nil)

	r := newPolicyRouter(h)
	if w := doJSON(r, http.MethodGet, "/v1/policies/pol-404", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/policies/pol-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPolicyHandler_CloneAndUnknownOperationsShareShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	design := mocks.NewMockIPolicyDesignUseCase(ctrl)
	h := NewPolicyHandler(design, mocks.NewMockIPolicyQueryUseCase(ctrl))
	design.EXPECT().Clone(gomock.Any(), gomock.Any()).Times(2).Return(entities.DesignResult{}, usecase.UnsupportedOperation("clone"))

	r := newPolicyRouter(h)
	responses := []*httptest.ResponseRecorder{
		doJSON(r, http.MethodPost, "/v1/policies/clone", `{"policyId":"pol-1"}`),
		doJSON(r, http.MethodPost, "/v1/operations", `{"operation":"clone","params":{"policyId":"pol-1"}}`),
		doJSON(r, http.MethodPost, "/v1/operations", `{"operation":"archive"}`),
	}
	for i, w := range responses {
		if w.Code != http.StatusBadRequest {
			t.Fatalf("response %d: expected 400, got %d", i, w.Code)
		}
		body := decodeError(t, w)
		if body["code"] != "UNSUPPORTED_OPERATION" {
			t.Fatalf("response %d: unexpected body %v", i, body)
		}
		if _, ok := body["details"]; ok {
			t.Fatalf("response %d: unexpected details", i)
		}
	}
}

func TestPolicyHandler_CloneIgnoresBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	design := mocks.NewMockIPolicyDesignUseCase(ctrl)
	h := NewPolicyHandler(design, mocks.NewMockIPolicyQueryUseCase(ctrl))
	design.EXPECT().Clone(gomock.Any(), "").Times(2).Return(entities.DesignResult{}, usecase.UnsupportedOperation("clone"))

	r := newPolicyRouter(h)
	for _, w := range []*httptest.ResponseRecorder{
		doJSON(r, http.MethodPost, "/v1/policies/clone", "not json"),
		doJSON(r, http.MethodPost, "/v1/operations", `{"operation":"clone","params":["pol-1"]}`),
	} {
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "UNSUPPORTED_OPERATION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	}
}

func TestPolicyHandler_ExecuteOperation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), mocks.NewMockIPolicyQueryUseCase(ctrl))

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/operations", `{"params":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dispatches design", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		design := mocks.NewMockIPolicyDesignUseCase(ctrl)
		h := NewPolicyHandler(design, mocks.NewMockIPolicyQueryUseCase(ctrl))
		design.EXPECT().Design(gomock.Any(), gomock.Any()).Return(entities.DesignResult{InsurancePolicyID: "pol-1"}, nil)

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/operations", `{"operation":"design","params":`+designBody+`}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("dispatches list with default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPolicyQueryUseCase(ctrl)
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), query)
		query.EXPECT().List(gomock.Any(), "", 0).Return(entities.PolicyList{}, nil)

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/operations", `{"operation":"list"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("dispatches details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPolicyQueryUseCase(ctrl)
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), query)
		query.EXPECT().Details(gomock.Any(), "pol-1").Return(entities.PolicyDetails{Policy: entities.Record{"id": "pol-1"}}, nil)

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/operations", `{"operation":"Details","params":{"policyId":"pol-1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPolicyHandler(mocks.NewMockIPolicyDesignUseCase(ctrl), mocks.NewMockIPolicyQueryUseCase(ctrl))

		w := doJSON(newPolicyRouter(h), http.MethodPost, "/v1/operations", `{"operation":"list","params":{"limit":"many"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
