package handlers

import (
	"errors"
	"net/http"

	response "insurance_designer/internal/adapter/http/dto/response"
	"insurance_designer/internal/usecase"
	"insurance_designer/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DesignRunHandler exposes the audit trail of design operations.

type DesignRunHandler struct {
	usecase usecase.IDesignRunUseCase
}

func NewDesignRunHandler(uc usecase.IDesignRunUseCase) *DesignRunHandler {
	return &DesignRunHandler{usecase: uc}
}

// GetByID godoc
// @Summary      Get a design run
// @Tags         design-runs
// @Produce      json
// @Param        id   path      string  true  "Design run id"
// @Success      200  {object}  response.DesignRunResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /design-runs/{id} [get]
func (h *DesignRunHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	run, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("design_run_id", id).Msg("[design-run][handler] get failed")
		appErr := mapDesignRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDesignRun(run))
}

// ListByPolicyID godoc
// @Summary      List design runs of a policy
// @Tags         design-runs
// @Produce      json
// @Param        id   path      string  true  "Policy id"
// @Success      200  {array}   response.DesignRunResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /policies/{id}/design-runs [get]
func (h *DesignRunHandler) ListByPolicyID(c *gin.Context) {
	policyID := c.Param("id")
	runs, err := h.usecase.ListByPolicyID(c.Request.Context(), policyID)
	if err != nil {
		log.Warn().Err(err).Str("policy_id", policyID).Msg("[design-run][handler] list failed")
		appErr := mapDesignRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDesignRuns(runs))
}

func mapDesignRunError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDesignRunID), errors.Is(err, usecase.ErrInvalidPolicyID):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDesignRunNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Design run not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignRunsDisabled):
		return pkg.NewDomainErrorSimple("DESIGN_RUNS_DISABLED", "Design run audit is disabled", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
