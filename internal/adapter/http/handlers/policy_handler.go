package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "insurance_designer/internal/adapter/http/dto/request"
	response "insurance_designer/internal/adapter/http/dto/response"
	"insurance_designer/internal/usecase"
	"insurance_designer/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidDesignPayload    = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid policy design payload", http.StatusBadRequest)
	errInvalidOperationPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid operation payload", http.StatusBadRequest)
)

// PolicyHandler handles HTTP requests for designing and reading insurance policies.

type PolicyHandler struct {
	design usecase.IPolicyDesignUseCase
	query  usecase.IPolicyQueryUseCase
}

func NewPolicyHandler(design usecase.IPolicyDesignUseCase, query usecase.IPolicyQueryUseCase) *PolicyHandler {
	return &PolicyHandler{design: design, query: query}
}

// Design godoc
// @Summary      Design an insurance policy
// @Description  Creates the product, policy, coverages, participants and price entry for one design request
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        request  body      request.PolicyDesignRequest  true  "Design request"
// @Success      201      {object}  response.PolicyDesignResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /policies/design [post]
func (h *PolicyHandler) Design(c *gin.Context) {
	var payload request.PolicyDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Msg("[policy][handler] invalid design payload")
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}
	h.runDesign(c, payload)
}

func (h *PolicyHandler) runDesign(c *gin.Context, payload request.PolicyDesignRequest) {
	result, err := h.design.Design(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writePolicyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDesignResult(result))
}

// List godoc
// @Summary      List insurance policies
// @Tags         policies
// @Produce      json
// @Param        policyType  query     string  false  "Exact policy type"
// @Param        limit       query     int     false  "Maximum number of records (default 50)"
// @Success      200         {object}  response.PolicyListResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      500         {object}  pkg.HTTPError
// @Router       /policies [get]
func (h *PolicyHandler) List(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "limit must be an integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}
	h.runList(c, c.Query("policyType"), limit)
}

func (h *PolicyHandler) runList(c *gin.Context, policyType string, limit int) {
	list, err := h.query.List(c.Request.Context(), policyType, limit)
	if err != nil {
		writePolicyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicyList(list))
}

// Details godoc
// @Summary      Get an insurance policy with its coverages and participants
// @Tags         policies
// @Produce      json
// @Param        id   path      string  true  "Policy id"
// @Success      200  {object}  response.PolicyDetailsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /policies/{id} [get]
func (h *PolicyHandler) Details(c *gin.Context) {
	h.runDetails(c, c.Param("id"))
}

func (h *PolicyHandler) runDetails(c *gin.Context, policyID string) {
	details, err := h.query.Details(c.Request.Context(), policyID)
	if err != nil {
		writePolicyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicyDetails(details))
}

// Clone godoc
// @Summary      Clone an insurance policy (not supported)
// @Tags         policies
// @Produce      json
// @Failure      400  {object}  pkg.HTTPError
// @Router       /policies/clone [post]
func (h *PolicyHandler) Clone(c *gin.Context) {
	h.runClone(c)
}

// runClone does not read the request: cloning is unsupported for every policy.
func (h *PolicyHandler) runClone(c *gin.Context) {
	_, err := h.design.Clone(c.Request.Context(), "")
	writePolicyError(c, err)
}

// ExecuteOperation godoc
// @Summary      Run a named operation
// @Description  Dispatches design, list and details by name; clone and unknown names are rejected
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        request  body      request.OperationRequest  true  "Operation"
// @Success      200      {object}  response.PolicyListResponse
// @Success      201      {object}  response.PolicyDesignResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /operations [post]
func (h *PolicyHandler) ExecuteOperation(c *gin.Context) {
	var op request.OperationRequest
	if err := c.ShouldBindJSON(&op); err != nil {
		c.JSON(errInvalidOperationPayload.HTTPStatus, errInvalidOperationPayload.ToHTTPError())
		return
	}
	log.Info().Str("operation", op.Name()).Msg("[operation][handler] dispatch")

	switch op.Name() {
	case request.OperationDesign:
		var payload request.PolicyDesignRequest
		if err := op.DecodeParams(&payload); err != nil {
			c.JSON(errInvalidOperationPayload.HTTPStatus, errInvalidOperationPayload.ToHTTPError())
			return
		}
		h.runDesign(c, payload)
	case request.OperationList:
		var params request.ListPoliciesParams
		if err := op.DecodeParams(&params); err != nil {
			c.JSON(errInvalidOperationPayload.HTTPStatus, errInvalidOperationPayload.ToHTTPError())
			return
		}
		h.runList(c, params.PolicyType, params.Limit)
	case request.OperationDetails:
		var params request.PolicyIDParams
		if err := op.DecodeParams(&params); err != nil {
			c.JSON(errInvalidOperationPayload.HTTPStatus, errInvalidOperationPayload.ToHTTPError())
			return
		}
		h.runDetails(c, params.PolicyID)
	case request.OperationClone:
		h.runClone(c)
	default:
		writePolicyError(c, usecase.UnsupportedOperation(op.Operation))
	}
}

func writePolicyError(c *gin.Context, err error) {
	appErr := mapPolicyError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("[policy][handler] request failed")
	} else {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("[policy][handler] request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPolicyError(err error) *pkg.AppError {
	switch {
	case err == nil:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("operation returned no result"), http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUnsupportedOperation):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_OPERATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
