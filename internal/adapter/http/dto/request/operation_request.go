package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	OperationDesign  = "design"
	OperationList    = "list"
	OperationDetails = "details"
	OperationClone   = "clone"
)

// OperationRequest is the body of POST /v1/operations.
type OperationRequest struct {
	Operation string          `json:"operation" binding:"required" example:"design"`
	Params    json.RawMessage `json:"params" swaggertype:"object"`
}

func (r OperationRequest) Name() string {
	return strings.ToLower(strings.TrimSpace(r.Operation))
}

// DecodeParams unmarshals params into dst; absent or null params leave dst untouched.
func (r OperationRequest) DecodeParams(dst any) error {
	raw := bytes.TrimSpace(r.Params)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

type ListPoliciesParams struct {
	PolicyType string `json:"policyType"`
	Limit      int    `json:"limit"`
}

type PolicyIDParams struct {
	PolicyID string `json:"policyId"`
}
