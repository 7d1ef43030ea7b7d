package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ObjectKind identifies a record type in the remote record store.
//
// The values double as table names for the relational gateway adapter.
type ObjectKind string

const (
	ObjectProduct      ObjectKind = "product"
	ObjectPolicy       ObjectKind = "insurance_policy"
	ObjectCoverage     ObjectKind = "insurance_policy_coverage"
	ObjectParticipant  ObjectKind = "insurance_policy_participant"
	ObjectPriceEntry   ObjectKind = "price_entry"
	ObjectAccount      ObjectKind = "account"
	ObjectContact      ObjectKind = "contact"
	ObjectPriceCatalog ObjectKind = "price_catalog"
)

// KnownObjectKinds lists every kind the service reads or writes.
var KnownObjectKinds = []ObjectKind{
	ObjectProduct,
	ObjectPolicy,
	ObjectCoverage,
	ObjectParticipant,
	ObjectPriceEntry,
	ObjectAccount,
	ObjectContact,
	ObjectPriceCatalog,
}

func (k ObjectKind) Valid() bool {
	for _, known := range KnownObjectKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Record is a generic row exchanged with the record store, keyed by field name.
type Record map[string]any

// CreateResult mirrors the record store's create response.
type CreateResult struct {
	ID      string   `json:"id"`
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

// QueryResult mirrors the record store's query response.
type QueryResult struct {
	Records   []Record `json:"records"`
	TotalSize int      `json:"totalSize"`
}

func (r Record) ID() string {
	return r.String("id")
}

func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.DateOnly)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Float reads a numeric field. Drivers hand numerics back in several shapes
// (float64, int64, decimal text), all of which are accepted.
func (r Record) Float(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		return f
	}
	return 0
}

func (r Record) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(t))
		return b
	}
	return false
}
