package gateway

import (
	"errors"
	"testing"
	"time"

	"insurance_designer/internal/domain/entities"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsert(t *testing.T) {
	t.Run("id first then sorted columns", func(t *testing.T) {
		query, args, err := buildInsert(entities.ObjectCoverage, "cov-1", entities.Record{
			"premium":             10.5,
			"coverage_type":       "Liability",
			"insurance_policy_id": "pol-1",
		})
		require.NoError(t, err)

		assert.Equal(t, "INSERT INTO insurance_policy_coverage (id, coverage_type, insurance_policy_id, premium) VALUES ($1, $2, $3, $4)", query)
		assert.Equal(t, []interface{}{"cov-1", "Liability", "pol-1", 10.5}, args)
	})

	t.Run("explicit id is not duplicated", func(t *testing.T) {
		query, args, err := buildInsert(entities.ObjectAccount, "acc-1", entities.Record{"id": "acc-1", "name": "Acme"})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO account (id, name) VALUES ($1, $2)", query)
		assert.Len(t, args, 2)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := buildInsert("users; DROP TABLE product", "x", entities.Record{"name": "a"})
		assert.Error(t, err)
	})

	t.Run("invalid column name", func(t *testing.T) {
		_, _, err := buildInsert(entities.ObjectProduct, "x", entities.Record{"name) VALUES ('a'); --": "a"})
		assert.Error(t, err)
	})
}

func TestBuildFindOne(t *testing.T) {
	query, args, err := buildFindOne(entities.ObjectContact, entities.Record{"id": "C1"})
	require.NoError(t, err)
	assert.Contains(t, query, "SELECT * FROM contact WHERE id = $1")
	assert.Contains(t, query, "LIMIT")
	assert.Equal(t, "C1", args[0])

	_, _, err = buildFindOne(entities.ObjectContact, entities.Record{})
	assert.Error(t, err)
}

func TestNormalizeValue(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1250.75, normalizeValue("NUMERIC", []byte("1250.75")))
	assert.Equal(t, "abc", normalizeValue("NUMERIC", []byte("abc")))
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", normalizeValue("UUID", []byte("00000000-0000-0000-0000-000000000001")))
	assert.Equal(t, "2025-01-01", normalizeValue("DATE", day))
	assert.Equal(t, day, normalizeValue("TIMESTAMPTZ", day))
	assert.Equal(t, int64(30), normalizeValue("INT4", int64(30)))
	assert.Nil(t, normalizeValue("TEXT", nil))
}

func TestStoreRejection(t *testing.T) {
	t.Run("constraint violation", func(t *testing.T) {
		reasons, ok := storeRejection(&pq.Error{Code: "23505", Message: "duplicate key value", Detail: "Key (id)=(x) already exists."})
		require.True(t, ok)
		assert.Equal(t, []string{"duplicate key value (Key (id)=(x) already exists.)"}, reasons)
	})

	t.Run("data exception", func(t *testing.T) {
		reasons, ok := storeRejection(&pq.Error{Code: "22P02", Message: "invalid input syntax", Column: "term_start_date"})
		require.True(t, ok)
		assert.Equal(t, []string{"term_start_date: invalid input syntax"}, reasons)
	})

	t.Run("connection errors are not rejections", func(t *testing.T) {
		_, ok := storeRejection(&pq.Error{Code: "08006", Message: "connection failure"})
		assert.False(t, ok)

		_, ok = storeRejection(errors.New("dial tcp: refused"))
		assert.False(t, ok)
	})
}

func TestIsSelect(t *testing.T) {
	assert.True(t, isSelect("  select id FROM product"))
	assert.False(t, isSelect("DELETE FROM product"))
	assert.False(t, isSelect("SELECTED"))
}
