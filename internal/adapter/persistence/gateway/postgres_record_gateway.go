package gateway

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase/interfaces"
	"insurance_designer/pkg/metrics"
	"insurance_designer/pkg/tracing"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var columnName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var errReadOnlyQuery = errors.New("only SELECT statements are accepted")

// PostgresRecordGateway implements the record store port over PostgreSQL.
//
// Object kinds map one-to-one to tables. Rejections by the store itself
// (constraint and data errors) come back as CreateResult{Success: false}
// rather than as an error, the same way a remote record API reports them.
type PostgresRecordGateway struct {
	db *sqlx.DB
}

var _ interfaces.IRecordGateway = (*PostgresRecordGateway)(nil)

func NewPostgresRecordGateway(db *sqlx.DB) *PostgresRecordGateway {
	return &PostgresRecordGateway{db: db}
}

func (g *PostgresRecordGateway) Create(ctx context.Context, kind entities.ObjectKind, fields entities.Record) (entities.CreateResult, error) {
	ctx, span := tracing.StartSpan(ctx, "gateway.PostgresRecordGateway.Create")
	defer span.End()
	defer observe("create", kind, time.Now())

	id := fields.ID()
	if id == "" {
		id = uuid.NewString()
	}
	query, args, err := buildInsert(kind, id, fields)
	if err != nil {
		return entities.CreateResult{}, err
	}

	if _, err := g.db.ExecContext(ctx, query, args...); err != nil {
		if reasons, rejected := storeRejection(err); rejected {
			log.Warn().Err(err).Str("object_kind", string(kind)).Msg("[gateway][postgres] create rejected")
			return entities.CreateResult{Success: false, Errors: reasons}, nil
		}
		return entities.CreateResult{}, fmt.Errorf("create %s: %w", kind, err)
	}
	return entities.CreateResult{ID: id, Success: true}, nil
}

func (g *PostgresRecordGateway) FindOne(ctx context.Context, kind entities.ObjectKind, predicate entities.Record) (entities.Record, error) {
	ctx, span := tracing.StartSpan(ctx, "gateway.PostgresRecordGateway.FindOne")
	defer span.End()
	defer observe("find_one", kind, time.Now())

	query, args, err := buildFindOne(kind, predicate)
	if err != nil {
		return nil, err
	}
	rows, err := g.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (g *PostgresRecordGateway) Query(ctx context.Context, query string) (entities.QueryResult, error) {
	ctx, span := tracing.StartSpan(ctx, "gateway.PostgresRecordGateway.Query")
	defer span.End()
	defer observe("query", "", time.Now())

	if !isSelect(query) {
		return entities.QueryResult{}, errReadOnlyQuery
	}
	rows, err := g.db.QueryxContext(ctx, query)
	if err != nil {
		return entities.QueryResult{}, fmt.Errorf("query: %w", err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return entities.QueryResult{}, fmt.Errorf("query: %w", err)
	}
	return entities.QueryResult{Records: records, TotalSize: len(records)}, nil
}

func buildInsert(kind entities.ObjectKind, id string, fields entities.Record) (string, []interface{}, error) {
	if !kind.Valid() {
		return "", nil, fmt.Errorf("unknown object kind %q", kind)
	}
	cols, err := sortedColumns(fields)
	if err != nil {
		return "", nil, err
	}

	insertCols := []string{"id"}
	values := []interface{}{id}
	for _, c := range cols {
		if c == "id" {
			continue
		}
		insertCols = append(insertCols, c)
		values = append(values, fields[c])
	}

	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto(string(kind))
	ib.Cols(insertCols...)
	ib.Values(values...)
	query, args := ib.Build()
	return query, args, nil
}

func buildFindOne(kind entities.ObjectKind, predicate entities.Record) (string, []interface{}, error) {
	if !kind.Valid() {
		return "", nil, fmt.Errorf("unknown object kind %q", kind)
	}
	if len(predicate) == 0 {
		return "", nil, fmt.Errorf("find %s: empty predicate", kind)
	}
	cols, err := sortedColumns(predicate)
	if err != nil {
		return "", nil, err
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From(string(kind))
	for _, c := range cols {
		sb.Where(sb.Equal(c, predicate[c]))
	}
	sb.Limit(1)
	query, args := sb.Build()
	return query, args, nil
}

func sortedColumns(fields entities.Record) ([]string, error) {
	cols := make([]string, 0, len(fields))
	for k := range fields {
		if !columnName.MatchString(k) {
			return nil, fmt.Errorf("invalid field name %q", k)
		}
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols, nil
}

func scanRecords(rows *sqlx.Rows) ([]entities.Record, error) {
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	typeNames := make(map[string]string, len(types))
	for _, t := range types {
		typeNames[t.Name()] = strings.ToUpper(t.DatabaseTypeName())
	}

	records := make([]entities.Record, 0)
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		rec := make(entities.Record, len(row))
		for k, v := range row {
			rec[k] = normalizeValue(typeNames[k], v)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// normalizeValue turns driver values into JSON-friendly ones: numerics become
// float64, dates become YYYY-MM-DD strings and other byte slices become strings.
func normalizeValue(typeName string, v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		switch typeName {
		case "NUMERIC", "DECIMAL", "FLOAT4", "FLOAT8", "MONEY":
			if f, err := strconv.ParseFloat(string(t), 64); err == nil {
				return f
			}
		}
		return string(t)
	case time.Time:
		if typeName == "DATE" {
			return t.Format(time.DateOnly)
		}
		return t.UTC()
	}
	return v
}

// storeRejection reports integrity constraint (class 23) and data exception
// (class 22) errors as field-level rejections.
func storeRejection(err error) ([]string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil, false
	}
	switch pqErr.Code.Class() {
	case "22", "23":
	default:
		return nil, false
	}
	reason := pqErr.Message
	if pqErr.Column != "" {
		reason = pqErr.Column + ": " + reason
	}
	if pqErr.Detail != "" {
		reason += " (" + pqErr.Detail + ")"
	}
	return []string{reason}, true
}

func isSelect(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(q, "SELECT ") || strings.HasPrefix(q, "SELECT\n")
}

func observe(operation string, kind entities.ObjectKind, start time.Time) {
	label := string(kind)
	if label == "" {
		label = "any"
	}
	metrics.RecordGatewayDuration.WithLabelValues(operation, label).Observe(time.Since(start).Seconds())
}
