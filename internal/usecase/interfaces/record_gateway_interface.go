package interfaces

//go:generate mockgen -source=record_gateway_interface.go -destination=mocks/mock_record_gateway.go -package=mock_interfaces

import (
	"context"
	"insurance_designer/internal/domain/entities"
)

// IRecordGateway abstracts the remote record store (generic object CRUD plus
// a query language).
//
// Contract:
//   - Create reports store-side rejections through CreateResult.Success/Errors;
//     the returned error is reserved for transport or unexpected failures.
//   - FindOne returns (nil, nil) when no record matches the predicate.
//   - Query executes an already-escaped query string.

type IRecordGateway interface {
	Create(ctx context.Context, objectType entities.ObjectKind, fields entities.Record) (entities.CreateResult, error)
	FindOne(ctx context.Context, objectType entities.ObjectKind, predicate entities.Record) (entities.Record, error)
	Query(ctx context.Context, query string) (entities.QueryResult, error)
}
