package interfaces

//go:generate mockgen -source=design_run_repository_interface.go -destination=mocks/mock_design_run_repository.go -package=mock_interfaces

import (
	"context"
	"insurance_designer/internal/domain/entities"
)

// IDesignRunRepository abstracts DynamoDB persistence for DesignRun.

type IDesignRunRepository interface {
	Create(ctx context.Context, run entities.DesignRun) (entities.DesignRun, error)
	GetByID(ctx context.Context, id string) (entities.DesignRun, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.DesignRun, error)
}
