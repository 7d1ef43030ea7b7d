package usecase

//go:generate mockgen -source=design_run_usecase.go -destination=../adapter/http/handlers/mocks/mock_design_run_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"insurance_designer/internal/domain/entities"
	"insurance_designer/internal/usecase/interfaces"
)

var (
	ErrDesignRunNotFound  = errors.New("design run not found")
	ErrInvalidDesignRunID = errors.New("invalid design run id")
	ErrInvalidPolicyID    = errors.New("invalid policy id")
	ErrDesignRunsDisabled = errors.New("design run audit is disabled")
)

// IDesignRunUseCase exposes the audit trail written after successful designs.

type IDesignRunUseCase interface {
	GetByID(ctx context.Context, id string) (entities.DesignRun, error)
	ListByPolicyID(ctx context.Context, policyID string) ([]entities.DesignRun, error)
}

type DesignRunUseCase struct {
	repo interfaces.IDesignRunRepository
}

var _ IDesignRunUseCase = (*DesignRunUseCase)(nil)

// NewDesignRunUseCase accepts a nil repository when the audit trail is disabled.
func NewDesignRunUseCase(repo interfaces.IDesignRunRepository) *DesignRunUseCase {
	return &DesignRunUseCase{repo: repo}
}

func (u *DesignRunUseCase) GetByID(ctx context.Context, id string) (entities.DesignRun, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignRun{}, ErrInvalidDesignRunID
	}
	if u.repo == nil {
		return entities.DesignRun{}, ErrDesignRunsDisabled
	}

	run, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignRun{}, err
	}
	if run.ID == "" {
		return entities.DesignRun{}, ErrDesignRunNotFound
	}
	return run, nil
}

func (u *DesignRunUseCase) ListByPolicyID(ctx context.Context, policyID string) ([]entities.DesignRun, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return nil, ErrInvalidPolicyID
	}
	if u.repo == nil {
		return nil, ErrDesignRunsDisabled
	}
	return u.repo.ListByPolicyID(ctx, policyID)
}
