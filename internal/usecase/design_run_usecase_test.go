package usecase

import (
	"context"
	"errors"
	"testing"

	"insurance_designer/internal/domain/entities"
	mock_interfaces "insurance_designer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDesignRunUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDesignRunUseCase(nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidDesignRunID) {
			t.Fatalf("expected ErrInvalidDesignRunID, got %v", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		uc := NewDesignRunUseCase(nil)
		if _, err := uc.GetByID(context.Background(), "run-1"); !errors.Is(err, ErrDesignRunsDisabled) {
			t.Fatalf("expected ErrDesignRunsDisabled, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDesignRunRepository(ctrl)
		uc := NewDesignRunUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.DesignRun{}, nil)

		if _, err := uc.GetByID(context.Background(), "run-1"); !errors.Is(err, ErrDesignRunNotFound) {
			t.Fatalf("expected ErrDesignRunNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDesignRunRepository(ctrl)
		uc := NewDesignRunUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.DesignRun{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "run-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDesignRunRepository(ctrl)
		uc := NewDesignRunUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.DesignRun{ID: "run-1", PolicyID: "pol-1"}, nil)

		run, err := uc.GetByID(context.Background(), " run-1 ")
		if err != nil || run.PolicyID != "pol-1" {
			t.Fatalf("unexpected result: %+v, %v", run, err)
		}
	})
}

func TestDesignRunUseCase_ListByPolicyID(t *testing.T) {
	t.Run("invalid policy id", func(t *testing.T) {
		uc := NewDesignRunUseCase(nil)
		if _, err := uc.ListByPolicyID(context.Background(), ""); !errors.Is(err, ErrInvalidPolicyID) {
			t.Fatalf("expected ErrInvalidPolicyID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDesignRunRepository(ctrl)
		uc := NewDesignRunUseCase(repo)

		repo.EXPECT().ListByPolicyID(gomock.Any(), "pol-1").Return([]entities.DesignRun{{ID: "a"}, {ID: "b"}}, nil)

		runs, err := uc.ListByPolicyID(context.Background(), "pol-1")
		if err != nil || len(runs) != 2 {
			t.Fatalf("unexpected result: %v, %v", runs, err)
		}
	})
}
