package service

import (
	"context"
	"fmt"

	"staffhub.app/api-server/internal/model"
)

type StatsService interface {
	EmployeeStats(ctx context.Context) (*model.EmployeeStats, error)
}

type statsService struct {
	tx TxRunner
}

func NewStatsService(tx TxRunner) StatsService {
	return &statsService{tx: tx}
}

// EmployeeStats runs the three aggregate queries against one read-only
// snapshot so a concurrent write cannot be half-visible across them.
func (s *statsService) EmployeeStats(ctx context.Context) (*model.EmployeeStats, error) {
	var stats *model.EmployeeStats

	err := s.tx.WithReadTx(ctx, func(stores StoreProvider) error {
		result, err := stores.Stats().EmployeeStats(ctx)
		if err != nil {
			return fmt.Errorf("computing employee stats: %w", err)
		}
		stats = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
