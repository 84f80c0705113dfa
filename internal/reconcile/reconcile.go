package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Eliezelg/myfamilyreplit-sub000/internal/config"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/domain"
	"github.com/Eliezelg/myfamilyreplit-sub000/internal/service/fundservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var checkingFunds sync.Map

// Service periodically verifies that every fund balance equals the sum of
// its ledger entries. A failed rollback credit leaves the two out of sync,
// and this is where that drift surfaces.
type Service struct {
	fundRepo        fundservice.FundRepo
	transactionRepo fundservice.TransactionRepo
	limit           uint32
	workerPool      WorkerPoolI
	checkInterval   time.Duration
}

func New(cfg *config.Config, fundRepo fundservice.FundRepo, transactionRepo fundservice.TransactionRepo) *Service {
	return &Service{
		fundRepo:        fundRepo,
		transactionRepo: transactionRepo,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		checkInterval:   cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconcile service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processFunds(ctx)
		}
	}
}

func (s *Service) processFunds(ctx context.Context) {
	funds, err := s.fundRepo.ListFunds(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch funds for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, fund := range funds {
		fund := fund

		if _, loaded := checkingFunds.LoadOrStore(fund.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer checkingFunds.Delete(fund.ID)
				return s.handleFund(ctx, fund)
			})
			if err != nil {
				checkingFunds.Delete(fund.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling funds", zap.Error(err))
	}
}

func (s *Service) handleFund(ctx context.Context, fund domain.FamilyFund) error {
	sum, err := s.transactionRepo.SumByFundID(ctx, fund.ID)
	if err != nil {
		return fmt.Errorf("failed to sum ledger for fund %d: %w", fund.ID, err)
	}

	if sum != fund.Balance {
		zap.L().Warn("Fund balance drifted from its ledger",
			zap.Int("fundID", fund.ID),
			zap.Int("familyID", fund.FamilyID),
			zap.Int64("balance", fund.Balance),
			zap.Int64("ledgerSum", sum),
			zap.Int64("drift", fund.Balance-sum),
		)
		return nil
	}

	zap.L().Debug("Fund balance matches its ledger", zap.Int("fundID", fund.ID))
	return nil
}
