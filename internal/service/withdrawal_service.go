package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lodes-affiliate/internal/domain"
	"github.com/fsdevblog/lodes-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/lodes-affiliate/pkg/uow"
)

type WithdrawalService struct {
	uow           uow.UOW
	wRepo         WithdrawalRepository
	minWithdrawal decimal.Decimal
}

func NewWithdrawalService(u uow.UOW, minWithdrawal decimal.Decimal) (*WithdrawalService, error) {
	wRepo, err := uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if err != nil {
		return nil, err
	}
	return &WithdrawalService{
		uow:           u,
		wRepo:         wRepo,
		minWithdrawal: minWithdrawal,
	}, nil
}

// Create создает заявку на вывод средств и резервирует сумму на балансе.
//
// Проверка и списание выполняются атомарно (условный UPDATE внутри
// транзакции), поэтому два конкурентных запроса не могут пройти проверку по
// одному и тому же остатку: один получит domain.ErrNotEnoughBalance.
// Сумма ниже порога отклоняется ошибкой *domain.BelowMinimumError.
func (s *WithdrawalService) Create(
	ctx context.Context,
	affiliateID int64,
	amount decimal.Decimal,
	details domain.PaymentInfo,
) (*domain.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("creating withdrawal: non-positive amount %s: %w", amount, domain.ErrInvalidArgument)
	}
	if amount.LessThan(s.minWithdrawal) {
		return nil, fmt.Errorf("creating withdrawal: %w", domain.NewBelowMinimumError(s.minWithdrawal))
	}

	var withdrawal *domain.Withdrawal
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		affRepo, affRepoErr := uow.GetAs[AffiliateRepository](tx, uow.RepositoryName(repoargs.AffiliateRepoName))
		if affRepoErr != nil {
			return affRepoErr //nolint:wrapcheck
		}
		wRepo, wRepoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}

		// Сначала убеждаемся, что партнер существует: DebitBalance не
		// различает "нет партнера" и "нет средств".
		if _, affErr := affRepo.FindByID(c, affiliateID); affErr != nil {
			return affErr //nolint:wrapcheck
		}

		if debitErr := affRepo.DebitBalance(c, affiliateID, amount); debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		var createErr error
		withdrawal, createErr = wRepo.Create(c, repoargs.WithdrawalCreate{
			AffiliateID:    affiliateID,
			Amount:         amount,
			PaymentDetails: details,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating withdrawal: %w", txErr)
	}
	return withdrawal, nil
}

// SetStatus переводит заявку в новый статус.
//
// Машина состояний: pending -> paid | rejected, оба конечные.
//   - paid: фиксируется дата обработки; баланс не меняется - сумма уже
//     списана при создании заявки.
//   - rejected: зарезервированная сумма возвращается на баланс партнера.
//
// Повторная установка текущего конечного статуса - no-op: возврат сверяется
// со статусом заявки, а не с текущим балансом, поэтому двойного возврата не
// происходит. Любой другой переход из конечного статуса, равно как и попытка
// вернуть заявку в pending, отклоняется с domain.ErrInvalidState.
func (s *WithdrawalService) SetStatus(
	ctx context.Context,
	id int64,
	status domain.WithdrawalStatusType,
	adminNote string,
) (*domain.Withdrawal, error) {
	if status != domain.WithdrawalStatusPaid && status != domain.WithdrawalStatusRejected {
		return nil, fmt.Errorf("setting withdrawal status: target `%s`: %w", status, domain.ErrInvalidState)
	}

	var result *domain.Withdrawal
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		wRepo, wRepoErr := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}

		withdrawal, wErr := wRepo.FindByIDForUpdate(c, id)
		if wErr != nil {
			return wErr //nolint:wrapcheck
		}

		if withdrawal.Status == status {
			result = withdrawal
			return nil
		}
		if withdrawal.Status.Terminal() {
			return fmt.Errorf(
				"withdrawal %d: transition %s -> %s: %w",
				id, withdrawal.Status, status, domain.ErrInvalidState,
			)
		}

		if status == domain.WithdrawalStatusRejected {
			affRepo, affRepoErr := uow.GetAs[AffiliateRepository](tx, uow.RepositoryName(repoargs.AffiliateRepoName))
			if affRepoErr != nil {
				return affRepoErr //nolint:wrapcheck
			}
			if refundErr := affRepo.CreditBalance(c, withdrawal.AffiliateID, withdrawal.Amount); refundErr != nil {
				return refundErr //nolint:wrapcheck
			}
		}

		var processedAt *time.Time
		if status == domain.WithdrawalStatusPaid {
			now := time.Now()
			processedAt = &now
		}
		var updErr error
		result, updErr = wRepo.UpdateStatus(c, repoargs.WithdrawalStatusUpdate{
			ID:          id,
			Status:      status,
			AdminNote:   adminNote,
			ProcessedAt: processedAt,
		})
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("setting withdrawal status: %w", txErr)
	}
	return result, nil
}

func (s *WithdrawalService) GetAll(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.wRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawals, nil
}

func (s *WithdrawalService) GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.Withdrawal, error) {
	withdrawals, err := s.wRepo.GetByAffiliateID(ctx, affiliateID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawals, nil
}
