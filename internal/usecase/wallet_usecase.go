package usecase

import (
	"fmt"

	"boostmarket/internal/entity"
	"boostmarket/internal/repo/persistent"
	"boostmarket/pkg/logger"
)

// WalletUseCase is the wallet ledger. Balance mutations go through the
// repository's conditional single-statement updates, so the non-negative
// invariant holds even under concurrent calls for the same account.
type WalletUseCase interface {
	Credit(accountID string, amount int, txType entity.TransactionType, reference string) error
	Debit(accountID string, amount int, txType entity.TransactionType, reference string) error
	Transactions(accountID string, limit, offset int) ([]*entity.Transaction, error)
}

type walletUseCase struct {
	accountRepo     persistent.AccountRepository
	transactionRepo persistent.TransactionRepository
	logger          *logger.Logger
}

func NewWalletUseCase(
	accountRepo persistent.AccountRepository,
	transactionRepo persistent.TransactionRepository,
	logger *logger.Logger,
) WalletUseCase {
	return &walletUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (uc *walletUseCase) Credit(accountID string, amount int, txType entity.TransactionType, reference string) error {
	if amount <= 0 {
		return entity.ErrInvalidAmount
	}

	if err := uc.accountRepo.CreditBalance(accountID, amount); err != nil {
		uc.logger.Error("Failed to credit account %s: %v", accountID, err)
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	uc.record(&entity.Transaction{
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Reference: reference,
	})

	return nil
}

func (uc *walletUseCase) Debit(accountID string, amount int, txType entity.TransactionType, reference string) error {
	if amount <= 0 {
		return entity.ErrInvalidAmount
	}

	if err := uc.accountRepo.DebitBalance(accountID, amount); err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}

	uc.record(&entity.Transaction{
		AccountID: accountID,
		Type:      txType,
		Amount:    -amount,
		Reference: reference,
	})

	return nil
}

func (uc *walletUseCase) Transactions(accountID string, limit, offset int) ([]*entity.Transaction, error) {
	transactions, err := uc.transactionRepo.ListByAccount(accountID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list transactions: %v", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// The balance is the source of truth; a lost audit row is logged, not fatal.
func (uc *walletUseCase) record(transaction *entity.Transaction) {
	if err := uc.transactionRepo.Create(transaction); err != nil {
		uc.logger.Error("Failed to record %s transaction for account %s: %v",
			transaction.Type, transaction.AccountID, err)
	}
}
