package persistent

import (
	"boostmarket/internal/entity"
	"boostmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *entity.Transaction) error {
	transactionModel := ToTransactionModel(transaction)
	if transactionModel.ID == "" {
		transactionModel.ID = uuid.New().String()
	}
	if err := r.db.Create(transactionModel).Error; err != nil {
		return storeErr(err)
	}
	*transaction = *ToTransactionEntity(transactionModel)
	return nil
}

func (r *transactionRepository) ListByAccount(accountID string, limit, offset int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	query := r.db.Where("account_id = ?", accountID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, storeErr(err)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}
