package persistent

import (
	"errors"

	"boostmarket/internal/entity"
	"boostmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByTelegramID(telegramID int64) (*entity.Account, error)
	List() ([]*entity.Account, error)
	CreditBalance(accountID string, amount int) error
	DebitBalance(accountID string, amount int) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *entity.Account) error {
	accountModel := ToAccountModel(account)
	if accountModel.ID == "" {
		accountModel.ID = uuid.New().String()
	}
	if err := r.db.Create(accountModel).Error; err != nil {
		return storeErr(err)
	}
	*account = *ToAccountEntity(accountModel)
	return nil
}

func (r *accountRepository) GetByID(id string) (*entity.Account, error) {
	var accountModel model.AccountModel
	if err := r.db.Where("id = ?", id).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAccountNotFound
		}
		return nil, storeErr(err)
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *accountRepository) GetByTelegramID(telegramID int64) (*entity.Account, error) {
	var accountModel model.AccountModel
	if err := r.db.Where("telegram_id = ?", telegramID).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAccountNotFound
		}
		return nil, storeErr(err)
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *accountRepository) List() ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	if err := r.db.Order("created_at ASC").Find(&accountModels).Error; err != nil {
		return nil, storeErr(err)
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = ToAccountEntity(&accountModels[i])
	}
	return accounts, nil
}

// CreditBalance increments the balance in a single UPDATE.
func (r *accountRepository) CreditBalance(accountID string, amount int) error {
	res := r.db.Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrAccountNotFound
	}
	return nil
}

// DebitBalance decrements the balance only when it covers the amount. The
// balance guard lives in the WHERE clause so two concurrent debits can never
// both succeed past the available funds.
func (r *accountRepository) DebitBalance(accountID string, amount int) error {
	res := r.db.Model(&model.AccountModel{}).
		Where("id = ? AND balance >= ?", accountID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(accountID); err != nil {
			return err
		}
		return entity.ErrInsufficientFunds
	}
	return nil
}
