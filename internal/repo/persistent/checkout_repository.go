package persistent

import (
	"boostmarket/internal/entity"
	"boostmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutRepository interface {
	// Claim records the session as consumed. It returns false when the
	// session was already claimed by an earlier reconciliation.
	Claim(claim *entity.CheckoutClaim) (bool, error)
	// Release drops a claim so a failed credit can be retried later.
	Release(sessionID string) error
}

type checkoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Claim(claim *entity.CheckoutClaim) (bool, error) {
	claimModel := ToCheckoutClaimModel(claim)
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(claimModel)
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	*claim = *ToCheckoutClaimEntity(claimModel)
	return res.RowsAffected == 1, nil
}

func (r *checkoutRepository) Release(sessionID string) error {
	if err := r.db.Where("session_id = ?", sessionID).Delete(&model.CheckoutClaimModel{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}
