package persistent

import (
	"errors"
	"time"

	"boostmarket/internal/entity"
	"boostmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByAccount(accountID string) ([]*entity.Order, error)
	ListByAccountAndStatus(accountID string, status entity.OrderStatus) ([]*entity.Order, error)
	ListByStatus(status entity.OrderStatus) ([]*entity.Order, error)
	SetStatusIfPending(orderID string, status entity.OrderStatus) (bool, error)
	ReopenIfStatus(orderID string, from entity.OrderStatus) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *entity.Order) error {
	orderModel := ToOrderModel(order)
	if orderModel.ID == "" {
		orderModel.ID = uuid.New().String()
	}
	if err := r.db.Create(orderModel).Error; err != nil {
		return storeErr(err)
	}
	*order = *ToOrderEntity(orderModel)
	return nil
}

func (r *orderRepository) GetByID(id string) (*entity.Order, error) {
	var orderModel model.OrderModel
	if err := r.db.Where("id = ?", id).First(&orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrOrderNotFound
		}
		return nil, storeErr(err)
	}
	return ToOrderEntity(&orderModel), nil
}

func (r *orderRepository) ListByAccount(accountID string) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := r.db.Where("account_id = ?", accountID).Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, storeErr(err)
	}
	return toOrderEntities(orderModels), nil
}

func (r *orderRepository) ListByAccountAndStatus(accountID string, status entity.OrderStatus) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := r.db.Where("account_id = ? AND status = ?", accountID, string(status)).
		Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, storeErr(err)
	}
	return toOrderEntities(orderModels), nil
}

func (r *orderRepository) ListByStatus(status entity.OrderStatus) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := r.db.Where("status = ?", string(status)).Order("created_at ASC").Find(&orderModels).Error; err != nil {
		return nil, storeErr(err)
	}
	return toOrderEntities(orderModels), nil
}

// SetStatusIfPending flips a pending order into a terminal status in a single
// conditional UPDATE. It reports false when the order was not pending anymore,
// so of two racing decisions exactly one observes true.
func (r *orderRepository) SetStatusIfPending(orderID string, status entity.OrderStatus) (bool, error) {
	now := time.Now().UTC()
	res := r.db.Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", orderID, string(entity.OrderStatusPending)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"decided_at": &now,
		})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ReopenIfStatus reverts a terminal order back to pending, guarded on the
// status it was moved to. It compensates a decision whose side effects could
// not be completed, so the transition can be won again.
func (r *orderRepository) ReopenIfStatus(orderID string, from entity.OrderStatus) (bool, error) {
	res := r.db.Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]interface{}{
			"status":     string(entity.OrderStatusPending),
			"decided_at": nil,
		})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func toOrderEntities(orderModels []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = ToOrderEntity(&orderModels[i])
	}
	return orders
}
