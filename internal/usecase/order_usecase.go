package usecase

import (
	"fmt"
	"time"

	"boostmarket/internal/entity"
	"boostmarket/internal/repo/persistent"
	"boostmarket/pkg/logger"

	"github.com/google/uuid"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// OrderUseCase governs the order lifecycle: pending orders are created by
// spending wallet balance and move exactly once to approved or rejected.
type OrderUseCase interface {
	PlaceOrder(accountID string, amount int) (*entity.Order, error)
	Decide(orderID, action string) (*entity.Order, error)
	ManualAssign(telegramID int64, amount int, postURL string) (*entity.Order, error)
	ListByAccount(accountID string) ([]*entity.Order, error)
	ListByAccountAndStatus(accountID string, status entity.OrderStatus) ([]*entity.Order, error)
	ListPending() ([]*entity.Order, error)
}

type orderUseCase struct {
	orderRepo        persistent.OrderRepository
	accountRepo      persistent.AccountRepository
	notificationRepo persistent.NotificationRepository
	wallet           WalletUseCase
	logger           *logger.Logger
}

func NewOrderUseCase(
	orderRepo persistent.OrderRepository,
	accountRepo persistent.AccountRepository,
	notificationRepo persistent.NotificationRepository,
	wallet WalletUseCase,
	logger *logger.Logger,
) OrderUseCase {
	return &orderUseCase{
		orderRepo:        orderRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		wallet:           wallet,
		logger:           logger,
	}
}

// PlaceOrder debits the wallet and creates a pending order as one logical
// unit. When the create fails after a successful debit, a compensating credit
// puts the money back and leaves an audit trail.
func (uc *orderUseCase) PlaceOrder(accountID string, amount int) (*entity.Order, error) {
	if amount <= 0 {
		return nil, entity.ErrInvalidAmount
	}

	orderID := uuid.New().String()

	if err := uc.wallet.Debit(accountID, amount, entity.TransactionTypePurchase, orderID); err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:        orderID,
		AccountID: accountID,
		Amount:    amount,
		Status:    entity.OrderStatusPending,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		uc.logger.Error("Failed to create order %s, issuing compensating credit: %v", orderID, err)
		if cerr := uc.wallet.Credit(accountID, amount, entity.TransactionTypeCompensation, orderID); cerr != nil {
			uc.logger.Error("Compensating credit for order %s failed, account %s is short %d: %v",
				orderID, accountID, amount, cerr)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// Decide moves a pending order to approved or rejected. The transition is a
// conditional update, so of two racing decisions only one takes effect and the
// refund on reject is issued exactly once, by the winner.
func (uc *orderUseCase) Decide(orderID, action string) (*entity.Order, error) {
	var status entity.OrderStatus
	switch action {
	case ActionApprove:
		status = entity.OrderStatusApproved
	case ActionReject:
		status = entity.OrderStatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown action %q", entity.ErrInvalidInput, action)
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByID(order.AccountID)
	if err != nil {
		return nil, err
	}

	won, err := uc.orderRepo.SetStatusIfPending(orderID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !won {
		return nil, entity.ErrInvalidTransition
	}

	var userMsg, adminMsg string
	switch status {
	case entity.OrderStatusApproved:
		userMsg = fmt.Sprintf("%s, your order %s was approved.", account.Username, orderID)
		adminMsg = fmt.Sprintf("Approved order %s for user %s.", orderID, account.Username)
	case entity.OrderStatusRejected:
		if err := uc.wallet.Credit(account.ID, order.Amount, entity.TransactionTypeRefund, orderID); err != nil {
			// Put the order back to pending so a retried decision can win the
			// transition again and issue the refund exactly once.
			uc.logger.Error("Refund for rejected order %s failed, reopening: %v", orderID, err)
			if reopened, rerr := uc.orderRepo.ReopenIfStatus(orderID, status); rerr != nil || !reopened {
				uc.logger.Error("Failed to reopen order %s after refund failure: %v", orderID, rerr)
			}
			return nil, fmt.Errorf("failed to refund order %s: %w", orderID, err)
		}
		userMsg = fmt.Sprintf("%s, your order %s was rejected. $%d refunded.", account.Username, orderID, order.Amount)
		adminMsg = fmt.Sprintf("Rejected order %s for user %s. Refunded $%d.", orderID, account.Username, order.Amount)
	}

	uc.notifyUser(account.ID, userMsg)
	uc.notifyAdmin(adminMsg)

	order.Status = status
	now := time.Now().UTC()
	order.DecidedAt = &now
	return order, nil
}

// ManualAssign creates an administrative grant: an order born approved that
// never touches the wallet.
func (uc *orderUseCase) ManualAssign(telegramID int64, amount int, postURL string) (*entity.Order, error) {
	if amount <= 0 {
		return nil, entity.ErrInvalidAmount
	}

	account, err := uc.accountRepo.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &entity.Order{
		AccountID: account.ID,
		Amount:    amount,
		Status:    entity.OrderStatusApproved,
		PostURL:   postURL,
		DecidedAt: &now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.notifyUser(account.ID, "Your manual order has been approved by admin.")

	return order, nil
}

func (uc *orderUseCase) ListByAccount(accountID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByAccount(accountID)
}

func (uc *orderUseCase) ListByAccountAndStatus(accountID string, status entity.OrderStatus) ([]*entity.Order, error) {
	return uc.orderRepo.ListByAccountAndStatus(accountID, status)
}

func (uc *orderUseCase) ListPending() ([]*entity.Order, error) {
	return uc.orderRepo.ListByStatus(entity.OrderStatusPending)
}

func (uc *orderUseCase) notifyUser(accountID, message string) {
	if err := uc.notificationRepo.AppendUser(accountID, message); err != nil {
		uc.logger.Error("Failed to append user notification: %v", err)
	}
}

func (uc *orderUseCase) notifyAdmin(message string) {
	if err := uc.notificationRepo.AppendAdmin(message); err != nil {
		uc.logger.Error("Failed to append admin notification: %v", err)
	}
}
