package persistent

import (
	"boostmarket/internal/entity"
	"boostmarket/internal/model"
)

func ToAccountEntity(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:         m.ID,
		TelegramID: m.TelegramID,
		Username:   m.Username,
		Password:   m.Password,
		Balance:    m.Balance,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToAccountModel(e *entity.Account) *model.AccountModel {
	if e == nil {
		return nil
	}

	return &model.AccountModel{
		ID:         e.ID,
		TelegramID: e.TelegramID,
		Username:   e.Username,
		Password:   e.Password,
		Balance:    e.Balance,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToOrderEntity(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	return &entity.Order{
		ID:        m.ID,
		AccountID: m.AccountID,
		Amount:    m.Amount,
		Status:    entity.OrderStatus(m.Status),
		PostURL:   m.PostURL,
		CreatedAt: m.CreatedAt,
		DecidedAt: m.DecidedAt,
	}
}

func ToOrderModel(e *entity.Order) *model.OrderModel {
	if e == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        e.ID,
		AccountID: e.AccountID,
		Amount:    e.Amount,
		Status:    string(e.Status),
		PostURL:   e.PostURL,
		CreatedAt: e.CreatedAt,
		DecidedAt: e.DecidedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        m.ID,
		AccountID: m.AccountID,
		Type:      entity.TransactionType(m.Type),
		Amount:    m.Amount,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:        e.ID,
		AccountID: e.AccountID,
		Type:      string(e.Type),
		Amount:    e.Amount,
		Reference: e.Reference,
		CreatedAt: e.CreatedAt,
	}
}

func ToCheckoutClaimEntity(m *model.CheckoutClaimModel) *entity.CheckoutClaim {
	if m == nil {
		return nil
	}

	return &entity.CheckoutClaim{
		SessionID: m.SessionID,
		AccountID: m.AccountID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

func ToCheckoutClaimModel(e *entity.CheckoutClaim) *model.CheckoutClaimModel {
	if e == nil {
		return nil
	}

	return &model.CheckoutClaimModel{
		SessionID: e.SessionID,
		AccountID: e.AccountID,
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt,
	}
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:        m.ID,
		AccountID: m.AccountID,
		Audience:  entity.NotificationAudience(m.Audience),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
