package usecase

import (
	"context"
	"fmt"
	"time"

	"boostmarket/internal/entity"
	"boostmarket/internal/gateway"
	"boostmarket/internal/repo/persistent"
	"boostmarket/pkg/logger"
)

// MinRechargeAmount is the smallest accepted recharge, in whole currency units.
const MinRechargeAmount = 1

type RechargeResult struct {
	SessionID string `json:"session_id"`
	AccountID string `json:"account_id"`
	Amount    int    `json:"amount"`
}

// RechargeUseCase bridges the hosted checkout into wallet credits. Reconcile
// is idempotent per session id: the claim table decides which caller credits,
// every later caller gets ErrAlreadyReconciled.
type RechargeUseCase interface {
	CreateCheckout(ctx context.Context, accountID string, amount int) (*gateway.CheckoutSession, error)
	Reconcile(ctx context.Context, sessionID string) (*RechargeResult, error)
}

type rechargeUseCase struct {
	gateway          gateway.PaymentGateway
	checkoutRepo     persistent.CheckoutRepository
	accountRepo      persistent.AccountRepository
	notificationRepo persistent.NotificationRepository
	wallet           WalletUseCase
	gatewayTimeout   time.Duration
	logger           *logger.Logger
}

func NewRechargeUseCase(
	paymentGateway gateway.PaymentGateway,
	checkoutRepo persistent.CheckoutRepository,
	accountRepo persistent.AccountRepository,
	notificationRepo persistent.NotificationRepository,
	wallet WalletUseCase,
	gatewayTimeout time.Duration,
	logger *logger.Logger,
) RechargeUseCase {
	return &rechargeUseCase{
		gateway:          paymentGateway,
		checkoutRepo:     checkoutRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		wallet:           wallet,
		gatewayTimeout:   gatewayTimeout,
		logger:           logger,
	}
}

func (uc *rechargeUseCase) CreateCheckout(ctx context.Context, accountID string, amount int) (*gateway.CheckoutSession, error) {
	if amount < MinRechargeAmount {
		return nil, entity.ErrInvalidAmount
	}

	if _, err := uc.accountRepo.GetByID(accountID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.gatewayTimeout)
	defer cancel()

	session, err := uc.gateway.CreateCheckout(ctx, accountID, amount)
	if err != nil {
		uc.logger.Error("Failed to create checkout for account %s: %v", accountID, err)
		return nil, err
	}

	return session, nil
}

func (uc *rechargeUseCase) Reconcile(ctx context.Context, sessionID string) (*RechargeResult, error) {
	if sessionID == "" {
		return nil, entity.ErrMissingSession
	}

	ctx, cancel := context.WithTimeout(ctx, uc.gatewayTimeout)
	defer cancel()

	session, err := uc.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Paid {
		return nil, entity.ErrPaymentNotCompleted
	}

	claimed, err := uc.checkoutRepo.Claim(&entity.CheckoutClaim{
		SessionID: session.ID,
		AccountID: session.AccountID,
		Amount:    session.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to claim checkout session: %w", err)
	}
	if !claimed {
		return nil, entity.ErrAlreadyReconciled
	}

	if err := uc.wallet.Credit(session.AccountID, session.Amount, entity.TransactionTypeRecharge, session.ID); err != nil {
		// Give the claim back so a retry can credit once the store recovers.
		if rerr := uc.checkoutRepo.Release(session.ID); rerr != nil {
			uc.logger.Error("Failed to release claim for session %s: %v", session.ID, rerr)
		}
		return nil, fmt.Errorf("failed to credit recharge: %w", err)
	}

	if err := uc.notificationRepo.AppendUser(session.AccountID,
		fmt.Sprintf("Your wallet was recharged with $%d.", session.Amount)); err != nil {
		uc.logger.Error("Failed to append recharge notification: %v", err)
	}

	uc.logger.Info("Reconciled session %s: credited %d to account %s", session.ID, session.Amount, session.AccountID)

	return &RechargeResult{
		SessionID: session.ID,
		AccountID: session.AccountID,
		Amount:    session.Amount,
	}, nil
}
