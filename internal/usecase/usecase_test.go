package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"boostmarket/internal/entity"
	"boostmarket/internal/gateway"
	"boostmarket/internal/model"
	"boostmarket/internal/repo/persistent"
	"boostmarket/pkg/jwt"
	"boostmarket/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeGateway stands in for the hosted checkout provider.
type fakeGateway struct {
	sessions map[string]*gateway.CheckoutSession
	err      error
	created  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: make(map[string]*gateway.CheckoutSession)}
}

func (f *fakeGateway) addSession(id, accountID string, amount int, paid bool) {
	f.sessions[id] = &gateway.CheckoutSession{
		ID:        id,
		URL:       "https://checkout.example/" + id,
		AccountID: accountID,
		Amount:    amount,
		Paid:      paid,
	}
}

func (f *fakeGateway) CreateCheckout(ctx context.Context, accountID string, amount int) (*gateway.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created++
	id := fmt.Sprintf("cs_test_%d", f.created)
	f.addSession(id, accountID, amount, false)
	return f.sessions[id], nil
}

func (f *fakeGateway) GetSession(ctx context.Context, sessionID string) (*gateway.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, entity.ErrMissingSession
	}
	return session, nil
}

type fixture struct {
	db            *gorm.DB
	accounts      persistent.AccountRepository
	orders        persistent.OrderRepository
	notifications persistent.NotificationRepository
	transactions  persistent.TransactionRepository
	checkouts     persistent.CheckoutRepository
	gw            *fakeGateway

	wallet    WalletUseCase
	orderUC   OrderUseCase
	recharge  RechargeUseCase
	accountUC AccountUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.OrderModel{},
		&model.TransactionModel{},
		&model.NotificationModel{},
		&model.CheckoutClaimModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	log := logger.New()
	f := &fixture{
		db:            db,
		accounts:      persistent.NewAccountRepository(db),
		orders:        persistent.NewOrderRepository(db),
		notifications: persistent.NewNotificationRepository(db),
		transactions:  persistent.NewTransactionRepository(db),
		checkouts:     persistent.NewCheckoutRepository(db),
		gw:            newFakeGateway(),
	}

	f.wallet = NewWalletUseCase(f.accounts, f.transactions, log)
	f.orderUC = NewOrderUseCase(f.orders, f.accounts, f.notifications, f.wallet, log)
	f.recharge = NewRechargeUseCase(f.gw, f.checkouts, f.accounts, f.notifications, f.wallet, 5*time.Second, log)
	f.accountUC = NewAccountUseCase(f.accounts, f.orders, f.notifications,
		jwt.NewService("test-secret-key"), "admin", "adminpass", log)

	return f
}

func (f *fixture) newAccount(t *testing.T, telegramID int64, balance int) *entity.Account {
	t.Helper()
	account := &entity.Account{
		TelegramID: telegramID,
		Username:   fmt.Sprintf("user_%d", telegramID),
		Password:   "secret",
		Balance:    balance,
	}
	assert.NoError(t, f.accounts.Create(account))
	return account
}

func (f *fixture) balance(t *testing.T, accountID string) int {
	t.Helper()
	account, err := f.accounts.GetByID(accountID)
	assert.NoError(t, err)
	return account.Balance
}
