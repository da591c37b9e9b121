package main

import (
	"fmt"
	"time"

	"boostmarket/internal/model"
	"boostmarket/pkg/config"
	"boostmarket/pkg/database"
	"boostmarket/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testAccounts := []struct {
		telegramID int64
		username   string
		balance    int
	}{
		{100001, "user_001", 500},
		{100002, "user_002", 120},
		{100003, "user_003", 0},
	}

	accountIDs := make([]string, 0, len(testAccounts))

	for _, data := range testAccounts {
		account := &model.AccountModel{
			TelegramID: data.telegramID,
			Username:   data.username,
			Password:   "password123",
			Balance:    data.balance,
		}

		var existing model.AccountModel
		result := db.Where("telegram_id = ?", data.telegramID).First(&existing)
		if result.Error == nil {
			log.Info("Account %s already exists, skipping", data.username)
			accountIDs = append(accountIDs, existing.ID)
			continue
		}

		if err := db.Create(account).Error; err != nil {
			log.Error("Failed to create account %s: %v", data.username, err)
			continue
		}

		log.Info("Created account: %s (telegram %d)", data.username, data.telegramID)
		accountIDs = append(accountIDs, account.ID)

		recharge := &model.TransactionModel{
			AccountID: account.ID,
			Type:      "recharge",
			Amount:    data.balance,
			Reference: "seed",
		}
		if data.balance > 0 {
			if err := db.Create(recharge).Error; err != nil {
				log.Error("Failed to record seed recharge for %s: %v", data.username, err)
			}
		}
	}

	if len(accountIDs) == 0 {
		return fmt.Errorf("no accounts available to seed orders")
	}

	now := time.Now()
	orders := []*model.OrderModel{
		{AccountID: accountIDs[0], Amount: 50, Status: "pending"},
		{AccountID: accountIDs[0], Amount: 30, Status: "approved", DecidedAt: &now},
		{AccountID: accountIDs[1%len(accountIDs)], Amount: 20, Status: "rejected", DecidedAt: &now},
	}

	for _, order := range orders {
		var count int64
		db.Model(&model.OrderModel{}).
			Where("account_id = ? AND amount = ? AND status = ?", order.AccountID, order.Amount, order.Status).
			Count(&count)
		if count > 0 {
			continue
		}

		if err := db.Create(order).Error; err != nil {
			log.Error("Failed to create order: %v", err)
			continue
		}
		log.Info("Created %s order for $%d", order.Status, order.Amount)
	}

	notification := &model.NotificationModel{
		Audience: "admin",
		Message:  "Seed data loaded",
	}
	if err := db.Create(notification).Error; err != nil {
		log.Error("Failed to create admin notification: %v", err)
	}

	return nil
}
