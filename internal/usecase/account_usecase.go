package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"boostmarket/internal/entity"
	"boostmarket/internal/repo/persistent"
	"boostmarket/pkg/jwt"
	"boostmarket/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Dashboard struct {
	Account       *entity.Account        `json:"account"`
	Orders        []*entity.Order        `json:"orders"`
	Notifications []*entity.Notification `json:"notifications"`
}

type AccountUseCase interface {
	// Login authenticates by numeric telegram id, lazily creating the account
	// with generated credentials on first sight.
	Login(telegramID string) (*entity.Account, string, bool, error)
	AdminLogin(username, password string) (string, error)
	Dashboard(accountID string) (*Dashboard, error)
	List() ([]*entity.Account, error)
	ClearNotifications(accountID string) error
	AdminNotifications() ([]*entity.Notification, error)
	ClearAdminNotifications() error
}

type accountUseCase struct {
	accountRepo       persistent.AccountRepository
	orderRepo         persistent.OrderRepository
	notificationRepo  persistent.NotificationRepository
	jwtService        *jwt.Service
	adminUsername     string
	adminPasswordHash []byte
	logger            *logger.Logger
}

func NewAccountUseCase(
	accountRepo persistent.AccountRepository,
	orderRepo persistent.OrderRepository,
	notificationRepo persistent.NotificationRepository,
	jwtService *jwt.Service,
	adminUsername, adminPassword string,
	logger *logger.Logger,
) AccountUseCase {
	// Hash once at startup; the plaintext never sticks around.
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash admin password: %v", err)
	}

	return &accountUseCase{
		accountRepo:       accountRepo,
		orderRepo:         orderRepo,
		notificationRepo:  notificationRepo,
		jwtService:        jwtService,
		adminUsername:     adminUsername,
		adminPasswordHash: hash,
		logger:            logger,
	}
}

func (uc *accountUseCase) Login(telegramID string) (*entity.Account, string, bool, error) {
	id, err := strconv.ParseInt(telegramID, 10, 64)
	if err != nil || id <= 0 {
		return nil, "", false, fmt.Errorf("%w: telegram id must be numeric", entity.ErrInvalidInput)
	}

	created := false
	account, err := uc.accountRepo.GetByTelegramID(id)
	if errors.Is(err, entity.ErrAccountNotFound) {
		username, password := generateCredentials()
		account = &entity.Account{
			TelegramID: id,
			Username:   username,
			Password:   password,
		}
		if cerr := uc.accountRepo.Create(account); cerr != nil {
			// A concurrent first login may have won the insert.
			account, err = uc.accountRepo.GetByTelegramID(id)
			if err != nil {
				uc.logger.Error("Failed to create account for telegram id %d: %v", id, cerr)
				return nil, "", false, fmt.Errorf("failed to create account: %w", cerr)
			}
		} else {
			created = true
		}
	} else if err != nil {
		return nil, "", false, fmt.Errorf("failed to look up account: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(account.ID, RoleUser)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", false, fmt.Errorf("failed to generate token: %w", err)
	}

	return account, token, created, nil
}

func (uc *accountUseCase) AdminLogin(username, password string) (string, error) {
	if username != uc.adminUsername ||
		bcrypt.CompareHashAndPassword(uc.adminPasswordHash, []byte(password)) != nil {
		return "", fmt.Errorf("invalid admin credentials")
	}

	token, err := uc.jwtService.GenerateToken("admin", RoleAdmin)
	if err != nil {
		uc.logger.Error("Failed to generate admin token: %v", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

func (uc *accountUseCase) Dashboard(accountID string) (*Dashboard, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	notifications, err := uc.notificationRepo.ListUser(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &Dashboard{
		Account:       account,
		Orders:        orders,
		Notifications: notifications,
	}, nil
}

func (uc *accountUseCase) List() ([]*entity.Account, error) {
	return uc.accountRepo.List()
}

func (uc *accountUseCase) ClearNotifications(accountID string) error {
	return uc.notificationRepo.ClearUser(accountID)
}

func (uc *accountUseCase) AdminNotifications() ([]*entity.Notification, error) {
	return uc.notificationRepo.ListAdmin()
}

func (uc *accountUseCase) ClearAdminNotifications() error {
	return uc.notificationRepo.ClearAdmin()
}

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateCredentials() (string, string) {
	username := fmt.Sprintf("user_%03d", rand.Intn(1000))
	password := make([]byte, 8)
	for i := range password {
		password[i] = credentialAlphabet[rand.Intn(len(credentialAlphabet))]
	}
	return username, string(password)
}
