package persistent

import (
	"boostmarket/internal/entity"
	"boostmarket/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	AppendUser(accountID, message string) error
	AppendAdmin(message string) error
	ListUser(accountID string) ([]*entity.Notification, error)
	ListAdmin() ([]*entity.Notification, error)
	ClearUser(accountID string) error
	ClearAdmin() error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) AppendUser(accountID, message string) error {
	if err := r.db.Create(&model.NotificationModel{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Audience:  string(entity.AudienceUser),
		Message:   message,
	}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *notificationRepository) AppendAdmin(message string) error {
	if err := r.db.Create(&model.NotificationModel{
		ID:       uuid.New().String(),
		Audience: string(entity.AudienceAdmin),
		Message:  message,
	}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *notificationRepository) ListUser(accountID string) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	if err := r.db.Where("account_id = ? AND audience = ?", accountID, string(entity.AudienceUser)).
		Order("created_at ASC").Find(&notificationModels).Error; err != nil {
		return nil, storeErr(err)
	}
	return toNotificationEntities(notificationModels), nil
}

func (r *notificationRepository) ListAdmin() ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	if err := r.db.Where("audience = ?", string(entity.AudienceAdmin)).
		Order("created_at ASC").Find(&notificationModels).Error; err != nil {
		return nil, storeErr(err)
	}
	return toNotificationEntities(notificationModels), nil
}

func (r *notificationRepository) ClearUser(accountID string) error {
	if err := r.db.Where("account_id = ? AND audience = ?", accountID, string(entity.AudienceUser)).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *notificationRepository) ClearAdmin() error {
	if err := r.db.Where("audience = ?", string(entity.AudienceAdmin)).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func toNotificationEntities(notificationModels []model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = ToNotificationEntity(&notificationModels[i])
	}
	return notifications
}
