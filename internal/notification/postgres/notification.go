package postgres

import (
	"gorm.io/gorm"

	notificationDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/notification"
	"github.com/nexushr/hr-management/internal/notification"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *notification.Notification) error {
	return r.db.Create(notification.ToDataModel(n)).Error
}

func (r *NotificationRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&notificationDatamodel.Notification{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *NotificationRepository) GetByID(id string) (*notification.Notification, error) {
	var dm notificationDatamodel.Notification
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, err
	}
	return notification.FromDataModel(&dm), nil
}

func (r *NotificationRepository) List() ([]*notification.Notification, error) {
	var dms []*notificationDatamodel.Notification
	err := r.db.Order("date DESC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return notification.FromDataModelSlice(dms), nil
}

func (r *NotificationRepository) ListUnread() ([]*notification.Notification, error) {
	var dms []*notificationDatamodel.Notification
	err := r.db.Where("read = ?", false).Order("date DESC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return notification.FromDataModelSlice(dms), nil
}

func (r *NotificationRepository) MarkRead(id string) error {
	return r.db.Model(&notificationDatamodel.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}
