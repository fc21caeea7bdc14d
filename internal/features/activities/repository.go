package activities

import (
	"time"

	"workforce/internal/storage"
)

type ActivityRepository interface {
	Create(activity *Activity) error
	GetAll(limit int) ([]*Activity, error)
}

type PostgresActivityRepository struct{}

func (r *PostgresActivityRepository) Create(activity *Activity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(activity).Error
}

func (r *PostgresActivityRepository) GetAll(limit int) ([]*Activity, error) {
	var entries []*Activity

	query := storage.GetDb().Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&entries).Error

	return entries, err
}
