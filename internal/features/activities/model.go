package activities

import "time"

// Activity is an append-only audit entry. Rows are never updated or deleted.
type Activity struct {
	ID          int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	Type        string    `json:"type"        gorm:"not null;index"`
	Description string    `json:"description" gorm:"not null"`
	UserID      *int64    `json:"userId"`
	RelatedID   *int64    `json:"relatedId"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"index"`
}

func (Activity) TableName() string {
	return "activities"
}
