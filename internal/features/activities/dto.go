package activities

import "time"

type ActivityResponseDTO struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UserID      *int64    `json:"userId"`
	RelatedID   *int64    `json:"relatedId"`
	UserName    string    `json:"userName"`
	CreatedAt   time.Time `json:"createdAt"`
}
