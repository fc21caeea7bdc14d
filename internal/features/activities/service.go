package activities

import (
	"fmt"
	"log/slog"
	"time"

	users_models "workforce/internal/features/users/models"
)

// UserReader resolves user names for the activity feed.
type UserReader interface {
	GetUserByID(userID int64) (*users_models.User, error)
}

type ActivityService struct {
	activityRepository ActivityRepository
	userReader         UserReader
	logger             *slog.Logger
}

func NewActivityService(
	activityRepository ActivityRepository,
	userReader UserReader,
	logger *slog.Logger,
) *ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		userReader:         userReader,
		logger:             logger,
	}
}

// WriteActivity records an entry in the feed. Failures are logged, never
// propagated: an audit write must not fail the request that triggered it.
func (s *ActivityService) WriteActivity(
	activityType string,
	description string,
	userID *int64,
	relatedID *int64,
) {
	activity := &Activity{
		Type:        activityType,
		Description: description,
		UserID:      userID,
		RelatedID:   relatedID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.activityRepository.Create(activity); err != nil {
		s.logger.Error("failed to create activity", "type", activityType, "error", err)
	}
}

func (s *ActivityService) GetActivities(limit int) ([]ActivityResponseDTO, error) {
	entries, err := s.activityRepository.GetAll(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	responses := make([]ActivityResponseDTO, 0, len(entries))
	for _, entry := range entries {
		userName := "System"
		if entry.UserID != nil {
			user, err := s.userReader.GetUserByID(*entry.UserID)
			if err == nil && user != nil {
				userName = user.Name
			}
		}

		responses = append(responses, ActivityResponseDTO{
			ID:          entry.ID,
			Type:        entry.Type,
			Description: entry.Description,
			UserID:      entry.UserID,
			RelatedID:   entry.RelatedID,
			UserName:    userName,
			CreatedAt:   entry.CreatedAt,
		})
	}

	return responses, nil
}
