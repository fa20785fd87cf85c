package repository

import (
	"context"
	"time"

	"hrbot/internal/model"

	"gorm.io/gorm"
)

// SessionRepository defines the interface for data access of Session entities.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteStale(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository returns a new instance of SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return err
	}
	logAccess("entry creation: model=Session, user_id=%d", session.UserID)
	return nil
}

// GetByID loads the session with its owning user and role in one eagerly
// joined fetch, so resolving a session costs a bounded number of round-trips.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Preload("User.Role").
		First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	logAccess("entry retrieve: model=Session, user_id=%d", session.UserID)
	return &session, nil
}

// Delete removes the session row unconditionally; deleting an unknown id is
// a no-op.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id).Error; err != nil {
		return err
	}
	logAccess("entry deletion: model=Session")
	return nil
}

// DeleteStale removes sessions that are expired or owned by inactive users.
func (r *sessionRepository) DeleteStale(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expired_at < ?", now).
		Or("user_id IN (?)", r.db.Model(&model.User{}).Select("id").Where("is_active = ?", false)).
		Delete(&model.Session{})
	if res.Error != nil {
		return 0, res.Error
	}
	logAccess("entry deletion: model=Session, %d stale sessions removed", res.RowsAffected)
	return res.RowsAffected, nil
}
