package session

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrAlreadyJoined       = errors.New("already joined")
	ErrSessionFull         = errors.New("session is full")
	ErrHostJoin            = errors.New("host cannot join own session")
	ErrNotParticipant      = errors.New("not a participant")
	ErrHostSoleParticipant = errors.New("host is the only participant")
	ErrNotHost             = errors.New("only the host can cancel")
)

type SessionRepository interface {
	CreateSession(s *Session) error
	GetSessionByID(id uint) (*Session, error)
	GetSessions() ([]Session, error)
	GetSessionsBySport(sport string) ([]Session, error)
	GetHostedSessions(hostID uint) ([]Session, error)
	JoinSession(sessionID, userID uint) (*Session, error)
	LeaveSession(sessionID, userID uint) (*Session, error)
	DeleteSession(sessionID, requesterID uint) error
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// CreateSession persists the session and, when the host counts toward
// capacity, seats them as the first participant in the same transaction.
func (r *GormSessionRepository) CreateSession(s *Session) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		if s.CountHostIn {
			p := SessionParticipant{SessionID: s.ID, UserID: s.HostID, JoinedAt: time.Now()}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormSessionRepository) GetSessionByID(id uint) (*Session, error) {
	var s Session
	err := r.db.Preload("Host").
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_participants.joined_at asc")
		}).
		Preload("Participants.User").
		First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSessionRepository) GetSessions() ([]Session, error) {
	var sessions []Session
	err := r.db.Preload("Host").
		Preload("Participants").
		Preload("Participants.User").
		Order("date asc, time asc").
		Find(&sessions).Error
	return sessions, err
}

func (r *GormSessionRepository) GetSessionsBySport(sport string) ([]Session, error) {
	var sessions []Session
	err := r.db.Preload("Host").
		Preload("Participants").
		Preload("Participants.User").
		Where("sport = ?", sport).
		Order("date asc, time asc").
		Find(&sessions).Error
	return sessions, err
}

func (r *GormSessionRepository) GetHostedSessions(hostID uint) ([]Session, error) {
	var sessions []Session
	err := r.db.Preload("Host").
		Preload("Participants").
		Preload("Participants.User").
		Where("host_id = ?", hostID).
		Order("date desc, time desc").
		Find(&sessions).Error
	return sessions, err
}

// JoinSession admits userID into the session. The capacity and duplicate
// checks run inside the INSERT itself, so two concurrent joins racing for the
// last slot cannot both succeed. Precondition failures are diagnosed after
// the guarded insert rejects the row.
func (r *GormSessionRepository) JoinSession(sessionID, userID uint) (*Session, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var s Session
		if err := tx.First(&s, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		// Duplicate membership is reported before the host rule, so a host
		// seated at creation time gets "already joined" rather than the
		// host-specific rejection.
		var dup int64
		if err := tx.Model(&SessionParticipant{}).
			Where("session_id = ? AND user_id = ?", sessionID, userID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrAlreadyJoined
		}
		if s.HostID == userID {
			return ErrHostJoin
		}

		res := tx.Exec(`
			INSERT INTO session_participants (session_id, user_id, joined_at)
			SELECT ?, ?, ?
			WHERE (SELECT COUNT(*) FROM session_participants WHERE session_id = ?) < ?
			  AND NOT EXISTS (
			    SELECT 1 FROM session_participants WHERE session_id = ? AND user_id = ?
			  )`,
			sessionID, userID, time.Now(),
			sessionID, s.MaxPlayers,
			sessionID, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// The duplicate precheck passed, so the guarded insert can only
			// have balked on capacity (or lost a race to a duplicate, which
			// classifies the same way for the caller).
			var again int64
			if err := tx.Model(&SessionParticipant{}).
				Where("session_id = ? AND user_id = ?", sessionID, userID).
				Count(&again).Error; err != nil {
				return err
			}
			if again > 0 {
				return ErrAlreadyJoined
			}
			return ErrSessionFull
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetSessionByID(sessionID)
}

// LeaveSession removes userID's slot. A host occupying the only slot may not
// abandon their own session; they cancel it instead.
func (r *GormSessionRepository) LeaveSession(sessionID, userID uint) (*Session, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var s Session
		if err := tx.First(&s, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		var member int64
		if err := tx.Model(&SessionParticipant{}).
			Where("session_id = ? AND user_id = ?", sessionID, userID).
			Count(&member).Error; err != nil {
			return err
		}
		if member == 0 {
			return ErrNotParticipant
		}

		if s.HostID == userID {
			var total int64
			if err := tx.Model(&SessionParticipant{}).
				Where("session_id = ?", sessionID).
				Count(&total).Error; err != nil {
				return err
			}
			if total == 1 {
				return ErrHostSoleParticipant
			}
		}

		res := tx.Where("session_id = ? AND user_id = ?", sessionID, userID).
			Delete(&SessionParticipant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotParticipant
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetSessionByID(sessionID)
}

// DeleteSession cancels a session. Only the host may cancel; the session and
// its participant slots are removed permanently.
func (r *GormSessionRepository) DeleteSession(sessionID, requesterID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s Session
		if err := tx.First(&s, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if s.HostID != requesterID {
			return ErrNotHost
		}
		if err := tx.Where("session_id = ?", sessionID).
			Delete(&SessionParticipant{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&s).Error
	})
}
