package session

import (
	"time"

	"github.com/sportconnect-sg/backend/internal/user"

	"gorm.io/gorm"
)

// Session is a scheduled sports activity at a venue. Dates are stored as
// YYYY-MM-DD and times as HH:MM strings, the wire format the mobile client
// sends; temporal comparisons go through StartsAt, never string compares.
type Session struct {
	gorm.Model
	Sport string `gorm:"not null;index" json:"sport"`
	Venue string `gorm:"not null" json:"venue"`
	Court string `json:"court,omitempty"`

	Date    string `gorm:"not null;index" json:"date"`
	Time    string `gorm:"not null" json:"time"`
	EndDate string `json:"end_date,omitempty"`
	EndTime string `json:"end_time,omitempty"`

	SkillLevelStart string `gorm:"not null" json:"skill_level_start"`
	SkillLevelEnd   string `gorm:"not null" json:"skill_level_end"`

	MaxPlayers  int     `gorm:"not null" json:"max_players"`
	Fee         float64 `gorm:"default:0" json:"fee"`
	CountHostIn bool    `json:"count_host_in"`
	Notes       string  `gorm:"type:text" json:"notes,omitempty"`

	HostID uint      `gorm:"index;not null" json:"host_id"`
	Host   user.User `gorm:"foreignKey:HostID" json:"-"`

	Participants []SessionParticipant `gorm:"foreignKey:SessionID" json:"participants,omitempty"`

	// Occupancy, derived from Participants after load.
	CurrentPlayers int `gorm:"-" json:"current_players"`
}

// SessionParticipant is one occupied capacity slot. The (session, user) pair
// is unique; JoinedAt preserves join order.
type SessionParticipant struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_session_participant" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_session_participant" json:"user_id"`
	User      user.User `gorm:"foreignKey:UserID" json:"-"`
	JoinedAt  time.Time `json:"joined_at"`
}

// SessionInput is the creation payload.
type SessionInput struct {
	Sport           string  `json:"sport" binding:"required"`
	Venue           string  `json:"venue" binding:"required"`
	Court           string  `json:"court"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	EndDate         string  `json:"end_date"`
	EndTime         string  `json:"end_time"`
	SkillLevelStart string  `json:"skill_level_start" binding:"required"`
	SkillLevelEnd   string  `json:"skill_level_end" binding:"required"`
	MaxPlayers      int     `json:"max_players" binding:"required,min=2"`
	Fee             float64 `json:"fee" binding:"min=0"`
	CountHostIn     bool    `json:"count_host_in"`
	Notes           string  `json:"notes"`
}

// UserRef is the display projection of a user on session responses. It never
// carries the password hash.
type UserRef struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Email  string `json:"email"`
}

// SessionResponse is the detail projection: host and participants resolved to
// display records, plus the expired flag the client uses to gate join/leave
// actions.
type SessionResponse struct {
	ID              uint      `json:"id"`
	Sport           string    `json:"sport"`
	Venue           string    `json:"venue"`
	Court           string    `json:"court,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	EndDate         string    `json:"end_date,omitempty"`
	EndTime         string    `json:"end_time,omitempty"`
	SkillLevelStart string    `json:"skill_level_start"`
	SkillLevelEnd   string    `json:"skill_level_end"`
	MaxPlayers      int       `json:"max_players"`
	CurrentPlayers  int       `json:"current_players"`
	Fee             float64   `json:"fee"`
	CountHostIn     bool      `json:"count_host_in"`
	Notes           string    `json:"notes,omitempty"`
	Host            UserRef   `json:"host"`
	Participants    []UserRef `json:"participants"`
	Expired         bool      `json:"expired"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func refOf(u user.User) UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Email: u.Email}
}

// ToResponse resolves the session into its display projection.
func (s *Session) ToResponse(now time.Time) SessionResponse {
	participants := make([]UserRef, 0, len(s.Participants))
	for _, p := range s.Participants {
		participants = append(participants, refOf(p.User))
	}
	return SessionResponse{
		ID:              s.ID,
		Sport:           s.Sport,
		Venue:           s.Venue,
		Court:           s.Court,
		Date:            s.Date,
		Time:            s.Time,
		EndDate:         s.EndDate,
		EndTime:         s.EndTime,
		SkillLevelStart: s.SkillLevelStart,
		SkillLevelEnd:   s.SkillLevelEnd,
		MaxPlayers:      s.MaxPlayers,
		CurrentPlayers:  len(s.Participants),
		Fee:             s.Fee,
		CountHostIn:     s.CountHostIn,
		Notes:           s.Notes,
		Host:            refOf(s.Host),
		Participants:    participants,
		Expired:         s.IsExpired(now),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
