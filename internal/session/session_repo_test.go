package session

import (
	"sync"
	"testing"

	"github.com/sportconnect-sg/backend/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&user.User{}, &Session{}, &SessionParticipant{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) user.User {
	t.Helper()
	u := user.User{Email: email, Name: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createTestSession(t *testing.T, repo *GormSessionRepository, hostID uint, maxPlayers int, countHostIn bool) *Session {
	t.Helper()
	s := Session{
		Sport:           "Badminton",
		Venue:           "Clementi Sports Hall",
		Date:            "2030-06-15",
		Time:            "19:00",
		SkillLevelStart: "Mid Beginner",
		SkillLevelEnd:   "Low Intermediate",
		MaxPlayers:      maxPlayers,
		CountHostIn:     countHostIn,
		HostID:          hostID,
	}
	require.NoError(t, repo.CreateSession(&s))
	return &s
}

func TestCreateSessionCountsHostIn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)

	loaded, err := repo.GetSessionByID(s.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Participants, 1)
	assert.Equal(t, host.ID, loaded.Participants[0].UserID)
}

func TestCreateSessionHostNotCounted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	s := createTestSession(t, repo, host.ID, 4, false)

	loaded, err := repo.GetSessionByID(s.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Participants)
}

func TestJoinSession(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	player := createTestUser(t, db, "player@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)

	joined, err := repo.JoinSession(s.ID, player.ID)
	require.NoError(t, err)
	require.Len(t, joined.Participants, 2)
	assert.Equal(t, player.ID, joined.Participants[1].UserID)
}

func TestJoinSessionDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	player := createTestUser(t, db, "player@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)

	_, err := repo.JoinSession(s.ID, player.ID)
	require.NoError(t, err)

	_, err = repo.JoinSession(s.ID, player.ID)
	assert.ErrorIs(t, err, ErrAlreadyJoined)

	loaded, err := repo.GetSessionByID(s.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 2)
}

func TestJoinSessionFull(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	p1 := createTestUser(t, db, "p1@example.com")
	p2 := createTestUser(t, db, "p2@example.com")

	s := createTestSession(t, repo, host.ID, 2, true)

	_, err := repo.JoinSession(s.ID, p1.ID)
	require.NoError(t, err)

	_, err = repo.JoinSession(s.ID, p2.ID)
	assert.ErrorIs(t, err, ErrSessionFull)

	loaded, err := repo.GetSessionByID(s.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 2)
}

func TestJoinSessionHostRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	s := createTestSession(t, repo, host.ID, 4, false)

	_, err := repo.JoinSession(s.ID, host.ID)
	assert.ErrorIs(t, err, ErrHostJoin)
}

func TestJoinSessionSeatedHostReportsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)

	// A host seated at creation is a duplicate before the host rule applies.
	_, err := repo.JoinSession(s.ID, host.ID)
	assert.ErrorIs(t, err, ErrAlreadyJoined)
}

func TestJoinSessionNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	player := createTestUser(t, db, "player@example.com")

	_, err := repo.JoinSession(9999, player.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestJoinSessionConcurrentLastSlot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	p1 := createTestUser(t, db, "p1@example.com")
	p2 := createTestUser(t, db, "p2@example.com")

	s := createTestSession(t, repo, host.ID, 2, true)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, p := range []user.User{p1, p2} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, errs[i] = repo.JoinSession(s.ID, userID)
		}(i, p.ID)
	}
	wg.Wait()

	var admitted, rejected int
	for _, err := range errs {
		if err == nil {
			admitted++
		} else {
			assert.ErrorIs(t, err, ErrSessionFull)
			rejected++
		}
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, rejected)

	loaded, err := repo.GetSessionByID(s.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 2)
}

func TestLeaveSession(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	player := createTestUser(t, db, "player@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)
	_, err := repo.JoinSession(s.ID, player.ID)
	require.NoError(t, err)

	left, err := repo.LeaveSession(s.ID, player.ID)
	require.NoError(t, err)
	require.Len(t, left.Participants, 1)
	assert.Equal(t, host.ID, left.Participants[0].UserID)
}

func TestLeaveSessionNotParticipant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)

	_, err := repo.LeaveSession(s.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestLeaveSessionHostSoleOccupantBlocked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)

	_, err := repo.LeaveSession(s.ID, host.ID)
	assert.ErrorIs(t, err, ErrHostSoleParticipant)
}

func TestLeaveSessionHostWithCompany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	player := createTestUser(t, db, "player@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)
	_, err := repo.JoinSession(s.ID, player.ID)
	require.NoError(t, err)

	// With another participant seated the host may give up their slot.
	left, err := repo.LeaveSession(s.ID, host.ID)
	require.NoError(t, err)
	require.Len(t, left.Participants, 1)
	assert.Equal(t, player.ID, left.Participants[0].UserID)
}

func TestLeaveSessionUncountedHostNotParticipant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	s := createTestSession(t, repo, host.ID, 4, false)

	_, err := repo.LeaveSession(s.ID, host.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestDeleteSession(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	player := createTestUser(t, db, "player@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)
	_, err := repo.JoinSession(s.ID, player.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteSession(s.ID, host.ID))

	_, err = repo.GetSessionByID(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	var slots int64
	require.NoError(t, db.Model(&SessionParticipant{}).
		Where("session_id = ?", s.ID).Count(&slots).Error)
	assert.Zero(t, slots)
}

func TestDeleteSessionNotHost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")
	player := createTestUser(t, db, "player@example.com")

	s := createTestSession(t, repo, host.ID, 4, true)
	_, err := repo.JoinSession(s.ID, player.ID)
	require.NoError(t, err)

	err = repo.DeleteSession(s.ID, player.ID)
	assert.ErrorIs(t, err, ErrNotHost)

	loaded, err := repo.GetSessionByID(s.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Participants, 2)
}

func TestGetHostedSessionsIncludesPast(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	host := createTestUser(t, db, "host@example.com")

	past := Session{
		Sport: "Tennis", Venue: "Kallang Tennis Centre",
		Date: "2020-01-01", Time: "09:00",
		SkillLevelStart: "Beginner", SkillLevelEnd: "Advanced",
		MaxPlayers: 4, HostID: host.ID,
	}
	require.NoError(t, repo.CreateSession(&past))
	createTestSession(t, repo, host.ID, 4, false)

	hosted, err := repo.GetHostedSessions(host.ID)
	require.NoError(t, err)
	assert.Len(t, hosted, 2)
}
