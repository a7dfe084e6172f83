package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sportconnect-sg/backend/internal/middleware"
	"github.com/sportconnect-sg/backend/internal/sport"
	"github.com/sportconnect-sg/backend/pkg/utils"
	"github.com/sportconnect-sg/backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	repo SessionRepository
}

func NewSessionController(repo SessionRepository) *SessionController {
	return &SessionController{repo: repo}
}

func (sc *SessionController) sessionIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "Invalid session id")
		return 0, false
	}
	return uint(id), true
}

// mapMembershipError translates repository sentinels into HTTP responses.
func mapMembershipError(ctx *gin.Context, err error) {
	switch err {
	case ErrSessionNotFound:
		utils.NotFoundJSON(ctx, "Session")
	case ErrAlreadyJoined:
		utils.ConflictJSON(ctx, "Already joined")
	case ErrSessionFull:
		utils.ConflictJSON(ctx, "Session is full")
	case ErrHostJoin:
		utils.BadRequestJSON(ctx, "Host cannot join own session")
	case ErrNotParticipant:
		utils.BadRequestJSON(ctx, "Not a participant")
	case ErrHostSoleParticipant:
		utils.BadRequestJSON(ctx, "Host cannot leave as the only participant, cancel the session instead")
	case ErrNotHost:
		utils.ForbiddenJSON(ctx, "Only the host can cancel this session")
	default:
		utils.InternalErrorJSON(ctx, err)
	}
}

// CreateSession godoc
// @Summary Create a session
// @Description Creates a sports session hosted by the authenticated user. When count_host_in is set the host occupies the first slot.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body SessionInput true "Session details"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} utils.ValidationErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /sessions [post]
func (sc *SessionController) CreateSession(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	var input SessionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid session payload", toFields(validator.ParseError(err)))
		return
	}
	if err := sport.ValidateRange(input.Sport, input.SkillLevelStart, input.SkillLevelEnd); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}
	if _, err := time.ParseInLocation(startLayout, input.Date+" "+input.Time, time.Local); err != nil {
		utils.BadRequestJSON(ctx, "Invalid date or time, expected YYYY-MM-DD and HH:MM")
		return
	}
	if input.EndDate != "" && input.EndTime != "" {
		if _, err := time.ParseInLocation(startLayout, input.EndDate+" "+input.EndTime, time.Local); err != nil {
			utils.BadRequestJSON(ctx, "Invalid end date or time, expected YYYY-MM-DD and HH:MM")
			return
		}
	}

	s := Session{
		Sport:           input.Sport,
		Venue:           input.Venue,
		Court:           input.Court,
		Date:            input.Date,
		Time:            input.Time,
		EndDate:         input.EndDate,
		EndTime:         input.EndTime,
		SkillLevelStart: input.SkillLevelStart,
		SkillLevelEnd:   input.SkillLevelEnd,
		MaxPlayers:      input.MaxPlayers,
		Fee:             input.Fee,
		CountHostIn:     input.CountHostIn,
		Notes:           input.Notes,
		HostID:          userID,
	}
	if err := sc.repo.CreateSession(&s); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	created, err := sc.repo.GetSessionByID(s.ID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created.ToResponse(time.Now()))
}

// GetSessions godoc
// @Summary List sessions
// @Description Lists sessions that are upcoming or started within the last two hours. Optionally filtered by sport and sorted by start proximity.
// @Tags sessions
// @Produce json
// @Param sport query string false "Filter by sport"
// @Param sort query string false "Sort order" Enums(soonest, nearest)
// @Success 200 {array} SessionResponse
// @Router /sessions [get]
func (sc *SessionController) GetSessions(ctx *gin.Context) {
	var (
		sessions []Session
		err      error
	)
	if s := ctx.Query("sport"); s != "" {
		sessions, err = sc.repo.GetSessionsBySport(s)
	} else {
		sessions, err = sc.repo.GetSessions()
	}
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	now := time.Now()
	visible := FilterRelevant(sessions, now)
	if ctx.Query("sort") == "nearest" {
		SortByProximity(visible, now)
	} else {
		SortByStart(visible)
	}

	out := make([]SessionResponse, 0, len(visible))
	for i := range visible {
		out = append(out, visible[i].ToResponse(now))
	}
	ctx.JSON(http.StatusOK, out)
}

// GetSession godoc
// @Summary Get a session
// @Description Returns full session details including host, participants and the expired flag.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /sessions/{id} [get]
func (sc *SessionController) GetSession(ctx *gin.Context) {
	id, ok := sc.sessionIDParam(ctx)
	if !ok {
		return
	}
	s, err := sc.repo.GetSessionByID(id)
	if err != nil {
		mapMembershipError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s.ToResponse(time.Now()))
}

// GetHostedSessions godoc
// @Summary List hosted sessions
// @Description Lists the authenticated user's hosted sessions that are still visible, most recent first.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SessionResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /sessions/hosted [get]
func (sc *SessionController) GetHostedSessions(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}
	sessions, err := sc.repo.GetHostedSessions(userID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	now := time.Now()
	visible := FilterRelevant(sessions, now)
	SortByStartDesc(visible)

	out := make([]SessionResponse, 0, len(visible))
	for i := range visible {
		out = append(out, visible[i].ToResponse(now))
	}
	ctx.JSON(http.StatusOK, out)
}

// JoinSession godoc
// @Summary Join a session
// @Description Adds the authenticated user to the session if a slot is free.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /sessions/{id}/join [post]
func (sc *SessionController) JoinSession(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}
	id, ok := sc.sessionIDParam(ctx)
	if !ok {
		return
	}
	s, err := sc.repo.JoinSession(id, userID)
	if err != nil {
		mapMembershipError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s.ToResponse(time.Now()))
}

// LeaveSession godoc
// @Summary Leave a session
// @Description Removes the authenticated user from the session's participants.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /sessions/{id}/leave [post]
func (sc *SessionController) LeaveSession(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}
	id, ok := sc.sessionIDParam(ctx)
	if !ok {
		return
	}
	s, err := sc.repo.LeaveSession(id, userID)
	if err != nil {
		mapMembershipError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s.ToResponse(time.Now()))
}

// DeleteSession godoc
// @Summary Cancel a session
// @Description Cancels a session hosted by the authenticated user.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /sessions/{id} [delete]
func (sc *SessionController) DeleteSession(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}
	id, ok := sc.sessionIDParam(ctx)
	if !ok {
		return
	}
	if err := sc.repo.DeleteSession(id, userID); err != nil {
		mapMembershipError(ctx, err)
		return
	}
	utils.SuccessJSON(ctx, http.StatusOK, "Session cancelled", nil)
}

func toFields(m map[string]string) map[string]interface{} {
	fields := make(map[string]interface{}, len(m))
	for k, v := range m {
		fields[k] = v
	}
	return fields
}
