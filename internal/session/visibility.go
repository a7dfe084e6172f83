package session

import (
	"sort"
	"time"
)

// startLayout matches the stored "YYYY-MM-DD" + "HH:MM" pair.
const startLayout = "2006-01-02 15:04"

// graceWindow keeps a session listed for a while after it starts so late
// joiners can still find it.
const graceWindow = 2 * time.Hour

// StartsAt parses the session's scheduled start in local time. ok is false
// when the stored date or time is malformed.
func (s *Session) StartsAt() (time.Time, bool) {
	t, err := time.ParseInLocation(startLayout, s.Date+" "+s.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsUpcoming reports whether the session starts strictly after now.
func (s *Session) IsUpcoming(now time.Time) bool {
	start, ok := s.StartsAt()
	if !ok {
		return false
	}
	return start.After(now)
}

// IsRecentlyStarted reports whether the session started within the grace
// window, start inclusive.
func (s *Session) IsRecentlyStarted(now time.Time) bool {
	start, ok := s.StartsAt()
	if !ok {
		return false
	}
	return !start.After(now) && now.Sub(start) <= graceWindow
}

// IsRelevant reports whether the session should appear in listings: upcoming,
// or started within the grace window. Sessions whose stored date or time
// cannot be parsed stay visible rather than silently vanishing.
func (s *Session) IsRelevant(now time.Time) bool {
	start, ok := s.StartsAt()
	if !ok {
		return true
	}
	return start.After(now) || now.Sub(start) <= graceWindow
}

// IsExpired reports whether the session's start has passed. There is no grace
// here: an expired flag on a detail view means join and leave are pointless,
// even while the grace window still lists the session.
func (s *Session) IsExpired(now time.Time) bool {
	start, ok := s.StartsAt()
	if !ok {
		return false
	}
	return !start.After(now)
}

// FilterRelevant returns the sessions visible at now, preserving input order.
func FilterRelevant(sessions []Session, now time.Time) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.IsRelevant(now) {
			out = append(out, s)
		}
	}
	return out
}

// SortByStart orders sessions soonest first. Unparseable starts sort last.
func SortByStart(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, aok := sessions[i].StartsAt()
		b, bok := sessions[j].StartsAt()
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return a.Before(b)
	})
}

// SortByStartDesc orders sessions latest first, for hosted-session history.
func SortByStartDesc(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, aok := sessions[i].StartsAt()
		b, bok := sessions[j].StartsAt()
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		return a.After(b)
	})
}

// SortByProximity orders sessions by absolute distance from now, closest
// first. Already-started sessions inside the grace window can therefore rank
// ahead of far-future ones.
func SortByProximity(sessions []Session, now time.Time) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, aok := sessions[i].StartsAt()
		b, bok := sessions[j].StartsAt()
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		da := now.Sub(a)
		if da < 0 {
			da = -da
		}
		db := now.Sub(b)
		if db < 0 {
			db = -db
		}
		return da < db
	})
}
