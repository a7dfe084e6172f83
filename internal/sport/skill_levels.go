package sport

import "fmt"

// SkillLevel is one tier in a sport's ordered ladder. Order is 1-indexed and
// strictly increasing within a sport.
type SkillLevel struct {
	Name        string `json:"name"`
	Order       int    `json:"order"`
	Description string `json:"description,omitempty"`
}

// SkillLevels maps a sport to its ordered tier ladder. Sports are free text;
// a sport missing from this table has no ladder and accepts any labels.
var SkillLevels = map[string][]SkillLevel{
	"Badminton": {
		{Name: "Low Beginner", Order: 1, Description: "Just for fun, learning basics"},
		{Name: "Mid Beginner", Order: 2, Description: "Know basic rules and strokes"},
		{Name: "High Beginner", Order: 3, Description: "Consistent rallies, good technique"},
		{Name: "Low Intermediate", Order: 4, Description: "Powerful smash, good backhand"},
		{Name: "Advanced", Order: 5, Description: "Strong tactical play, tournament level"},
		{Name: "Expert", Order: 6, Description: "Professional player, advanced techniques"},
	},
	"Tennis": {
		{Name: "Beginner", Order: 1, Description: "Learning basic strokes and rules"},
		{Name: "Intermediate", Order: 2, Description: "Can rally consistently"},
		{Name: "Advanced", Order: 3, Description: "Strong groundstrokes and serves"},
		{Name: "Tournament", Order: 4, Description: "Competitive tournament player"},
		{Name: "Professional", Order: 5, Description: "High-level competitive play"},
	},
	"Basketball": {
		{Name: "Casual", Order: 1, Description: "Just for fun and exercise"},
		{Name: "Recreational", Order: 2, Description: "Know basic rules and shooting"},
		{Name: "Intermediate", Order: 3, Description: "Good fundamentals and teamwork"},
		{Name: "Competitive", Order: 4, Description: "League or tournament experience"},
		{Name: "Elite", Order: 5, Description: "High-level competitive player"},
	},
	"Table Tennis": {
		{Name: "Beginner", Order: 1, Description: "Learning basic strokes"},
		{Name: "Recreational", Order: 2, Description: "Can play basic rallies"},
		{Name: "Intermediate", Order: 3, Description: "Good spin and placement"},
		{Name: "Advanced", Order: 4, Description: "Tournament level play"},
		{Name: "Expert", Order: 5, Description: "Competitive club player"},
	},
	"Volleyball": {
		{Name: "Beginner", Order: 1, Description: "Learning basic skills"},
		{Name: "Recreational", Order: 2, Description: "Can serve and pass"},
		{Name: "Intermediate", Order: 3, Description: "Good team coordination"},
		{Name: "Competitive", Order: 4, Description: "League or tournament play"},
		{Name: "Elite", Order: 5, Description: "High-level competitive player"},
	},
	"Football": {
		{Name: "Casual", Order: 1, Description: "Just for fun and fitness"},
		{Name: "Recreational", Order: 2, Description: "Know basic rules and skills"},
		{Name: "Intermediate", Order: 3, Description: "Good ball control and passing"},
		{Name: "Competitive", Order: 4, Description: "League or club experience"},
		{Name: "Elite", Order: 5, Description: "High-level competitive player"},
	},
}

// TierOrder returns the 1-indexed position of a skill label within the
// sport's ladder. ok is false when the sport has a ladder and the label is
// not on it, or when the sport has no ladder at all.
func TierOrder(sportName, level string) (int, bool) {
	levels, found := SkillLevels[sportName]
	if !found {
		return 0, false
	}
	for _, l := range levels {
		if l.Name == level {
			return l.Order, true
		}
	}
	return 0, false
}

// ValidateRange checks that (start, end) is a well-formed inclusive skill
// range for the sport: both labels on the ladder, start at or below end.
// Sports without a ladder accept any non-empty pair.
func ValidateRange(sportName, start, end string) error {
	if start == "" || end == "" {
		return fmt.Errorf("skill level range requires both start and end labels")
	}
	if _, found := SkillLevels[sportName]; !found {
		return nil
	}
	startOrder, ok := TierOrder(sportName, start)
	if !ok {
		return fmt.Errorf("unknown skill level %q for sport %q", start, sportName)
	}
	endOrder, ok := TierOrder(sportName, end)
	if !ok {
		return fmt.Errorf("unknown skill level %q for sport %q", end, sportName)
	}
	if startOrder > endOrder {
		return fmt.Errorf("skill level range start %q is above end %q", start, end)
	}
	return nil
}

// WithinRange reports whether a self-reported level falls inside the
// inclusive [start, end] range by tier order. Unknown sports and labels
// fail open.
func WithinRange(sportName, start, end, level string) bool {
	if _, found := SkillLevels[sportName]; !found {
		return true
	}
	levelOrder, ok := TierOrder(sportName, level)
	if !ok {
		return true
	}
	startOrder, okStart := TierOrder(sportName, start)
	endOrder, okEnd := TierOrder(sportName, end)
	if !okStart || !okEnd {
		return true
	}
	return levelOrder >= startOrder && levelOrder <= endOrder
}
