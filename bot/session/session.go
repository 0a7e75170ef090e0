// Package session holds the per-user state record and the store that
// guards it. The store, not its callers, owns the atomicity of compound
// read-modify-write sequences for a single user.
package session

import "time"

// MoodHistoryLimit bounds the mood history to the most recent entries.
const MoodHistoryLimit = 10

// DefaultChatStyle is the chat style a fresh session starts with.
const DefaultChatStyle = "Sweet"

// NumberGuessGame holds the state of an in-progress number guessing round.
type NumberGuessGame struct {
	Target int `json:"target"`
}

// PersonalityTestGame holds the question presented to the user together
// with its option and result pairs, resolved later by the chosen index.
type PersonalityTestGame struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Results  []string `json:"results"`
}

// UserSession is the mutable per-user record. All fields are owned by the
// Store; handlers mutate them only inside Store.Update closures.
type UserSession struct {
	DisplayName          string               `json:"display_name"`
	JoinedAt             time.Time            `json:"joined_at"`
	Mood                 string               `json:"mood,omitempty"`
	ChatStyle            string               `json:"chat_style"`
	NotificationsEnabled bool                 `json:"notifications_enabled"`
	MessageCount         uint64               `json:"message_count"`
	GamesPlayed          uint64               `json:"games_played"`
	InteractionCount     uint64               `json:"interaction_count"`
	MoodHistory          []string             `json:"mood_history,omitempty"`
	Achievements         []string             `json:"achievements,omitempty"`
	ZodiacSign           string               `json:"zodiac_sign,omitempty"`
	NumberGuess          *NumberGuessGame     `json:"number_guess,omitempty"`
	PersonalityTest      *PersonalityTestGame `json:"personality_test,omitempty"`
}

// Store is the session storage abstraction. Lookups never fail: missing
// sessions materialize with defaults. Implementations must allow concurrent
// access for different user ids without serializing unrelated users, while
// keeping Update atomic per user.
type Store interface {
	// GetOrCreate returns a snapshot of the user's session, creating it
	// with defaults on first access.
	GetOrCreate(userID int64, displayName string) UserSession

	// View returns a snapshot without creating anything.
	View(userID int64) (UserSession, bool)

	// Update runs fn against the live session under the per-user lock and
	// returns the post-mutation snapshot. The session is created first if
	// absent.
	Update(userID int64, displayName string, fn func(*UserSession)) UserSession
}

func newSession(displayName string, now time.Time) *UserSession {
	return &UserSession{
		DisplayName:          displayName,
		JoinedAt:             now,
		ChatStyle:            DefaultChatStyle,
		NotificationsEnabled: true,
	}
}

// clone returns a deep copy so snapshots never alias store-owned memory.
func (s *UserSession) clone() UserSession {
	out := *s
	if s.MoodHistory != nil {
		out.MoodHistory = append([]string(nil), s.MoodHistory...)
	}
	if s.Achievements != nil {
		out.Achievements = append([]string(nil), s.Achievements...)
	}
	if s.NumberGuess != nil {
		g := *s.NumberGuess
		out.NumberGuess = &g
	}
	if s.PersonalityTest != nil {
		t := *s.PersonalityTest
		t.Options = append([]string(nil), s.PersonalityTest.Options...)
		t.Results = append([]string(nil), s.PersonalityTest.Results...)
		out.PersonalityTest = &t
	}
	return out
}

// RecordMood sets the current mood and appends it to the history, evicting
// the oldest entries beyond MoodHistoryLimit.
func (s *UserSession) RecordMood(tag string) {
	s.Mood = tag
	s.MoodHistory = append(s.MoodHistory, tag)
	if n := len(s.MoodHistory); n > MoodHistoryLimit {
		s.MoodHistory = append([]string(nil), s.MoodHistory[n-MoodHistoryLimit:]...)
	}
}

// AddAchievement records a label once, preserving insertion order.
func (s *UserSession) AddAchievement(label string) {
	for _, a := range s.Achievements {
		if a == label {
			return
		}
	}
	s.Achievements = append(s.Achievements, label)
}

// StartNumberGuess stores a fresh number-guess round, replacing any
// pending game.
func (s *UserSession) StartNumberGuess(target int) {
	s.NumberGuess = &NumberGuessGame{Target: target}
	s.PersonalityTest = nil
}

// StartPersonalityTest stores a personality test, replacing any pending game.
func (s *UserSession) StartPersonalityTest(t PersonalityTestGame) {
	s.PersonalityTest = &t
	s.NumberGuess = nil
}

// ClearPendingGame drops whatever game is in progress.
func (s *UserSession) ClearPendingGame() {
	s.NumberGuess = nil
	s.PersonalityTest = nil
}

// HasPendingGame reports whether any game round is in progress.
func (s *UserSession) HasPendingGame() bool {
	return s.NumberGuess != nil || s.PersonalityTest != nil
}

// DaysTogether returns whole days elapsed since the session was created.
func (s *UserSession) DaysTogether(now time.Time) int {
	if s.JoinedAt.IsZero() || now.Before(s.JoinedAt) {
		return 0
	}
	return int(now.Sub(s.JoinedAt).Hours() / 24)
}
