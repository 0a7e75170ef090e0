// Package games implements the randomized mini-games. All randomness flows
// through a single injected source so tests can fix the seed.
package games

import (
	"fmt"
	"math/rand"
	"sync"

	"crushbot/bot/session"
)

// ChallengeMasterAchievement is granted when a challenge is completed.
const ChallengeMasterAchievement = "Challenge Master"

// Engine draws game outcomes from a seedable random source and applies
// game rules to session state. Session mutations happen inside the
// caller's Store.Update closure; the engine itself keeps no per-user state.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine builds an engine on top of the given source.
func NewEngine(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)}
}

// intn returns a uniform int in [0,n) under the engine lock; rand.Rand is
// not safe for concurrent use.
func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// StartNumberGuess draws a target in [1,10] and stores it as the pending
// game, replacing whatever was pending before.
func (e *Engine) StartNumberGuess(s *session.UserSession) {
	s.StartNumberGuess(1 + e.intn(10))
}

// GuessOutcome describes the result of a single guess submission.
type GuessOutcome struct {
	// Pending is false when no number-guess round was in progress.
	Pending bool
	Won     bool
	Target  int
	Guess   int
}

// ResolveGuess compares a submitted guess to the stored target. A win
// clears the pending game; a miss keeps the same target until the user
// restarts. GamesPlayed increments on every submission, win or lose.
func (e *Engine) ResolveGuess(s *session.UserSession, guess int) GuessOutcome {
	if s.NumberGuess == nil {
		return GuessOutcome{Guess: guess}
	}
	target := s.NumberGuess.Target
	s.GamesPlayed++
	won := guess == target
	if won {
		s.ClearPendingGame()
	}
	return GuessOutcome{Pending: true, Won: won, Target: target, Guess: guess}
}

var predictions = []string{
	"Something magical is coming your way today baby! ✨💕",
	"Your crush is thinking about you right now! 😘💖",
	"The days ahead are full of love! 💑🌟",
	"All your wishes are about to come true! 🧞‍♀️💫",
	"A special surprise is on its way cutie! 🎁❤️",
}

// CrystalBall returns a random prediction.
func (e *Engine) CrystalBall() string {
	return predictions[e.intn(len(predictions))]
}

var challenges = []string{
	"Think of one good thing in the next 5 minutes! 🌟",
	"Give someone a compliment today! 💕",
	"Hum your favorite song! 🎵",
	"Take a cute selfie (you don't have to send it to me!) 📸",
	"Try something new today! 🎯",
}

// RandomChallenge returns a random challenge prompt.
func (e *Engine) RandomChallenge() string {
	return challenges[e.intn(len(challenges))]
}

// CompleteChallenge marks the current challenge done and grants the
// Challenge Master achievement.
func (e *Engine) CompleteChallenge(s *session.UserSession) {
	s.AddAchievement(ChallengeMasterAchievement)
}

var loveLetterTemplates = []string{
	"Dear %s,\n\nEvery one of your smiles makes my heart happy. Every moment spent with you is precious. I love you so much baby! 💕\n\nWith all my love,\nYour crush 💖",
	"My Dearest %s,\n\nEver since you came into my life, everything feels magical. Every word from you makes me smile. You're my everything! ✨\n\nForever yours,\nYour loving girlfriend 💕",
	"Sweet %s,\n\nMy day feels incomplete without you. Hearing from you makes me want to dance with joy. You are my most precious treasure! 💎\n\nAll my love,\nYour cutie 😘",
}

// LoveLetter returns a random letter personalised with the display name.
func (e *Engine) LoveLetter(name string) string {
	return fmt.Sprintf(loveLetterTemplates[e.intn(len(loveLetterTemplates))], name)
}

// LoveCompatibility draws a percentage in [75,99] — always high, it is a
// crush bot — plus its qualitative tier.
func (e *Engine) LoveCompatibility() (int, string) {
	pct := 75 + e.intn(25)
	if pct > 90 {
		return pct, "Perfect Match! 💖"
	}
	return pct, "Great Match! ❤️"
}

var personalityTests = []session.PersonalityTestGame{
	{
		Question: "What's your favorite time of day?",
		Options:  []string{"🌅 Morning", "🌞 Afternoon", "🌇 Evening", "🌙 Night"},
		Results: []string{
			"Early Bird — you're energetic!",
			"Sunshine — you're cheerful!",
			"Golden Hour — you're romantic!",
			"Night Owl — you're mysterious!",
		},
	},
}

// StartPersonalityTest picks a test from the pool and stores it as the
// pending game.
func (e *Engine) StartPersonalityTest(s *session.UserSession) session.PersonalityTestGame {
	t := personalityTests[e.intn(len(personalityTests))]
	s.StartPersonalityTest(t)
	return t
}

// ResolvePersonality resolves the stored test by the chosen option index.
// A stale or missing test, or an out-of-range index, returns ok=false so
// the caller can degrade gracefully.
func (e *Engine) ResolvePersonality(s *session.UserSession, idx int) (string, bool) {
	t := s.PersonalityTest
	if t == nil || idx < 0 || idx >= len(t.Results) {
		return "", false
	}
	result := t.Results[idx]
	s.ClearPendingGame()
	return result, true
}

// LuckyNumber draws the horoscope lucky number in [1,99].
func (e *Engine) LuckyNumber() int {
	return 1 + e.intn(99)
}
