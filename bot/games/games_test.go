package games

import (
	"math/rand"
	"strings"
	"testing"

	"crushbot/bot/session"
)

func newTestEngine() *Engine {
	return NewEngine(rand.NewSource(1))
}

func TestStartNumberGuessRange(t *testing.T) {
	eng := newTestEngine()
	for i := 0; i < 200; i++ {
		var s session.UserSession
		eng.StartNumberGuess(&s)
		if s.NumberGuess == nil {
			t.Fatal("expected a pending number guess")
		}
		if got := s.NumberGuess.Target; got < 1 || got > 10 {
			t.Fatalf("target = %d, expected within [1,10]", got)
		}
	}
}

func TestResolveGuessWinClearsAndCounts(t *testing.T) {
	eng := newTestEngine()
	var s session.UserSession
	eng.StartNumberGuess(&s)
	target := s.NumberGuess.Target

	out := eng.ResolveGuess(&s, target)
	if !out.Pending || !out.Won {
		t.Fatalf("outcome = %+v, expected a pending win", out)
	}
	if s.NumberGuess != nil {
		t.Fatal("win should clear the pending game")
	}
	if s.GamesPlayed != 1 {
		t.Fatalf("games played = %d, expected 1", s.GamesPlayed)
	}
}

func TestResolveGuessMissKeepsTargetAndCounts(t *testing.T) {
	eng := newTestEngine()
	var s session.UserSession
	eng.StartNumberGuess(&s)
	target := s.NumberGuess.Target

	wrong := target + 1
	if wrong > 10 {
		wrong = target - 1
	}
	out := eng.ResolveGuess(&s, wrong)
	if !out.Pending || out.Won {
		t.Fatalf("outcome = %+v, expected a pending miss", out)
	}
	if s.NumberGuess == nil || s.NumberGuess.Target != target {
		t.Fatal("miss should keep the same target")
	}
	if s.GamesPlayed != 1 {
		t.Fatalf("games played = %d, expected increment on a miss too", s.GamesPlayed)
	}

	out = eng.ResolveGuess(&s, target)
	if !out.Won {
		t.Fatal("expected win on the retained target")
	}
	if s.GamesPlayed != 2 {
		t.Fatalf("games played = %d, expected 2 after two submissions", s.GamesPlayed)
	}
}

func TestResolveGuessWithoutPendingGame(t *testing.T) {
	eng := newTestEngine()
	var s session.UserSession
	out := eng.ResolveGuess(&s, 5)
	if out.Pending {
		t.Fatal("expected no pending round")
	}
	if s.GamesPlayed != 0 {
		t.Fatalf("games played = %d, a stale guess must not count", s.GamesPlayed)
	}
}

func TestLoveCompatibilityRangeAndTier(t *testing.T) {
	eng := newTestEngine()
	sawPerfect, sawGreat := false, false
	for i := 0; i < 500; i++ {
		pct, tier := eng.LoveCompatibility()
		if pct < 75 || pct > 99 {
			t.Fatalf("compatibility = %d, expected within [75,99]", pct)
		}
		switch {
		case pct > 90:
			if !strings.Contains(tier, "Perfect Match") {
				t.Fatalf("pct %d got tier %q", pct, tier)
			}
			sawPerfect = true
		default:
			if !strings.Contains(tier, "Great Match") {
				t.Fatalf("pct %d got tier %q", pct, tier)
			}
			sawGreat = true
		}
	}
	if !sawPerfect || !sawGreat {
		t.Fatal("expected both tiers across 500 draws")
	}
}

func TestLuckyNumberRange(t *testing.T) {
	eng := newTestEngine()
	for i := 0; i < 500; i++ {
		if n := eng.LuckyNumber(); n < 1 || n > 99 {
			t.Fatalf("lucky number = %d, expected within [1,99]", n)
		}
	}
}

func TestLoveLetterUsesName(t *testing.T) {
	eng := newTestEngine()
	letter := eng.LoveLetter("Sam")
	if !strings.Contains(letter, "Sam") {
		t.Fatalf("letter does not mention the name: %q", letter)
	}
}

func TestPersonalityTestLifecycle(t *testing.T) {
	eng := newTestEngine()
	var s session.UserSession
	test := eng.StartPersonalityTest(&s)
	if len(test.Options) == 0 || len(test.Options) != len(test.Results) {
		t.Fatalf("malformed test: %+v", test)
	}
	if s.PersonalityTest == nil {
		t.Fatal("expected a pending personality test")
	}

	result, ok := eng.ResolvePersonality(&s, 1)
	if !ok || result != test.Results[1] {
		t.Fatalf("result = %q ok=%v, expected %q", result, ok, test.Results[1])
	}
	if s.HasPendingGame() {
		t.Fatal("resolution should clear the pending test")
	}

	if _, ok := eng.ResolvePersonality(&s, 0); ok {
		t.Fatal("stale answer should not resolve")
	}
}

func TestPersonalityIndexOutOfRange(t *testing.T) {
	eng := newTestEngine()
	var s session.UserSession
	eng.StartPersonalityTest(&s)
	if _, ok := eng.ResolvePersonality(&s, 99); ok {
		t.Fatal("out-of-range index should not resolve")
	}
	if !s.HasPendingGame() {
		t.Fatal("failed resolution should keep the test pending")
	}
}

func TestCompleteChallengeGrantsAchievementOnce(t *testing.T) {
	eng := newTestEngine()
	var s session.UserSession
	eng.CompleteChallenge(&s)
	eng.CompleteChallenge(&s)
	if len(s.Achievements) != 1 || s.Achievements[0] != ChallengeMasterAchievement {
		t.Fatalf("achievements = %v", s.Achievements)
	}
}

func TestDrawsAreSeedDeterministic(t *testing.T) {
	a := NewEngine(rand.NewSource(7))
	b := NewEngine(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		if a.LuckyNumber() != b.LuckyNumber() {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}
