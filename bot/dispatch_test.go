package bot

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"crushbot/bot/ai"
	"crushbot/bot/games"
	"crushbot/bot/screens"
	"crushbot/bot/session"
)

func newTestDispatcher() (*Dispatcher, session.Store) {
	store := session.NewMemoryStore()
	eng := games.NewEngine(rand.NewSource(1))
	orch := ai.NewOrchestrator(nil, 3*time.Second, rand.NewSource(1))
	d := NewDispatcher(store, screens.Default(eng), eng, orch)
	return d, store
}

func viewHasAction(v screens.View, action string) bool {
	for _, row := range v.Rows {
		for _, btn := range row {
			if btn.Action == action {
				return true
			}
		}
	}
	return false
}

func TestCommandRendersScreen(t *testing.T) {
	d, _ := newTestDispatcher()
	v := d.Command(1, "Sam", "start")
	if !strings.Contains(v.Text, "Sam") {
		t.Fatalf("main screen should greet by name: %q", v.Text)
	}
	if !viewHasAction(v, screens.Games) || !viewHasAction(v, screens.Settings) {
		t.Fatal("main screen is missing its menu entries")
	}
}

func TestUnknownCommandDegrades(t *testing.T) {
	d, _ := newTestDispatcher()
	v := d.Command(1, "Sam", "bogus")
	if !strings.Contains(v.Text, "Coming soon") {
		t.Fatalf("expected the not-available view, got %q", v.Text)
	}
}

func TestButtonPressCountsInteractions(t *testing.T) {
	d, store := newTestDispatcher()
	d.ButtonPress(1, "Sam", screens.Games)
	d.ButtonPress(1, "Sam", "no_such_action")

	s, _ := store.View(1)
	if s.InteractionCount != 2 {
		t.Fatalf("interactions = %d, expected every press to count", s.InteractionCount)
	}
}

func TestNumberGuessFlow(t *testing.T) {
	d, store := newTestDispatcher()

	v := d.ButtonPress(1, "Sam", "game_number_guess")
	if !viewHasAction(v, "guess_1") || !viewHasAction(v, "guess_10") {
		t.Fatal("guess keyboard should offer 1 through 10")
	}

	s, _ := store.View(1)
	if s.NumberGuess == nil {
		t.Fatal("expected a pending round after starting the game")
	}
	target := s.NumberGuess.Target

	wrong := target%10 + 1
	v = d.ButtonPress(1, "Sam", "guess_"+strconv.Itoa(wrong))
	if !strings.Contains(v.Text, "Try Again") {
		t.Fatalf("expected a miss view, got %q", v.Text)
	}
	s, _ = store.View(1)
	if s.GamesPlayed != 1 {
		t.Fatalf("games played = %d, expected miss to count", s.GamesPlayed)
	}
	if s.NumberGuess == nil || s.NumberGuess.Target != target {
		t.Fatal("miss should keep the same target")
	}

	v = d.ButtonPress(1, "Sam", "guess_"+strconv.Itoa(target))
	if !strings.Contains(v.Text, "Congratulations") {
		t.Fatalf("expected a win view, got %q", v.Text)
	}
	s, _ = store.View(1)
	if s.GamesPlayed != 2 {
		t.Fatalf("games played = %d, expected 2 after two submissions", s.GamesPlayed)
	}
	if s.NumberGuess != nil {
		t.Fatal("win should clear the round")
	}
}

func TestGuessWithoutRoundIsGraceful(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "guess_5")
	if !viewHasAction(v, "game_number_guess") {
		t.Fatal("stale guess should offer a fresh game")
	}
	s, _ := store.View(1)
	if s.GamesPlayed != 0 {
		t.Fatalf("games played = %d, stale guess must not count", s.GamesPlayed)
	}
}

func TestMoodSelectionRecordsAndOffersFollowups(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "mood_happy")
	if !viewHasAction(v, "mood_tips_happy") || !viewHasAction(v, "mood_music_happy") {
		t.Fatal("mood ack should offer tips and music for that mood")
	}

	s, _ := store.View(1)
	if s.Mood != "happy" {
		t.Fatalf("mood = %q, expected happy", s.Mood)
	}
	if len(s.MoodHistory) != 1 || s.MoodHistory[0] != "happy" {
		t.Fatalf("history = %v", s.MoodHistory)
	}
}

func TestMoodTipsDoesNotChangeMood(t *testing.T) {
	d, store := newTestDispatcher()
	d.ButtonPress(1, "Sam", "mood_sad")
	d.ButtonPress(1, "Sam", "mood_tips_happy")
	d.ButtonPress(1, "Sam", "mood_music_happy")

	s, _ := store.View(1)
	if s.Mood != "sad" {
		t.Fatalf("mood = %q, tips and music must not change it", s.Mood)
	}
	if len(s.MoodHistory) != 1 {
		t.Fatalf("history = %v, expected a single selection", s.MoodHistory)
	}
}

func TestOpenMoodVocabulary(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "mood_nostalgic")
	if strings.TrimSpace(v.Text) == "" {
		t.Fatal("unknown moods still deserve a reply")
	}
	s, _ := store.View(1)
	if s.Mood != "nostalgic" {
		t.Fatalf("mood = %q, expected the open vocabulary to record it", s.Mood)
	}
}

func TestZodiacSelectionShowsReading(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "zodiac_leo")
	if !strings.Contains(v.Text, "Leo") || !strings.Contains(v.Text, "Lucky Number") {
		t.Fatalf("expected a leo reading, got %q", v.Text)
	}
	s, _ := store.View(1)
	if s.ZodiacSign != "leo" {
		t.Fatalf("sign = %q", s.ZodiacSign)
	}

	v = d.ButtonPress(1, "Sam", "zodiac_dragon")
	if !strings.Contains(v.Text, "Coming soon") {
		t.Fatalf("invalid sign should degrade, got %q", v.Text)
	}
	s, _ = store.View(1)
	if s.ZodiacSign != "leo" {
		t.Fatal("invalid sign must not overwrite the stored one")
	}
}

func TestChangeZodiacReopensChooser(t *testing.T) {
	d, store := newTestDispatcher()
	d.ButtonPress(1, "Sam", "zodiac_leo")
	v := d.ButtonPress(1, "Sam", "change_zodiac")
	if !viewHasAction(v, "zodiac_aries") {
		t.Fatal("expected the sign chooser after a reset")
	}
	s, _ := store.View(1)
	if s.ZodiacSign != "" {
		t.Fatalf("sign = %q, expected cleared", s.ZodiacSign)
	}
}

func TestNotificationToggle(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "setting_notifications")
	if !strings.Contains(v.Text, "Disabled") {
		t.Fatalf("first toggle should disable, got %q", v.Text)
	}
	s, _ := store.View(1)
	if s.NotificationsEnabled {
		t.Fatal("expected notifications off")
	}

	v = d.ButtonPress(1, "Sam", "setting_notifications")
	if !strings.Contains(v.Text, "Enabled") {
		t.Fatalf("second toggle should enable, got %q", v.Text)
	}
}

func TestChatStyleSelection(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "style_Flirty")
	if !strings.Contains(v.Text, "Flirty") {
		t.Fatalf("ack should name the style, got %q", v.Text)
	}
	s, _ := store.View(1)
	if s.ChatStyle != "Flirty" {
		t.Fatalf("style = %q", s.ChatStyle)
	}

	d.ButtonPress(1, "Sam", "style_Sassy")
	s, _ = store.View(1)
	if s.ChatStyle != "Flirty" {
		t.Fatal("unknown style must not overwrite the stored one")
	}
}

func TestPersonalityFlow(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "game_personality")
	if !viewHasAction(v, "personality_0") {
		t.Fatal("test screen should offer answer buttons")
	}

	v = d.ButtonPress(1, "Sam", "personality_2")
	if !strings.Contains(v.Text, "Result") {
		t.Fatalf("expected a result view, got %q", v.Text)
	}
	s, _ := store.View(1)
	if s.HasPendingGame() {
		t.Fatal("answer should clear the pending test")
	}

	v = d.ButtonPress(1, "Sam", "personality_0")
	if !viewHasAction(v, "game_personality") {
		t.Fatal("stale answer should offer a fresh test")
	}
}

func TestChallengeCompleteGrantsAchievement(t *testing.T) {
	d, store := newTestDispatcher()
	d.ButtonPress(1, "Sam", "game_challenge")
	v := d.ButtonPress(1, "Sam", "challenge_complete")
	if !strings.Contains(v.Text, games.ChallengeMasterAchievement) {
		t.Fatalf("ack should name the achievement, got %q", v.Text)
	}
	s, _ := store.View(1)
	if len(s.Achievements) != 1 || s.Achievements[0] != games.ChallengeMasterAchievement {
		t.Fatalf("achievements = %v", s.Achievements)
	}
}

func TestFreeTextCountsAndReplies(t *testing.T) {
	d, store := newTestDispatcher()
	reply := d.FreeText(context.Background(), 1, "Sam", "hello!")
	if reply == "" {
		t.Fatal("free text must always get a reply")
	}
	s, _ := store.View(1)
	if s.MessageCount != 1 {
		t.Fatalf("messages = %d, expected 1", s.MessageCount)
	}
}

func TestUsersDoNotShareState(t *testing.T) {
	d, store := newTestDispatcher()
	d.ButtonPress(1, "A", "mood_happy")
	d.ButtonPress(2, "B", "style_Caring")

	a, _ := store.View(1)
	b, _ := store.View(2)
	if a.ChatStyle != session.DefaultChatStyle {
		t.Fatalf("user A style = %q, expected default", a.ChatStyle)
	}
	if b.Mood != "" {
		t.Fatalf("user B mood = %q, expected empty", b.Mood)
	}
}

func TestExactScreenIDBeatsPrefix(t *testing.T) {
	d, store := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", screens.ChatStyle)
	if !viewHasAction(v, "style_Sweet") {
		t.Fatal("setting_chat_style should render the style screen, not a setting change")
	}
	s, _ := store.View(1)
	if !s.NotificationsEnabled {
		t.Fatal("rendering a screen must not mutate settings")
	}
}

func TestLoveCalcAndCrystalBallViews(t *testing.T) {
	d, _ := newTestDispatcher()
	v := d.ButtonPress(1, "Sam", "game_love_calc")
	if !strings.Contains(v.Text, "%") {
		t.Fatalf("love calc should show a percentage, got %q", v.Text)
	}
	v = d.ButtonPress(1, "Sam", "game_crystal_ball")
	if !viewHasAction(v, "game_crystal_ball") {
		t.Fatal("crystal ball should offer a redraw")
	}
	v = d.ButtonPress(1, "Sam", "game_love_letter")
	if !strings.Contains(v.Text, "Sam") {
		t.Fatalf("love letter should address the user, got %q", v.Text)
	}
}
