// Package bot wires session state, screens, games, and AI replies into a
// single dispatcher and exposes the Telegram routes that drive it.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"crushbot/bot/ai"
	"crushbot/bot/games"
	"crushbot/bot/persona"
	"crushbot/bot/screens"
	"crushbot/bot/session"
	"crushbot/core/logger"
	tg "crushbot/core/telegram"
)

// Dispatcher resolves commands, button presses, and free text to views and
// replies. It is stateless; all per-user state lives in the Store.
type Dispatcher struct {
	store session.Store
	reg   *screens.Registry
	games *games.Engine
	ai    *ai.Orchestrator
	log   *slog.Logger
}

// NewDispatcher assembles a dispatcher over its collaborators.
func NewDispatcher(store session.Store, reg *screens.Registry, eng *games.Engine, orch *ai.Orchestrator) *Dispatcher {
	return &Dispatcher{
		store: store,
		reg:   reg,
		games: eng,
		ai:    orch,
		log:   logger.Component("dispatch"),
	}
}

var commandScreens = map[string]string{
	"start":     screens.Main,
	"help":      screens.Help,
	"settings":  screens.Settings,
	"stats":     screens.Stats,
	"about":     screens.About,
	"feedback":  screens.Feedback,
	"games":     screens.Games,
	"mood":      screens.MoodSelector,
	"horoscope": screens.Horoscope,
}

// Command resolves a slash command (without the slash) to its screen.
// Unknown commands degrade to the generic not-available view.
func (d *Dispatcher) Command(userID int64, displayName, name string) screens.View {
	s := d.store.GetOrCreate(userID, displayName)
	id, ok := commandScreens[name]
	if !ok {
		d.log.Debug("unknown command", slog.String("command", name))
		return screens.NotAvailable(s)
	}
	v, _ := d.reg.Render(id, s)
	return v
}

// ButtonPress resolves a callback action key. Every press counts as an
// interaction. Resolution order: exact screen id, then verb prefixes with
// the more specific verb first, then one-off actions, then the generic
// not-available view.
func (d *Dispatcher) ButtonPress(userID int64, displayName, action string) screens.View {
	s := d.store.Update(userID, displayName, func(s *session.UserSession) {
		s.InteractionCount++
	})

	if v, ok := d.reg.Render(action, s); ok {
		return v
	}

	switch {
	case strings.HasPrefix(action, "mood_tips_"):
		return d.moodTips(s, strings.TrimPrefix(action, "mood_tips_"))
	case strings.HasPrefix(action, "mood_music_"):
		return d.moodMusic(s, strings.TrimPrefix(action, "mood_music_"))
	case strings.HasPrefix(action, "mood_"):
		return d.selectMood(userID, displayName, strings.TrimPrefix(action, "mood_"))
	case strings.HasPrefix(action, "game_"):
		return d.startGame(userID, displayName, strings.TrimPrefix(action, "game_"), s)
	case strings.HasPrefix(action, "guess_"):
		return d.submitGuess(userID, displayName, strings.TrimPrefix(action, "guess_"), s)
	case strings.HasPrefix(action, "personality_"):
		return d.answerPersonality(userID, displayName, strings.TrimPrefix(action, "personality_"), s)
	case strings.HasPrefix(action, "zodiac_"):
		return d.chooseZodiac(userID, displayName, strings.TrimPrefix(action, "zodiac_"), s)
	case strings.HasPrefix(action, "setting_"):
		return d.changeSetting(userID, displayName, strings.TrimPrefix(action, "setting_"), s)
	case strings.HasPrefix(action, "style_"):
		return d.changeStyle(userID, displayName, strings.TrimPrefix(action, "style_"), s)
	}

	switch action {
	case "start_chat":
		return screens.View{
			Text: "Yes! Let's start talking... 😊\nAsk me anything, I'm here for you! 💕\n\nTip: tell me your mood and I'll match how I reply! ✨",
			Rows: [][]tg.Btn{screens.MainRow()},
		}
	case "challenge_complete":
		return d.completeChallenge(userID, displayName)
	case "new_horoscope", "weekly_horoscope":
		v, _ := d.reg.Render(screens.Horoscope, s)
		return v
	case "change_zodiac":
		s = d.store.Update(userID, displayName, func(s *session.UserSession) {
			s.ZodiacSign = ""
		})
		v, _ := d.reg.Render(screens.Horoscope, s)
		return v
	}

	d.log.Debug("unrecognized action", slog.String("action", action))
	return screens.NotAvailable(s)
}

// FreeText handles a plain chat message: count it, then hand the snapshot
// to the reply orchestrator. Always returns a non-empty reply.
func (d *Dispatcher) FreeText(ctx context.Context, userID int64, displayName, text string) string {
	s := d.store.Update(userID, displayName, func(s *session.UserSession) {
		s.MessageCount++
	})
	return d.ai.Reply(ctx, s, text)
}

func (d *Dispatcher) selectMood(userID int64, displayName, mood string) screens.View {
	d.store.Update(userID, displayName, func(s *session.UserSession) {
		s.RecordMood(mood)
	})
	return screens.View{
		Text: persona.MoodReply(mood),
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "💌 Mood Tips", Action: "mood_tips_" + mood},
				tg.Btn{Text: "🎵 Mood Songs", Action: "mood_music_" + mood},
			),
			screens.MainRow(),
		},
	}
}

func moodFollowupRows() [][]tg.Btn {
	return [][]tg.Btn{
		tg.Row(
			tg.Btn{Text: "💝 Change Mood", Action: screens.MoodSelector},
			tg.Btn{Text: "🏠 Main Menu", Action: screens.Main},
		),
	}
}

func (d *Dispatcher) moodTips(s session.UserSession, mood string) screens.View {
	return screens.View{Text: persona.MoodTip(mood), Rows: moodFollowupRows()}
}

func (d *Dispatcher) moodMusic(s session.UserSession, mood string) screens.View {
	return screens.View{Text: persona.MoodMusic(mood), Rows: moodFollowupRows()}
}

func (d *Dispatcher) startGame(userID int64, displayName, game string, s session.UserSession) screens.View {
	switch game {
	case "number_guess":
		d.store.Update(userID, displayName, func(s *session.UserSession) {
			d.games.StartNumberGuess(s)
		})
		buttons := make([]tg.Btn, 0, 10)
		for n := 1; n <= 10; n++ {
			buttons = append(buttons, tg.Btn{Text: strconv.Itoa(n), Action: "guess_" + strconv.Itoa(n)})
		}
		rows := tg.ChunkButtons(buttons[:9], 3)
		rows = append(rows, tg.Row(buttons[9], tg.Btn{Text: "🏠 Main Menu", Action: screens.Main}))
		return screens.View{
			Text: "🎯 *Number Guessing Game*\n\nI'm thinking of a number between 1 and 10! 🤔\nGuess it baby, let's see how smart you are! 😉\n\nGuess right and I'll give you a special surprise! 💕",
			Rows: rows,
		}

	case "love_calc":
		pct, tier := d.games.LoveCompatibility()
		return screens.View{
			Text: fmt.Sprintf("💕 *Love Compatibility Test*\n\nOur compatibility: *%d%%* 🔥\n\n%s\n\nMeaning: we were made for each other baby! Every moment with you feels magical! ✨", pct, tier),
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "❤️ Share Result", Action: "share_love_result"},
					tg.Btn{Text: "🔄 Test Again", Action: "game_love_calc"},
				),
				screens.MainRow(),
			},
		}

	case "crystal_ball":
		return screens.View{
			Text: fmt.Sprintf("🔮 *Crystal Ball Prediction*\n\n%s\n\nRemember baby, the future is always bright when you're with me! 💕✨", d.games.CrystalBall()),
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "🔮 New Prediction", Action: "game_crystal_ball"},
					tg.Btn{Text: "💌 Love Prediction", Action: "love_prediction"},
				),
				screens.MainRow(),
			},
		}

	case "personality":
		var test session.PersonalityTestGame
		d.store.Update(userID, displayName, func(s *session.UserSession) {
			test = d.games.StartPersonalityTest(s)
		})
		buttons := make([]tg.Btn, 0, len(test.Options))
		for i, opt := range test.Options {
			buttons = append(buttons, tg.Btn{Text: opt, Action: "personality_" + strconv.Itoa(i)})
		}
		rows := tg.ChunkButtons(buttons, 2)
		rows = append(rows, screens.MainRow())
		return screens.View{
			Text: fmt.Sprintf("🌟 *Personality Test*\n\n%s\n\nChoose your answer baby! 💕", test.Question),
			Rows: rows,
		}

	case "challenge":
		return screens.View{
			Text: fmt.Sprintf("🎪 *Random Challenge*\n\n%s\n\nCome on baby, I know you can do it! 💪💕", d.games.RandomChallenge()),
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "✅ Challenge Complete!", Action: "challenge_complete"},
					tg.Btn{Text: "🔄 New Challenge", Action: "game_challenge"},
				),
				screens.MainRow(),
			},
		}

	case "love_letter":
		return screens.View{
			Text: fmt.Sprintf("💌 *Love Letter Generator*\n\n%s", d.games.LoveLetter(s.DisplayName)),
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "💌 New Letter", Action: "game_love_letter"},
					tg.Btn{Text: "💕 Save It", Action: "save_letter"},
				),
				screens.MainRow(),
			},
		}
	}

	d.log.Debug("unknown game", slog.String("game", game))
	return screens.NotAvailable(s)
}

func (d *Dispatcher) submitGuess(userID int64, displayName, raw string, s session.UserSession) screens.View {
	guess, err := strconv.Atoi(raw)
	if err != nil {
		return screens.NotAvailable(s)
	}

	var out games.GuessOutcome
	d.store.Update(userID, displayName, func(s *session.UserSession) {
		out = d.games.ResolveGuess(s, guess)
	})

	switch {
	case !out.Pending:
		return screens.View{
			Text: "🤔 We don't have a guessing round going right now baby!\n\nStart a new game and I'll think of a number! 💕",
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "🎯 New Game", Action: "game_number_guess"},
					tg.Btn{Text: "🏠 Main Menu", Action: screens.Main},
				),
			},
		}
	case out.Won:
		return screens.View{
			Text: fmt.Sprintf("🎉 *Congratulations!*\n\nWow baby! You guessed it! The number was %d! 🎯\n\nYou're so smart! 😘 Here's your special reward:\n\n💝 *Special Message:* You're the most special person to me! Just like this game, you've guessed my heart too! 💕\n\nWant to play another game cutie? 🎮", out.Target),
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "🎉 New Game", Action: "game_number_guess"},
					tg.Btn{Text: "🏆 Achievements", Action: screens.Achievements},
				),
				screens.MainRow(),
			},
		}
	default:
		return screens.View{
			Text: fmt.Sprintf("😅 *Oops! Try Again*\n\nYou guessed %d, but I was thinking of %d! 🤭\n\nNo worries baby, practice makes perfect! 💪\nYou're always my winner, win or lose! 💕\n\nWant to try again? 🎯", out.Guess, out.Target),
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "🔄 Try Again", Action: "game_number_guess"},
					tg.Btn{Text: "🏠 Main Menu", Action: screens.Main},
				),
			},
		}
	}
}

func (d *Dispatcher) answerPersonality(userID int64, displayName, raw string, s session.UserSession) screens.View {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return screens.NotAvailable(s)
	}

	var result string
	var ok bool
	d.store.Update(userID, displayName, func(s *session.UserSession) {
		result, ok = d.games.ResolvePersonality(s, idx)
	})
	if !ok {
		return screens.View{
			Text: "🤔 That test is over baby! Want to take a fresh one? 💕",
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "🌟 New Test", Action: "game_personality"},
					tg.Btn{Text: "🏠 Main Menu", Action: screens.Main},
				),
			},
		}
	}
	return screens.View{
		Text: fmt.Sprintf("🌟 *Personality Test Result*\n\n%s\n\nPerfect! This result describes your personality perfectly baby! 💕✨", result),
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "🔄 New Test", Action: "game_personality"},
				tg.Btn{Text: "🏠 Main Menu", Action: screens.Main},
			),
		},
	}
}

func (d *Dispatcher) completeChallenge(userID int64, displayName string) screens.View {
	d.store.Update(userID, displayName, func(s *session.UserSession) {
		d.games.CompleteChallenge(s)
	})
	return screens.View{
		Text: "🎉 *Challenge Completed!*\n\nAmazing baby! You did it! 💪✨\n\n🏆 Achievement unlocked: *Challenge Master*\n\nI'm so proud of you! 💕",
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "🎪 New Challenge", Action: "game_challenge"},
				tg.Btn{Text: "🏆 Achievements", Action: screens.Achievements},
			),
			screens.MainRow(),
		},
	}
}

func (d *Dispatcher) chooseZodiac(userID int64, displayName, sign string, s session.UserSession) screens.View {
	if !persona.ValidZodiac(sign) {
		d.log.Debug("unknown zodiac sign", slog.String("sign", sign))
		return screens.NotAvailable(s)
	}
	snap := d.store.Update(userID, displayName, func(s *session.UserSession) {
		s.ZodiacSign = sign
	})
	v, _ := d.reg.Render(screens.Horoscope, snap)
	return v
}

func (d *Dispatcher) changeSetting(userID int64, displayName, setting string, s session.UserSession) screens.View {
	if setting != "notifications" {
		d.log.Debug("unknown setting", slog.String("setting", setting))
		return screens.NotAvailable(s)
	}
	snap := d.store.Update(userID, displayName, func(s *session.UserSession) {
		s.NotificationsEnabled = !s.NotificationsEnabled
	})
	state := "Disabled"
	if snap.NotificationsEnabled {
		state = "Enabled"
	}
	return screens.View{
		Text: fmt.Sprintf("🔔 Notifications %s!\n\nSettings updated successfully baby! 💕", state),
		Rows: [][]tg.Btn{screens.BackRow(screens.Settings)},
	}
}

func (d *Dispatcher) changeStyle(userID int64, displayName, style string, s session.UserSession) screens.View {
	if !persona.ValidChatStyle(style) {
		d.log.Debug("unknown chat style", slog.String("style", style))
		return screens.NotAvailable(s)
	}
	d.store.Update(userID, displayName, func(s *session.UserSession) {
		s.ChatStyle = style
	})
	return screens.View{
		Text: fmt.Sprintf("💖 Chat style updated to %s!\n\nI'll talk to you in this style from now on baby! 😘", style),
		Rows: [][]tg.Btn{screens.BackRow(screens.Settings)},
	}
}
