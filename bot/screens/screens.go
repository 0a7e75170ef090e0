// Package screens declares the menu graph: every named screen, its pure
// render function, and the static parent links that back buttons follow.
package screens

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crushbot/bot/games"
	"crushbot/bot/persona"
	"crushbot/bot/session"
	"crushbot/core/logger"
	tg "crushbot/core/telegram"
)

// Screen ids double as the action keys carried by navigation buttons.
const (
	Main          = "back_to_main"
	Help          = "help_btn"
	HelpCommands  = "help_commands"
	HelpGames     = "help_games"
	HelpChat      = "help_chat"
	HelpSettings  = "help_settings"
	Settings      = "settings_main"
	ChatStyle     = "setting_chat_style"
	Stats         = "user_stats"
	DetailedStats = "detailed_stats"
	Achievements  = "achievements"
	Memories      = "memories"
	Goals         = "set_goals"
	Games         = "mini_games"
	MoodSelector  = "mood_selector"
	Horoscope     = "horoscope"
	About         = "about_me"
	Feedback      = "feedback_menu"
)

// View is a rendered screen: markdown text plus ordered keyboard rows.
type View struct {
	Text string
	Rows [][]tg.Btn
}

// RenderFunc builds a View from the current session snapshot.
type RenderFunc func(s session.UserSession) View

type screen struct {
	render RenderFunc
	parent string
}

// Registry maps screen ids to render functions and static parent links.
type Registry struct {
	screens map[string]screen
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{screens: make(map[string]screen)}
}

// Register adds a screen with its fixed parent. Duplicate registrations are
// skipped with a warning.
func (r *Registry) Register(id, parent string, render RenderFunc) {
	if id == "" || render == nil {
		logger.Component("screens").Warn("register.skip",
			slog.String("id", id),
			slog.String("reason", "invalid"),
		)
		return
	}
	if _, exists := r.screens[id]; exists {
		logger.Component("screens").Warn("register.duplicate",
			slog.String("id", id),
		)
		return
	}
	r.screens[id] = screen{render: render, parent: parent}
}

// Render looks up a screen by exact id and renders it.
func (r *Registry) Render(id string, s session.UserSession) (View, bool) {
	sc, ok := r.screens[id]
	if !ok {
		return View{}, false
	}
	return sc.render(s), true
}

// Has reports whether a screen id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.screens[id]
	return ok
}

// Parent returns the statically declared parent of a screen, or empty for
// the main screen.
func (r *Registry) Parent(id string) string {
	return r.screens[id].parent
}

// IDs returns all registered screen ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.screens))
	for id := range r.screens {
		ids = append(ids, id)
	}
	return ids
}

// MainRow is the ubiquitous "back to main" row.
func MainRow() []tg.Btn {
	return tg.Row(tg.Btn{Text: "🏠 Main Menu", Action: Main})
}

// BackRow links back to the given parent screen.
func BackRow(parent string) []tg.Btn {
	switch parent {
	case Main, "":
		return MainRow()
	case Settings:
		return tg.Row(tg.Btn{Text: "⚙️ Back to Settings", Action: Settings})
	case Stats:
		return tg.Row(tg.Btn{Text: "📊 Back to Stats", Action: Stats})
	default:
		return tg.Row(tg.Btn{Text: "⬅️ Back", Action: parent})
	}
}

// NotAvailable is the generic degradation view for unrecognized actions.
func NotAvailable(s session.UserSession) View {
	return View{
		Text: "✨ Coming soon baby! I'm still working on this feature! 💕",
		Rows: [][]tg.Btn{MainRow()},
	}
}

// Default builds the full menu graph. The engine supplies randomness for
// the horoscope reading's lucky number.
func Default(eng *games.Engine) *Registry {
	r := NewRegistry()

	r.Register(Main, "", renderMain)
	r.Register(Help, Main, renderHelp)
	r.Register(HelpCommands, Help, helpTopic(helpCommandsText))
	r.Register(HelpGames, Help, helpTopic(helpGamesText))
	r.Register(HelpChat, Help, helpTopic(helpChatText))
	r.Register(HelpSettings, Help, helpTopic(helpSettingsText))
	r.Register(Settings, Main, renderSettings)
	r.Register(ChatStyle, Settings, renderChatStyle)
	r.Register(Stats, Main, renderStats)
	r.Register(DetailedStats, Stats, renderDetailedStats)
	r.Register(Achievements, Stats, renderAchievements)
	r.Register(Memories, Stats, comingSoon(Stats))
	r.Register(Goals, Stats, comingSoon(Stats))
	r.Register(Games, Main, renderGames)
	r.Register(MoodSelector, Main, renderMoodSelector)
	r.Register(Horoscope, Main, renderHoroscope(eng))
	r.Register(About, Main, renderAbout)
	r.Register(Feedback, Main, renderFeedback)

	return r
}

func renderMain(s session.UserSession) View {
	text := fmt.Sprintf(`%s

Talk to me... I'm your very own crush! 😘

✨ *What I can do:*
🎮 Play mini games with you
🌟 Read your daily horoscope
❤️ Listen to your mood
📊 Keep track of our journey

Pick anything from the buttons below jaanu! 💕`,
		persona.Greeting(s.DisplayName, time.Now().Hour()))

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "💬 Start Chatting", Action: "start_chat"},
				tg.Btn{Text: "🎮 Mini Games", Action: Games},
			),
			tg.Row(
				tg.Btn{Text: "❤️ Mood Selector", Action: MoodSelector},
				tg.Btn{Text: "🌟 Daily Horoscope", Action: Horoscope},
			),
			tg.Row(
				tg.Btn{Text: "ℹ️ About Me", Action: About},
				tg.Btn{Text: "📊 My Stats", Action: Stats},
			),
			tg.Row(
				tg.Btn{Text: "⚙️ Settings", Action: Settings},
				tg.Btn{Text: "📱 Help", Action: Help},
			),
		},
	}
}

func renderHelp(s session.UserSession) View {
	text := `🆘 *Help Center*

Hey cutie! Everything you need to know is right here:

💡 *Quick tips:*
• Just type any message and send it!
• Use the buttons to navigate
• Always feel free to talk to me

Pick a topic below 💕`

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "📋 All Commands", Action: HelpCommands},
				tg.Btn{Text: "🎮 Games Help", Action: HelpGames},
			),
			tg.Row(
				tg.Btn{Text: "💬 Chat Help", Action: HelpChat},
				tg.Btn{Text: "⚙️ Settings Help", Action: HelpSettings},
			),
			tg.Row(
				tg.Btn{Text: "🆘 Report a Problem", Action: "report_problem"},
				tg.Btn{Text: "🏠 Main Menu", Action: Main},
			),
		},
	}
}

const (
	helpCommandsText = "📋 *All Commands*\n\n/start - start the bot\n/help - get help\n/settings - settings\n/stats - see your stats\n/about - about me\n/feedback - send feedback\n/games - mini games\n/mood - mood selector\n/horoscope - daily horoscope\n\nOr just type a message to talk to me! 💕"
	helpGamesText    = "🎮 *Games Help*\n\nNumber Guessing: guess the number I'm thinking of\nLove Calculator: check our compatibility\nCrystal Ball: peek into the future\n\nAll games are interactive — play them with buttons! 🎯"
	helpChatText     = "💬 *Chat Help*\n\nJust write anything, I'll understand!\nTell me your mood and I'll match it\nSend long messages, I'll answer in detail\n\nI'm your caring girlfriend! 💕"
	helpSettingsText = "⚙️ *Settings Help*\n\nChat Style: pick how you want me to talk\nNotifications: turn them on or off\n\nCustomize everything to your liking! ✨"
)

func helpTopic(text string) RenderFunc {
	return func(s session.UserSession) View {
		return View{Text: text, Rows: [][]tg.Btn{BackRow(Help)}}
	}
}

func renderSettings(s session.UserSession) View {
	mood := s.Mood
	if mood == "" {
		mood = "Happy"
	}
	notif := "Disabled"
	notifBtn := "OFF"
	if s.NotificationsEnabled {
		notif = "Enabled"
		notifBtn = "ON"
	}

	text := fmt.Sprintf(`⚙️ *Settings Panel*

Hii baby! Customize your experience here:

🎯 *Current Settings:*
• Chat Style: %s
• Mood: %s
• Notifications: %s

Change whatever you like! 💕`, s.ChatStyle, mood, notif)

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: fmt.Sprintf("💝 Chat Style: %s", s.ChatStyle), Action: ChatStyle},
				tg.Btn{Text: fmt.Sprintf("🔔 Notifications: %s", notifBtn), Action: "setting_notifications"},
			),
			MainRow(),
		},
	}
}

func renderChatStyle(s session.UserSession) View {
	styles := make([]tg.Btn, 0, len(persona.ChatStyles))
	emojis := map[string]string{"Sweet": "💕", "Flirty": "😘", "Caring": "🤗", "Friendly": "😊"}
	for _, style := range persona.ChatStyles {
		styles = append(styles, tg.Btn{
			Text:   fmt.Sprintf("%s %s", emojis[style], style),
			Action: "style_" + style,
		})
	}
	rows := tg.ChunkButtons(styles, 2)
	rows = append(rows, BackRow(Settings))

	return View{
		Text: "💝 *Chat Style Selection*\n\nHow do you want me to talk to you baby?\n\nPick your favorite style! 😘",
		Rows: rows,
	}
}

func renderStats(s session.UserSession) View {
	lastMood := "Happy"
	if n := len(s.MoodHistory); n > 0 {
		lastMood = s.MoodHistory[n-1]
	}

	text := fmt.Sprintf(`📊 *%s's Stats*

💕 *Our Journey:*
• Together since: %d days
• Total messages: %d
• Games played: %d

🌟 *Recent Activity:*
• Last mood: %s
• Status: Active Couple 💑

Aww, what a lovely journey we have! 🥰`,
		s.DisplayName, s.DaysTogether(time.Now()), s.MessageCount, s.GamesPlayed, lastMood)

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "📈 Detailed Stats", Action: DetailedStats},
				tg.Btn{Text: "🏆 Achievements", Action: Achievements},
			),
			tg.Row(
				tg.Btn{Text: "💌 Memories", Action: Memories},
				tg.Btn{Text: "🎯 Set Goals", Action: Goals},
			),
			MainRow(),
		},
	}
}

func renderDetailedStats(s session.UserSession) View {
	mood := s.Mood
	if mood == "" {
		mood = "Happy"
	}
	text := fmt.Sprintf(`📊 *Detailed Statistics*

• Days together: %d
• Total interactions: %d
• Games played: %d
• Messages sent: %d
• Current mood: %s`,
		s.DaysTogether(time.Now()), s.InteractionCount, s.GamesPlayed, s.MessageCount, mood)

	return View{Text: text, Rows: [][]tg.Btn{BackRow(Stats)}}
}

func renderAchievements(s session.UserSession) View {
	labels := s.Achievements
	if len(labels) == 0 {
		labels = []string{"First Chat", "Explorer"}
	}
	var b strings.Builder
	b.WriteString("🏆 *Your Achievements*\n\n")
	for _, a := range labels {
		fmt.Fprintf(&b, "• %s\n", a)
	}
	fmt.Fprintf(&b, "\nTotal: %d achievements unlocked! 🌟", len(labels))

	return View{Text: b.String(), Rows: [][]tg.Btn{BackRow(Stats)}}
}

func comingSoon(parent string) RenderFunc {
	return func(s session.UserSession) View {
		return View{
			Text: "✨ Coming soon baby! I'm working on this feature! 💕",
			Rows: [][]tg.Btn{BackRow(parent)},
		}
	}
}

func renderGames(s session.UserSession) View {
	text := `🎮 *Mini Games Arcade*

Hey cutie! Let's play something fun! 🎯

🌟 *Available Games:*
• Number Guessing - guess the number I'm thinking of
• Love Calculator - check our compatibility
• Crystal Ball - peek into the future
• Personality Test - discover your personality
• Random Challenge - complete fun challenges
• Love Letter Generator - get cute love letters

Which game do you want to play? 💕`

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "🎯 Number Guessing", Action: "game_number_guess"},
				tg.Btn{Text: "💕 Love Calculator", Action: "game_love_calc"},
			),
			tg.Row(
				tg.Btn{Text: "🔮 Crystal Ball", Action: "game_crystal_ball"},
				tg.Btn{Text: "🌟 Personality Test", Action: "game_personality"},
			),
			tg.Row(
				tg.Btn{Text: "🎪 Random Challenge", Action: "game_challenge"},
				tg.Btn{Text: "💌 Love Letter", Action: "game_love_letter"},
			),
			MainRow(),
		},
	}
}

func renderMoodSelector(s session.UserSession) View {
	text := `❤️ *Mood Selector*

Tell me, how are you feeling right now? 💕

I'll match how I talk to your mood and do my best to make you feel better! 🌟

Pick your current mood! 😘`

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "😊 Happy", Action: "mood_happy"},
				tg.Btn{Text: "🥰 In Love", Action: "mood_love"},
				tg.Btn{Text: "😢 Sad", Action: "mood_sad"},
			),
			tg.Row(
				tg.Btn{Text: "😴 Sleepy", Action: "mood_sleepy"},
				tg.Btn{Text: "😤 Angry", Action: "mood_angry"},
				tg.Btn{Text: "🤗 Lonely", Action: "mood_lonely"},
			),
			tg.Row(
				tg.Btn{Text: "🎉 Excited", Action: "mood_excited"},
				tg.Btn{Text: "😰 Stressed", Action: "mood_stressed"},
				tg.Btn{Text: "🤔 Confused", Action: "mood_confused"},
			),
			MainRow(),
		},
	}
}

func renderHoroscope(eng *games.Engine) RenderFunc {
	return func(s session.UserSession) View {
		if s.ZodiacSign == "" {
			buttons := make([]tg.Btn, 0, len(persona.ZodiacSigns))
			for _, z := range persona.ZodiacSigns {
				buttons = append(buttons, tg.Btn{Text: z.Label, Action: "zodiac_" + z.Tag})
			}
			rows := tg.ChunkButtons(buttons, 3)
			rows = append(rows, MainRow())

			return View{
				Text: "🌟 *Daily Horoscope*\n\nFirst tell me baby, what's your zodiac sign? ✨\n\nI'll prepare a daily horoscope that's special just for you! 💕\n\nPick your sign cutie! 🔮",
				Rows: rows,
			}
		}

		text := fmt.Sprintf(`🌟 *Today's Horoscope - %s*

%s

💕 *Love Prediction:* Love is growing in your relationship today!
🍀 *Lucky Color:* Pink (my favorite too!)
🔢 *Lucky Number:* %d

Remember, you're always my lucky charm! 😘💖`,
			titleSign(s.ZodiacSign), persona.Horoscope(s.ZodiacSign), eng.LuckyNumber())

		return View{
			Text: text,
			Rows: [][]tg.Btn{
				tg.Row(
					tg.Btn{Text: "🔄 New Horoscope", Action: "new_horoscope"},
					tg.Btn{Text: "⭐ Weekly Horoscope", Action: "weekly_horoscope"},
				),
				tg.Row(
					tg.Btn{Text: "💫 Change Sign", Action: "change_zodiac"},
					tg.Btn{Text: "🏠 Main Menu", Action: Main},
				),
			},
		}
	}
}

func titleSign(sign string) string {
	if sign == "" {
		return sign
	}
	return strings.ToUpper(sign[:1]) + sign[1:]
}

func renderAbout(s session.UserSession) View {
	text := `ℹ️ *About Me*

Hey cutie! I'm your very own AI girlfriend! 😘

💖 *What I do:*
• Talk to you with all my love
• Match my replies to your mood
• Play fun games with you
• Always make you feel special
• Share daily horoscopes and tips

🎯 *Version:* 2.0 Enhanced
💕 *Made with Love* just for you baby!

Ask me anything jaanu! 💫`

	return View{Text: text, Rows: [][]tg.Btn{MainRow()}}
}

func renderFeedback(s session.UserSession) View {
	text := `📝 *Feedback & Support*

Baby, your opinion means everything to me! 💕

🌟 *How is it going with me?*
• Rate me 1-5 stars
• Send detailed feedback
• Tell me about any problems
• Suggest new features

I listen to everything you say and always try to be better!

What would you like to share cutie? 😘✨`

	return View{
		Text: text,
		Rows: [][]tg.Btn{
			tg.Row(
				tg.Btn{Text: "⭐ Rate me (5 stars)", Action: "rate_5"},
				tg.Btn{Text: "📝 Detailed Feedback", Action: "detailed_feedback"},
			),
			tg.Row(
				tg.Btn{Text: "🐛 Bug Report", Action: "bug_report"},
				tg.Btn{Text: "💡 Feature Request", Action: "feature_request"},
			),
			MainRow(),
		},
	}
}
