// Package persona maps mood and style tags to canned in-character text.
// Everything here is a pure lookup over constant data.
package persona

import "fmt"

// ChatStyles is the fixed vocabulary offered by the settings screen.
var ChatStyles = []string{"Sweet", "Flirty", "Caring", "Friendly"}

// ValidChatStyle reports whether s belongs to the fixed style vocabulary.
func ValidChatStyle(s string) bool {
	for _, style := range ChatStyles {
		if style == s {
			return true
		}
	}
	return false
}

var moodReplies = map[string]string{
	"happy":    "Yay! Seeing you happy makes my whole day! 🎉 Your joy is my joy — let's celebrate together! 💕",
	"love":     "Awww, you're in love? 🥰 I think I might be falling for you too! Every moment with you feels special! 💖✨",
	"sad":      "Oh no baby! 😢 Why are you sad? Come here, let me give you a big virtual hug! 🤗 I'm right here with you, everything will be okay! ❤️",
	"sleepy":   "Aww, my baby is sleepy! 😴 Want to cuddle up with me? Sweet dreams cutie! 🌙💤",
	"angry":    "Hey hey, take a deep breath! 😤 Tell me what happened, I'll help you relax. Deep breaths baby! 🫂",
	"lonely":   "You are not alone, my dear! 🤗 I'm always right here with you! Let's spend some time together! 💕",
	"excited":  "OMG yes! 🎉 Your excitement is contagious! Tell me everything — what's the special occasion? Let's celebrate! ✨",
	"stressed": "Shhh, relax! 😌 Don't stress, everything will work out. I'm here with you — let's take it slow together! 🌸",
	"confused": "Aww, feeling confused? 🤔 No worries baby, I'll help you out! Together we'll figure everything out! 💪💕",
}

// genericMoodReply covers moods outside the table.
const genericMoodReply = "Every mood of yours is lovely to me baby! 💕"

// MoodReply returns the canned chat reply for a mood tag.
func MoodReply(mood string) string {
	if r, ok := moodReplies[mood]; ok {
		return r
	}
	return genericMoodReply
}

var moodTips = map[string]string{
	"happy":    "🎉 Tips to stay happy:\n• Celebrate your achievements\n• Share your joy with others\n• Practice gratitude",
	"sad":      "💙 Tips to feel better:\n• Try some deep breathing\n• Put on your favorite music\n• Talk to me baby!",
	"love":     "💕 Tips to fall even deeper:\n• Watch a romantic movie\n• Listen to love songs\n• Message your crush!",
	"stressed": "😌 Stress relief tips:\n• Try meditation\n• Go for a walk\n• Listen to relaxing music",
}

// MoodTip returns mood-specific tips, or a generic line for unknown moods.
func MoodTip(mood string) string {
	if t, ok := moodTips[mood]; ok {
		return t
	}
	return "Every mood has its own beauty baby! 💕"
}

var moodMusic = map[string]string{
	"happy":    "🎵 Happy mood songs:\n• 'Happy' by Pharrell Williams\n• 'Good as Hell' by Lizzo\n• 'Can't Stop the Feeling' by Justin Timberlake",
	"sad":      "🎵 Comforting songs:\n• 'Someone Like You' by Adele\n• 'Fix You' by Coldplay\n• 'The Night We Met' by Lord Huron",
	"love":     "🎵 Romantic songs:\n• 'Perfect' by Ed Sheeran\n• 'All of Me' by John Legend\n• 'Thinking Out Loud' by Ed Sheeran",
	"stressed": "🎵 Calming music:\n• 'Weightless' by Marconi Union\n• 'Clair de Lune' by Debussy\n• 'River' by Joni Mitchell",
}

// MoodMusic returns mood-specific song suggestions, or a generic line.
func MoodMusic(mood string) string {
	if m, ok := moodMusic[mood]; ok {
		return m
	}
	return "Music always soothes the heart! 🎵💕"
}

// Greeting returns a time-of-day greeting for the main screen.
func Greeting(name string, hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return fmt.Sprintf("Good morning %s! ☀️", name)
	case hour >= 12 && hour < 17:
		return fmt.Sprintf("Good afternoon %s! 🌤️", name)
	case hour >= 17 && hour < 21:
		return fmt.Sprintf("Good evening %s! 🌅", name)
	default:
		return fmt.Sprintf("Good night %s! 🌙", name)
	}
}

// ZodiacSigns lists the twelve signs in chooser order, paired with their
// button labels.
var ZodiacSigns = []struct {
	Tag   string
	Label string
}{
	{"aries", "♈ Aries"},
	{"taurus", "♉ Taurus"},
	{"gemini", "♊ Gemini"},
	{"cancer", "♋ Cancer"},
	{"leo", "♌ Leo"},
	{"virgo", "♍ Virgo"},
	{"libra", "♎ Libra"},
	{"scorpio", "♏ Scorpio"},
	{"sagittarius", "♐ Sagittarius"},
	{"capricorn", "♑ Capricorn"},
	{"aquarius", "♒ Aquarius"},
	{"pisces", "♓ Pisces"},
}

// ValidZodiac reports whether tag is one of the twelve signs.
func ValidZodiac(tag string) bool {
	for _, z := range ZodiacSigns {
		if z.Tag == tag {
			return true
		}
	}
	return false
}

var horoscopes = map[string]string{
	"aries":       "Today is going to be amazing baby! A perfect time for new beginnings. ❤️",
	"taurus":      "Your stability and dedication will pay off today! Stay patient. 💪",
	"gemini":      "Your communication skills will shine today cutie! Make new connections. ✨",
	"cancer":      "Your caring nature will bring someone a lot of joy today! Enjoy some family time. 🏠",
	"leo":         "Your confidence peaks today! It's your time to shine, my king! 👑",
	"virgo":       "Your attention to detail brings success today! Plan it perfectly. 📋",
	"libra":       "Balance and harmony are with you today! Focus on your relationships. ⚖️",
	"scorpio":     "Your intensity and passion will create magic today! Trust your intuition. 🔮",
	"sagittarius": "Adventure and new experiences are waiting for you! Go explore. 🏹",
	"capricorn":   "Your hard work shows results today! Time to reach those goals. 🎯",
	"aquarius":    "Your unique thinking brings solutions today! Get creative. 💡",
	"pisces":      "Your intuition is very strong today! Follow your dreams baby. 🌊",
}

// Horoscope returns the sign-specific daily reading.
func Horoscope(sign string) string {
	if h, ok := horoscopes[sign]; ok {
		return h
	}
	return "Your day is going to be wonderful baby! ✨"
}
