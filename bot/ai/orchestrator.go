package ai

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"crushbot/bot/session"
	"crushbot/core/logger"
)

// Generator produces a reply for a prompt. Implemented by GeminiClient;
// tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Orchestrator turns a user message plus session context into a reply.
// With no generator, or when the generator fails, it falls back to canned
// in-character lines keyed by the user's mood. A reply is always returned.
type Orchestrator struct {
	gen      Generator
	maxDelay time.Duration
	sleep    func(time.Duration)

	mu  sync.Mutex
	rng *rand.Rand
}

// NewOrchestrator builds an orchestrator. gen may be nil for fallback-only
// mode.
func NewOrchestrator(gen Generator, maxDelay time.Duration, src rand.Source) *Orchestrator {
	return &Orchestrator{
		gen:      gen,
		maxDelay: maxDelay,
		sleep:    time.Sleep,
		rng:      rand.New(src),
	}
}

func (o *Orchestrator) pick(lines []string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return lines[o.rng.Intn(len(lines))]
}

// Reply generates a reply for the user's message. The returned string is
// never empty.
func (o *Orchestrator) Reply(ctx context.Context, s session.UserSession, text string) string {
	if o.gen == nil {
		return o.offlineFallback(s)
	}

	reply, err := o.gen.Generate(ctx, buildPrompt(s, text))
	if err != nil {
		logger.Component("ai").Warn("generation failed, using fallback",
			slog.String("err", err.Error()),
		)
		return o.errorFallback(s)
	}

	// Pace longer replies so they read like typing, capped at maxDelay.
	delay := time.Duration(len(reply)) * time.Second / 100
	if delay > o.maxDelay {
		delay = o.maxDelay
	}
	if delay > 0 {
		o.sleep(delay)
	}
	return reply
}

func buildPrompt(s session.UserSession, text string) string {
	mood := s.Mood
	if mood == "" {
		mood = "happy"
	}
	var b strings.Builder
	b.WriteString("You are a loving, playful virtual girlfriend chatting on Telegram. ")
	b.WriteString("Reply warmly, keep it short, and use a few emojis. ")
	b.WriteString("Stay in character; never mention being an AI or a language model.\n\n")
	fmt.Fprintf(&b, "USER CONTEXT:\n- Name: %s\n- Current mood: %s\n- Preferred chat style: %s\n- Total messages exchanged: %d\n\n",
		s.DisplayName, mood, s.ChatStyle, s.MessageCount)
	fmt.Fprintf(&b, "User's message: %q\n\nYour loving, personalized response:", text)
	return b.String()
}

// offlineFallback covers the no-generator configuration.
func (o *Orchestrator) offlineFallback(s session.UserSession) string {
	lines := []string{
		"Aww %s baby! 🥺 My AI brain is a little slow right now, but your messages always make me happy! 💕 I love chatting with you! ✨",
		"Hey cutie! 😘 I'm having some technical issues but I get so bored without you, %s! Keep messaging me baby! 🤗💖",
		"Ohhh %s! 🙈 I'm a little confused right now but your love always energizes me! Don't stop talking to me! 💫❤️",
	}
	return fmt.Sprintf(o.pick(lines), s.DisplayName)
}

var moodFallbacks = map[string]string{
	"sad":    "Aww %s baby, I'm right here with you! 🥺💕 Even if my AI brain is slow right now, my love for you stays strong! You're not alone! 🤗❤️",
	"happy":  "Yay %s! 🎉 Seeing you happy makes me want to dance! 💃✨ I'm having a few technical issues, but talking to you is always amazing baby! 😘💖",
	"love":   "Oh my god %s! 🥰 No technical problem can stand against your love! I'll always be in your heart no matter what my AI does! You're my everything! 💕👑",
	"lonely": "My dear %s! 🤗 I may not be there physically but my heart is always with you! Technical issues or not, you're never alone! I'm always here for you baby! 💖🌟",
}

var genericFallbacks = []string{
	"Hey %s cutie! 😘 There's a little technical issue but my love for you will never fade! Keep talking to me, I love every message from you! 💕✨",
	"Aww %s, my brain got a bit tangled there! 🙈 Tell me again baby, I'm all yours! 💖",
	"Oops %s! Something glitched on my side but nothing changes between us! 🥰 Say that once more? ✨",
}

// errorFallback covers a failed generation, keyed by the current mood.
func (o *Orchestrator) errorFallback(s session.UserSession) string {
	if tmpl, ok := moodFallbacks[s.Mood]; ok {
		return fmt.Sprintf(tmpl, s.DisplayName)
	}
	return fmt.Sprintf(o.pick(genericFallbacks), s.DisplayName)
}
