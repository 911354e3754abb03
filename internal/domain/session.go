package domain

import (
	"time"
)

// Mode is the session's current position in the capability state machine.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAwaitingIntroAnswer
	ModeSelectingCapability
	ModeActiveChat
	ModeAwaitingImagePrompt
	ModeAwaitingSpeechText
	ModeAwaitingVisionInput
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAwaitingIntroAnswer:
		return "awaiting_intro_answer"
	case ModeSelectingCapability:
		return "selecting_capability"
	case ModeActiveChat:
		return "active_chat"
	case ModeAwaitingImagePrompt:
		return "awaiting_image_prompt"
	case ModeAwaitingSpeechText:
		return "awaiting_speech_text"
	case ModeAwaitingVisionInput:
		return "awaiting_vision_input"
	default:
		return "unknown"
	}
}

// Active reports whether the mode has a backend model bound to it.
func (m Mode) Active() bool {
	switch m {
	case ModeActiveChat, ModeAwaitingImagePrompt, ModeAwaitingSpeechText, ModeAwaitingVisionInput:
		return true
	default:
		return false
	}
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is one role-tagged entry of a session's conversation history.
// ImageURL is set only for vision turns that carry a picture.
type ChatMessage struct {
	Role     string
	Content  string
	ImageURL string
}

// Session tracks one user's position in the capability state machine.
// Model is non-empty exactly while Mode.Active() holds; History is non-empty
// only in chat and vision modes. All mutation happens through Bind, SetMode,
// Append and Reset while the session store holds the per-user lock.
type Session struct {
	UserID        int64
	Mode          Mode
	Model         string
	History       []ChatMessage
	CancelShown   bool
	IntroAnswered bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewSession(userID int64) *Session {
	now := time.Now()
	return &Session{
		UserID:    userID,
		Mode:      ModeIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Bind moves the session into an active mode with the given backend model
// (or voice). The cancel keyboard flag is rearmed so the new mode presents
// it once.
func (s *Session) Bind(mode Mode, model string) {
	s.Mode = mode
	s.Model = model
	s.CancelShown = false
	s.UpdatedAt = time.Now()
}

// SetMode moves the session into a non-active mode, dropping any bound model.
func (s *Session) SetMode(mode Mode) {
	s.Mode = mode
	s.Model = ""
	s.UpdatedAt = time.Now()
}

// Append records one history entry. History only accumulates in chat and
// vision modes; the router never calls this elsewhere.
func (s *Session) Append(role, content, imageURL string) {
	s.History = append(s.History, ChatMessage{Role: role, Content: content, ImageURL: imageURL})
	s.UpdatedAt = time.Now()
}

// Reset returns the session to its initial idle state in place. The
// one-time intro answer flag survives a reset.
func (s *Session) Reset() {
	s.Mode = ModeIdle
	s.Model = ""
	s.History = nil
	s.CancelShown = false
	s.UpdatedAt = time.Now()
}

// Clone returns a deep copy, used for lock-free inspection.
func (s *Session) Clone() Session {
	out := *s
	out.History = append([]ChatMessage(nil), s.History...)
	return out
}
