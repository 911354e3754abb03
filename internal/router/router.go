// Package router decides, for every inbound event, which capability is
// active for the user, what input is expected next, and how the session
// changes. It is the only component that mutates sessions; the caller holds
// the per-user store lock for the duration of Handle.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/domain"
)

// ChatClient is the chat completion capability.
type ChatClient interface {
	Complete(ctx context.Context, model string, history []domain.ChatMessage) (string, error)
}

// ImageClient is the image generation capability.
type ImageClient interface {
	Generate(ctx context.Context, model, prompt string) ([]string, error)
}

// SpeechClient is the text-to-speech capability.
type SpeechClient interface {
	Synthesize(ctx context.Context, voice, text string) (string, error)
}

// VisionClient is the image-understanding capability.
type VisionClient interface {
	Describe(ctx context.Context, model string, history []domain.ChatMessage) (string, error)
}

// Recorder is the side-channel audit destination. Implementations must not
// fail the turn; errors stay inside the recorder.
type Recorder interface {
	RecordIntroAnswer(ctx context.Context, userID int64, answer string)
	RecordTurn(ctx context.Context, userID int64, capability, model string, callErr error)
}

// Clients bundles the four capability clients.
type Clients struct {
	Chat   ChatClient
	Image  ImageClient
	Speech SpeechClient
	Vision VisionClient
}

type Router struct {
	catalog       Catalog
	clients       Clients
	recorder      Recorder
	cancelPhrase  string
	introQuestion string
}

func New(cfg *config.Config, clients Clients, recorder Recorder) *Router {
	return &Router{
		catalog:       NewCatalog(cfg),
		clients:       clients,
		recorder:      recorder,
		cancelPhrase:  cfg.CancelPhrase,
		introQuestion: cfg.IntroQuestion,
	}
}

// Handle consumes one event against the user's session and returns the
// outbound actions. The session is mutated in place; on capability failure
// mode, model and already-appended history are left as they were and exactly
// one error reply is emitted.
func (r *Router) Handle(ctx context.Context, ev domain.Event, s *domain.Session) []domain.Action {
	switch ev := ev.(type) {
	case domain.TextMessage:
		return r.handleText(ctx, ev, s)
	case domain.CallbackSelection:
		return r.handleSelection(ev, s)
	case domain.PhotoMessage:
		return r.handlePhoto(ctx, ev, s)
	default:
		slog.Warn("unknown event type", "event", fmt.Sprintf("%T", ev))
		return nil
	}
}

func (r *Router) handleText(ctx context.Context, ev domain.TextMessage, s *domain.Session) []domain.Action {
	text := strings.TrimSpace(ev.Text)

	// Cancellation takes priority over mode handling in every mode.
	if r.isCancel(text) {
		return r.cancel(s)
	}

	if isStart(text) {
		return r.start(s)
	}

	switch s.Mode {
	case domain.ModeIdle:
		// First contact from an unknown identity behaves like /start.
		return r.start(s)

	case domain.ModeAwaitingIntroAnswer:
		if r.recorder != nil {
			r.recorder.RecordIntroAnswer(ctx, s.UserID, text)
		}
		s.IntroAnswered = true
		s.SetMode(domain.ModeSelectingCapability)
		return []domain.Action{r.capabilityMenu()}

	case domain.ModeSelectingCapability:
		return []domain.Action{r.capabilityMenu()}

	case domain.ModeActiveChat:
		return r.chatTurn(ctx, text, s)

	case domain.ModeAwaitingImagePrompt:
		return r.imageTurn(ctx, text, s)

	case domain.ModeAwaitingSpeechText:
		return r.speechTurn(ctx, text, s)

	case domain.ModeAwaitingVisionInput:
		return r.visionTurn(ctx, text, "", s)
	}
	return nil
}

// handleSelection accepts capability tokens only while the menu is on
// screen. Tokens arriving in any other mode are stale or foreign and are
// dropped so a model cannot be re-bound mid-conversation.
func (r *Router) handleSelection(ev domain.CallbackSelection, s *domain.Session) []domain.Action {
	if s.Mode != domain.ModeSelectingCapability {
		slog.Debug("selection token ignored",
			"user", s.UserID,
			"mode", s.Mode.String(),
			"token", ev.Token,
		)
		return nil
	}

	sel, err := r.catalog.Resolve(ev.Token)
	if err != nil {
		slog.Debug("unknown selection token", "user", s.UserID, "token", ev.Token)
		return nil
	}

	switch sel.Kind {
	case SelectChatModel:
		s.Bind(domain.ModeActiveChat, sel.Model)
		return r.modeEntry(s, domain.EditLastMessage{
			Text: fmt.Sprintf("Selected Model: %s.\nSend a message to start the dialogue.", sel.Model),
		})
	case SelectImageModel:
		s.Bind(domain.ModeAwaitingImagePrompt, sel.Model)
		return r.modeEntry(s, domain.SendText{Text: "Enter text for the prompt:"})
	case SelectVoice:
		s.Bind(domain.ModeAwaitingSpeechText, sel.Model)
		return r.modeEntry(s, domain.SendText{
			Text: fmt.Sprintf("Limit is %d characters. Enter the text for speech synthesis:", config.SpeechMaxRunes),
		})
	case SelectVisionModel:
		s.Bind(domain.ModeAwaitingVisionInput, sel.Model)
		return r.modeEntry(s, domain.SendText{
			Text: fmt.Sprintf("Upload a photo with a caption, or send \"image URL %s question\".", config.VisionSeparator),
		})
	}
	return nil
}

func (r *Router) handlePhoto(ctx context.Context, ev domain.PhotoMessage, s *domain.Session) []domain.Action {
	if r.isCancel(strings.TrimSpace(ev.Caption)) {
		return r.cancel(s)
	}

	switch s.Mode {
	case domain.ModeAwaitingVisionInput:
		return r.visionTurn(ctx, ev.Caption, ev.ImageURL, s)
	case domain.ModeIdle, domain.ModeSelectingCapability:
		// A photo with no vision session open redirects to the menu.
		s.SetMode(domain.ModeSelectingCapability)
		return []domain.Action{r.capabilityMenu()}
	default:
		return []domain.Action{domain.SendText{
			Text: "A photo isn't expected right now. Finish or cancel the current dialogue first.",
		}}
	}
}

// start opens a new session flow: onboarding question on very first contact,
// capability menu otherwise. An already-active session is left untouched.
func (r *Router) start(s *domain.Session) []domain.Action {
	if s.Mode.Active() {
		return []domain.Action{domain.SendText{
			Text: "Please complete the ongoing conversation first.",
		}}
	}

	if r.introQuestion != "" && !s.IntroAnswered {
		s.SetMode(domain.ModeAwaitingIntroAnswer)
		return []domain.Action{domain.SendText{Text: r.introQuestion}}
	}

	s.SetMode(domain.ModeSelectingCapability)
	return []domain.Action{r.capabilityMenu()}
}

func (r *Router) cancel(s *domain.Session) []domain.Action {
	if s.Mode == domain.ModeIdle {
		return []domain.Action{domain.SendText{
			Text: "There is no active dialogue at the moment.",
		}}
	}

	s.Reset()
	return []domain.Action{domain.SendText{
		Text:     fmt.Sprintf("Dialogue finished. You can start a new dialogue by clicking \"%s\".", config.StartPhrase),
		Keyboard: startKeyboard(),
	}}
}

func (r *Router) chatTurn(ctx context.Context, text string, s *domain.Session) []domain.Action {
	s.Append(domain.RoleUser, text, "")

	reply, err := r.clients.Chat.Complete(ctx, s.Model, s.History)
	r.recordTurn(ctx, s, "chat", err)
	if err != nil {
		// The user turn stays in history so a retry continues the
		// conversation where it left off.
		return r.failure(err, "chat")
	}

	s.Append(domain.RoleAssistant, reply, "")
	return r.withCancelKeyboard(s, domain.SendText{Text: reply})
}

func (r *Router) imageTurn(ctx context.Context, prompt string, s *domain.Session) []domain.Action {
	if prompt == "" {
		return corrective(&domain.InvalidInputError{Reason: "Enter text for the prompt:"})
	}

	urls, err := r.clients.Image.Generate(ctx, s.Model, prompt)
	r.recordTurn(ctx, s, "image", err)
	if err != nil {
		return r.failure(err, "image generation")
	}

	actions := make([]domain.Action, 0, len(urls))
	for _, u := range urls {
		actions = append(actions, domain.SendPhoto{URL: u})
	}
	// Mode stays AwaitingImagePrompt; the user may submit further prompts.
	return actions
}

func (r *Router) speechTurn(ctx context.Context, text string, s *domain.Session) []domain.Action {
	if text == "" {
		return corrective(&domain.InvalidInputError{Reason: "Please enter valid text."})
	}
	if utf8.RuneCountInString(text) > config.SpeechMaxRunes {
		return corrective(&domain.InvalidInputError{
			Reason: fmt.Sprintf("The text is too long, the limit is %d characters.", config.SpeechMaxRunes),
		})
	}

	url, err := r.clients.Speech.Synthesize(ctx, s.Model, text)
	r.recordTurn(ctx, s, "speech", err)
	if err != nil {
		return r.failure(err, "text-to-speech")
	}

	return []domain.Action{domain.SendAudio{URL: url, Title: "speech"}}
}

// visionTurn handles both text-form input ("url | question") and an
// uploaded photo with a caption. A trailing >>file directive is stripped and
// turns the reply into an additional downloadable attachment.
func (r *Router) visionTurn(ctx context.Context, text, imageURL string, s *domain.Session) []domain.Action {
	text = strings.TrimSpace(text)

	toFile := strings.Contains(text, config.VisionFileDirective)
	if toFile {
		text = strings.TrimSpace(strings.ReplaceAll(text, config.VisionFileDirective, ""))
	}

	if imageURL == "" {
		if before, after, ok := strings.Cut(text, config.VisionSeparator); ok {
			imageURL = strings.TrimSpace(before)
			text = strings.TrimSpace(after)
		} else if len(s.History) == 0 {
			return corrective(&domain.InvalidInputError{
				Reason: fmt.Sprintf("Send a photo with a caption, or \"image URL %s question\".", config.VisionSeparator),
			})
		}
	}
	if text == "" {
		text = "What is in this image?"
	}

	s.Append(domain.RoleUser, text, imageURL)

	reply, err := r.clients.Vision.Describe(ctx, s.Model, s.History)
	r.recordTurn(ctx, s, "vision", err)
	if err != nil {
		return r.failure(err, "vision")
	}

	s.Append(domain.RoleAssistant, reply, "")

	actions := r.withCancelKeyboard(s, domain.SendText{Text: reply})
	if toFile {
		actions = append(actions, domain.SendDocument{
			Filename: config.VisionResultName,
			Data:     []byte(reply),
		})
	}
	return actions
}

// corrective turns a malformed-input error into its prompt. The session is
// left untouched; the user retries in place.
func corrective(err *domain.InvalidInputError) []domain.Action {
	return []domain.Action{domain.SendText{Text: err.Reason}}
}

// failure converts a capability error into exactly one user-facing reply.
// Mode, model and history are deliberately left unchanged.
func (r *Router) failure(err error, capability string) []domain.Action {
	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) {
		return []domain.Action{domain.SendText{
			Text: fmt.Sprintf("An error occurred in %s: %s", capability, backendErr.Message),
		}}
	}
	return []domain.Action{domain.SendText{
		Text: fmt.Sprintf("Error in %s. Please try again later.", capability),
	}}
}

func (r *Router) recordTurn(ctx context.Context, s *domain.Session, capability string, callErr error) {
	if r.recorder == nil {
		return
	}
	r.recorder.RecordTurn(ctx, s.UserID, capability, s.Model, callErr)
}

// modeEntry bundles the mode prompt with the one-time cancel keyboard hint.
func (r *Router) modeEntry(s *domain.Session, prompt domain.Action) []domain.Action {
	return append([]domain.Action{prompt}, r.cancelHint(s)...)
}

// withCancelKeyboard appends the cancel keyboard hint to a reply if it has
// not been shown in this mode yet.
func (r *Router) withCancelKeyboard(s *domain.Session, reply domain.Action) []domain.Action {
	return append([]domain.Action{reply}, r.cancelHint(s)...)
}

func (r *Router) cancelHint(s *domain.Session) []domain.Action {
	if s.CancelShown {
		return nil
	}
	s.CancelShown = true
	return []domain.Action{domain.SendText{
		Text:     fmt.Sprintf("You can finish the dialogue by pressing the \"%s\" button.", r.cancelPhrase),
		Keyboard: &domain.Keyboard{Reply: []string{r.cancelPhrase}},
	}}
}

func (r *Router) isCancel(text string) bool {
	return strings.EqualFold(text, r.cancelPhrase)
}

func isStart(text string) bool {
	return strings.HasPrefix(text, "/start") || strings.EqualFold(text, config.StartPhrase)
}
