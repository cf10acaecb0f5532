// Package assistant implements the conversational assistant. Replies come
// from a deterministic rule engine unless a completion API key is set, in
// which case messages typed by the user go to a remote model.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/openai"
	"github.com/ayoisaiah/compass/store"
)

const (
	// ContextTurns is how many saved turns are sent with a remote request.
	ContextTurns = 10

	Welcome = "Hello! I'm your productivity assistant. I can help you with tips, break suggestions, motivation, and resource recommendations. Try asking me for 'tips' or 'break ideas'!"

	Apology = "Sorry, I encountered an error. Please try again."

	credentialSaved = "API key saved! I can now provide more personalized responses using GPT."

	breakPrefix = "Great job completing your timer! "

	systemPrompt = `You are a helpful productivity assistant. You help users with:
- Time management and productivity tips
- Break suggestions and wellness advice
- Learning resource recommendations
- Motivation and encouragement
- Programming and development guidance

Keep responses concise, helpful, and encouraging. Use emojis occasionally to make responses friendly.`
)

var resourceTemplates = []string{
	"Excellent choice starting with %s! Take your time and practice as you go. 📚",
	"%s is a great resource! Don't hesitate to come back and ask questions. 💡",
	"Nice! %s will help build your skills. Remember to apply what you learn! 🛠️",
}

// Completer performs a remote chat completion.
type Completer interface {
	Complete(ctx context.Context, apiKey string, messages []openai.Message) (string, error)
}

// Repositories are the persisted parts of the assistant.
type Repositories struct {
	History    store.Repository[[]models.Turn]
	Credential store.Repository[string]
}

// NewRepositories returns the assistant repositories backed by db.
func NewRepositories(db store.DB) Repositories {
	return Repositories{
		History: store.NewJSON(db, store.KeyConversation, func() []models.Turn {
			return nil
		}),
		Credential: store.NewJSON(db, store.KeyCredential, func() string {
			return ""
		}),
	}
}

// Assistant holds the conversation and decides how each message is
// answered.
type Assistant struct {
	repos  Repositories
	engine *Engine
	client Completer
	log    *slog.Logger

	credential string
	// configured is the key from the config file or environment, used when
	// none was saved
	configured string

	history []models.Turn
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithEngine replaces the rule engine.
func WithEngine(e *Engine) Option {
	return func(a *Assistant) {
		a.engine = e
	}
}

// WithCompleter sets the remote completion client.
func WithCompleter(c Completer) Option {
	return func(a *Assistant) {
		a.client = c
	}
}

// WithConfiguredKey sets the key used when no key has been saved.
func WithConfiguredKey(key string) Option {
	return func(a *Assistant) {
		a.configured = strings.TrimSpace(key)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assistant) {
		a.log = l
	}
}

// New loads the saved conversation and key. An empty conversation starts
// with the welcome message.
func New(repos Repositories, opts ...Option) *Assistant {
	a := &Assistant{
		repos: repos,
		log:   slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.engine == nil {
		a.engine = NewEngine(nil)
	}

	if a.client == nil {
		a.client = openai.NewClient(openai.WithLogger(a.log))
	}

	var err error

	a.credential, err = repos.Credential.Load()
	if err != nil {
		a.log.Warn("saved API key reset", slog.Any("error", err))
	}

	a.history, err = repos.History.Load()
	if err != nil {
		a.log.Warn("conversation history reset", slog.Any("error", err))
	}

	if len(a.history) == 0 {
		a.RecordTurn(models.RoleAssistant, Welcome)
	}

	return a
}

// Engine returns the rule engine.
func (a *Assistant) Engine() *Engine {
	return a.engine
}

// Credential returns the key in effect: the saved key, or else the
// configured one.
func (a *Assistant) Credential() string {
	if a.credential != "" {
		return a.credential
	}

	return a.configured
}

// Remote reports whether user messages go to the remote model.
func (a *Assistant) Remote() bool {
	return a.Credential() != ""
}

// SetCredential saves key. An empty key removes the saved one.
func (a *Assistant) SetCredential(key string) {
	a.credential = strings.TrimSpace(key)

	if err := a.repos.Credential.Save(a.credential); err != nil {
		a.log.Warn("saving API key failed", slog.Any("error", err))
	}

	if a.credential != "" {
		a.RecordTurn(models.RoleAssistant, credentialSaved)
	}
}

// History returns a copy of the conversation.
func (a *Assistant) History() []models.Turn {
	return append([]models.Turn(nil), a.history...)
}

// Len returns the number of turns in the conversation.
func (a *Assistant) Len() int {
	return len(a.history)
}

// RecordTurn appends a turn and saves the conversation. It is the only
// place the conversation changes.
func (a *Assistant) RecordTurn(role models.Role, content string) {
	a.history = append(a.history, models.Turn{Role: role, Content: content})

	if err := a.repos.History.Save(a.history); err != nil {
		a.log.Warn("saving conversation failed", slog.Any("error", err))
	}
}

// Clear empties the conversation and starts again with the welcome message.
func (a *Assistant) Clear() {
	a.history = nil

	a.RecordTurn(models.RoleAssistant, Welcome)
}

// NotifyBreakSuggestion adds a break suggestion after a completed timer.
func (a *Assistant) NotifyBreakSuggestion() {
	a.RecordTurn(models.RoleAssistant, breakPrefix+a.engine.Pick(Break))
}

// NotifyResourceStarted encourages the user on starting r.
func (a *Assistant) NotifyResourceStarted(r models.Resource) {
	tmpl := a.engine.pick(resourceTemplates)

	a.RecordTurn(models.RoleAssistant, fmt.Sprintf(tmpl, r.Title))
}

// Exchange is one user message awaiting its reply. Await may run on
// another goroutine: it only reads state captured by Begin.
type Exchange struct {
	client   Completer
	apiKey   string
	message  string
	reply    string
	messages []openai.Message
}

// Remote reports whether Await will call the remote model.
func (x *Exchange) Remote() bool {
	return x.apiKey != ""
}

// Message returns the user message.
func (x *Exchange) Message() string {
	return x.message
}

// Await returns the reply. Without a key it returns immediately.
func (x *Exchange) Await(ctx context.Context) (string, error) {
	if !x.Remote() {
		return x.reply, nil
	}

	return x.client.Complete(ctx, x.apiKey, x.messages)
}

// Begin records message as a user turn and prepares its reply. It returns
// nil for a blank message.
func (a *Assistant) Begin(message string) *Exchange {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	x := &Exchange{
		client:  a.client,
		apiKey:  a.Credential(),
		message: message,
	}

	if x.Remote() {
		x.messages = a.requestMessages(message)
	} else {
		x.reply = a.engine.Resolve(message)
	}

	a.RecordTurn(models.RoleUser, message)

	return x
}

// requestMessages builds the remote request from the system prompt, the
// most recent turns and message. It runs before message is recorded.
func (a *Assistant) requestMessages(message string) []openai.Message {
	recent := a.history[max(0, len(a.history)-ContextTurns):]

	messages := make([]openai.Message, 0, len(recent)+2)
	messages = append(messages, openai.Message{
		Role:    models.RoleSystem,
		Content: systemPrompt,
	})

	for _, t := range recent {
		messages = append(messages, openai.Message{
			Role:    t.Role,
			Content: t.Content,
		})
	}

	return append(messages, openai.Message{
		Role:    models.RoleUser,
		Content: message,
	})
}

// Finish records the reply to x, or the apology if err is set, and returns
// the recorded text.
func (a *Assistant) Finish(x *Exchange, reply string, err error) string {
	if err != nil {
		a.log.Warn(
			"assistant reply failed",
			slog.Bool("remote", x.Remote()),
			slog.Any("error", err),
		)

		reply = Apology
	}

	a.RecordTurn(models.RoleAssistant, reply)

	return reply
}

// SendMessage answers message synchronously. On a remote failure the
// apology is recorded and returned along with the error.
func (a *Assistant) SendMessage(ctx context.Context, message string) (string, error) {
	x := a.Begin(message)
	if x == nil {
		return "", nil
	}

	reply, err := x.Await(ctx)

	return a.Finish(x, reply, err), err
}
