package assistant_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/compass/assistant"
	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/logging"
	"github.com/ayoisaiah/compass/internal/models"
	"github.com/ayoisaiah/compass/internal/openai"
	"github.com/ayoisaiah/compass/store"
)

// fakeCompleter records requests and answers with a fixed reply.
type fakeCompleter struct {
	err      error
	reply    string
	apiKey   string
	requests [][]openai.Message
}

func (f *fakeCompleter) Complete(
	_ context.Context,
	apiKey string,
	messages []openai.Message,
) (string, error) {
	f.apiKey = apiKey
	f.requests = append(f.requests, messages)

	return f.reply, f.err
}

func newAssistant(db store.DB, opts ...assistant.Option) *assistant.Assistant {
	opts = append([]assistant.Option{
		assistant.WithEngine(assistant.NewEngine(rand.NewPCG(1, 1))),
		assistant.WithLogger(logging.Discard()),
	}, opts...)

	return assistant.New(assistant.NewRepositories(db), opts...)
}

func TestWelcomeOnlyWhenEmpty(t *testing.T) {
	db := store.NewMemory()

	a := newAssistant(db)
	assert.Equal(t, []models.Turn{
		{Role: models.RoleAssistant, Content: assistant.Welcome},
	}, a.History())

	again := newAssistant(db)
	assert.Equal(t, 1, again.Len())
}

func TestSendMessageUsesEngineWithoutKey(t *testing.T) {
	fc := &fakeCompleter{}
	a := newAssistant(store.NewMemory(), assistant.WithCompleter(fc))

	assert.False(t, a.Remote())

	reply, err := a.SendMessage(context.Background(), "  give me some advice  ")
	require.NoError(t, err)

	assert.Contains(t, assistant.Pool(assistant.Tips), reply)
	assert.Empty(t, fc.requests)

	h := a.History()
	require.Len(t, h, 3)
	assert.Equal(t, models.Turn{Role: models.RoleUser, Content: "give me some advice"}, h[1])
	assert.Equal(t, models.Turn{Role: models.RoleAssistant, Content: reply}, h[2])
}

func TestBlankMessageIgnored(t *testing.T) {
	a := newAssistant(store.NewMemory())

	assert.Nil(t, a.Begin("   "))

	reply, err := a.SendMessage(context.Background(), "")
	assert.NoError(t, err)
	assert.Empty(t, reply)
	assert.Equal(t, 1, a.Len())
}

func TestSendMessageRemote(t *testing.T) {
	fc := &fakeCompleter{reply: "Go for a walk 🚶"}
	a := newAssistant(store.NewMemory(), assistant.WithCompleter(fc))

	a.SetCredential(" sk-live ")
	assert.True(t, a.Remote())

	for i := range 12 {
		a.RecordTurn(models.RoleUser, string(rune('a'+i)))
	}

	before := a.History()

	reply, err := a.SendMessage(context.Background(), "what now?")
	require.NoError(t, err)

	assert.Equal(t, "Go for a walk 🚶", reply)
	assert.Equal(t, "sk-live", fc.apiKey)

	require.Len(t, fc.requests, 1)
	req := fc.requests[0]

	// system prompt, the last ten saved turns, then the new message once
	require.Len(t, req, 1+assistant.ContextTurns+1)
	assert.Equal(t, models.RoleSystem, req[0].Role)

	for i, m := range req[1 : 1+assistant.ContextTurns] {
		want := before[len(before)-assistant.ContextTurns+i]
		assert.Equal(t, want.Role, m.Role)
		assert.Equal(t, want.Content, m.Content)
	}

	assert.Equal(t, openai.Message{Role: models.RoleUser, Content: "what now?"}, req[len(req)-1])
	assert.NotEqual(t, "what now?", req[len(req)-2].Content)

	h := a.History()
	assert.Equal(t, models.Turn{Role: models.RoleAssistant, Content: "Go for a walk 🚶"}, h[len(h)-1])
}

func TestRemoteFailureRecordsApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newAssistant(
		store.NewMemory(),
		assistant.WithCompleter(openai.NewClient(openai.WithBaseURL(srv.URL))),
		assistant.WithConfiguredKey("sk-env"),
	)

	reply, err := a.SendMessage(context.Background(), "tips please")

	assert.True(t, apperr.IsKind(err, apperr.RemoteService))
	assert.Equal(t, assistant.Apology, reply)

	h := a.History()
	assert.Equal(t, models.Turn{Role: models.RoleUser, Content: "tips please"}, h[len(h)-2])
	assert.Equal(t, models.Turn{Role: models.RoleAssistant, Content: assistant.Apology}, h[len(h)-1])
}

func TestExchangeSplit(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("offline")}
	a := newAssistant(store.NewMemory(), assistant.WithCompleter(fc))
	a.SetCredential("sk")

	x := a.Begin("hello")
	require.NotNil(t, x)
	assert.True(t, x.Remote())
	assert.Equal(t, "hello", x.Message())

	// the user turn is recorded before the reply arrives
	assert.Equal(t, "hello", a.History()[a.Len()-1].Content)

	reply, err := x.Await(context.Background())
	assert.Error(t, err)

	assert.Equal(t, assistant.Apology, a.Finish(x, reply, err))
}

func TestNotificationsNeverGoRemote(t *testing.T) {
	fc := &fakeCompleter{reply: "remote"}
	a := newAssistant(store.NewMemory(), assistant.WithCompleter(fc))
	a.SetCredential("sk")

	a.NotifyBreakSuggestion()
	a.NotifyResourceStarted(models.Resource{ID: 1, Title: "HTML"})

	assert.Empty(t, fc.requests)

	h := a.History()
	brk := h[len(h)-2].Content
	res := h[len(h)-1].Content

	assert.Contains(t, brk, "Great job completing your timer! ")

	var matched bool

	for _, p := range assistant.Pool(assistant.Break) {
		if brk == "Great job completing your timer! "+p {
			matched = true
		}
	}

	assert.True(t, matched, brk)
	assert.Contains(t, res, "HTML")
}

func TestCredential(t *testing.T) {
	db := store.NewMemory()

	a := newAssistant(db, assistant.WithConfiguredKey("sk-env"))
	assert.Equal(t, "sk-env", a.Credential())

	a.SetCredential("sk-saved")
	assert.Equal(t, "sk-saved", newAssistant(db).Credential())

	turns := a.Len()
	a.SetCredential("")
	assert.Equal(t, turns, a.Len())
	assert.Equal(t, "sk-env", a.Credential())
	assert.Empty(t, newAssistant(db).Credential())
}

func TestClear(t *testing.T) {
	db := store.NewMemory()
	a := newAssistant(db)

	_, _ = a.SendMessage(context.Background(), "hi")
	a.Clear()

	assert.Equal(t, []models.Turn{
		{Role: models.RoleAssistant, Content: assistant.Welcome},
	}, newAssistant(db).History())
}
