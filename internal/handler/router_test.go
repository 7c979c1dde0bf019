package handler

import (
	"context"
	"testing"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/service"
	"lexibot/internal/state"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// fakeContext records outgoing traffic for a single simulated update.
type fakeContext struct {
	tele.Context
	chat      *tele.Chat
	sender    *tele.User
	text      string
	sent      []string
	responses []*tele.CallbackResponse
}

func newFakeContext(chatID int64, text string) *fakeContext {
	return &fakeContext{
		chat:   &tele.Chat{ID: chatID},
		sender: &tele.User{ID: chatID, Username: "tester"},
		text:   text,
	}
}

func (c *fakeContext) Chat() *tele.Chat         { return c.chat }
func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Text() string             { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return nil }

func (c *fakeContext) Notify(action tele.ChatAction) error { return nil }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

func (c *fakeContext) lastSent() string {
	if len(c.sent) == 0 {
		return ""
	}
	return c.sent[len(c.sent)-1]
}

// fakeBot satisfies Bot without any network.
type fakeBot struct {
	sent    []string
	deleted []tele.Editable
	nextID  int
}

func (b *fakeBot) Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc) {}

func (b *fakeBot) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if s, ok := what.(string); ok {
		b.sent = append(b.sent, s)
	}
	b.nextID++
	return &tele.Message{ID: b.nextID}, nil
}

func (b *fakeBot) Delete(msg tele.Editable) error {
	b.deleted = append(b.deleted, msg)
	return nil
}

type fakeAssistant struct{}

func (fakeAssistant) Translate(ctx context.Context, word, learningLang, nativeLang string) (string, error) {
	return "hola\nShort usage note.", nil
}

func (fakeAssistant) ExampleSentences(ctx context.Context, word, translation, learningLang, nativeLang string) (string, error) {
	return "1. Example sentence.", nil
}

func (fakeAssistant) Answer(ctx context.Context, word, question string) (string, error) {
	return "It means hello.", nil
}

func newFlowHandler(assistant Assistant) (*Handler, *testutil.MockUserRepository, *testutil.MockCategoryRepository, *testutil.MockWordRepository, *fakeBot) {
	userRepo := new(testutil.MockUserRepository)
	catRepo := new(testutil.MockCategoryRepository)
	wordRepo := new(testutil.MockWordRepository)
	bot := &fakeBot{}

	h := NewHandler(
		bot,
		service.NewUserService(userRepo),
		service.NewCategoryService(catRepo, userRepo),
		service.NewWordService(wordRepo),
		assistant,
		state.NewTranslationCache(16, time.Minute),
		"English", "Russian",
		zap.NewNop(),
	)
	return h, userRepo, catRepo, wordRepo, bot
}

func TestHandleText_OnboardingAsksBeforeCreating(t *testing.T) {
	h, userRepo, catRepo, _, _ := newFlowHandler(nil)

	userRepo.On("EnsureExists", int64(9), "tester").Return(nil)
	catRepo.On("CountByUser", int64(9)).Return(0, nil).Twice()

	// The first message only opens the flow, whatever its text is.
	first := newFakeContext(9, "hello")
	require.NoError(t, h.handleText(first))

	catRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Contains(t, first.lastSent(), "first category")

	rec, ok := h.categorySteps.Get(9)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryStepCreating, rec.Step)

	// The next message names the category.
	created := &domain.Category{ID: 7, UserID: 9, Name: "Travel"}
	catRepo.On("Create", int64(9), "Travel").Return(created, nil)
	userRepo.On("SetCurrentCategory", int64(9), int64(7)).Return(nil)
	catRepo.On("CountByUser", int64(9)).Return(1, nil)
	userRepo.On("CurrentCategory", int64(9)).Return(created, nil)

	second := newFakeContext(9, "Travel")
	require.NoError(t, h.handleText(second))

	catRepo.AssertCalled(t, "Create", int64(9), "Travel")
	assert.Contains(t, second.lastSent(), `"Travel" created`)

	_, ok = h.categorySteps.Get(9)
	assert.False(t, ok, "onboarding step record should be cleared")
	assert.Equal(t, domain.ModeIdle, h.modes.Get(9))
}

func TestHandleText_AddWordFlow(t *testing.T) {
	h, userRepo, catRepo, wordRepo, _ := newFlowHandler(nil)

	current := &domain.Category{ID: 7, UserID: 9, Name: "Travel"}
	userRepo.On("EnsureExists", int64(9), "tester").Return(nil)
	catRepo.On("CountByUser", int64(9)).Return(1, nil)
	userRepo.On("CurrentCategory", int64(9)).Return(current, nil)

	require.NoError(t, h.handleText(newFakeContext(9, btnAddWord)))

	rec, ok := h.addWordSteps.Get(9)
	require.True(t, ok)
	assert.Equal(t, domain.AddWordStepWaitingWord, rec.Step)
	assert.Equal(t, int64(7), rec.CategoryID)

	require.NoError(t, h.handleText(newFakeContext(9, "bonjour")))

	rec, ok = h.addWordSteps.Get(9)
	require.True(t, ok)
	assert.Equal(t, domain.AddWordStepWaitingTranslation, rec.Step)
	assert.Equal(t, "bonjour", rec.Word)

	wordRepo.On("Save", int64(9), int64(7), "bonjour", "hello").Return(nil)

	last := newFakeContext(9, "hello")
	require.NoError(t, h.handleText(last))

	wordRepo.AssertCalled(t, "Save", int64(9), int64(7), "bonjour", "hello")
	assert.Contains(t, last.lastSent(), "bonjour - hello")

	_, ok = h.addWordSteps.Get(9)
	assert.False(t, ok)
	assert.Equal(t, domain.ModeIdle, h.modes.Get(9))
}

func TestHandleAddTranslation_ExpiredKey(t *testing.T) {
	h, _, _, wordRepo, _ := newFlowHandler(nil)

	c := newFakeContext(9, "")
	require.NoError(t, h.handleAddTranslation(c, "0000000000000000"))

	wordRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	require.Len(t, c.responses, 1)
	assert.Contains(t, c.responses[0].Text, "expired")
	assert.True(t, c.responses[0].ShowAlert)
}

func TestHandleText_CancelTearsDownEveryFlow(t *testing.T) {
	h, userRepo, catRepo, _, _ := newFlowHandler(nil)

	current := &domain.Category{ID: 7, UserID: 9, Name: "Travel"}
	userRepo.On("EnsureExists", int64(9), "tester").Return(nil)
	catRepo.On("CountByUser", int64(9)).Return(1, nil)
	userRepo.On("CurrentCategory", int64(9)).Return(current, nil)

	h.modes.Set(9, domain.ModeAddingWord)
	h.addWordSteps.Set(9, domain.AddWordState{Step: domain.AddWordStepWaitingTranslation, Word: "bonjour"})
	h.categorySteps.Set(9, domain.CategoryState{Step: domain.CategoryStepSelecting})

	c := newFakeContext(9, btnCancel)
	require.NoError(t, h.handleText(c))

	assert.Contains(t, c.lastSent(), "cancelled")
	assert.Equal(t, domain.ModeIdle, h.modes.Get(9))

	_, ok := h.addWordSteps.Get(9)
	assert.False(t, ok)
	_, ok = h.categorySteps.Get(9)
	assert.False(t, ok)
}

func TestHandleText_ConfirmDeleteMismatchReprompts(t *testing.T) {
	h, userRepo, catRepo, _, _ := newFlowHandler(nil)

	pending := &domain.Category{ID: 7, UserID: 9, Name: "Travel"}
	userRepo.On("EnsureExists", int64(9), "tester").Return(nil)
	catRepo.On("CountByUser", int64(9)).Return(2, nil)

	h.modes.Set(9, domain.ModeManagingCategory)
	h.categorySteps.Set(9, domain.CategoryState{
		Step:          domain.CategoryStepConfirmDelete,
		PendingDelete: pending,
	})

	// Wrong case: no deletion, no transition.
	c := newFakeContext(9, "travel")
	require.NoError(t, h.handleText(c))

	catRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	assert.Contains(t, c.lastSent(), "doesn't match")

	rec, ok := h.categorySteps.Get(9)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryStepConfirmDelete, rec.Step)
	assert.Equal(t, domain.ModeManagingCategory, h.modes.Get(9))
}

func TestHandleText_DeleteWordModeStaysInFlow(t *testing.T) {
	h, userRepo, catRepo, wordRepo, _ := newFlowHandler(nil)

	current := &domain.Category{ID: 7, UserID: 9, Name: "Travel"}
	userRepo.On("EnsureExists", int64(9), "tester").Return(nil)
	catRepo.On("CountByUser", int64(9)).Return(1, nil)
	userRepo.On("CurrentCategory", int64(9)).Return(current, nil)
	wordRepo.On("ListByCategory", int64(9), int64(7), wordPickLimit, 0).Return([]domain.Word{}, nil)
	wordRepo.On("CountByCategory", int64(9), int64(7)).Return(0, nil)

	h.modes.Set(9, domain.ModeDeletingWord)

	// Stray text must stay inside the delete flow, not fall through to
	// translation.
	c := newFakeContext(9, "stray text")
	require.NoError(t, h.handleText(c))

	assert.Contains(t, c.lastSent(), "no words to delete")
	assert.Equal(t, domain.ModeIdle, h.modes.Get(9))
}
