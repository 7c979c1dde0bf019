package handler

import (
	"context"
	"time"

	"lexibot/internal/domain"
	"lexibot/internal/service"
	"lexibot/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Assistant is the language-model collaborator consumed by the handlers.
type Assistant interface {
	Translate(ctx context.Context, word, learningLang, nativeLang string) (string, error)
	ExampleSentences(ctx context.Context, word, translation, learningLang, nativeLang string) (string, error)
	Answer(ctx context.Context, word, question string) (string, error)
}

const completionTimeout = 60 * time.Second

// Bot is the slice of the telebot API the handlers use directly.
type Bot interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Delete(msg tele.Editable) error
}

// Handler routes every inbound update to the right flow. Each flow keeps
// its own per-chat step store; the mode map decides which flow family owns
// the next free-text message.
type Handler struct {
	bot        Bot
	users      *service.UserService
	categories *service.CategoryService
	words      *service.WordService
	assistant  Assistant
	logger     *zap.Logger

	learningLang string
	nativeLang   string

	modes         *state.Modes
	categorySteps *state.Store[domain.CategoryState]
	addWordSteps  *state.Store[domain.AddWordState]
	deleteSteps   *state.Store[domain.DeleteWordState]
	editSteps     *state.Store[domain.EditWordState]
	practiceSteps *state.Store[domain.PracticeState]
	importSteps   *state.Store[domain.ImportState]
	translations  *state.TranslationCache
}

// NewHandler creates a new handler instance
func NewHandler(
	bot Bot,
	users *service.UserService,
	categories *service.CategoryService,
	words *service.WordService,
	assistant Assistant,
	translations *state.TranslationCache,
	learningLang, nativeLang string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		users:         users,
		categories:    categories,
		words:         words,
		assistant:     assistant,
		logger:        logger,
		learningLang:  learningLang,
		nativeLang:    nativeLang,
		modes:         state.NewModes(),
		categorySteps: state.NewStore[domain.CategoryState](),
		addWordSteps:  state.NewStore[domain.AddWordState](),
		deleteSteps:   state.NewStore[domain.DeleteWordState](),
		editSteps:     state.NewStore[domain.EditWordState](),
		practiceSteps: state.NewStore[domain.PracticeState](),
		importSteps:   state.NewStore[domain.ImportState](),
		translations:  translations,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// ClearChat tears down every flow's step record for the chat and returns
// its mode to idle. Used by Cancel, /reset and the failure boundary.
func (h *Handler) ClearChat(chatID int64) {
	h.categorySteps.Delete(chatID)
	h.addWordSteps.Delete(chatID)
	h.deleteSteps.Delete(chatID)
	h.editSteps.Delete(chatID)
	h.practiceSteps.Delete(chatID)
	h.importSteps.Delete(chatID)
	h.modes.Clear(chatID)
}

func (h *Handler) completionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), completionTimeout)
}
