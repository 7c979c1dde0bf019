package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"lexibot/internal/domain"
	"lexibot/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Callback payload prefixes. Decoded once at the boundary; never matched
// anywhere else.
const (
	prefixAddTranslation = "add_trans_"
	prefixMoreExamples   = "more_examples_"
	prefixFollowUp       = "translate_followup_"
	prefixDeleteWord     = "del_word_"
	prefixEditWord       = "edit_word_"
	prefixPracticeKind   = "practice_"
)

// callbackKind tags a decoded callback payload.
type callbackKind int

const (
	cbUnknown callbackKind = iota
	cbAddTranslation
	cbMoreExamples
	cbFollowUp
	cbDeleteWord
	cbEditWord
	cbPracticeKind
)

// callbackAction is a callback payload decoded into a tagged variant.
type callbackAction struct {
	kind    callbackKind
	payload string
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// decodeCallback turns raw callback data into a tagged action. Exactly one
// tag matches any given payload.
func decodeCallback(data string) callbackAction {
	data = cleanCallbackData(data)

	for _, candidate := range []struct {
		prefix string
		kind   callbackKind
	}{
		{prefixAddTranslation, cbAddTranslation},
		{prefixMoreExamples, cbMoreExamples},
		{prefixFollowUp, cbFollowUp},
		{prefixDeleteWord, cbDeleteWord},
		{prefixEditWord, cbEditWord},
		{prefixPracticeKind, cbPracticeKind},
	} {
		if rest, found := strings.CutPrefix(data, candidate.prefix); found {
			return callbackAction{kind: candidate.kind, payload: rest}
		}
	}
	return callbackAction{kind: cbUnknown, payload: data}
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Depending on the client, the payload arrives split into Unique+Data
	// or whole in Data with the marker byte still attached.
	action := decodeCallback(callback.Unique + callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", cleanCallbackData(callback.Unique+callback.Data)),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch action.kind {
	case cbAddTranslation:
		return h.handleAddTranslation(c, action.payload)
	case cbMoreExamples:
		return h.handleMoreExamples(c, action.payload)
	case cbFollowUp:
		return h.handleFollowUp(c, action.payload)
	case cbDeleteWord:
		wordID, err := strconv.ParseInt(action.payload, 10, 64)
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid selection."})
		}
		return h.handleDeleteWordCallback(c, wordID)
	case cbEditWord:
		wordID, err := strconv.ParseInt(action.payload, 10, 64)
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid selection."})
		}
		return h.handleEditWordCallback(c, wordID)
	case cbPracticeKind:
		return h.handlePracticeKindCallback(c, domain.PracticeKind(action.payload))
	}

	h.logger.Warn("Unhandled callback", zap.String("data", cleanCallbackData(callback.Unique+callback.Data)))
	return c.Respond()
}

// handleAddTranslation commits a cached translation to the vocabulary. The
// entry is taken, not read, so a repeated press after success reports
// "expired" instead of inserting twice.
func (h *Handler) handleAddTranslation(c tele.Context, key string) error {
	userID := c.Sender().ID

	entry, ok := h.translations.Take(key)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Translation data expired. Please try again.",
			ShowAlert: true,
		})
	}

	// The user typed in their own language; store the pair the way it will
	// be practiced, learning-language side first.
	if err := h.words.Save(userID, entry.CategoryID, entry.Translation, entry.Word); err != nil {
		return err
	}

	h.logger.Info("Translation added to vocabulary",
		zap.Int64("user_id", userID),
		zap.String("word", entry.Translation),
	)

	success := fmt.Sprintf("✅ Added %q - %q to your vocabulary!", entry.Translation, entry.Word)
	if err := c.Edit(success); err != nil {
		if handled := h.handleEditError(err, c, userID); handled == nil {
			return nil
		}
		if err := c.Send(success); err != nil {
			return err
		}
	}
	return c.Respond(&tele.CallbackResponse{Text: "Word added successfully!"})
}

// handleMoreExamples generates another round of example sentences for a
// cached translation. The entry is read without removal so the button can
// be pressed repeatedly, and re-issued afterwards so the new message's
// buttons stay valid.
func (h *Handler) handleMoreExamples(c tele.Context, key string) error {
	chatID := c.Chat().ID

	entry, ok := h.translations.Get(key)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Translation data expired. Please try again.",
			ShowAlert: true,
		})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: "Generating more examples..."}); err != nil {
		return err
	}
	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Warn("Failed to send typing action", zap.Error(err))
	}

	ctx, cancel := h.completionContext()
	defer cancel()

	examples, err := h.assistant.ExampleSentences(
		ctx, entry.Word, entry.Translation, entry.LearningContext, entry.OriginalContext,
	)
	if err != nil {
		return err
	}

	entry.Examples = examples
	h.translations.Put(key, entry)

	h.logger.Debug("Examples generated",
		zap.Int64("chat_id", chatID),
		zap.String("key", key),
	)

	return c.Send(
		fmt.Sprintf("📝 More examples with %q:\n\n%s", entry.Translation, examples),
		examplesMarkup(key),
	)
}

// handleFollowUp stores follow-up state for the chat so the next idle
// message is answered as a question about this word. The subject is looked
// up through the correlation key rather than carried in the payload.
func (h *Handler) handleFollowUp(c tele.Context, key string) error {
	chatID := c.Chat().ID

	entry, ok := h.translations.Get(key)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Translation data expired. Please try again.",
			ShowAlert: true,
		})
	}

	sent, err := h.bot.Send(c.Chat(), "What would you like to know?", cancelMenu())
	if err != nil {
		return err
	}

	h.translations.Put(state.FollowupKey(chatID), domain.TranslationEntry{
		Word:              entry.Translation,
		KeyboardMessageID: sent.ID,
	})

	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not
// modified, just acknowledge the callback; otherwise acknowledge and
// return the error so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}
