package handler

import (
	"fmt"
	"strconv"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// translateText handles unmatched idle text: ask the assistant for a
// translation and attach the add/examples/follow-up buttons. The result is
// cached under the word-derived correlation key so the buttons can find it
// later without regenerating.
func (h *Handler) translateText(c tele.Context) error {
	userID := c.Sender().ID
	word := strings.TrimSpace(c.Text())
	if word == "" {
		return nil
	}

	current, err := h.users.CurrentCategory(userID)
	if err != nil {
		return err
	}
	if current == nil {
		return c.Send("You have no current category yet. Use /category to pick one.", h.mainMenu(userID))
	}

	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Warn("Failed to send typing action", zap.Error(err))
	}

	ctx, cancel := h.completionContext()
	defer cancel()

	translation, err := h.assistant.Translate(ctx, word, h.learningLang, h.nativeLang)
	if err != nil {
		return err
	}

	// The first line is the translation itself; the rest is usage notes.
	primary := translation
	if line, _, found := strings.Cut(translation, "\n"); found {
		primary = strings.TrimSpace(line)
	}

	key := state.KeyFor(word)
	h.translations.Put(key, domain.TranslationEntry{
		Word:            word,
		Translation:     primary,
		CategoryID:      current.ID,
		LearningContext: h.learningLang,
		OriginalContext: h.nativeLang,
	})

	h.logger.Debug("Translation cached",
		zap.Int64("user_id", userID),
		zap.String("key", key),
		zap.String("word", word),
	)

	return c.Send(
		fmt.Sprintf("🔄 %s\n\n%s", word, translation),
		translationMarkup(key),
	)
}

// answerFollowUp answers a pending follow-up question about a word. The
// entry was stored when the follow-up button was pressed and consumed by
// the router before calling here.
func (h *Handler) answerFollowUp(c tele.Context, entry domain.TranslationEntry) error {
	userID := c.Sender().ID
	question := strings.TrimSpace(c.Text())

	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Warn("Failed to send typing action", zap.Error(err))
	}

	ctx, cancel := h.completionContext()
	defer cancel()

	answer, err := h.assistant.Answer(ctx, entry.Word, question)
	if err != nil {
		return err
	}

	// Remove the stale prompt, then restore the main keyboard it replaced.
	if entry.KeyboardMessageID != 0 {
		stored := tele.StoredMessage{
			MessageID: strconv.Itoa(entry.KeyboardMessageID),
			ChatID:    c.Chat().ID,
		}
		if err := h.bot.Delete(stored); err != nil {
			h.logger.Debug("Failed to remove follow-up prompt", zap.Error(err))
		}
	}

	return c.Send(
		fmt.Sprintf("💬 About %q:\n\n%s", entry.Word, answer),
		h.mainMenu(userID),
	)
}
