package handler

import (
	"fmt"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const wordPickLimit = 30

// startDeleteWord shows an inline list of the current category's words.
func (h *Handler) startDeleteWord(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	current, err := h.users.CurrentCategory(userID)
	if err != nil {
		return err
	}
	if current == nil {
		h.modes.Clear(chatID)
		return c.Send("You have no current category yet. Use /category to pick one.", h.mainMenu(userID))
	}

	words, _, err := h.words.List(userID, current.ID, 1, wordPickLimit)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		h.modes.Clear(chatID)
		return c.Send(
			fmt.Sprintf("Category %q has no words to delete.", current.Name),
			h.mainMenu(userID),
		)
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(words))
	ids := make([]int64, 0, len(words))
	for _, w := range words {
		label := fmt.Sprintf("%s — %s", w.Word, w.Translation)
		rows = append(rows, markup.Row(markup.Data(label, fmt.Sprintf("%s%d", prefixDeleteWord, w.ID))))
		ids = append(ids, w.ID)
	}
	markup.Inline(rows...)

	h.deleteSteps.Set(chatID, domain.DeleteWordState{WordIDs: ids})
	return c.Send("Select a word to delete:", markup)
}

// handleDeleteWordCallback removes the picked word.
func (h *Handler) handleDeleteWordCallback(c tele.Context, wordID int64) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	stateRec, ok := h.deleteSteps.Get(chatID)
	if !ok || !containsID(stateRec.WordIDs, wordID) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ This list has expired. Please try again.",
			ShowAlert: true,
		})
	}

	word, err := h.words.Get(userID, wordID)
	if err != nil {
		return err
	}
	if word == nil {
		h.deleteSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ This word no longer exists.",
			ShowAlert: true,
		})
	}

	if err := h.words.Delete(userID, wordID); err != nil {
		return err
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", wordID),
	)

	h.deleteSteps.Delete(chatID)
	h.modes.Clear(chatID)

	if err := c.Edit(fmt.Sprintf("✅ Deleted %q from your vocabulary.", word.Word)); err != nil {
		if handled := h.handleEditError(err, c, userID); handled == nil {
			return nil
		}
		return c.Send(fmt.Sprintf("✅ Deleted %q from your vocabulary.", word.Word))
	}
	return c.Respond()
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
