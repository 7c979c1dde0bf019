package handler

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// startEditWord shows an inline list of words whose translation can be
// changed.
func (h *Handler) startEditWord(c tele.Context) error {
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
			fmt.Sprintf("Category %q has no words to edit.", current.Name),
			h.mainMenu(userID),
		)
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(words))
	ids := make([]int64, 0, len(words))
	for _, w := range words {
		label := fmt.Sprintf("%s — %s", w.Word, w.Translation)
		rows = append(rows, markup.Row(markup.Data(label, fmt.Sprintf("%s%d", prefixEditWord, w.ID))))
		ids = append(ids, w.ID)
	}
	markup.Inline(rows...)

	h.editSteps.Set(chatID, domain.EditWordState{
		Step:    domain.EditWordStepSelecting,
		WordIDs: ids,
	})
	return c.Send("Select a word to edit:", markup)
}

// handleEditWordCallback records the picked word and asks for its new
// translation.
func (h *Handler) handleEditWordCallback(c tele.Context, wordID int64) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	stateRec, ok := h.editSteps.Get(chatID)
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
		h.editSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ This word no longer exists.",
			ShowAlert: true,
		})
	}

	h.editSteps.Set(chatID, domain.EditWordState{
		Step: domain.EditWordStepWaitingTranslation,
		Word: word,
	})

	if err := c.Send(
		fmt.Sprintf("Current: %s — %s\n\nEnter the new translation for %q:", word.Word, word.Translation, word.Word),
		cancelMenu(),
	); err != nil {
		return err
	}
	return c.Respond()
}

// editWordFlow handles the new-translation message.
func (h *Handler) editWordFlow(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	stateRec, ok := h.editSteps.Get(chatID)
	if !ok || stateRec.Step != domain.EditWordStepWaitingTranslation || stateRec.Word == nil {
		return h.startEditWord(c)
	}

	if text == "" {
		return c.Send("Please enter a valid translation.", cancelMenu())
	}

	if err := h.words.UpdateTranslation(userID, stateRec.Word.ID, text); err != nil {
		return err
	}

	h.editSteps.Delete(chatID)
	h.modes.Clear(chatID)
	return c.Send(
		fmt.Sprintf("✅ Updated: %s — %s", stateRec.Word.Word, text),
		h.mainMenu(userID),
	)
}
