package handler

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startAddWord enters the add-word flow. The target category is resolved
// once here and not re-checked mid-flow.
func (h *Handler) startAddWord(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	current, err := h.users.CurrentCategory(userID)
	if err != nil {
		return err
	}

	if current == nil {
		h.addWordSteps.Set(chatID, domain.AddWordState{Step: domain.AddWordStepCreatingCategory})
		return c.Send(
			"You have no categories yet. Please enter a name for your first category:",
			cancelMenu(),
		)
	}

	h.addWordSteps.Set(chatID, domain.AddWordState{
		Step:         domain.AddWordStepWaitingWord,
		CategoryID:   current.ID,
		CategoryName: current.Name,
	})
	return c.Send(
		fmt.Sprintf("Adding word to category %q\nPlease enter the word:", current.Name),
		cancelMenu(),
	)
}

// addWordFlow advances the add-word state machine by one step.
func (h *Handler) addWordFlow(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	stateRec, ok := h.addWordSteps.Get(chatID)
	if !ok {
		return h.startAddWord(c)
	}

	switch stateRec.Step {
	case domain.AddWordStepCreatingCategory:
		if text == "" {
			return c.Send("Please enter a valid category name.", cancelMenu())
		}
		category, err := h.categories.Create(userID, text)
		if err != nil {
			return err
		}
		h.addWordSteps.Set(chatID, domain.AddWordState{
			Step:         domain.AddWordStepWaitingWord,
			CategoryID:   category.ID,
			CategoryName: category.Name,
		})
		return c.Send(
			fmt.Sprintf("Category %q created!\nPlease enter the word you want to add:", category.Name),
			cancelMenu(),
		)

	case domain.AddWordStepWaitingWord:
		if text == "" {
			return c.Send("Please enter a valid word.", cancelMenu())
		}
		stateRec.Step = domain.AddWordStepWaitingTranslation
		stateRec.Word = text
		h.addWordSteps.Set(chatID, stateRec)
		return c.Send(
			fmt.Sprintf("Great! Now enter the translation for %q:", text),
			cancelMenu(),
		)

	case domain.AddWordStepWaitingTranslation:
		if text == "" {
			return c.Send("Please enter a valid translation.", cancelMenu())
		}
		if err := h.words.Save(userID, stateRec.CategoryID, stateRec.Word, text); err != nil {
			return err
		}

		h.logger.Info("Word pair saved",
			zap.Int64("user_id", userID),
			zap.String("word", stateRec.Word),
			zap.String("translation", text),
		)

		h.addWordSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send(
			fmt.Sprintf("✅ Successfully added to category %q:\n%s - %s", stateRec.CategoryName, stateRec.Word, text),
			h.mainMenu(userID),
		)
	}
	return nil
}

// handleMyWords lists the current category's words.
func (h *Handler) handleMyWords(c tele.Context) error {
	userID := c.Sender().ID

	current, err := h.users.CurrentCategory(userID)
	if err != nil {
		return err
	}
	if current == nil {
		return c.Send("You have no current category yet. Use /category to pick one.", h.mainMenu(userID))
	}

	const pageSize = 50
	words, total, err := h.words.List(userID, current.ID, 1, pageSize)
	if err != nil {
		return err
	}

	if total == 0 {
		return c.Send(
			fmt.Sprintf("Category %q has no words yet. Press %s to add one.", current.Name, btnAddWord),
			h.mainMenu(userID),
		)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📖 Words in %q (%d):\n\n", current.Name, total))
	for i, w := range words {
		sb.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, w.Word, w.Translation))
	}
	if total > len(words) {
		sb.WriteString(fmt.Sprintf("\n…and %d more.", total-len(words)))
	}

	return c.Send(sb.String(), h.mainMenu(userID))
}
