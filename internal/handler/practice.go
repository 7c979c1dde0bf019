package handler

import (
	"fmt"
	"math/rand"
	"strings"

	"lexibot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const practiceQueueSize = 10

// startPractice asks which exercise type to run.
func (h *Handler) startPractice(c tele.Context) error {
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

	words, err := h.words.PracticeSample(userID, current.ID, practiceQueueSize)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		h.modes.Clear(chatID)
		return c.Send(
			fmt.Sprintf("Category %q has no words to practice yet.", current.Name),
			h.mainMenu(userID),
		)
	}

	h.practiceSteps.Set(chatID, domain.PracticeState{Queue: words})

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✍️ Translate", prefixPracticeKind+string(domain.PracticeTranslate)),
			markup.Data("🔤 Multiple Choice", prefixPracticeKind+string(domain.PracticeChoice)),
		),
		markup.Row(markup.Data("🎲 Random", prefixPracticeKind+string(domain.PracticeRandom))),
	)
	return c.Send("Choose practice type:", markup)
}

// handlePracticeKindCallback fixes the exercise type and asks the first
// question.
func (h *Handler) handlePracticeKindCallback(c tele.Context, kind domain.PracticeKind) error {
	chatID := c.Chat().ID

	stateRec, ok := h.practiceSteps.Get(chatID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ This practice session has expired. Press Practice to start over.",
			ShowAlert: true,
		})
	}

	switch kind {
	case domain.PracticeTranslate, domain.PracticeChoice, domain.PracticeRandom:
	default:
		return c.Respond(&tele.CallbackResponse{Text: "❌ Unknown practice type."})
	}

	stateRec.Kind = kind
	h.practiceSteps.Set(chatID, stateRec)

	if err := c.Respond(); err != nil {
		return err
	}
	return h.askPracticeQuestion(c, stateRec)
}

// practiceFlow checks each answer and advances the queue.
func (h *Handler) practiceFlow(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	stateRec, ok := h.practiceSteps.Get(chatID)
	if !ok || stateRec.Kind == "" {
		return h.startPractice(c)
	}

	if text == btnExitPractice {
		h.practiceSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send(practiceSummary(stateRec), h.mainMenu(userID))
	}

	word := stateRec.Current()
	if word == nil {
		h.practiceSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send(practiceSummary(stateRec), h.mainMenu(userID))
	}

	if text == btnSkip {
		if err := c.Send(fmt.Sprintf("⏭️ Skipped. The answer was: %s", word.Translation)); err != nil {
			return err
		}
	} else if answerMatches(text, word.Translation) {
		stateRec.Correct++
		if err := c.Send("✅ Correct!"); err != nil {
			return err
		}
	} else {
		if err := c.Send(fmt.Sprintf("❌ Not quite. The answer was: %s", word.Translation)); err != nil {
			return err
		}
	}

	stateRec.Index++
	h.practiceSteps.Set(chatID, stateRec)

	if stateRec.Current() == nil {
		h.practiceSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send(practiceSummary(stateRec), h.mainMenu(userID))
	}
	return h.askPracticeQuestion(c, stateRec)
}

func (h *Handler) askPracticeQuestion(c tele.Context, stateRec domain.PracticeState) error {
	word := stateRec.Current()
	if word == nil {
		return nil
	}

	kind := stateRec.Kind
	if kind == domain.PracticeRandom {
		if rand.Intn(2) == 0 {
			kind = domain.PracticeTranslate
		} else {
			kind = domain.PracticeChoice
		}
	}

	question := fmt.Sprintf("Translate: %s", word.Word)

	if kind == domain.PracticeTranslate {
		menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
		menu.Reply(
			menu.Row(menu.Text(btnSkip)),
			menu.Row(menu.Text(btnExitPractice)),
		)
		return c.Send(question, menu)
	}

	options := buildChoices(*word, stateRec.Queue, 4)
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rows := make([]tele.Row, 0, len(options)+2)
	for _, opt := range options {
		rows = append(rows, menu.Row(menu.Text(opt)))
	}
	rows = append(rows, menu.Row(menu.Text(btnSkip)), menu.Row(menu.Text(btnExitPractice)))
	menu.Reply(rows...)
	return c.Send(question, menu)
}

// buildChoices returns up to n options including the correct translation,
// shuffled, with decoys drawn from the rest of the queue.
func buildChoices(word domain.Word, queue []domain.Word, n int) []string {
	options := []string{word.Translation}
	for _, other := range queue {
		if len(options) >= n {
			break
		}
		if other.ID == word.ID || other.Translation == word.Translation {
			continue
		}
		options = append(options, other.Translation)
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// answerMatches compares an answer with the expected translation,
// case-insensitively after trimming.
func answerMatches(answer, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected))
}

func practiceSummary(stateRec domain.PracticeState) string {
	answered := stateRec.Index
	if answered > len(stateRec.Queue) {
		answered = len(stateRec.Queue)
	}
	return fmt.Sprintf("🏁 Practice finished!\n\nCorrect answers: %d of %d", stateRec.Correct, answered)
}
