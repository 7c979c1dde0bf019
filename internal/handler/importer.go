package handler

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startImport enters the bulk import flow.
func (h *Handler) startImport(c tele.Context) error {
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

	h.importSteps.Set(chatID, domain.ImportState{})
	return c.Send(
		fmt.Sprintf(
			"📥 Importing into %q.\n\nSend the words one pair per line:\nword - translation",
			current.Name,
		),
		cancelMenu(),
	)
}

// importFlow parses the pasted block and saves every valid pair.
func (h *Handler) importFlow(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	if _, ok := h.importSteps.Get(chatID); !ok {
		return h.startImport(c)
	}

	current, err := h.users.CurrentCategory(userID)
	if err != nil {
		return err
	}
	if current == nil {
		h.importSteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send("You have no current category yet. Use /category to pick one.", h.mainMenu(userID))
	}

	pairs, malformed := parseImportLines(c.Text())
	if len(pairs) == 0 {
		return c.Send(
			"❌ No valid pairs found. Use one pair per line:\nword - translation",
			cancelMenu(),
		)
	}

	saved := 0
	for _, p := range pairs {
		if err := h.words.Save(userID, current.ID, p.Word, p.Translation); err != nil {
			return err
		}
		saved++
	}

	h.logger.Info("Bulk import completed",
		zap.Int64("user_id", userID),
		zap.Int("saved", saved),
		zap.Int("malformed", len(malformed)),
	)

	h.importSteps.Delete(chatID)
	h.modes.Clear(chatID)

	msg := fmt.Sprintf("✅ Imported %d words into %q.", saved, current.Name)
	if len(malformed) > 0 {
		msg += fmt.Sprintf("\n\n⚠️ Skipped %d malformed lines:\n%s", len(malformed), strings.Join(malformed, "\n"))
	}
	return c.Send(msg, h.mainMenu(userID))
}

// importPair is one parsed "word - translation" line.
type importPair struct {
	Word        string
	Translation string
}

// parseImportLines splits a pasted block into pairs and malformed lines.
// Accepted separators: "-", "–", ";".
func parseImportLines(block string) ([]importPair, []string) {
	var pairs []importPair
	var malformed []string

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var word, translation string
		for _, sep := range []string{" - ", " – ", ";", "-"} {
			if before, after, found := strings.Cut(line, sep); found {
				word = strings.TrimSpace(before)
				translation = strings.TrimSpace(after)
				break
			}
		}

		if word == "" || translation == "" {
			malformed = append(malformed, line)
			continue
		}
		pairs = append(pairs, importPair{Word: word, Translation: translation})
	}

	return pairs, malformed
}
