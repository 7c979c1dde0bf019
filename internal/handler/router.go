package handler

import (
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes every free-text message. Routing order: /start, the
// zero-categories onboarding override, the global Cancel label, the chat's
// current mode, slash commands, fixed menu labels, and finally the AI
// translate fallthrough for unmatched text in idle.
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if text == "/start" {
		return h.handleStart(c)
	}

	if err := h.users.EnsureExists(userID, c.Sender().Username); err != nil {
		return err
	}

	// Onboarding override: with zero categories, the first message only
	// opens the creation step; the next one becomes the category name.
	hasCategories, err := h.categories.HasAny(userID)
	if err != nil {
		return err
	}
	if !hasCategories {
		if _, ok := h.categorySteps.Get(chatID); !ok {
			h.categorySteps.Set(chatID, startCategoryCreation())
			return c.Send(
				"You have no categories yet. Please enter a name for your first category:",
				cancelMenu(),
			)
		}
		return h.categoryFlow(c)
	}

	// Global cancel tears down whatever flow the chat is in.
	if text == btnCancel {
		h.ClearChat(chatID)
		return c.Send("Operation cancelled.", h.mainMenu(userID))
	}

	switch h.modes.Get(chatID) {
	case domain.ModeAddingWord:
		return h.addWordFlow(c)
	case domain.ModePracticing:
		return h.practiceFlow(c)
	case domain.ModeImporting:
		return h.importFlow(c)
	case domain.ModeEditingWord:
		return h.editWordFlow(c)
	case domain.ModeDeletingWord:
		// The flow is callback-driven; stray text re-shows the list.
		return h.startDeleteWord(c)
	case domain.ModeManagingCategory:
		return h.categoryFlow(c)
	}

	// Commands in idle.
	if strings.HasPrefix(text, "/") {
		switch text {
		case "/add":
			h.modes.Set(chatID, domain.ModeAddingWord)
			return h.startAddWord(c)
		case "/category":
			h.modes.Set(chatID, domain.ModeManagingCategory)
			return h.startCategoryFlow(c)
		case "/reset":
			h.ClearChat(chatID)
			return c.Send("The bot has been reset.", h.mainMenu(userID))
		default:
			return c.Send("❓ Unknown command. Please use the menu buttons below.", h.mainMenu(userID))
		}
	}

	// Fixed menu labels.
	switch text {
	case btnAddWord:
		h.modes.Set(chatID, domain.ModeAddingWord)
		return h.startAddWord(c)
	case btnPractice:
		h.modes.Set(chatID, domain.ModePracticing)
		return h.startPractice(c)
	case btnImport:
		h.modes.Set(chatID, domain.ModeImporting)
		return h.startImport(c)
	case btnMyWords:
		return h.handleMyWords(c)
	case btnEditWord:
		h.modes.Set(chatID, domain.ModeEditingWord)
		return h.startEditWord(c)
	case btnDeleteWord:
		h.modes.Set(chatID, domain.ModeDeletingWord)
		return h.startDeleteWord(c)
	case btnMoreOptions:
		return c.Send("Additional options:", secondaryMenu())
	case btnBackToMain:
		return c.Send("Main menu:", h.mainMenu(userID))
	}

	// The current-category button opens category management.
	if strings.HasPrefix(text, categoryButtonPrefix) {
		h.modes.Set(chatID, domain.ModeManagingCategory)
		return h.startCategoryFlow(c)
	}

	// A pending follow-up question claims the next idle message.
	if entry, ok := h.translations.Take(state.FollowupKey(chatID)); ok {
		return h.answerFollowUp(c, entry)
	}

	h.logger.Debug("Routing idle text to translation",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
	)
	return h.translateText(c)
}
