package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.users.EnsureExists(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgGenericError)
	}

	h.ClearChat(chatID)

	hasCategories, err := h.categories.HasAny(userID)
	if err != nil {
		h.logger.Error("Failed to check categories", zap.Error(err))
		return c.Send(msgGenericError)
	}

	if !hasCategories {
		// Onboarding: the next message becomes the first category name.
		h.categorySteps.Set(chatID, startCategoryCreation())
		return c.Send(
			"👋 Welcome! Let's set up your vocabulary.\n\nPlease enter a name for your first category:",
			cancelMenu(),
		)
	}

	return c.Send(
		"👋 Welcome back! Send me any text to translate it, or pick an action below.",
		h.mainMenu(userID),
	)
}
