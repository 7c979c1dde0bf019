package handler

import (
	"lexibot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Fixed button labels. Menu routing matches on these exact strings.
const (
	btnAddWord        = "📝 Add Word"
	btnPractice       = "🎲 Practice"
	btnMyWords        = "📖 My Words"
	btnMoreOptions    = "⚙️ More Options"
	btnEditWord       = "✏️ Edit Word"
	btnDeleteWord     = "🗑️ Delete Word"
	btnImport         = "📥 Import"
	btnBackToMain     = "⬅️ Back to Main"
	btnCancel         = "❌ Cancel"
	btnNewCategory    = "➕ New Category"
	btnDeleteCategory = "🗑️ Delete Category"
	btnSkip           = "⏭️ Skip"
	btnExitPractice   = "🚪 Exit Practice"

	// Current-category button is the category name behind this prefix.
	categoryButtonPrefix = "📚 "
)

// Inline button texts for translation results.
const (
	btnAddToVocabulary = "➕ Add to My Words"
	btnMoreExamples    = "📋 More Examples"
	btnFollowUp        = "💬 Follow-up"
)

const msgGenericError = "❌ An error occurred. Please try again."

// mainMenu returns the main reply keyboard. When the user has no categories
// the keyboard is removed entirely: onboarding owns all input then.
func (h *Handler) mainMenu(userID int64) *tele.ReplyMarkup {
	hasCategories, err := h.categories.HasAny(userID)
	if err != nil || !hasCategories {
		return &tele.ReplyMarkup{RemoveKeyboard: true}
	}

	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := []tele.Row{
		menu.Row(menu.Text(btnMyWords), menu.Text(btnPractice)),
		menu.Row(menu.Text(btnAddWord), menu.Text(btnMoreOptions)),
	}

	current, err := h.users.CurrentCategory(userID)
	if err == nil && current != nil {
		rows = append(rows, menu.Row(menu.Text(categoryButtonPrefix+current.Name)))
	}

	menu.Reply(rows...)
	return menu
}

// secondaryMenu returns the "More Options" reply keyboard.
func secondaryMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnEditWord), menu.Text(btnDeleteWord)),
		menu.Row(menu.Text(btnImport)),
		menu.Row(menu.Text(btnBackToMain)),
	)
	return menu
}

// cancelMenu returns a keyboard with only the Cancel button.
func cancelMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(btnCancel)))
	return menu
}

// categoryMenu lists categories one per row, with optional management rows.
func categoryMenu(categories []domain.Category, includeNew, includeDelete bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rows := make([]tele.Row, 0, len(categories)+3)
	for _, cat := range categories {
		rows = append(rows, menu.Row(menu.Text(cat.Name)))
	}
	if includeNew {
		rows = append(rows, menu.Row(menu.Text(btnNewCategory)))
	}
	if includeDelete {
		rows = append(rows, menu.Row(menu.Text(btnDeleteCategory)))
	}
	rows = append(rows, menu.Row(menu.Text(btnCancel)))
	menu.Reply(rows...)
	return menu
}

// translationMarkup builds the inline actions attached to a translation
// result. Every button carries the correlation key, never free text: the
// fixed-width key keeps the payload inside Telegram's 64-byte limit.
func translationMarkup(key string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(btnAddToVocabulary, prefixAddTranslation+key)),
		markup.Row(
			markup.Data(btnMoreExamples, prefixMoreExamples+key),
			markup.Data(btnFollowUp, prefixFollowUp+key),
		),
	)
	return markup
}

// examplesMarkup builds the inline actions attached to a round of examples.
func examplesMarkup(key string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data(btnMoreExamples, prefixMoreExamples+key),
			markup.Data(btnFollowUp, prefixFollowUp+key),
		),
	)
	return markup
}
