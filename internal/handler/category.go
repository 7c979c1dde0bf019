package handler

import (
	"errors"
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func startCategoryCreation() domain.CategoryState {
	return domain.CategoryState{Step: domain.CategoryStepCreating}
}

// startCategoryFlow shows the category list and enters selecting_category.
func (h *Handler) startCategoryFlow(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	categories, err := h.categories.List(userID)
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		h.categorySteps.Set(chatID, startCategoryCreation())
		return c.Send(
			"You have no categories yet. Please enter a name for your first category:",
			cancelMenu(),
		)
	}

	current, err := h.users.CurrentCategory(userID)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("📚 Your categories:\n\n")
	for _, cat := range categories {
		sb.WriteString(cat.Name)
		if current != nil && cat.ID == current.ID {
			sb.WriteString(" ✅")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nSelect a category, create new, or delete existing:")

	h.categorySteps.Set(chatID, domain.CategoryState{Step: domain.CategoryStepSelecting})
	return c.Send(sb.String(), categoryMenu(categories, true, true))
}

// categoryFlow advances the category state machine by one step.
func (h *Handler) categoryFlow(c tele.Context) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if text == btnCancel {
		h.categorySteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send("Operation cancelled.", h.mainMenu(userID))
	}

	stateRec, ok := h.categorySteps.Get(chatID)
	if !ok {
		return h.startCategoryFlow(c)
	}

	switch stateRec.Step {
	case domain.CategoryStepSelecting:
		return h.categorySelect(c, text)
	case domain.CategoryStepDeleting:
		return h.categoryPickDeletion(c, text)
	case domain.CategoryStepConfirmDelete:
		return h.categoryConfirmDeletion(c, stateRec, text)
	case domain.CategoryStepCreating:
		return h.categoryCreate(c, text)
	}
	return nil
}

func (h *Handler) categorySelect(c tele.Context, text string) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	if text == btnNewCategory {
		h.categorySteps.Set(chatID, startCategoryCreation())
		return c.Send("Please enter a name for the new category:", cancelMenu())
	}

	if text == btnDeleteCategory {
		categories, err := h.categories.List(userID)
		if err != nil {
			return err
		}
		// The guard fires before any confirmation is asked for.
		if len(categories) <= 1 {
			h.categorySteps.Delete(chatID)
			h.modes.Clear(chatID)
			return c.Send(
				"❌ Can't delete the last category. Create a new category first.",
				h.mainMenu(userID),
			)
		}
		h.categorySteps.Set(chatID, domain.CategoryState{Step: domain.CategoryStepDeleting})
		return c.Send("Select a category to delete:", categoryMenu(categories, false, false))
	}

	selected, err := h.categories.FindByName(userID, text)
	if err != nil {
		return err
	}
	if selected == nil {
		categories, err := h.categories.List(userID)
		if err != nil {
			return err
		}
		return c.Send("❌ Please select a valid category.", categoryMenu(categories, true, true))
	}

	if err := h.users.SetCurrentCategory(userID, selected.ID); err != nil {
		return err
	}
	h.categorySteps.Delete(chatID)
	h.modes.Clear(chatID)
	return c.Send(
		fmt.Sprintf("✅ Current category changed to %q", selected.Name),
		h.mainMenu(userID),
	)
}

func (h *Handler) categoryPickDeletion(c tele.Context, text string) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	target, err := h.categories.FindByName(userID, text)
	if err != nil {
		return err
	}
	if target == nil {
		categories, err := h.categories.List(userID)
		if err != nil {
			return err
		}
		return c.Send("❌ Please select a valid category.", categoryMenu(categories, false, false))
	}

	h.categorySteps.Set(chatID, domain.CategoryState{
		Step:          domain.CategoryStepConfirmDelete,
		PendingDelete: target,
	})
	return c.Send(
		fmt.Sprintf(
			"⚠️ This action cannot be undone!\n\nTo delete category %q and all its words, please type the category name to confirm:",
			target.Name,
		),
		cancelMenu(),
	)
}

func (h *Handler) categoryConfirmDeletion(c tele.Context, stateRec domain.CategoryState, text string) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	pending := stateRec.PendingDelete

	// Exact, case-sensitive match; a mismatch re-prompts without moving.
	if pending == nil || text != pending.Name {
		name := ""
		if pending != nil {
			name = pending.Name
		}
		return c.Send(
			fmt.Sprintf("❌ Category name doesn't match. Please type %q exactly to confirm deletion, or press Cancel.", name),
			cancelMenu(),
		)
	}

	err := h.categories.Delete(userID, pending.ID)
	if errors.Is(err, service.ErrLastCategory) {
		h.categorySteps.Delete(chatID)
		h.modes.Clear(chatID)
		return c.Send(
			"❌ Can't delete the last category. Create a new category first.",
			h.mainMenu(userID),
		)
	}
	if err != nil {
		return err
	}

	h.logger.Info("Category deleted",
		zap.Int64("user_id", userID),
		zap.Int64("category_id", pending.ID),
		zap.String("name", pending.Name),
	)

	h.categorySteps.Delete(chatID)
	h.modes.Clear(chatID)
	return c.Send(
		fmt.Sprintf("✅ Category %q and all its words have been deleted.", pending.Name),
		h.mainMenu(userID),
	)
}

func (h *Handler) categoryCreate(c tele.Context, text string) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID

	name := strings.TrimSpace(text)
	if name == "" {
		return c.Send("Please enter a valid category name.", cancelMenu())
	}

	category, err := h.categories.Create(userID, name)
	if err != nil {
		return err
	}

	h.categorySteps.Delete(chatID)
	h.modes.Clear(chatID)
	return c.Send(
		fmt.Sprintf("✅ Category %q created and set as current category!", category.Name),
		h.mainMenu(userID),
	)
}
