package domain

// Mode is a chat's current top-level conversation mode. The router reads it
// before every dispatch to decide which flow family owns the next message.
type Mode string

const (
	ModeIdle             Mode = "idle"
	ModeAddingWord       Mode = "adding_word"
	ModePracticing       Mode = "practicing"
	ModeImporting        Mode = "importing"
	ModeEditingWord      Mode = "editing_word"
	ModeDeletingWord     Mode = "deleting_word"
	ModeManagingCategory Mode = "managing_category"
)

// CategoryStep identifies a position in the category-management flow.
type CategoryStep string

const (
	CategoryStepSelecting     CategoryStep = "selecting_category"
	CategoryStepCreating      CategoryStep = "creating_category"
	CategoryStepDeleting      CategoryStep = "deleting_category"
	CategoryStepConfirmDelete CategoryStep = "confirming_delete"
)

// CategoryState is the category flow's step record for one chat.
type CategoryState struct {
	Step          CategoryStep
	PendingDelete *Category
}

// AddWordStep identifies a position in the add-word flow.
type AddWordStep string

const (
	AddWordStepCreatingCategory   AddWordStep = "creating_category"
	AddWordStepWaitingWord        AddWordStep = "waiting_word"
	AddWordStepWaitingTranslation AddWordStep = "waiting_translation"
)

// AddWordState is the add-word flow's step record for one chat. Category is
// resolved once when the flow starts and not re-checked mid-flow.
type AddWordState struct {
	Step         AddWordStep
	CategoryID   int64
	CategoryName string
	Word         string
}

// DeleteWordState marks a chat as choosing a word to delete from the
// inline list it was shown. WordIDs guards against stale button presses.
type DeleteWordState struct {
	WordIDs []int64
}

// EditWordStep identifies a position in the edit-word flow.
type EditWordStep string

const (
	EditWordStepSelecting          EditWordStep = "selecting_word"
	EditWordStepWaitingTranslation EditWordStep = "waiting_new_translation"
)

// EditWordState is the edit flow's step record for one chat.
type EditWordState struct {
	Step    EditWordStep
	WordIDs []int64
	Word    *Word
}

// PracticeKind selects the exercise type of a practice session.
type PracticeKind string

const (
	PracticeTranslate PracticeKind = "translate"
	PracticeChoice    PracticeKind = "multiple_choice"
	PracticeRandom    PracticeKind = "random"
)

// PracticeState is the practice flow's step record for one chat: the
// shuffled question queue and progress counters.
type PracticeState struct {
	Kind    PracticeKind
	Queue   []Word
	Index   int
	Correct int
}

// Current returns the word the chat is being asked about, or nil when the
// queue is exhausted.
func (s *PracticeState) Current() *Word {
	if s.Index < 0 || s.Index >= len(s.Queue) {
		return nil
	}
	return &s.Queue[s.Index]
}

// ImportState marks a chat as waiting for a bulk "word - translation" block.
type ImportState struct{}
