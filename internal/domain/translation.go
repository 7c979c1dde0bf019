package domain

// TranslationEntry is the payload correlated with an AI-produced result.
// It is stored when a translation (or a round of examples) is generated and
// looked up later by the inline buttons attached to that message.
type TranslationEntry struct {
	Word            string
	Translation     string
	CategoryID      int64
	LearningContext string
	OriginalContext string
	Examples        string

	// KeyboardMessageID is set only on follow-up entries: the message whose
	// keyboard should be restored once the question is answered.
	KeyboardMessageID int
}
