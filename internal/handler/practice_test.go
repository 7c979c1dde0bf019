package handler

import (
	"testing"

	"lexibot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildChoices(t *testing.T) {
	queue := []domain.Word{
		{ID: 1, Word: "bonjour", Translation: "hello"},
		{ID: 2, Word: "merci", Translation: "thanks"},
		{ID: 3, Word: "chat", Translation: "cat"},
		{ID: 4, Word: "chien", Translation: "dog"},
		{ID: 5, Word: "pain", Translation: "bread"},
	}

	options := buildChoices(queue[0], queue, 4)

	assert.Len(t, options, 4)
	assert.Contains(t, options, "hello", "correct answer must be among the options")
	for _, opt := range options {
		assert.NotEmpty(t, opt)
	}
}

func TestBuildChoices_SmallQueue(t *testing.T) {
	queue := []domain.Word{
		{ID: 1, Word: "bonjour", Translation: "hello"},
		{ID: 2, Word: "merci", Translation: "thanks"},
	}

	options := buildChoices(queue[0], queue, 4)

	assert.Len(t, options, 2)
	assert.Contains(t, options, "hello")
}

func TestBuildChoices_SkipsDuplicateTranslations(t *testing.T) {
	queue := []domain.Word{
		{ID: 1, Word: "bonjour", Translation: "hello"},
		{ID: 2, Word: "salut", Translation: "hello"},
		{ID: 3, Word: "merci", Translation: "thanks"},
	}

	options := buildChoices(queue[0], queue, 4)

	count := 0
	for _, opt := range options {
		if opt == "hello" {
			count++
		}
	}
	assert.Equal(t, 1, count, "the correct answer must appear exactly once")
}

func TestAnswerMatches(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected string
		matches  bool
	}{
		{name: "exact match", answer: "hello", expected: "hello", matches: true},
		{name: "case insensitive", answer: "Hello", expected: "hello", matches: true},
		{name: "surrounding whitespace", answer: "  hello  ", expected: "hello", matches: true},
		{name: "wrong answer", answer: "goodbye", expected: "hello", matches: false},
		{name: "empty answer", answer: "", expected: "hello", matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, answerMatches(tt.answer, tt.expected))
		})
	}
}

func TestPracticeState_Current(t *testing.T) {
	st := domain.PracticeState{
		Queue: []domain.Word{
			{ID: 1, Word: "bonjour"},
			{ID: 2, Word: "merci"},
		},
	}

	assert.Equal(t, int64(1), st.Current().ID)

	st.Index = 1
	assert.Equal(t, int64(2), st.Current().ID)

	st.Index = 2
	assert.Nil(t, st.Current(), "exhausted queue has no current word")
}

func TestPracticeSummary(t *testing.T) {
	st := domain.PracticeState{
		Queue:   []domain.Word{{ID: 1}, {ID: 2}, {ID: 3}},
		Index:   3,
		Correct: 2,
	}
	assert.Contains(t, practiceSummary(st), "2 of 3")
}
