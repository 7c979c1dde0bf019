package service

import (
	"fmt"
	"testing"

	"lexibot/internal/domain"
	"lexibot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordService_Save(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		translation   string
		savedWord     string
		savedTrans    string
		expectedError bool
	}{
		{
			name:        "valid pair",
			word:        "bonjour",
			translation: "hello",
			savedWord:   "bonjour",
			savedTrans:  "hello",
		},
		{
			name:        "pair is trimmed",
			word:        "  bonjour ",
			translation: " hello  ",
			savedWord:   "bonjour",
			savedTrans:  "hello",
		},
		{
			name:          "empty word",
			word:          "",
			translation:   "hello",
			expectedError: true,
		},
		{
			name:          "whitespace translation",
			word:          "bonjour",
			translation:   "   ",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			svc := NewWordService(wordRepo)

			if !tt.expectedError {
				wordRepo.On("Save", int64(123), int64(7), tt.savedWord, tt.savedTrans).Return(nil)
			}

			err := svc.Save(123, 7, tt.word, tt.translation)

			if tt.expectedError {
				assert.Error(t, err)
				wordRepo.AssertNotCalled(t, "Save")
			} else {
				assert.NoError(t, err)
				wordRepo.AssertExpectations(t)
			}
		})
	}
}

func TestWordService_List(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	svc := NewWordService(wordRepo)

	words := []domain.Word{
		*testutil.NewTestWord(1, 123, 7, "bonjour", "hello"),
		*testutil.NewTestWord(2, 123, 7, "merci", "thanks"),
	}
	wordRepo.On("ListByCategory", int64(123), int64(7), 10, 0).Return(words, nil)
	wordRepo.On("CountByCategory", int64(123), int64(7)).Return(12, nil)

	got, total, err := svc.List(123, 7, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 12, total)
}

func TestWordService_List_PageClamped(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	svc := NewWordService(wordRepo)

	wordRepo.On("ListByCategory", int64(123), int64(7), 10, 0).Return([]domain.Word{}, nil)
	wordRepo.On("CountByCategory", int64(123), int64(7)).Return(0, nil)

	_, _, err := svc.List(123, 7, -3, 10)

	assert.NoError(t, err)
	wordRepo.AssertCalled(t, "ListByCategory", int64(123), int64(7), 10, 0)
}

func TestWordService_UpdateTranslation(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	svc := NewWordService(wordRepo)

	wordRepo.On("UpdateTranslation", int64(123), int64(5), "hi").Return(nil)

	assert.NoError(t, svc.UpdateTranslation(123, 5, " hi "))
	assert.Error(t, svc.UpdateTranslation(123, 5, "  "))
}

func TestWordService_PracticeSample_Error(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	svc := NewWordService(wordRepo)

	wordRepo.On("RandomSample", int64(123), int64(7), 10).Return(nil, fmt.Errorf("db down"))

	_, err := svc.PracticeSample(123, 7, 10)
	assert.Error(t, err)
}
