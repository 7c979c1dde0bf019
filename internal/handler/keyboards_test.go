package handler

import (
	"testing"

	"lexibot/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationMarkupCarriesOnlyCorrelationKeys(t *testing.T) {
	key := state.KeyFor("a very long phrase whose translation would never fit a callback payload")

	markup := translationMarkup(key)
	require.Len(t, markup.InlineKeyboard, 2)

	var uniques []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			uniques = append(uniques, btn.Unique)
			// Telegram rejects callback data over 64 bytes; the wire form
			// carries one marker byte ahead of the unique.
			assert.LessOrEqual(t, len(btn.Unique)+1, 64)
		}
	}

	assert.Contains(t, uniques, prefixAddTranslation+key)
	assert.Contains(t, uniques, prefixMoreExamples+key)
	assert.Contains(t, uniques, prefixFollowUp+key)
}

func TestExamplesMarkupCarriesOnlyCorrelationKeys(t *testing.T) {
	key := state.KeyFor("word")

	markup := examplesMarkup(key)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)

	assert.Equal(t, prefixMoreExamples+key, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, prefixFollowUp+key, markup.InlineKeyboard[0][1].Unique)
}
