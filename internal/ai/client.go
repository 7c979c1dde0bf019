package ai

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client wraps the Anthropic Messages API behind the three completions the
// bot needs. Every call is stateless request/response; no streaming.
type Client struct {
	api   anthropic.Client
	model string
}

// NewClient creates an assistant client using the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   anthropic.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}
}

// Translate returns a translation of word with a short usage note.
func (c *Client) Translate(ctx context.Context, word, learningLang, nativeLang string) (string, error) {
	system := fmt.Sprintf(
		"You are a language learning assistant. The user is learning %s and speaks %s. "+
			"Translate the given text between these languages. Reply with the translation on the "+
			"first line, then one short example sentence showing its use. No preamble.",
		learningLang, nativeLang,
	)
	return c.complete(ctx, system, word)
}

// ExampleSentences returns five progressively harder example sentences for
// the word, each with a translation.
func (c *Client) ExampleSentences(ctx context.Context, word, translation, learningLang, nativeLang string) (string, error) {
	system := fmt.Sprintf(
		"You are a language learning assistant. Provide 5 example sentences using the given word. "+
			"Format each as:\n1. [sentence in %s]\n([translation in %s])\n"+
			"Number the examples from 1 to 5.",
		learningLang, nativeLang,
	)
	user := fmt.Sprintf(
		"Provide 5 different example sentences using the word %q (%s). "+
			"Make the examples progressively more complex.",
		translation, word,
	)
	return c.complete(ctx, system, user)
}

// Answer answers a free-form follow-up question about the word.
func (c *Client) Answer(ctx context.Context, word, question string) (string, error) {
	system := "You are a language learning assistant. Answer the user's question about the " +
		"given word concisely and accurately."
	user := fmt.Sprintf("The word is %q. Question: %s", word, question)
	return c.complete(ctx, system, user)
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return msg.Content[0].Text, nil
}
