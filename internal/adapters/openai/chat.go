package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const systemPrompt = `You are the in-app assistant of a consumer investing
app. Answer questions about the user's portfolio, goals and general
investing concepts in plain language. Keep answers short. Never give
personalized tax or legal advice; suggest a professional instead. Never
invent account data you were not given.`

type ChatAdapter struct {
	client *gopenai.Client
	model  string
}

func NewChatAdapter(apiKey, model string) *ChatAdapter {
	if model == "" {
		model = gopenai.GPT4oMini
	}
	return &ChatAdapter{
		client: gopenai.NewClient(apiKey),
		model:  model,
	}
}

func (a *ChatAdapter) Reply(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	chat := make([]gopenai.ChatCompletionMessage, 0, len(messages)+1)
	chat = append(chat, gopenai.ChatCompletionMessage{
		Role:    gopenai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		role := m.Role
		if role != gopenai.ChatMessageRoleAssistant {
			role = gopenai.ChatMessageRoleUser
		}
		chat = append(chat, gopenai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := a.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:    a.model,
		Messages: chat,
	})
	if err != nil {
		logger.Error().Err(err).Msg("openai chat completion failed")
		return "", fmt.Errorf("assistant is unavailable: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("assistant returned no reply")
	}
	return resp.Choices[0].Message.Content, nil
}
