package client

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"shrimp-assist/internal/domain/entity"
)

// OpenAIChat implements repository.ChatModel on the OpenAI chat-completions
// API. It serves as the fallback provider behind the resilient wrapper.
type OpenAIChat struct {
	client openai.Client
	model  openai.ChatModel
}

func NewOpenAIChat(apiKey string, model openai.ChatModel) (*OpenAIChat, error) {
	if apiKey == "" {
		return nil, entity.ErrMissingCredentials
	}
	if model == "" {
		model = openai.ChatModelGPT4o
	}
	return &OpenAIChat{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

func (o *OpenAIChat) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case entity.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case entity.RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}

	chat, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: params,
		Model:    o.model,
	})
	if err != nil {
		return "", err
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("received empty response from OpenAI")
	}
	return chat.Choices[0].Message.Content, nil
}
