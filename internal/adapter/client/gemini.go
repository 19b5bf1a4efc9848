// Package client holds the outbound language-model adapters.
package client

import (
	"context"

	"google.golang.org/genai"

	"shrimp-assist/internal/domain/entity"
)

// GeminiChat implements repository.ChatModel on the Gemini API. System
// messages map to the system instruction; user/assistant messages become
// the content turns.
type GeminiChat struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiChat(ctx context.Context, projectID, location, model string, temperature float32) (*GeminiChat, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, err
	}
	return NewGeminiChatFromClient(c, model, temperature), nil
}

func NewGeminiChatFromClient(c *genai.Client, model string, temperature float32) *GeminiChat {
	return &GeminiChat{client: c, model: model, temperature: temperature}
}

func (g *GeminiChat) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}

	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case entity.RoleSystem:
			config.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
