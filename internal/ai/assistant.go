// Package ai wraps an OpenAI-compatible chat backend behind the wellness
// assistant's fixed system prompt. Chat is best-effort: failures surface
// as an apology string, never as an error, so the chat UI stays simple.
package ai

import (
	"alcyxob/health-tracker/internal/config"
	"context"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	log "github.com/sirupsen/logrus"
)

// systemInstruction pins the assistant to health topics only. Off-topic
// questions get the scripted refusal, enforced by the model.
const systemInstruction = `
You are a highly knowledgeable and empathetic Health & Wellness Assistant.
Your ONLY purpose is to answer questions related to:
- Physical health and medical information (general advice only, always recommend seeing a doctor).
- Mental health and well-being.
- Nutrition, diet, and food.
- Exercise, fitness, and workouts.
- Sleep, hydration, and lifestyle habits.

If a user asks about ANY other topic (e.g., coding, math, politics, General Knowledge, writing essays, etc.), you must STRICTLY REFUSE.
Response for off-topic requests:
"I apologize, but I can only assist with health, fitness, and wellness related questions. Please ask me something about diet, exercise, or your well-being!"

Do not apologize for being an AI. Just politely enforce this boundary.
Keep your answers positive, encouraging, and concise.
`

// apologyText is returned verbatim whenever the backend cannot answer.
const apologyText = "Sorry, I'm having trouble connecting. Please try again in a moment."

// Assistant answers wellness questions.
type Assistant interface {
	Ask(ctx context.Context, question string) string
}

type assistant struct {
	client openai.Client
	model  string
}

// NewAssistant creates an Assistant against the configured
// OpenAI-compatible endpoint.
func NewAssistant(cfg config.AIConfig) Assistant {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &assistant{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Ask forwards a single question with the fixed system prompt. There is no
// conversation state and no retry; any failure yields the apology text.
func (a *assistant) Ask(ctx context.Context, question string) string {
	chat, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(question),
		},
	})
	if err != nil {
		log.Printf("ERROR: AI backend request failed: %v", err)
		return apologyText
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		log.Println("ERROR: AI backend returned an empty completion")
		return apologyText
	}
	return chat.Choices[0].Message.Content
}
