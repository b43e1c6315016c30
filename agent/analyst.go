// Package agent provides AI commentary on a rendered fund dashboard.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Analyst represents a chat with a fund analyst commenting on dashboards.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAnalyst creates an analyst with its default model and instructions.
func NewAnalyst() *Analyst {
	return &Analyst{
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are a senior fund analyst. You receive a markdown dashboard of
investment-fund records: assets under management aggregated by fund type,
sub-fund tables, and asset detail rows, with values in millions.

Comment on the composition of the book: the relative weight of each fund
type, notable concentrations in single funds or assets, and anything that
looks like a data-quality problem (for example a zero market value on an
otherwise populated row). Be concise, factual, and markdown formatted.
Never invent numbers that are not in the dashboard.`}}},
		},
	}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Comment sends a rendered dashboard to the analyst and returns its commentary.
func (a *Analyst) Comment(ctx context.Context, dashboard string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("analyst session not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: dashboard})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}
