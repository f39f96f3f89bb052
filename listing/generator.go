package listing

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Generator produces the marketing description persisted with a listing.
// Implementations must always return usable text; failures degrade to the
// deterministic template, they never propagate.
type Generator interface {
	Describe(ctx context.Context, attrs Attributes) string
}

// TemplateGenerator renders descriptions from the built-in paragraph
// templates. It is the default and the fallback for every other generator.
type TemplateGenerator struct{}

func (TemplateGenerator) Describe(_ context.Context, attrs Attributes) string {
	return Describe(attrs)
}

// OpenAIGenerator asks a chat model to write the description and falls back
// to the template output when the call fails or returns nothing.
type OpenAIGenerator struct {
	client   *openai.Client
	fallback TemplateGenerator
}

// NewOpenAIGenerator builds a generator backed by the given client.
func NewOpenAIGenerator(client *openai.Client) *OpenAIGenerator {
	return &OpenAIGenerator{client: client}
}

func (g *OpenAIGenerator) Describe(ctx context.Context, attrs Attributes) string {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a real-estate copywriter. Write exactly three short paragraphs " +
					"separated by blank lines. Do not invent amenities or measurements.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: describePrompt(attrs),
			},
		},
	})
	if err != nil {
		log.Printf("listing: description generation failed, using template: %v", err)
		return g.fallback.Describe(ctx, attrs)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Printf("listing: description generation returned no text, using template")
		return g.fallback.Describe(ctx, attrs)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func describePrompt(a Attributes) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a listing description for a %s %s in %s, %s offered for %s, listed by %s, priced at %.0f.",
		a.Category, a.PropertyType, a.Locality, a.City, a.Purpose, a.ListedBy, a.Price)
	if features := amenityClause(a.Amenities); features != fallbackAmenityClause {
		fmt.Fprintf(&b, " Amenities: %s.", features)
	}
	if a.TenantPreference != nil && *a.TenantPreference != "" {
		fmt.Fprintf(&b, " Tenant preference: %s.", *a.TenantPreference)
	}
	return b.String()
}
