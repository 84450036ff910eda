// Package gemini implements the text/vision side of pkg/gen on top of the
// Google GenAI SDK, using schema-constrained JSON output for the three
// structured calls.
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"study-assistant-be/pkg/gen"

	genai "google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// structuredTemperature keeps the structured calls close to the source text.
const structuredTemperature = float32(0.2)

// flashcardContextLimit bounds the document text attached to a flashcard
// generation request.
const flashcardContextLimit = 20000

type GeminiProvider struct {
	client *genai.Client
	model  string
}

var _ gen.TextGenerator = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("missing gemini api key")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// ChatReply sends the trailing history plus the current message. Image
// attachments become inline binary parts with their original MIME type;
// file attachments become labeled text blocks.
func (p *GeminiProvider) ChatReply(ctx context.Context, message string, history []gen.Message, attachments []gen.Attachment) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, h := range history {
		var role genai.Role = genai.RoleUser
		if h.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(h.Text, role))
	}

	parts := []*genai.Part{{Text: message}}
	for _, att := range attachments {
		switch att.Kind {
		case "image":
			blob, mimeType, err := decodeDataURI(att.Data, att.MIMEType)
			if err != nil {
				return "", fmt.Errorf("attachment %q: %w", att.Name, err)
			}
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: mimeType, Data: blob},
			})
		default:
			parts = append(parts, &genai.Part{
				Text: fmt.Sprintf("[File: %s]\n%s", att.Name, att.Data),
			})
		}
	}
	contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: parts})

	res, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}
	return res.Text(), nil
}

func (p *GeminiProvider) Summary(ctx context.Context, text string) (*gen.SummaryResult, error) {
	prompt := "Summarize the following text and respond using ONLY valid JSON. Do NOT include code fences.\n\nText:\n" + text

	raw, err := p.generateJSON(ctx, prompt, summarySchema())
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}
	return gen.ParseSummary(raw)
}

func (p *GeminiProvider) Flashcards(ctx context.Context, topicOrPrompt string, count int, contextText string) ([]gen.Card, error) {
	var prompt string
	if contextText != "" {
		if len(contextText) > flashcardContextLimit {
			contextText = contextText[:flashcardContextLimit]
		}
		prompt = fmt.Sprintf(
			"Create %d flashcards based on the following text. Focus on the main concepts related to %q.\n\nText Content: %s",
			count, topicOrPrompt, contextText,
		)
	} else {
		prompt = fmt.Sprintf("Create %d flashcards for the topic: %s.", count, topicOrPrompt)
	}

	raw, err := p.generateJSON(ctx, prompt, flashcardSchema())
	if err != nil {
		return nil, fmt.Errorf("flashcard generation failed: %w", err)
	}
	return gen.ParseFlashcards(raw)
}

func (p *GeminiProvider) MCQ(ctx context.Context, text string, count int) ([]gen.Question, error) {
	prompt := fmt.Sprintf(
		"Create %d multiple-choice questions (MCQs) from the following text. Return ONLY a JSON array with 'question', 'options' (array of 4 strings), 'correctAnswer', and 'explanation':\n\nText:\n%s",
		count, text,
	)

	raw, err := p.generateJSON(ctx, prompt, mcqSchema())
	if err != nil {
		return nil, fmt.Errorf("mcq generation failed: %w", err)
	}
	return gen.ParseMCQ(raw)
}

func (p *GeminiProvider) generateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(structuredTemperature),
	}
	res, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, cfg)
	if err != nil {
		return nil, err
	}
	return []byte(res.Text()), nil
}

func summarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":   {Type: genai.TypeString},
			"keyPoints": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"definitions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"term":       {Type: genai.TypeString},
						"definition": {Type: genai.TypeString},
					},
					Required: []string{"term", "definition"},
				},
			},
		},
		Required: []string{"summary", "keyPoints", "definitions"},
	}
}

func flashcardSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"front": {Type: genai.TypeString},
				"back":  {Type: genai.TypeString},
			},
			Required: []string{"front", "back"},
		},
	}
}

func mcqSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString},
				"options":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"correctAnswer": {
					Type:        genai.TypeString,
					Description: "Must match one of the options exactly",
				},
				"explanation": {Type: genai.TypeString},
			},
			Required: []string{"question", "options", "correctAnswer"},
		},
	}
}

// decodeDataURI strips the data:<mime>;base64, prefix and decodes the
// payload. A bare base64 string without a prefix is accepted too.
func decodeDataURI(data, fallbackMIME string) ([]byte, string, error) {
	mimeType := fallbackMIME
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	payload := data
	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, ",")
		if idx < 0 {
			return nil, "", errors.New("malformed data URI")
		}
		meta := data[len("data:"):idx]
		payload = data[idx+1:]
		if semi := strings.Index(meta, ";"); semi > 0 {
			mimeType = meta[:semi]
		} else if meta != "" {
			mimeType = meta
		}
	}

	blob, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	return blob, mimeType, nil
}
