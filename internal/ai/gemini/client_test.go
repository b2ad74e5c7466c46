package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/hr-assistant/internal/ai"
)

type modelCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeModels struct {
	mu    sync.Mutex
	calls []modelCall
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, modelCall{model: model, contents: contents, config: config})
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestGeneratorSendsSchemaAndTemperature(t *testing.T) {
	models := &fakeModels{resp: textResponse(`{"title": "ok"}`)}
	g := &Generator{models: models, model: "gemini-2.5-flash", logger: zap.NewNop()}

	schema := jobPostingSchema()
	out, err := g.Generate(context.Background(), Request{Prompt: "  prompt  ", Schema: schema, Temperature: 0.7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != `{"title": "ok"}` {
		t.Fatalf("unexpected output: %q", out)
	}

	if len(models.calls) != 1 {
		t.Fatalf("expected a single call, got %d", len(models.calls))
	}

	call := models.calls[0]
	if call.model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", call.model)
	}
	if call.config.ResponseMIMEType != "application/json" {
		t.Fatalf("unexpected mime type: %q", call.config.ResponseMIMEType)
	}
	if call.config.ResponseSchema != schema {
		t.Fatalf("expected schema to be forwarded")
	}
	if call.config.Temperature == nil || *call.config.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", call.config.Temperature)
	}
	if got := call.contents[0].Parts[0].Text; got != "prompt" {
		t.Fatalf("expected trimmed prompt, got %q", got)
	}
}

func TestGeneratorEmptyTextIsNoContent(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"blank text":    textResponse("", "   "),
	}

	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			g := &Generator{models: &fakeModels{resp: resp}, model: "m", logger: zap.NewNop()}

			_, err := g.Generate(context.Background(), Request{Prompt: "p"})
			if !errors.Is(err, ai.ErrNoContent) {
				t.Fatalf("expected ErrNoContent, got %v", err)
			}
		})
	}
}

func TestGeneratorSkipsThoughtParts(t *testing.T) {
	resp := textResponse(`{"a":`, `1}`)
	resp.Candidates[0].Content.Parts = append([]*genai.Part{{Text: "thinking...", Thought: true}}, resp.Candidates[0].Content.Parts...)

	g := &Generator{models: &fakeModels{resp: resp}, model: "m", logger: zap.NewNop()}

	out, err := g.Generate(context.Background(), Request{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"a":1}` {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGeneratorPropagatesAPIError(t *testing.T) {
	apiErr := genai.APIError{Code: http.StatusUnauthorized, Status: "UNAUTHENTICATED", Message: "API key not valid"}
	models := &fakeModels{err: apiErr}
	g := &Generator{models: models, model: "m", logger: zap.NewNop()}

	_, err := g.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error")
	}

	var got genai.APIError
	if !errors.As(err, &got) || got.Code != http.StatusUnauthorized {
		t.Fatalf("expected wrapped api error, got %v", err)
	}

	if len(models.calls) != 1 {
		t.Fatalf("expected no retries, got %d calls", len(models.calls))
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	models := &fakeModels{resp: textResponse("{}")}
	g := &Generator{models: models, model: "m", logger: zap.NewNop()}

	if _, err := g.Generate(context.Background(), Request{Prompt: " \n "}); err == nil {
		t.Fatal("expected error for empty prompt")
	}

	if len(models.calls) != 0 {
		t.Fatalf("expected no calls, got %d", len(models.calls))
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator(context.Background(), "  ", "", zap.NewNop()); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGeneratorKeepsWhitespaceBetweenParts(t *testing.T) {
	g := &Generator{models: &fakeModels{resp: textResponse(`{"summary": "hello `, `world"}`)}, model: "m", logger: zap.NewNop()}

	out, err := g.Generate(context.Background(), Request{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"summary": "hello world"}` {
		t.Fatalf("unexpected output: %q", out)
	}
}
