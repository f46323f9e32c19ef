// Package llm adapts the Gemini API to the domain LanguageModel port.
package llm

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"livewell/config"
	"livewell/internal/domain/action"
	"livewell/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models the adapter calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

type geminiModel struct {
	models  contentGenerator
	model   string
	cfg     *config.GeminiConfig
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiModel creates the Gemini-backed language model.
func NewGeminiModel(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.LanguageModel, error) {
	if cfg.Gemini == nil || cfg.Gemini.APIKey == "" {
		return nil, errors.New("gemini api key must be provided")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	return newGeminiModel(client.Models, cfg.Gemini, logger), nil
}

func newGeminiModel(models contentGenerator, cfg *config.GeminiConfig, logger *slog.Logger) *geminiModel {
	return &geminiModel{
		models:  models,
		model:   cfg.Model,
		cfg:     cfg,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}
}

// Generate implements service.LanguageModel.
func (m *geminiModel) Generate(ctx context.Context, req *service.GenerateRequest) (*service.GenerateResponse, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	resp, err := m.models.GenerateContent(ctx, m.model, toContents(req.Contents), m.generateConfig(req))
	if err != nil {
		return nil, errors.Wrap(err, "gemini generate content")
	}

	chunk := fromResponse(resp)

	return &service.GenerateResponse{Text: chunk.Text, FunctionCalls: chunk.FunctionCalls}, nil
}

// GenerateStream implements service.LanguageModel. The timeout covers the whole stream.
func (m *geminiModel) GenerateStream(ctx context.Context, req *service.GenerateRequest) iter.Seq2[*service.Chunk, error] {
	return func(yield func(*service.Chunk, error) bool) {
		ctx, cancel := m.withTimeout(ctx)
		defer cancel()

		for resp, err := range m.models.GenerateContentStream(ctx, m.model, toContents(req.Contents), m.generateConfig(req)) {
			if err != nil {
				yield(nil, errors.Wrap(err, "gemini stream content"))

				return
			}

			chunk := fromResponse(resp)
			if chunk.Text == "" && len(chunk.FunctionCalls) == 0 {
				continue
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}
}

func (m *geminiModel) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, m.timeout)
}

func (m *geminiModel) generateConfig(req *service.GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(m.cfg.Temperature),
		TopP:             genai.Ptr(m.cfg.TopP),
		TopK:             genai.Ptr(m.cfg.TopK),
		MaxOutputTokens:  m.cfg.MaxOutputTokens,
		ResponseMIMEType: req.ResponseMIMEType,
	}

	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = req.MaxOutputTokens
	}

	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	if len(req.Tools) > 0 {
		cfg.Tools = []*genai.Tool{toTool(req.Tools)}
	}

	return cfg
}

func toContents(contents []service.Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, c := range contents {
		parts := make([]*genai.Part, 0, len(c.Parts))
		for _, p := range c.Parts {
			switch {
			case p.FunctionCall != nil:
				part := genai.NewPartFromFunctionCall(p.FunctionCall.Name, p.FunctionCall.Args)
				part.ThoughtSignature = p.FunctionCall.Signature
				parts = append(parts, part)
			case p.FunctionResponse != nil:
				parts = append(parts, genai.NewPartFromFunctionResponse(p.FunctionResponse.Name, p.FunctionResponse.Response))
			default:
				parts = append(parts, genai.NewPartFromText(p.Text))
			}
		}
		out = append(out, genai.NewContentFromParts(parts, genai.Role(c.Role)))
	}

	return out
}

func toTool(decls []action.Declaration) *genai.Tool {
	fns := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, d := range decls {
		fns = append(fns, toFunctionDeclaration(d))
	}

	return &genai.Tool{FunctionDeclarations: fns}
}

func toFunctionDeclaration(d action.Declaration) *genai.FunctionDeclaration {
	props := make(map[string]*genai.Schema, len(d.Params))
	ordering := make([]string, 0, len(d.Params))

	for _, p := range d.Params {
		schema := &genai.Schema{
			Type:        schemaType(p.Type),
			Description: p.Description,
		}
		if p.Nullable {
			schema.Nullable = genai.Ptr(true)
		}
		props[p.Name] = schema
		ordering = append(ordering, p.Name)
	}

	return &genai.FunctionDeclaration{
		Name:        d.Name,
		Description: d.Description,
		Parameters: &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       props,
			PropertyOrdering: ordering,
			Required:         d.RequiredParams(),
		},
	}
}

func schemaType(t action.ParamType) genai.Type {
	switch t {
	case action.TypeInteger:
		return genai.TypeInteger
	default:
		return genai.TypeString
	}
}

// fromResponse flattens the first candidate. Thought parts are not part of the reply.
func fromResponse(resp *genai.GenerateContentResponse) *service.Chunk {
	chunk := &service.Chunk{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return chunk
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}

		switch {
		case part.FunctionCall != nil:
			chunk.FunctionCalls = append(chunk.FunctionCalls, service.FunctionCall{
				Name:      part.FunctionCall.Name,
				Args:      part.FunctionCall.Args,
				Signature: part.ThoughtSignature,
			})
		case part.Text != "" && !part.Thought:
			chunk.Text += part.Text
		}
	}

	return chunk
}
