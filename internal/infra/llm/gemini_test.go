package llm

import (
	"context"
	"iter"
	"log/slog"
	"testing"
	"time"

	"livewell/config"
	"livewell/internal/domain/action"
	"livewell/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline bool

	response *genai.GenerateContentResponse
	stream   []*genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.contents, f.config = contents, cfg
	_, f.deadline = ctx.Deadline()

	return f.response, f.err
}

func (f *fakeGenerator) GenerateContentStream(ctx context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	f.contents, f.config = contents, cfg
	_, f.deadline = ctx.Deadline()

	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, r := range f.stream {
			if !yield(r, nil) {
				return
			}
		}
		if f.err != nil {
			yield(nil, f.err)
		}
	}
}

func responseOf(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromParts(parts, genai.RoleModel)}},
	}
}

func createTestGeminiModel(gen *fakeGenerator) *geminiModel {
	return newGeminiModel(gen, &config.GeminiConfig{
		Model:           "gemini-test",
		Temperature:     0.7,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 512,
		RequestTimeout:  time.Minute,
	}, slog.Default())
}

func TestGeminiModel_GenerateStream(t *testing.T) {
	gen := &fakeGenerator{stream: []*genai.GenerateContentResponse{
		responseOf(genai.NewPartFromText("Sure, ")),
		responseOf(&genai.Part{Text: "thinking...", Thought: true}),
		responseOf(genai.NewPartFromText("adding it now."), &genai.Part{
			FunctionCall:     &genai.FunctionCall{Name: action.DeleteMedication, Args: map[string]any{"med_id": "m1"}},
			ThoughtSignature: []byte("sig"),
		}),
	}}
	model := createTestGeminiModel(gen)

	var (
		texts []string
		calls []service.FunctionCall
	)
	for chunk, err := range model.GenerateStream(context.Background(), &service.GenerateRequest{
		SystemInstruction: "be kind",
		Contents:          []service.Content{{Role: service.RoleUser, Parts: []service.Part{{Text: "delete m1"}}}},
		Tools:             action.Catalogue(),
	}) {
		require.NoError(t, err)
		texts = append(texts, chunk.Text)
		calls = append(calls, chunk.FunctionCalls...)
	}

	assert.Equal(t, []string{"Sure, ", "adding it now."}, texts)
	require.Len(t, calls, 1)
	assert.Equal(t, action.DeleteMedication, calls[0].Name)
	assert.Equal(t, []byte("sig"), calls[0].Signature)

	assert.True(t, gen.deadline)
	require.Len(t, gen.config.Tools, 1)
	assert.Len(t, gen.config.Tools[0].FunctionDeclarations, 6)
	assert.Equal(t, "be kind", gen.config.SystemInstruction.Parts[0].Text)
	assert.Equal(t, float32(0.7), *gen.config.Temperature)
	assert.Equal(t, int32(512), gen.config.MaxOutputTokens)
}

func TestGeminiModel_GenerateStream_Error(t *testing.T) {
	gen := &fakeGenerator{
		stream: []*genai.GenerateContentResponse{responseOf(genai.NewPartFromText("partial"))},
		err:    errors.New("quota exceeded"),
	}
	model := createTestGeminiModel(gen)

	var (
		texts   []string
		lastErr error
	)
	for chunk, err := range model.GenerateStream(context.Background(), &service.GenerateRequest{}) {
		if err != nil {
			lastErr = err

			continue
		}
		texts = append(texts, chunk.Text)
	}

	assert.Equal(t, []string{"partial"}, texts)
	require.Error(t, lastErr)
	assert.Contains(t, lastErr.Error(), "quota exceeded")
}

func TestGeminiModel_Generate_JSON(t *testing.T) {
	gen := &fakeGenerator{response: responseOf(genai.NewPartFromText(`{"Weekly Goal":{}}`))}
	model := createTestGeminiModel(gen)

	resp, err := model.Generate(context.Background(), &service.GenerateRequest{
		Contents:         []service.Content{{Role: service.RoleUser, Parts: []service.Part{{Text: "plan my week"}}}},
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  1024,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"Weekly Goal":{}}`, resp.Text)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	assert.Equal(t, int32(1024), gen.config.MaxOutputTokens)
	assert.Empty(t, gen.config.Tools)
	assert.Nil(t, gen.config.SystemInstruction)
}

func TestToContents_FunctionRoundTrip(t *testing.T) {
	contents := toContents([]service.Content{
		{Role: service.RoleUser, Parts: []service.Part{{Text: "remove aspirin"}}},
		{Role: service.RoleModel, Parts: []service.Part{
			{Text: "On it."},
			{FunctionCall: &service.FunctionCall{Name: action.DeleteMedication, Args: map[string]any{"med_id": "m1"}, Signature: []byte("sig")}},
		}},
		{Role: service.RoleUser, Parts: []service.Part{
			{FunctionResponse: &service.FunctionResponse{Name: action.DeleteMedication, Response: map[string]any{action.DeleteMedication: "ok"}}},
		}},
	})

	require.Len(t, contents, 3)
	assert.Equal(t, genai.RoleModel, contents[1].Role)
	assert.Equal(t, "On it.", contents[1].Parts[0].Text)
	assert.Equal(t, action.DeleteMedication, contents[1].Parts[1].FunctionCall.Name)
	assert.Equal(t, []byte("sig"), contents[1].Parts[1].ThoughtSignature)
	assert.Equal(t, "ok", contents[2].Parts[0].FunctionResponse.Response[action.DeleteMedication])
}

func TestToFunctionDeclaration(t *testing.T) {
	decl, ok := action.Lookup(action.UpdateMedication)
	require.True(t, ok)

	fn := toFunctionDeclaration(decl)
	assert.Equal(t, action.UpdateMedication, fn.Name)
	assert.Equal(t, genai.TypeObject, fn.Parameters.Type)
	assert.Equal(t, []string{"med_id"}, fn.Parameters.Required)
	assert.Equal(t, "med_id", fn.Parameters.PropertyOrdering[0])

	assert.Nil(t, fn.Parameters.Properties["med_id"].Nullable)
	require.NotNil(t, fn.Parameters.Properties["dose_value"].Nullable)
	assert.True(t, *fn.Parameters.Properties["dose_value"].Nullable)
	assert.Equal(t, genai.TypeInteger, fn.Parameters.Properties["dose_value"].Type)
	assert.Equal(t, genai.TypeString, fn.Parameters.Properties["notes"].Type)
}
