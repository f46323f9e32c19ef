package service

import (
	"context"
	"iter"

	"livewell/internal/domain/action"
)

// Role identifies the author of a conversation content.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// FunctionCall is a structured action invocation emitted by the model.
type FunctionCall struct {
	Name string
	Args map[string]any
	// Signature is an opaque token some models require to be echoed back with the call.
	Signature []byte
}

// FunctionResponse returns the outcome of a function call to the model.
type FunctionResponse struct {
	Name     string
	Response map[string]any
}

// Part is one piece of a content. Exactly one field is set.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Content is one message of the conversation sent to the model.
type Content struct {
	Role  Role
	Parts []Part
}

// GenerateRequest is a single model call.
type GenerateRequest struct {
	SystemInstruction string
	Contents          []Content
	// Tools declares the callable actions. Empty means the model may only answer in text.
	Tools []action.Declaration
	// ResponseMIMEType constrains the output format, e.g. "application/json".
	ResponseMIMEType string
	MaxOutputTokens  int32
}

// Chunk is one incremental piece of a streamed reply.
type Chunk struct {
	Text          string
	FunctionCalls []FunctionCall
}

// GenerateResponse is a complete, non-streamed reply.
type GenerateResponse struct {
	Text          string
	FunctionCalls []FunctionCall
}

// LanguageModel is the generative-language backend.
type LanguageModel interface {
	// Generate returns the whole reply at once.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// GenerateStream yields the reply chunk by chunk. The sequence is finite and
	// can be consumed once; iteration stops after the first error.
	GenerateStream(ctx context.Context, req *GenerateRequest) iter.Seq2[*Chunk, error]
}
