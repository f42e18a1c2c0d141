// Package rpc provides the Connect service implementation for the
// assistant, mounted alongside the REST routes.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/SYLESH-1125/SIH/internal/engine"
	"github.com/SYLESH-1125/SIH/internal/observability"
)

// AnswerProcedure is the Connect procedure path for Answer.
const AnswerProcedure = "/agri.v1.AssistService/Answer"

// AssistService implements the Connect assistant service.
type AssistService struct {
	logger    *observability.Logger
	assistant *engine.Assistant
}

// NewAssistService creates the service over an assistant.
func NewAssistService(logger *observability.Logger, assistant *engine.Assistant) *AssistService {
	return &AssistService{logger: logger, assistant: assistant}
}

// Answer handles Connect answer requests.
func (s *AssistService) Answer(ctx context.Context, req *connect.Request[engine.AnswerRequest]) (*connect.Response[engine.AnswerResponse], error) {
	msg := req.Msg

	if msg.Query == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("query is required"))
	}

	resp := s.assistant.Answer(ctx, *msg)
	return connect.NewResponse(&resp), nil
}

// Handler returns the procedure path and HTTP handler for mounting.
func (s *AssistService) Handler() (string, http.Handler) {
	return AnswerProcedure, connect.NewUnaryHandler(
		AnswerProcedure,
		s.Answer,
		connect.WithCodec(jsonCodec{}),
	)
}

// jsonCodec lets Connect carry plain structs as JSON payloads.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
