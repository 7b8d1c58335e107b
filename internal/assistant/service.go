package assistant

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks -mock_names=Service=MockService github.com/DARSHAN2224/Portfolio-sub000/internal/assistant Service
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_adapter.go -package=mocks github.com/DARSHAN2224/Portfolio-sub000/internal/provider Adapter

import (
	"context"
	"strings"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/contextutil"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/provider"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/storage"
)

// unavailableText is the in-band reply when the upstream provider fails.
// The chat UI renders it like any other assistant message.
const unavailableText = "Sorry, the assistant is unavailable right now. Please try again in a moment."

// Request is one chat request in the domain layer.
type Request struct {
	Message   string
	SessionID string
	Scope     Scope
}

// Service processes chat requests against the configured AI provider.
type Service interface {
	// Chat grounds the message in portfolio context, queries the provider,
	// and returns the parsed result. Provider failures degrade to an
	// in-band apology result; only validation failures return an error.
	Chat(ctx context.Context, req Request) (Result, error)
}

// service implements Service.
type service struct {
	assembler *Assembler
	adapter   provider.Adapter
	chatLogs  storage.ChatLogStore // optional; nil disables transcripts
}

// NewService creates a new assistant Service. chatLogs may be nil to
// disable transcript persistence.
func NewService(assembler *Assembler, adapter provider.Adapter, chatLogs storage.ChatLogStore) Service {
	return &service{
		assembler: assembler,
		adapter:   adapter,
		chatLogs:  chatLogs,
	}
}

// Chat processes one chat request.
func (s *service) Chat(ctx context.Context, req Request) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Message) == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return Result{}, &ValidationError{
			Field:   "message",
			Message: "cannot be empty",
		}
	}

	snap := s.assembler.Assemble(ctx, req.Scope)
	prompt := BuildPrompt(snap, req.Message)
	logger.DebugContext(ctx, "prompt built",
		"provider", string(s.adapter.ID()),
		"prompt_length", len(prompt),
	)

	s.logTranscript(ctx, req.SessionID, "user", req.Message)

	raw, err := s.adapter.Send(ctx, prompt, req.Message)
	if err != nil {
		// Provider failures stay in-band: the caller gets an apology
		// result, not an error, so the chat UI renders it uniformly.
		logger.ErrorContext(ctx, "provider call failed",
			"provider", string(s.adapter.ID()),
			"error", err,
		)
		res := Result{Text: unavailableText}
		s.logTranscript(ctx, req.SessionID, "bot", res.Text)
		return res, nil
	}

	res := Parse(raw)
	if res.Command != nil {
		logger.InfoContext(ctx, "chat processed with command",
			"command", string(res.Command.Tag),
			"reply_length", len(res.Text),
		)
	} else {
		logger.InfoContext(ctx, "chat processed", "reply_length", len(res.Text))
	}

	s.logTranscript(ctx, req.SessionID, "bot", res.Text)
	return res, nil
}

// logTranscript appends one transcript row, best effort. Transcripts are
// optional persistence; failures never affect the chat result.
func (s *service) logTranscript(ctx context.Context, sessionID, sender, text string) {
	if s.chatLogs == nil || sessionID == "" {
		return
	}
	entry := &storage.ChatLogRecord{
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
	}
	if err := s.chatLogs.Append(ctx, entry); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to append chat log", "error", err)
	}
}
