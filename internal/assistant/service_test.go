package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/assistant"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/assistant/mocks"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/provider"
	"github.com/DARSHAN2224/Portfolio-sub000/internal/storage"
	storagemocks "github.com/DARSHAN2224/Portfolio-sub000/internal/storage/mocks"
)

// quietStore builds a portfolio store mock that tolerates any read.
func quietStore(ctrl *gomock.Controller) *storagemocks.MockPortfolioStore {
	store := storagemocks.NewMockPortfolioStore(ctrl)
	store.EXPECT().GetProfile(gomock.Any()).Return(nil, storage.ErrNotFound).AnyTimes()
	store.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().ListSkills(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().ListExperience(gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().ListBlogPosts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().ListCertificates(gomock.Any()).Return(nil, nil).AnyTimes()
	return store
}

func TestService_Chat_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No adapter or store expectations: validation must reject the request
	// before anything downstream is touched.
	adapter := mocks.NewMockAdapter(ctrl)
	store := storagemocks.NewMockPortfolioStore(ctrl)

	svc := assistant.NewService(assistant.NewAssembler(store), adapter, nil)

	_, err := svc.Chat(context.Background(), assistant.Request{Message: "   "})

	var validationErr *assistant.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Chat() error = %v, want ValidationError", err)
	}
	if validationErr.Field != "message" {
		t.Errorf("ValidationError field = %q, want message", validationErr.Field)
	}
}

func TestService_Chat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().ID().Return(provider.Groq).AnyTimes()
	adapter.EXPECT().
		Send(gomock.Any(), gomock.Any(), "show me your projects").
		DoAndReturn(func(_ context.Context, systemPrompt, _ string) (string, error) {
			if !strings.Contains(systemPrompt, "RENDER_PROJECTS") {
				t.Error("Send() system prompt missing command vocabulary")
			}
			return `{"text":"Here they are","action":"RENDER_PROJECTS","payload":[]}`, nil
		})

	svc := assistant.NewService(assistant.NewAssembler(quietStore(ctrl)), adapter, nil)

	res, err := svc.Chat(context.Background(), assistant.Request{
		Message: "show me your projects",
		Scope:   assistant.ScopeAll,
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Text != "Here they are" {
		t.Errorf("Chat() text = %q", res.Text)
	}
	if res.Command == nil || res.Command.Tag != command.RenderProjects {
		t.Errorf("Chat() command = %+v, want RENDER_PROJECTS", res.Command)
	}
}

func TestService_Chat_ProviderFailureDegradesInBand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().ID().Return(provider.Ollama).AnyTimes()
	adapter.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &provider.Error{Provider: provider.Ollama, Err: errors.New("connection refused")})

	svc := assistant.NewService(assistant.NewAssembler(quietStore(ctrl)), adapter, nil)

	res, err := svc.Chat(context.Background(), assistant.Request{Message: "hello"})

	// The failure stays in-band: no error, an apology text, no command.
	if err != nil {
		t.Fatalf("Chat() error = %v, want nil on provider failure", err)
	}
	if res.Command != nil {
		t.Errorf("Chat() command = %+v, want nil", res.Command)
	}
	if !strings.Contains(strings.ToLower(res.Text), "unavailable") {
		t.Errorf("Chat() text = %q, want unavailable notice", res.Text)
	}
}

func TestService_Chat_WritesTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().ID().Return(provider.Groq).AnyTimes()
	adapter.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"text":"hi!","action":null,"payload":null}`, nil)

	chatLogs := storagemocks.NewMockChatLogStore(ctrl)
	var senders []string
	chatLogs.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *storage.ChatLogRecord) error {
			if entry.SessionID != "session-1" {
				t.Errorf("Append() session = %q, want session-1", entry.SessionID)
			}
			senders = append(senders, entry.Sender)
			return nil
		}).
		Times(2)

	svc := assistant.NewService(assistant.NewAssembler(quietStore(ctrl)), adapter, chatLogs)

	_, err := svc.Chat(context.Background(), assistant.Request{
		Message:   "hello",
		SessionID: "session-1",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if len(senders) != 2 || senders[0] != "user" || senders[1] != "bot" {
		t.Errorf("transcript senders = %v, want [user bot]", senders)
	}
}

func TestService_Chat_TranscriptFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().ID().Return(provider.Groq).AnyTimes()
	adapter.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"text":"hi!","action":null,"payload":null}`, nil)

	chatLogs := storagemocks.NewMockChatLogStore(ctrl)
	chatLogs.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full")).
		Times(2)

	svc := assistant.NewService(assistant.NewAssembler(quietStore(ctrl)), adapter, chatLogs)

	res, err := svc.Chat(context.Background(), assistant.Request{
		Message:   "hello",
		SessionID: "session-1",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v, transcript failures must not surface", err)
	}
	if res.Text != "hi!" {
		t.Errorf("Chat() text = %q", res.Text)
	}
}
