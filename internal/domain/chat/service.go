package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nooros/backend/internal/infrastructure/monitoring"
	"github.com/nooros/backend/internal/shared/types"
	"github.com/nooros/backend/internal/shared/utils"
	"go.uber.org/zap"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// EmptyReply is sent when the model answers with nothing
const EmptyReply = "Not sure what to say there. Mind rephrasing?"

// fallbackQuoteLen bounds how much of the last user message the offline reply echoes
const fallbackQuoteLen = 140

var ErrInvalidMessage = errors.New("invalid chat message")

// Service answers assistant conversations
type Service struct {
	cfg     Config
	client  *Client
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewService creates the assistant service
func NewService(cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	return &Service{
		cfg:    cfg,
		client: NewClient(cfg),
		logger: logger,
	}
}

// WithMetrics enables upstream call metrics
func (s *Service) WithMetrics(metrics *monitoring.Metrics) *Service {
	s.metrics = metrics
	return s
}

// Online reports whether an API key is configured
func (s *Service) Online() bool { return s.cfg.APIKey != "" }

// Client returns the upstream client
func (s *Service) Client() *Client { return s.client }

// SystemPrompt returns the persona prompt prepended to every conversation
func (s *Service) SystemPrompt() string {
	return "You are Noor Ali, speaking in first person. Be concise, friendly, and helpful. " +
		"If asked about contact, my email is " + s.cfg.ContactEmail + " and GitHub is github.com/oronila. " +
		"If you don't know something, say so briefly and suggest emailing me.\n" +
		"Tone guidance:\n" +
		"- Short, direct sentences\n" +
		"- Conversational, occasionally playful\n" +
		"- Avoid corporate jargon\n"
}

// Reply returns the assistant's answer to the conversation
func (s *Service) Reply(ctx context.Context, history []types.ChatMessage) (string, error) {
	if err := validate(history); err != nil {
		return "", err
	}
	if len(history) > utils.MaxChatMessages {
		history = history[len(history)-utils.MaxChatMessages:]
	}

	if !s.Online() {
		return s.offlineReply(history), nil
	}

	messages := make([]types.ChatMessage, 0, len(history)+1)
	messages = append(messages, types.ChatMessage{Role: RoleSystem, Content: s.SystemPrompt()})
	messages = append(messages, history...)

	timer := monitoring.NewTimer(s.metrics, "chat", "complete")
	content, err := s.client.Complete(ctx, completionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		timer.Stop("error")
		s.logger.Warn("chat upstream failed", zap.Error(err))
		return "", err
	}
	timer.Stop("success")

	if reply := strings.TrimSpace(content); reply != "" {
		return reply, nil
	}
	return EmptyReply, nil
}

func (s *Service) offlineReply(history []types.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		m := history[i]
		if m.Role != RoleUser {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			break
		}
		return fmt.Sprintf("I can't access my AI right now, but here's a quick thought: %s — feel free to email me at %s and I’ll get back to you!",
			truncate(m.Content, fallbackQuoteLen), s.cfg.ContactEmail)
	}
	return fmt.Sprintf("I can't access my AI right now. Email me at %s and I’ll get back to you!", s.cfg.ContactEmail)
}

func validate(history []types.ChatMessage) error {
	for i, m := range history {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return fmt.Errorf("%w: message %d has role %q", ErrInvalidMessage, i, m.Role)
		}
		if m.Content == "" {
			continue
		}
		if err := utils.ValidateChatMessage(m.Content); err != nil {
			return fmt.Errorf("%w: message %d: %v", ErrInvalidMessage, i, err)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
