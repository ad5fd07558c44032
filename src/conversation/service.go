package conversation

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordTurn appends the user's utterance and the assistant's reply
func (s *Service) RecordTurn(ctx context.Context, sessionID, utterance, response string) error {
	if err := s.repo.AddMessage(ctx, sessionID, schema.UserMessage(utterance)); err != nil {
		return fmt.Errorf("failed to record utterance: %w", err)
	}
	if err := s.repo.AddMessage(ctx, sessionID, schema.AssistantMessage(response, nil)); err != nil {
		return fmt.Errorf("failed to record response: %w", err)
	}
	return nil
}

// History returns the full transcript of a session
func (s *Service) History(ctx context.Context, sessionID string) (*History, error) {
	return s.repo.Load(ctx, sessionID)
}

// Recap renders the session's recent turns using strategy
func (s *Service) Recap(ctx context.Context, sessionID string, strategy ContextStrategy) (string, error) {
	history, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return strategy.BuildContext(history.Messages), nil
}

// Forget removes a session's transcript
func (s *Service) Forget(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}
