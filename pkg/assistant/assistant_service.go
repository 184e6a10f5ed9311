package assistant

import (
	"context"
	"fmt"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/google/uuid"
)

type Service interface {
	History(ctx context.Context) ([]Message, error)
	Send(ctx context.Context, content string) (Message, error)
}

type ServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewService(repo Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

// History returns the conversation so far, opening it with the greeting if it
// is empty.
func (s *ServiceImpl) History(ctx context.Context) ([]Message, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.ensureGreeting(ctx, userId); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx, userId)
}

// Send appends the user's message, derives the reply from the rule table, and
// appends and returns the assistant's message.
func (s *ServiceImpl) Send(ctx context.Context, content string) (Message, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Message{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if content == "" {
		return Message{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if err := s.ensureGreeting(ctx, userId); err != nil {
		return Message{}, err
	}

	now := s.clock.Now()
	if err := s.repo.Append(ctx, userId, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: now,
	}); err != nil {
		return Message{}, err
	}

	reply := Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   Reply(content),
		Timestamp: now,
	}
	if err := s.repo.Append(ctx, userId, reply); err != nil {
		return Message{}, err
	}
	return reply, nil
}

func (s *ServiceImpl) ensureGreeting(ctx context.Context, userId int) error {
	messages, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return nil
	}
	return s.repo.Append(ctx, userId, Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   Greeting,
		Timestamp: s.clock.Now(),
	})
}
