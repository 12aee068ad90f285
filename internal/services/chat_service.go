package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/nutritrack/internal/models"
)

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrCoachUnavailable = errors.New("the coach is unavailable right now")
)

const (
	coachSystemPrompt     = "You are NutriCoach, a friendly nutrition coach. Keep replies short, encouraging and grounded in everyday food advice. Do not give medical diagnoses."
	coachContextTemplate  = "The user follows the %q dietary persona."
	coachFallbackGreeting = "Tell me about your eating habits and I'll share a tip."
)

// ChatGenerator produces the AI half of an exchange.
type ChatGenerator interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

type ChatMessageRepository interface {
	AppendExchange(userMessage *models.ChatMessage, reply *models.ChatMessage) error
	ListBySession(sessionID string) ([]models.ChatMessage, error)
	ListByUser(userID string) ([]models.ChatMessage, error)
	DeleteSession(sessionID string) error
	DeleteForUser(userID string) error
}

type ChatUserRepository interface {
	FindByID(userID string) (*models.User, error)
}

type ChatPersonaRepository interface {
	FindPersona(personaID string) (*models.Persona, error)
}

// ChatService runs the coach conversation: each accepted message is stored
// together with its AI reply in one transaction, so a session never contains
// a user message without an answer.
type ChatService struct {
	messages  ChatMessageRepository
	users     ChatUserRepository
	personas  ChatPersonaRepository
	generator ChatGenerator
	now       func() time.Time
}

func NewChatService(messages ChatMessageRepository, users ChatUserRepository, personas ChatPersonaRepository, generator ChatGenerator) *ChatService {
	return &ChatService{
		messages:  messages,
		users:     users,
		personas:  personas,
		generator: generator,
		now:       time.Now,
	}
}

// NewSession mints a session id for a fresh conversation.
func (service *ChatService) NewSession() string {
	return uuid.NewString()
}

// SendMessage calls the generative model and persists the user/AI pair. A
// generation failure persists nothing and surfaces ErrCoachUnavailable with
// the transport detail wrapped inside.
func (service *ChatService) SendMessage(ctx context.Context, userID string, sessionID string, content string) (*models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = service.NewSession()
	}

	systemPrompt, err := service.buildSystemPrompt(userID)
	if err != nil {
		return nil, err
	}

	replyText, err := service.generator.Generate(ctx, systemPrompt, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoachUnavailable, err)
	}
	if strings.TrimSpace(replyText) == "" {
		replyText = coachFallbackGreeting
	}

	now := service.now()
	userMessage := &models.ChatMessage{
		Content:   content,
		FromUser:  true,
		UserID:    &userID,
		SessionID: sessionID,
		Timestamp: now,
	}
	reply := &models.ChatMessage{
		Content:   replyText,
		FromUser:  false,
		UserID:    &userID,
		SessionID: sessionID,
		Timestamp: now,
	}
	if err := service.messages.AppendExchange(userMessage, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (service *ChatService) SessionMessages(sessionID string) ([]models.ChatMessage, error) {
	return service.messages.ListBySession(sessionID)
}

func (service *ChatService) UserMessages(userID string) ([]models.ChatMessage, error) {
	return service.messages.ListByUser(userID)
}

func (service *ChatService) ClearSession(sessionID string) error {
	return service.messages.DeleteSession(sessionID)
}

func (service *ChatService) ClearUser(userID string) error {
	return service.messages.DeleteForUser(userID)
}

// buildSystemPrompt folds the user's persona into the coach instructions when
// one is selected.
func (service *ChatService) buildSystemPrompt(userID string) (string, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUnknownUser
	}
	if user.PersonaID == nil {
		return coachSystemPrompt, nil
	}
	persona, err := service.personas.FindPersona(*user.PersonaID)
	if err != nil {
		return "", err
	}
	if persona == nil {
		return coachSystemPrompt, nil
	}
	return coachSystemPrompt + " " + fmt.Sprintf(coachContextTemplate, persona.Name), nil
}
