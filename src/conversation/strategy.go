package conversation

import (
	"strings"

	"github.com/cloudwego/eino/schema"
)

type ContextStrategy interface {
	BuildContext(messages []*schema.Message) string
	GetMaxTurns() int
}

// RecentTurnsStrategy renders the last maxTurns messages
type RecentTurnsStrategy struct {
	maxTurns int
}

func NewRecentTurnsStrategy(maxTurns int) *RecentTurnsStrategy {
	if maxTurns <= 0 {
		maxTurns = 10
	}
	return &RecentTurnsStrategy{maxTurns: maxTurns}
}

func (s *RecentTurnsStrategy) GetMaxTurns() int {
	return s.maxTurns
}

func (s *RecentTurnsStrategy) BuildContext(messages []*schema.Message) string {
	recentMessages := trimTail(messages, s.maxTurns)

	var contextBuilder strings.Builder
	contextBuilder.WriteString("<conversation_context>\n")

	for _, msg := range recentMessages {
		switch msg.Role {
		case schema.User:
			contextBuilder.WriteString("UserMessage(" + msg.Content + ")\n")
		case schema.Assistant:
			contextBuilder.WriteString("AssistantMessage(" + msg.Content + ")\n")
		}
	}

	contextBuilder.WriteString("</conversation_context>")
	return contextBuilder.String()
}

// Helper function
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if len(messages) <= maxTurns {
		return messages
	}
	return messages[len(messages)-maxTurns:]
}
