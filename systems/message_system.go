package systems

import (
	"strings"
)

// MessageLog stores log messages for display
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a message to the log, picking its type from the text
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, classifyMessage(message))
}

// AddColored adds a message with an explicit type
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

func classifyMessage(message string) MessageType {
	switch {
	case strings.HasPrefix(message, "ERROR"), strings.HasPrefix(message, "WARNING"):
		return MessageTypeAlert
	case strings.HasPrefix(message, "Generated"):
		return MessageTypeGeneration
	case strings.HasPrefix(message, "Meshed"):
		return MessageTypeMesh
	}
	return MessageTypeNormal
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
