// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package logger

// Keeps log messages in memory so unit tests can assert on them.

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type MemoryLogMessage struct {
	Message string
	Level   logrus.Level
}

type MemoryLogHook struct {
	lock     sync.Mutex
	messages []MemoryLogMessage
}

func NewMemoryLogHook() *MemoryLogHook {
	return &MemoryLogHook{}
}

func (h *MemoryLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *MemoryLogHook) Fire(entry *logrus.Entry) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.messages = append(h.messages, MemoryLogMessage{
		Message: entry.Message,
		Level:   entry.Level,
	})
	return nil
}

// ConsumeMessages returns the messages recorded since the last call and forgets them.
func (h *MemoryLogHook) ConsumeMessages() []MemoryLogMessage {
	h.lock.Lock()
	defer h.lock.Unlock()

	messages := h.messages
	h.messages = nil
	return messages
}

// MessagesAtLevel returns the recorded messages of a single level without consuming them.
func (h *MemoryLogHook) MessagesAtLevel(level logrus.Level) []string {
	h.lock.Lock()
	defer h.lock.Unlock()

	var messages []string
	for _, message := range h.messages {
		if message.Level == level {
			messages = append(messages, message.Message)
		}
	}
	return messages
}
