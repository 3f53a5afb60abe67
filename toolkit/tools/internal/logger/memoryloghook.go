// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package logger

import (
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// MemoryLogHook keeps log records in memory so unit tests can assert on them.
// Each test registers its own sub-hook so that parallel tests don't see each other's records.
type MemoryLogHook struct {
	lock     sync.Mutex
	subHooks []*MemoryLogSubHook
}

type MemoryLogSubHook struct {
	parent   *MemoryLogHook
	lock     sync.Mutex
	messages []MemoryLogMessage
}

type MemoryLogMessage struct {
	Message string
	Level   logrus.Level
}

func NewMemoryLogHook() *MemoryLogHook {
	return &MemoryLogHook{}
}

func (h *MemoryLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *MemoryLogHook) Fire(entry *logrus.Entry) error {
	h.lock.Lock()
	subHooks := h.subHooks
	h.lock.Unlock()

	message := MemoryLogMessage{
		Message: entry.Message,
		Level:   entry.Level,
	}

	for _, subHook := range subHooks {
		subHook.add(message)
	}

	return nil
}

func (h *MemoryLogHook) AddSubHook() *MemoryLogSubHook {
	subHook := &MemoryLogSubHook{
		parent: h,
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	// Copy on write, so Fire can iterate without holding the lock.
	h.subHooks = append(slices.Clone(h.subHooks), subHook)
	return subHook
}

func (h *MemoryLogHook) RemoveSubHook(subHook *MemoryLogSubHook) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.subHooks = slices.DeleteFunc(slices.Clone(h.subHooks), func(entry *MemoryLogSubHook) bool {
		return entry == subHook
	})
}

func (h *MemoryLogSubHook) add(message MemoryLogMessage) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.messages = append(h.messages, message)
}

func (h *MemoryLogSubHook) Close() {
	h.parent.RemoveSubHook(h)
}

// ConsumeMessages returns the records captured so far and clears them.
func (h *MemoryLogSubHook) ConsumeMessages() []MemoryLogMessage {
	h.lock.Lock()
	defer h.lock.Unlock()

	messages := h.messages
	h.messages = nil
	return messages
}
