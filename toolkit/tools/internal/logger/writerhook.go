// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// WriterHook writes formatted log entries at or above a minimum level to a writer.
type WriterHook struct {
	lock      sync.Mutex
	writer    io.Writer
	level     logrus.Level
	formatter logrus.Formatter
}

func NewWriterHook(writer io.Writer, level logrus.Level, formatter logrus.Formatter) *WriterHook {
	return &WriterHook{
		writer:    writer,
		level:     level,
		formatter: formatter,
	}
}

func (h *WriterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *WriterHook) Fire(entry *logrus.Entry) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if entry.Level > h.level {
		return nil
	}

	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = h.writer.Write(line)
	return err
}

func (h *WriterHook) Level() logrus.Level {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.level
}

func (h *WriterHook) SetLevel(level logrus.Level) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.level = level
}
