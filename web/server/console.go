package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "notice", "warning", "error"
}

// ConsoleLogger implements log.Logger by forwarding every message to the
// server log and keeping a copy for the client that requested the render
type ConsoleLogger struct {
	renderID string
	next     log.Logger

	mu       sync.Mutex
	messages []ConsoleMessage
}

// NewConsoleLogger creates a new console logger for a specific render
func NewConsoleLogger(renderID string, next log.Logger) *ConsoleLogger {
	return &ConsoleLogger{
		renderID: renderID,
		next:     next,
	}
}

// Messages returns a copy of the recorded messages in order
func (cl *ConsoleLogger) Messages() []ConsoleMessage {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return append([]ConsoleMessage(nil), cl.messages...)
}

func (cl *ConsoleLogger) record(level, message string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.messages = append(cl.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	})
}

func (cl *ConsoleLogger) Debug(v ...interface{}) { cl.Debugf("%s", fmt.Sprint(v...)) }

func (cl *ConsoleLogger) Debugf(format string, v ...interface{}) {
	// Per-tile debug output is too chatty for the client
	cl.next.Debugf("[%s] "+format, append([]interface{}{cl.renderID}, v...)...)
}

func (cl *ConsoleLogger) Info(v ...interface{}) { cl.Infof("%s", fmt.Sprint(v...)) }

func (cl *ConsoleLogger) Infof(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	cl.record("info", message)
	cl.next.Infof("[%s] %s", cl.renderID, message)
}

func (cl *ConsoleLogger) Notice(v ...interface{}) { cl.Noticef("%s", fmt.Sprint(v...)) }

func (cl *ConsoleLogger) Noticef(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	cl.record("notice", message)
	cl.next.Noticef("[%s] %s", cl.renderID, message)
}

func (cl *ConsoleLogger) Warning(v ...interface{}) { cl.Warningf("%s", fmt.Sprint(v...)) }

func (cl *ConsoleLogger) Warningf(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	cl.record("warning", message)
	cl.next.Warningf("[%s] %s", cl.renderID, message)
}

func (cl *ConsoleLogger) Error(v ...interface{}) { cl.Errorf("%s", fmt.Sprint(v...)) }

func (cl *ConsoleLogger) Errorf(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	cl.record("error", message)
	cl.next.Errorf("[%s] %s", cl.renderID, message)
}
