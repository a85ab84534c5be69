package testutil

import (
	"fmt"
	"sync"
)

// Entry is one recorded log call.
type Entry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger records log calls instead of printing them.
type Logger struct {
	mu      sync.Mutex
	Entries []Entry
}

func (l *Logger) add(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.add("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.add("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.add("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.add("error", msg, args) }

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.add("fatal", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}

// Messages returns the recorded messages of one level.
func (l *Logger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var msgs []string
	for _, e := range l.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}
