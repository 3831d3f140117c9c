// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package logger

import (
	"strings"
	"testing"
	"time"
)

func TestSubscriberReceivesLines(t *testing.T) {
	l, err := NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer l.Close()

	ch := l.Subscribe()
	if ch == nil {
		t.Fatal("Expected a subscriber channel")
	}

	l.Warnf("waiting %ds before retrying", 60)

	select {
	case line := <-ch:
		if !strings.Contains(line, "[WARN]") {
			t.Errorf("Expected WARN level tag, got %q", line)
		}
		if !strings.Contains(line, "waiting 60s before retrying") {
			t.Errorf("Expected message in line, got %q", line)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for broadcast line")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	l, err := NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer l.Close()

	ch := l.Subscribe()
	l.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("Expected channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for channel close")
	}
}

func TestClosedLoggerRejectsSubscribers(t *testing.T) {
	l, err := NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	l.Close()

	if ch := l.Subscribe(); ch != nil {
		t.Error("Expected nil channel from a closed logger")
	}

	// Logging after close must not panic
	l.Printf("ignored")
}
