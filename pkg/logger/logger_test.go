package logger

import (
	"context"
	"testing"
	"time"
)

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger initialized")
	}

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Debug(ctx, "debug message")
	Error(ctx, "error message")
	LogRequest(ctx, "GET", "/api/v1/leads", 200, 5*time.Millisecond, "127.0.0.1")
}

func TestWithContextVariants(t *testing.T) {
	Init("development")

	if WithContext(nil) != log {
		t.Fatal("nil context should return base logger")
	}
	if WithContext(context.Background()) != log {
		t.Fatal("context without request id should return base logger")
	}

	typed := context.WithValue(context.Background(), RequestIDKey, "req-2")
	if WithContext(typed) == nil {
		t.Fatal("typed key context should produce a logger")
	}
}
