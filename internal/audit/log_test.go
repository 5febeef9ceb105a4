package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"crosspay.org/internal/auth"
	"crosspay.org/internal/obs"
)

func captureLog(t *testing.T, fn func()) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	obs.Logger().SetOutput(&buf)
	defer obs.Logger().SetOutput(os.Stdout)

	fn()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", buf.String())
	}
	return entry
}

func TestLogEventCarriesRequestAndActor(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	ctx = auth.ContextWithIdentity(ctx, auth.Identity{
		ID:       "id-1",
		Username: "employee1",
		Role:     auth.RoleEmployee,
	})

	entry := captureLog(t, func() {
		if err := LogEvent(ctx, "payments.verify", map[string]any{"payment_id": "p1"}); err != nil {
			t.Fatalf("log event: %v", err)
		}
	})

	if entry["type"] != "audit" || entry["event"] != "payments.verify" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["request_id"] != "req-42" {
		t.Fatalf("request_id = %v", entry["request_id"])
	}
	if entry["actor_username"] != "employee1" || entry["actor_role"] != "employee" {
		t.Fatalf("actor fields missing: %v", entry)
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["payment_id"] != "p1" {
		t.Fatalf("fields = %v", entry["fields"])
	}
}

func TestLogEventRequiresName(t *testing.T) {
	if err := LogEvent(context.Background(), "  ", nil); err == nil {
		t.Fatal("expected error for empty event name")
	}
}

func TestLogEventWithoutContext(t *testing.T) {
	entry := captureLog(t, func() {
		if err := LogEvent(context.Background(), "auth.login.succeeded", nil); err != nil {
			t.Fatalf("log event: %v", err)
		}
	})
	if _, present := entry["request_id"]; present {
		t.Fatal("request_id must be omitted when absent from context")
	}
	if _, present := entry["actor_id"]; present {
		t.Fatal("actor fields must be omitted for anonymous events")
	}
}
