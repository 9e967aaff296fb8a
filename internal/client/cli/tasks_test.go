package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestList_PrintsNumberedTasks(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"b","title":"walk the dog","done":false},
			{"id":"a","title":"buy milk","done":true,"description":"2 liters"}
		]`))
	}))
	app.api.SetToken("session-token")
	lines := capturePrintln(t)

	if err := app.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(*lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", *lines)
	}
	if !strings.Contains((*lines)[0], "1.") || !strings.Contains((*lines)[0], "[ ] walk the dog") {
		t.Fatalf("unexpected first line: %q", (*lines)[0])
	}
	if !strings.Contains((*lines)[1], "[x] buy milk") || !strings.Contains((*lines)[1], "2 liters") {
		t.Fatalf("unexpected second line: %q", (*lines)[1])
	}
}

func TestList_Empty(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	app.api.SetToken("session-token")
	lines := capturePrintln(t)

	if err := app.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*lines) != 1 || !strings.Contains((*lines)[0], "No tasks yet") {
		t.Fatalf("unexpected output: %v", *lines)
	}
}

func TestAdd_UsesArgsAsTitle(t *testing.T) {
	var gotTitle string
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		gotTitle = body.Title

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"a","title":"` + body.Title + `","done":false}`))
	}))
	app.api.SetToken("session-token")
	capturePrintln(t)

	if err := app.Add(context.Background(), []string{"buy", "milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTitle != "buy milk" {
		t.Fatalf("unexpected title: %q", gotTitle)
	}
}

func TestDone_ResolvesListNumber(t *testing.T) {
	var updatedID string
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`[
				{"id":"newest","title":"walk the dog","done":false},
				{"id":"oldest","title":"buy milk","done":false}
			]`))
		case r.Method == http.MethodPut:
			updatedID = strings.TrimPrefix(r.URL.Path, "/tasks/")
			w.Write([]byte(`{"id":"` + updatedID + `","title":"buy milk","done":true}`))
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	app.api.SetToken("session-token")
	capturePrintln(t)

	// No cached list: Done refreshes it, then picks entry 2.
	if err := app.Done(context.Background(), []string{"2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updatedID != "oldest" {
		t.Fatalf("expected task 'oldest' to be updated, got %q", updatedID)
	}
}

func TestRm_DeletesByListNumber(t *testing.T) {
	var deletedID string
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":"a","title":"buy milk","done":false}]`))
		case http.MethodDelete:
			deletedID = strings.TrimPrefix(r.URL.Path, "/tasks/")
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	app.api.SetToken("session-token")
	capturePrintln(t)

	if err := app.Rm(context.Background(), []string{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != "a" {
		t.Fatalf("expected task 'a' to be deleted, got %q", deletedID)
	}
}

func TestTaskByNumber_Validation(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a","title":"buy milk","done":false}]`))
	}))
	app.api.SetToken("session-token")

	if _, err := app.taskByNumber(context.Background(), nil); err == nil {
		t.Fatal("expected error for missing argument")
	}
	if _, err := app.taskByNumber(context.Background(), []string{"x"}); err == nil {
		t.Fatal("expected error for non-numeric argument")
	}
	if _, err := app.taskByNumber(context.Background(), []string{"5"}); err == nil {
		t.Fatal("expected error for out-of-range number")
	}
}
