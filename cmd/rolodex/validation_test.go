package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mreyes/rolodex/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "contacts.txt"), store.PipeCodec{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return st
}

func TestRunCommand_AddRejectsBadInput(t *testing.T) {
	st := testStore(t)
	var out bytes.Buffer

	if err := runCommand(&out, st, []string{"add", " ", "555"}); err == nil {
		t.Error("empty name accepted")
	}
	if err := runCommand(&out, st, []string{"add", "Alice", "no-digits"}); err == nil {
		t.Error("digit-less phone accepted")
	}
	if len(st.List()) != 0 {
		t.Error("rejected input reached the store")
	}
}

func TestRunCommand_AddMultiWordName(t *testing.T) {
	st := testStore(t)
	var out bytes.Buffer

	if err := runCommand(&out, st, []string{"add", "Ada", "Lovelace", "555"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got := st.List()
	if len(got) != 1 || got[0].Name != "Ada Lovelace" {
		t.Errorf("stored %v, want Ada Lovelace", got)
	}
}

func TestRunCommand_RemoveUnknownID(t *testing.T) {
	st := testStore(t)
	var out bytes.Buffer

	if err := runCommand(&out, st, []string{"remove", "7"}); err == nil {
		t.Error("remove of unknown id succeeded")
	}
	if err := runCommand(&out, st, []string{"remove", "seven"}); err == nil {
		t.Error("non-numeric id accepted")
	}
}

func TestRunCommand_SearchOutput(t *testing.T) {
	st := testStore(t)
	st.Add("Alice", "5551234")
	st.Add("Bob", "999")

	var out bytes.Buffer
	if err := runCommand(&out, st, []string{"search", "ali"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out.String(), "Alice") || strings.Contains(out.String(), "Bob") {
		t.Errorf("search output wrong:\n%s", out.String())
	}
}

func TestRunCommand_Unknown(t *testing.T) {
	st := testStore(t)
	var out bytes.Buffer

	if err := runCommand(&out, st, []string{"frobnicate"}); err == nil {
		t.Error("unknown command accepted")
	}
}
