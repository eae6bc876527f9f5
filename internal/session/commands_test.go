package session

import (
	"context"
	"math/rand"
	"strings"
	"testing"
)

func TestDetectCommand(t *testing.T) {
	tests := []struct {
		message string
		want    Command
		ok      bool
	}{
		{"What do you remember?", CmdRecall, true},
		{"recall", CmdRecall, true},
		{"Show my memory", CmdRecall, true},
		{"list facts", CmdRecall, true},
		{"what do you remember about me?", CmdRecall, true},
		{"forget my name", CmdForgetName, true},
		{"delete my name", CmdForgetName, true},
		{"clear memory", CmdClearAll, true},
		{"forget everything about me", CmdClearAll, true},
		{"wipe my memory", CmdClearAll, true},
		{"forget my likes", CmdForgetLikes, true},
		{"do you remember me", CmdRememberMe, true},
		{"do you know my name?", CmdRememberMe, true},
		{"who am i", CmdWhoAmI, true},
		{"what is my name?", CmdWhoAmI, true},
		{"what do you know about me", CmdWhoAmI, true},
		{"  FORGET   MY   NAME  ", CmdForgetName, true},
		{"hello there", "", false},
		{"what do you remember about my trip", "", false},
		{"remember that my exam is on friday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := DetectCommand(tt.message)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DetectCommand(%q) = (%q, %v), want (%q, %v)", tt.message, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFactsSummary(t *testing.T) {
	s := NewSession()
	if got := FactsSummary(s); got != "" {
		t.Fatalf("empty session summary = %q, want empty", got)
	}

	s.SetFact("name", "alex")
	s.SetFact("likes", "dogs")
	s.SetFact("custom_key", "blue socks")
	want := "Name: alex; Likes: dogs; Custom Key: blue socks"
	if got := FactsSummary(s); got != want {
		t.Errorf("FactsSummary = %q, want %q", got, want)
	}
	if got, want := summaryExcluding(s, "name"), "Likes: dogs; Custom Key: blue socks"; got != want {
		t.Errorf("summaryExcluding = %q, want %q", got, want)
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"name", "Name"},
		{"favorite_color", "Favourite colour"},
		{"pet_name", "Pet's name"},
		{"custom_key", "Custom Key"},
	}
	for _, tt := range tests {
		if got := labelFor(tt.key); got != tt.want {
			t.Errorf("labelFor(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestManagerCommandFlow(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), WithRand(rand.New(rand.NewSource(1))))

	for _, msg := range []string{"my name is alex", "i like dogs"} {
		if _, err := m.Absorb(ctx, "u1", msg); err != nil {
			t.Fatalf("Absorb(%q): %v", msg, err)
		}
	}

	reply, err := m.HandleCommand(ctx, "u1", CmdRecall)
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if !strings.Contains(reply, "Name: alex; Likes: dogs") {
		t.Errorf("recall reply %q missing summary", reply)
	}

	reply, err = m.HandleCommand(ctx, "u1", CmdWhoAmI)
	if err != nil {
		t.Fatalf("who am i: %v", err)
	}
	if !strings.Contains(reply, "You're alex") || !strings.Contains(reply, "Likes: dogs") {
		t.Errorf("who-am-i reply %q missing name or facts", reply)
	}

	if _, err := m.HandleCommand(ctx, "u1", CmdForgetName); err != nil {
		t.Fatalf("forget name: %v", err)
	}
	s, err := m.Session(ctx, "u1")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if s.Fact("name") != "" {
		t.Errorf("name still stored after forget: %q", s.Fact("name"))
	}
	if s.Fact("likes") != "dogs" {
		t.Errorf("likes lost on forget name: %q", s.Fact("likes"))
	}

	// With the name gone, who-am-i falls back to the remaining facts.
	reply, err = m.HandleCommand(ctx, "u1", CmdWhoAmI)
	if err != nil {
		t.Fatalf("who am i without name: %v", err)
	}
	if !strings.Contains(reply, "Likes: dogs") {
		t.Errorf("nameless who-am-i reply %q missing facts", reply)
	}

	if _, err := m.HandleCommand(ctx, "u1", CmdClearAll); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	s, err = m.Session(ctx, "u1")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if s.HasFacts() {
		t.Errorf("facts survive clear_all: %v", s.Facts)
	}

	reply, err = m.HandleCommand(ctx, "u1", CmdRecall)
	if err != nil {
		t.Fatalf("recall after clear: %v", err)
	}
	if !containsString(recallEmpty, reply) {
		t.Errorf("empty recall reply %q not a known variant", reply)
	}

	if _, err := m.HandleCommand(ctx, "u1", Command("bogus")); err == nil {
		t.Error("unknown command accepted")
	}
}

func TestManagerForgetLikes(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	store := func(key, value string) {
		t.Helper()
		s, err := m.Session(ctx, "u2")
		if err != nil {
			t.Fatalf("load session: %v", err)
		}
		s.SetFact(key, value)
		if err := m.store.Put(ctx, "u2", s); err != nil {
			t.Fatalf("store fact: %v", err)
		}
	}
	store("name", "alex")
	store("likes", "dogs")
	store("favorite", "chess")

	if _, err := m.HandleCommand(ctx, "u2", CmdForgetLikes); err != nil {
		t.Fatalf("forget likes: %v", err)
	}
	s, err := m.Session(ctx, "u2")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if s.Fact("likes") != "" || s.Fact("favorite") != "" {
		t.Errorf("likes/favorite survive: %q %q", s.Fact("likes"), s.Fact("favorite"))
	}
	if s.Fact("name") != "alex" {
		t.Errorf("name lost: %q", s.Fact("name"))
	}
}

func TestManagerAbsorbAndRecord(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	m := NewManager(mem)

	facts, err := m.Absorb(ctx, "u3", "what is gravity?")
	if err != nil || facts != nil {
		t.Fatalf("question absorbed: %v, %v", facts, err)
	}
	if mem.Len() != 0 {
		t.Errorf("factless message touched storage: %d sessions", mem.Len())
	}

	facts, err = m.Absorb(ctx, "u3", "i live in tokyo")
	if err != nil {
		t.Fatalf("Absorb: %v", err)
	}
	if len(facts) != 1 || facts[0].Key != "location" || facts[0].Value != "tokyo" {
		t.Fatalf("facts = %v", facts)
	}

	if err := m.Record(ctx, "u3", "hello", "Hey! How can I help?", "greeting"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s, err := m.Session(ctx, "u3")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if len(s.Recent) != 1 || s.Recent[0].User != "hello" {
		t.Errorf("recent = %+v", s.Recent)
	}
	if got := s.LastTopic(); got != "greeting" {
		t.Errorf("LastTopic = %q, want greeting", got)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
