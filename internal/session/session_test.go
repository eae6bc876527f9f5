package session

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSetFactOrderAndEviction(t *testing.T) {
	s := NewSession()
	for i := 0; i < MaxFacts+1; i++ {
		s.SetFact(fmt.Sprintf("custom_%03d", i), "v")
	}
	if len(s.FactKeys) != MaxFacts {
		t.Fatalf("kept %d facts, want %d", len(s.FactKeys), MaxFacts)
	}
	if s.Fact("custom_000") != "" {
		t.Errorf("oldest fact survived eviction")
	}
	if s.FactKeys[0] != "custom_001" {
		t.Errorf("FactKeys[0] = %q, want custom_001", s.FactKeys[0])
	}
	if s.Fact(fmt.Sprintf("custom_%03d", MaxFacts)) != "v" {
		t.Errorf("newest fact missing")
	}
}

func TestSetFactUpdateKeepsPosition(t *testing.T) {
	s := NewSession()
	s.SetFact("name", "alex")
	s.SetFact("likes", "dogs")
	s.SetFact("name", "sam")
	if got := s.Fact("name"); got != "sam" {
		t.Errorf("Fact(name) = %q, want sam", got)
	}
	if len(s.FactKeys) != 2 || s.FactKeys[0] != "name" || s.FactKeys[1] != "likes" {
		t.Errorf("FactKeys = %v, want [name likes]", s.FactKeys)
	}
}

func TestSetFactClipsValue(t *testing.T) {
	s := NewSession()
	s.SetFact("note", strings.Repeat("x", MaxFactValueLen+100))
	if got := len(s.Fact("note")); got != MaxFactValueLen {
		t.Errorf("stored value length = %d, want %d", got, MaxFactValueLen)
	}
	s.SetFact("", "v")
	s.SetFact("k", "   ")
	if len(s.FactKeys) != 1 {
		t.Errorf("blank key or value was stored: %v", s.FactKeys)
	}
}

func TestDeleteFact(t *testing.T) {
	s := NewSession()
	s.SetFact("name", "alex")
	if !s.DeleteFact("name") {
		t.Errorf("DeleteFact(name) = false, want true")
	}
	if s.DeleteFact("name") {
		t.Errorf("second DeleteFact(name) = true, want false")
	}
	if s.HasFacts() {
		t.Errorf("facts remain after delete: %v", s.FactKeys)
	}
}

func TestAddExchangeCaps(t *testing.T) {
	s := NewSession()
	for i := 0; i < MaxRecent+5; i++ {
		s.AddExchange(fmt.Sprintf("q%d", i), "a", fmt.Sprintf("t%d", i))
	}
	if len(s.Recent) != MaxRecent {
		t.Errorf("kept %d exchanges, want %d", len(s.Recent), MaxRecent)
	}
	if s.Recent[0].User != "q5" {
		t.Errorf("oldest kept exchange = %q, want q5", s.Recent[0].User)
	}
	if len(s.Topics) != MaxTopics {
		t.Errorf("kept %d topics, want %d", len(s.Topics), MaxTopics)
	}
	if got := s.LastTopic(); got != fmt.Sprintf("t%d", MaxRecent+4) {
		t.Errorf("LastTopic = %q", got)
	}
}

func TestLastExchanges(t *testing.T) {
	s := NewSession()
	s.AddExchange("one", "a", "")
	s.AddExchange("two", "b", "")
	s.AddExchange("three", "c", "")
	got := s.LastExchanges(2)
	if len(got) != 2 || got[0].User != "two" || got[1].User != "three" {
		t.Errorf("LastExchanges(2) = %+v", got)
	}
	if s.LastTopic() != "" {
		t.Errorf("LastTopic = %q, want empty (no hints recorded)", s.LastTopic())
	}
}

func TestCloneIsolation(t *testing.T) {
	s := NewSession()
	s.SetFact("name", "alex")
	s.AddExchange("hi", "hello", "greeting")
	c := s.Clone()
	c.SetFact("name", "sam")
	c.AddExchange("bye", "later", "")
	if s.Fact("name") != "alex" {
		t.Errorf("clone mutation leaked into original facts")
	}
	if len(s.Recent) != 1 {
		t.Errorf("clone mutation leaked into original history")
	}
	if !s.Created.Equal(c.Created) {
		t.Errorf("clone lost timestamps")
	}
}

func TestTouchUpdatesStamp(t *testing.T) {
	s := NewSession()
	before := s.Updated
	time.Sleep(time.Millisecond)
	s.SetFact("name", "alex")
	if !s.Updated.After(before) {
		t.Errorf("Updated not advanced by SetFact")
	}
}
