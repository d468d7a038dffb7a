package helpers

import (
	"testing"
	"time"
)

func TestNilIfEmpty(t *testing.T) {
	if NilIfEmpty(nil) != nil {
		t.Error("nil input must stay nil")
	}
	if NilIfEmpty(Ptr("   ")) != nil {
		t.Error("blank input must become nil")
	}
	if got := NilIfEmpty(Ptr(" CS ")); got == nil || *got != "CS" {
		t.Errorf("got %v", got)
	}
}

func TestQualify(t *testing.T) {
	got := Qualify("j", "id", "title")
	if len(got) != 2 || got[0] != "j.id" || got[1] != "j.title" {
		t.Errorf("got %v", got)
	}
	if JoinColumns(got) != "j.id, j.title" {
		t.Errorf("JoinColumns: got %q", JoinColumns(got))
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Hour); got != 90*time.Second {
		t.Errorf("got %s", got)
	}
	if got := ParseDuration("soon", time.Hour); got != time.Hour {
		t.Errorf("fallback: got %s", got)
	}
}
