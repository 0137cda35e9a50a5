package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOptionalFieldsMarshal(t *testing.T) {
	entry := UserListEntry{
		Type:    ListTypeBlacklist,
		Comment: Comment("vandalism"),
		Expiry:  Expiry(1577836800),
		Adder:   "Bob",
	}

	got, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"blacklist","comment":"vandalism","expiry":1577836800,"adder":"Bob"}`
	if string(got) != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}
}

func TestOptionalFieldsMarshalAbsentAsFalse(t *testing.T) {
	entry := PageListEntry{Adder: "Bob"}

	got, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"comment":false,"expiry":false,"adder":"Bob"}`
	if string(got) != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}
}

func TestLookupResponseSectionPresence(t *testing.T) {
	tests := []struct {
		name     string
		resp     LookupResponse
		contains []string
		excludes []string
	}{
		{
			name:     "requested but empty users section stays an object",
			resp:     LookupResponse{Users: map[string]UserListEntry{}},
			contains: []string{`"users":{}`},
			excludes: []string{`"pages"`, `"users":[]`},
		},
		{
			name:     "unrequested sections are absent",
			resp:     LookupResponse{Pages: map[string]PageListEntry{}},
			contains: []string{`"pages":{}`},
			excludes: []string{`"users"`},
		},
		{
			name:     "warnings key only present when non-empty",
			resp:     LookupResponse{Users: map[string]UserListEntry{}},
			excludes: []string{`"warnings"`},
		},
		{
			name: "warnings serialize in order",
			resp: LookupResponse{
				Users:    map[string]UserListEntry{},
				Warnings: []string{"first", "second"},
			},
			contains: []string{`"warnings":["first","second"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.resp)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(string(got), want) {
					t.Errorf("marshal = %s, missing %s", got, want)
				}
			}
			for _, avoid := range tt.excludes {
				if strings.Contains(string(got), avoid) {
					t.Errorf("marshal = %s, should not contain %s", got, avoid)
				}
			}
		})
	}
}
