package llm

import (
	"testing"
)

func TestDecodeJSON_Scenarios(t *testing.T) {
	type payload struct {
		Name string `json:"Name"`
	}

	tests := []struct {
		name     string
		raw      string
		wantName string
		wantErr  bool
	}{
		{
			name:     "Plain_JSON",
			raw:      `{"Name": "Alice Johnson"}`,
			wantName: "Alice Johnson",
		},
		{
			name:     "Fenced_JSON",
			raw:      "```json\n{\"Name\": \"Alice Johnson\"}\n```",
			wantName: "Alice Johnson",
		},
		{
			name:     "Fenced_Without_Language_Tag",
			raw:      "```\n{\"Name\": \"Alice Johnson\"}\n```",
			wantName: "Alice Johnson",
		},
		{
			name:     "Prose_Before_Object",
			raw:      "Here is the extracted data:\n{\"Name\": \"Alice Johnson\"}",
			wantName: "Alice Johnson",
		},
		{
			name:     "Whitespace_Padding",
			raw:      "   \n {\"Name\": \"Alice Johnson\"} \n  ",
			wantName: "Alice Johnson",
		},
		{
			name:    "Empty_Response",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "Garbage_Response",
			raw:     "I cannot generate that document.",
			wantErr: true,
		},
		{
			name:    "Truncated_JSON",
			raw:     `{"Name": "Alice`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := DecodeJSON(tt.raw, &got)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSON failed: %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name got %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestDecodeJSON_Idempotent(t *testing.T) {
	raw := "```json\n{\"Name\": \"TechNova\"}\n```"

	var first, second map[string]string
	if err := DecodeJSON(raw, &first); err != nil {
		t.Fatal(err)
	}
	if err := DecodeJSON(raw, &second); err != nil {
		t.Fatal(err)
	}
	if first["Name"] != second["Name"] {
		t.Errorf("decode is not deterministic: %q vs %q", first["Name"], second["Name"])
	}
}
