package suggestion

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestToRequest(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ToRequest("Plan trip"))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if got, want := string(data), `{"taskName":"Plan trip"}`; got != want {
		t.Errorf("request body = %s, want %s", got, want)
	}
}

func TestToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr error
	}{
		{name: "list", body: `{"suggestions":["Book flights","Pack bags"]}`, want: []string{"Book flights", "Pack bags"}},
		{name: "empty list", body: `{"suggestions":[]}`, want: []string{}},
		{name: "missing field", body: `{"ideas":["x"]}`, wantErr: ErrMissingSuggestions},
		{name: "null field", body: `{"suggestions":null}`, wantErr: ErrMissingSuggestions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var dto ResponseDTO
			if err := json.Unmarshal([]byte(tt.body), &dto); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}

			got, err := ToDomain(dto)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToDomain() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ToDomain() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ToDomain()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
