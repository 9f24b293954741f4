package ports

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/todolist/core/internal/domain/entities"
)

func TestCompletedValueUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		flag    int
	}{
		{"boolean true", `true`, false, 1},
		{"boolean false", `false`, false, 0},
		{"number one", `1`, false, 1},
		{"number zero", `0`, false, 0},
		{"number two", `2`, false, 0},
		{"number fraction", `0.5`, false, 0},
		{"string rejected", `"true"`, true, 0},
		{"null rejected", `null`, true, 0},
		{"array rejected", `[1]`, true, 0},
		{"object rejected", `{"done":true}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v CompletedValue
			err := json.Unmarshal([]byte(tt.input), &v)

			if tt.wantErr {
				var ve *entities.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("err = %v, want a ValidationError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if got := v.Flag(); got != tt.flag {
				t.Errorf("Flag() = %d, want %d", got, tt.flag)
			}
		})
	}
}

func TestCompletedValueRoundTrip(t *testing.T) {
	for _, input := range []string{`true`, `false`, `1`, `0`} {
		var v CompletedValue
		if err := json.Unmarshal([]byte(input), &v); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", input, err)
		}

		out, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(out) != input {
			t.Errorf("round trip of %s produced %s", input, out)
		}
	}
}

func TestUpdateTodoRequestOmitsAbsentFields(t *testing.T) {
	out, err := json.Marshal(UpdateTodoRequest{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// Absent fields must not be sent as null; the server treats null as a
	// wrongly typed value.
	if string(out) != `{}` {
		t.Errorf("empty request marshals to %s, want {}", out)
	}
}
