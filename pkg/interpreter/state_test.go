package interpreter_test

import (
	"bytes"
	"errors"
	"guu/pkg/interpreter"
	"strings"
	"testing"

	"github.com/wI2L/jsondiff"
	"github.com/xeipuuv/gojsonschema"
)

const stateSchema = `{
  "type": "object",
  "required": ["variables", "savedStack"],
  "additionalProperties": false,
  "properties": {
    "variables": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "value"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "value": {"type": "integer"}
        }
      }
    },
    "savedStack": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["function", "startLine", "line"],
        "properties": {
          "function": {"type": "string", "minLength": 1},
          "startLine": {"type": "integer", "minimum": 1},
          "line": {"type": "integer", "minimum": 2}
        }
      }
    }
  }
}`

func TestWriteStateMatchesSchema(t *testing.T) {
	it, _, err := run(t, simpleProgram, "i\ni\ni\nsave\ni\ni\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := it.WriteState(&buf); err != nil {
		t.Fatalf("write state: %v", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(stateSchema), gojsonschema.NewBytesLoader(buf.Bytes()))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid() {
		for _, e := range result.Errors() {
			t.Errorf("schema violation: %s", e)
		}
	}
}

func TestEmptyStateMatchesSchema(t *testing.T) {
	it, _, err := run(t, "sub main\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := it.WriteState(&buf); err != nil {
		t.Fatalf("write state: %v", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(stateSchema), gojsonschema.NewBytesLoader(buf.Bytes()))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid() {
		t.Errorf("empty state rejected: %v", result.Errors())
	}
	if !strings.Contains(buf.String(), `"savedStack": []`) {
		t.Errorf("expected an empty savedStack array, got %s", buf.String())
	}
}

func TestContinuingLeavesSnapshotUntouched(t *testing.T) {
	source := simpleProgram + "    call bar\n\nsub bar\n    set b 1\n"

	// stop right after the save
	stopped, _, err := run(t, source, "i\ni\ni\nsave\n")
	if !errors.Is(err, interpreter.ErrUnexpectedEndOfCommands) {
		t.Fatalf("expected end of commands, got %v", err)
	}

	// same session, continued to completion with more pushes and pops
	finished, _, err := run(t, source, "i\ni\ni\nsave\ni\ni\ni\ni\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch, err := jsondiff.Compare(stopped.State(), finished.State())
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(patch) == 0 {
		t.Fatal("expected variables to differ")
	}

	for _, op := range patch {
		if strings.HasPrefix(op.Path, "/savedStack") {
			t.Errorf("snapshot changed after save: %s %s", op.Type, op.Path)
		}
	}
}
