package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atomlang/atomscript/pkg/repl"
)

func TestStart(t *testing.T) {
	in := strings.NewReader("atom five = 5;\n10 == 10;\n")
	var out bytes.Buffer

	if err := repl.Start(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `Atom
Ident("five")
Assign
Int(5)
Semicolon
EOF
Int(10)
Eq
Int(10)
Semicolon
EOF
`
	if out.String() != expected {
		t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", expected, out.String())
	}
}

func TestStartEmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := repl.Start(strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
