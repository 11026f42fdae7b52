// Package repl drives the scanner over line-oriented input, printing every
// token it produces. It holds no lexing logic of its own.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/atomlang/atomscript/pkg/lexer"
)

// Start reads lines from in until EOF or a read error, tokenizing each line
// with a fresh scanner and printing one token per line to out, the EOF
// token included.
func Start(in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	for lines.Scan() {
		s := lexer.NewScanner(lines.Bytes())
		for {
			tok := s.Next()
			fmt.Fprintln(out, tok)
			if tok.Kind == lexer.KindEOF {
				break
			}
		}
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
