package main

import (
	"fmt"
	"os"

	"github.com/atomlang/atomscript/pkg/repl"
)

func main() {
	fmt.Println("Welcome to AtomScript!")
	fmt.Println("Feel free to type in commands...")

	if err := repl.Start(os.Stdin, os.Stdout); err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}
}
