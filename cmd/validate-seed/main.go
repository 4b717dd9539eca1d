package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/bookshelf/seed"
)

/* validate-seed - Standalone CLI tool to validate a seed file
 * Usage: go run cmd/validate-seed/main.go [seed.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	seedFile := "seed.example.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	fmt.Printf("Validating seed file: %s\n", seedFile)
	fmt.Println(strings.Repeat("-", 50))

	list, err := seed.Load(seedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d book(s):\n", len(list))

	for _, b := range list {
		fmt.Printf("\n%d. %s\n", b.ID, b.Title)
		fmt.Printf("   Author:   %s\n", b.Author)
		fmt.Printf("   Category: %s\n", b.Category)
		fmt.Printf("   Status:   %s\n", b.Status)
		if b.ISBN != "" {
			fmt.Printf("   ISBN:     %s\n", b.ISBN)
		}
	}

	fmt.Printf("\n✓ Seed file is valid!\n")
}
