package main

import (
	"fmt"
	"log"
	"os"

	"github.com/krotik/gqlast"
)

func main() {
	debug := false
	var limit int
	var filePath string

	args := os.Args[1:]
	for len(args) > 0 {
		switch args[0] {
		case "--debug":
			debug = true
			args = args[1:]
		case "--limit":
			if len(args) < 2 {
				fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [--limit N] <file.graphql>\n", os.Args[0])
				os.Exit(1)
			}
			if _, err := fmt.Sscanf(args[1], "%d", &limit); err != nil {
				log.Fatalf("invalid --limit value %q: %v", args[1], err)
			}
			args = args[2:]
		default:
			filePath = args[0]
			args = args[1:]
		}
	}

	if filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [--limit N] <file.graphql>\n", os.Args[0])
		os.Exit(1)
	}

	source, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatal(err)
	}

	alloc := gqlast.NewAllocator()
	parser := gqlast.NewParser(alloc, source)
	if limit > 0 {
		parser.WithLimit(limit)
	}
	if debug {
		parser.WithTracer(&gqlast.Tracer{Out: os.Stderr})
	}

	doc, err := parser.Parse()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("parsed %d definitions\n", len(doc.Definitions))
	for _, def := range doc.Definitions {
		fmt.Printf("  %T\n", def)
	}
}
