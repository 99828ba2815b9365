package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/flitsinc/go-jsonpb/jsonpb"
	"github.com/flitsinc/go-jsonpb/schema"
)

func init() {
	// JSONPB_TRACE=1 in .env (or the environment) turns on trace.yaml for
	// every run, without needing a flag.
	godotenv.Overload()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	method, err := schema.NewMethod(newDemoMessage())
	if err != nil {
		fmt.Printf("Error building schema: %v\n", err)
		os.Exit(1)
	}

	handler := newPrinter()
	p := jsonpb.NewParser(method, handler)
	if os.Getenv("JSONPB_TRACE") != "" {
		rec := p.WithTrace()
		defer func() { rec.Flush() }()
	}

	if _, err := p.Write(data); err != nil {
		fmt.Printf("Parse error: %v\n", err)
		os.Exit(1)
	}
	if err := p.Close(); err != nil {
		fmt.Printf("Parse error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: go run . <file.json>")
	fmt.Println()
	fmt.Println("Parses file.json against a small built-in demo message (see demo.go)")
	fmt.Println("and prints every field event the parser recognizes.")
	fmt.Println()
	fmt.Println("Set JSONPB_TRACE=1 (directly or via .env) to also write trace.yaml.")
}
