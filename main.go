package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dan-bear/playground/playground"
)

// Run:
//
//	go run .
//	go run . -only nth-word
//	go run . -config my-examples.yaml
func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

	configPath := flag.String("config", "", "YAML examples file (default: built-in examples)")
	only := flag.String("only", "", "run a single section: "+strings.Join(playground.Sections(), ", "))
	flag.Parse()

	ex, err := playground.Load(*configPath)
	if err != nil {
		logger.Fatalf("[main] %v", err)
	}

	r := playground.NewRunner(ex, playground.Config{Out: os.Stdout, Logger: logger})
	if err := r.Run(*only); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
