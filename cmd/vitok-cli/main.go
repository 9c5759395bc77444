package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	vitok "github.com/jamesainslie/go-vitok"
	"github.com/jamesainslie/go-vitok/normalize"
)

func main() {
	modelPath := flag.String("model", vitok.DefaultModelPath, "Path to model directory")
	mode := flag.String("mode", "segment", "Mode: segment, tokenize or normalize")
	format := flag.String("format", "list", "Segment output: list or text")
	fixed := flag.String("fixed", "", "Comma-separated fixed words forced atomic")

	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "Usage: vitok-cli [OPTIONS] TEXT")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := []vitok.Option{vitok.WithModelPath(*modelPath)}
	if *fixed != "" {
		opts = append(opts, vitok.WithFixedWords(strings.Split(*fixed, ",")))
	}

	seg, err := vitok.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating segmenter: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "segment":
		if *format == "text" {
			out, err := seg.WordTokenizeText(text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
			return
		}
		words, err := seg.WordTokenize(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for i, w := range words {
			fmt.Printf("  %d: %q\n", i+1, w)
		}

	case "tokenize":
		tokens, err := seg.Tokenize(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, t := range tokens {
			fmt.Printf("  %-12s %q\n", t.Kind, t.Text)
		}

	case "normalize":
		out, err := normalize.Text(text, normalize.ModeInternal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}
