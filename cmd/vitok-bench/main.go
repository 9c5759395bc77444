package main

import (
	"flag"
	"fmt"
	"os"

	vitok "github.com/jamesainslie/go-vitok"
	"github.com/jamesainslie/go-vitok/internal/bench"
)

func main() {
	modelPath := flag.String("model", vitok.DefaultModelPath, "Path to model directory")
	corpusDir := flag.String("corpus", "", "Directory of gold corpus .txt files")
	verbose := flag.Bool("v", false, "Print per-sample results")

	flag.Parse()

	if *corpusDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: vitok-bench -corpus DIR [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	samples, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "Corpus is empty")
		os.Exit(1)
	}

	seg, err := vitok.New(vitok.WithModelPath(*modelPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating segmenter: %v\n", err)
		os.Exit(1)
	}

	var total bench.Metrics
	for i, sample := range samples {
		words, err := seg.WordTokenize(sample.Raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error segmenting sample %d: %v\n", i, err)
			os.Exit(1)
		}
		m := bench.Evaluate(words, sample.Words)
		total.Accumulate(m)
		if *verbose {
			fmt.Printf("sample %4d: P=%.3f R=%.3f F1=%.3f\n", i, m.Precision, m.Recall, m.F1)
		}
	}

	fmt.Printf("samples:   %d\n", len(samples))
	fmt.Printf("precision: %.4f\n", total.Precision)
	fmt.Printf("recall:    %.4f\n", total.Recall)
	fmt.Printf("f1:        %.4f\n", total.F1)
}
