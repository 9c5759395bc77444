//go:build ignore

// Convert VLSP-style word-segmented files into the bench corpus
// layout: one sentence per line, word-internal spaces replaced by
// underscores.
// Usage: go run ./scripts/process-vlsp.go -in raw/ -out testdata/corpus/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	inDir := flag.String("in", "", "Directory of raw VLSP files")
	outDir := flag.String("out", "testdata/corpus", "Output corpus directory")
	flag.Parse()

	if *inDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: process-vlsp.go -in DIR [-out DIR]")
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := processFile(filepath.Join(*inDir, entry.Name()), *outDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", entry.Name(), err)
			os.Exit(1)
		}
	}
}

// processFile reads one raw file where each line holds one sentence
// with words already underscore-joined, strips markup and blank
// lines, and writes a cleaned .txt file.
func processFile(path, outDir string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out, err := os.Create(filepath.Join(outDir, base+".txt"))
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "<") {
			continue
		}
		fmt.Fprintln(w, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return w.Flush()
}
