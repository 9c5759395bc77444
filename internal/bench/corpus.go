// Package bench provides evaluation utilities for word segmentation.
package bench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sample is one gold-segmented sentence. Words holds the reference
// segmentation; Raw is the sentence with word-internal underscores
// replaced by spaces, ready to feed the segmenter.
type Sample struct {
	Raw   string
	Words []string
}

// ParseLine parses one corpus line: words separated by spaces, tokens
// inside a word joined with underscores.
func ParseLine(line string) Sample {
	fields := strings.Fields(line)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, strings.ReplaceAll(f, "_", " "))
	}
	return Sample{
		Raw:   strings.Join(words, " "),
		Words: words,
	}
}

// LoadFile loads all non-empty, non-comment lines of a corpus file.
func LoadFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	var samples []Sample
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		samples = append(samples, ParseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return samples, nil
}

// LoadCorpus loads all .txt files from a directory.
func LoadCorpus(dir string) ([]Sample, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var samples []Sample
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		fileSamples, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		samples = append(samples, fileSamples...)
	}
	return samples, nil
}
