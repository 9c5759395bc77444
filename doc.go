// Package vitok segments Vietnamese text into multi-syllable word
// tokens and normalizes non-standard character and token forms.
//
// # Quick Start
//
//	seg, err := vitok.New(vitok.WithModelPath("models/ws_crf_vlsp2013"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	words, err := seg.WordTokenize("Chàng trai 9X Quảng Trị khởi nghiệp từ nấm sò")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(words)
//
// # Model Fallback
//
// A missing or corrupt trained model is never an error: the segmenter
// logs the condition and falls back to a deterministic rule where
// every base token is its own word. Only invalid input encoding and
// corrupt normalization tables surface as errors.
//
// # Thread Safety
//
// A Segmenter is immutable after construction and safe for concurrent
// use. The trained model and the normalization tables are loaded once
// and shared read-only across all calls.
package vitok
