package wordcount

import (
	"fmt"
	"log"
	"os"
	"word-count/mapreduce"
)

// Run counts the words of the file at cfg.SourcePath() and returns the
// (word, count) pairs sorted by word. An unreadable source is an error;
// malformed lines are skipped.
func Run(cfg Config) ([]mapreduce.KeyValue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path := cfg.SourcePath()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open source: %w", err)
	}
	defer file.Close()
	src := mapreduce.NewCSVSource(file, mapreduce.CSVOptions{Delimiter: cfg.delimiter()})

	var counts mapreduce.Table
	if cfg.Workers <= 1 {
		counts, err = CountSource(src)
		if err != nil {
			return nil, fmt.Errorf("cannot count %v: %w", path, err)
		}
	} else {
		rows, err := mapreduce.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("cannot count %v: %w", path, err)
		}
		counts = CountParallel(rows, mapreduce.Options{Workers: cfg.Workers, Reduces: cfg.Reduces})
	}
	if n := src.Skipped(); n > 0 {
		log.Printf("skipped %v malformed lines in %v", n, path)
	}
	log.Printf("counted %v words, %v distinct, in %v", counts.Total(), len(counts), path)
	return counts.Collect(), nil
}
