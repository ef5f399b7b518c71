// Package wordcount counts normalized words in a delimited text file. Each
// non-absent field is one word; fields are not split any further.
package wordcount

import (
	"strings"
	"word-count/mapreduce"
)

// Normalize trims surrounding whitespace and lower-cases a field.
func Normalize(field string) string {
	return strings.ToLower(strings.TrimSpace(field))
}

// ExtractWords emits (word, 1) for every non-absent field of row, in field order.
func ExtractWords(row mapreduce.Row) []mapreduce.KeyValue {
	kva := make([]mapreduce.KeyValue, 0, len(row))
	for _, field := range row {
		if field == nil {
			continue
		}
		kva = append(kva, mapreduce.KeyValue{Key: Normalize(*field), Value: 1})
	}
	return kva
}

// Add is the reduce function: counts combine by summation.
func Add(a, b int) int {
	return a + b
}

// CountAll counts the words of every row.
func CountAll(rows []mapreduce.Row) mapreduce.Table {
	counts := mapreduce.Table{}
	for _, row := range rows {
		for _, kv := range ExtractWords(row) {
			counts.Add(kv, Add)
		}
	}
	return counts
}

// CountSource counts the words of a row stream, reading it to the end.
func CountSource(src mapreduce.RowSource) (mapreduce.Table, error) {
	return mapreduce.Sequential(src, ExtractWords, Add)
}

// CountParallel gives the same result as CountAll using a pool of workers.
func CountParallel(rows []mapreduce.Row, opts mapreduce.Options) mapreduce.Table {
	return mapreduce.Run(rows, ExtractWords, Add, opts)
}
