package mapreduce

import (
	"io"
	"runtime"
	"sync"
)

// Options sizes a parallel run. Zero values default to runtime.NumCPU().
type Options struct {
	Workers int
	Maps    int // upper bound on map tasks; fewer when there are fewer rows
	Reduces int
}

func (opts Options) withDefaults() Options {
	n := runtime.NumCPU()
	if opts.Workers <= 0 {
		opts.Workers = n
	}
	if opts.Maps <= 0 {
		opts.Maps = opts.Workers
	}
	if opts.Reduces <= 0 {
		opts.Reduces = opts.Workers
	}
	return opts
}

// Sequential folds every row of src into a table in a single pass.
func Sequential(src RowSource, mapFunc MapFunc, reduceFunc ReduceFunc) (Table, error) {
	table := Table{}
	for {
		row, err := src.Next()
		if err == io.EOF {
			return table, nil
		}
		if err != nil {
			return nil, err
		}
		for _, kv := range mapFunc(row) {
			table.Add(kv, reduceFunc)
		}
	}
}

// Partition splits rows into at most n contiguous, non-empty chunks of
// near-equal size.
func Partition(rows []Row, n int) [][]Row {
	if n <= 0 {
		n = 1
	}
	if n > len(rows) {
		n = len(rows)
	}
	partitions := make([][]Row, 0, n)
	for i := 0; i < n; i++ {
		lo, hi := i*len(rows)/n, (i+1)*len(rows)/n
		partitions = append(partitions, rows[lo:hi])
	}
	return partitions
}

// Run computes the same table as Sequential with a master and a pool of
// workers on goroutines.
func Run(rows []Row, mapFunc MapFunc, reduceFunc ReduceFunc, opts Options) Table {
	opts = opts.withDefaults()
	m := NewMaster(Partition(rows, opts.Maps), opts.Reduces)
	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func(workerId int) {
			defer wg.Done()
			RunWorker(m, workerId, mapFunc, reduceFunc)
		}(i)
	}
	wg.Wait()
	return m.Result(reduceFunc)
}
