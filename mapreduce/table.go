package mapreduce

import "sort"

// Table maps a key to its reduced value.
type Table map[string]int

// Add folds kv into the table with reduceFunc.
func (t Table) Add(kv KeyValue, reduceFunc ReduceFunc) {
	if v, ok := t[kv.Key]; ok {
		t[kv.Key] = reduceFunc(v, kv.Value)
	} else {
		t[kv.Key] = kv.Value
	}
}

func (t Table) Merge(other Table, reduceFunc ReduceFunc) {
	for key, value := range other {
		t.Add(KeyValue{Key: key, Value: value}, reduceFunc)
	}
}

// Total returns the sum of all values.
func (t Table) Total() int {
	total := 0
	for _, value := range t {
		total += value
	}
	return total
}

// Collect materializes the table as key-value pairs sorted by key.
func (t Table) Collect() []KeyValue {
	kva := make([]KeyValue, 0, len(t))
	for key, value := range t {
		kva = append(kva, KeyValue{Key: key, Value: value})
	}
	sort.Sort(KeyValuesByKey(kva))
	return kva
}
