package mapreduce

import (
	"hash/fnv"
)

type KeyValue struct {
	Key   string
	Value int
}

type MapFunc func(Row) []KeyValue

// ReduceFunc combines two values of the same key. It must be associative and
// commutative, since partial results are combined in no particular order.
type ReduceFunc func(int, int) int

// KeyValuesByKey defines a collection type that implements sort.Interface.
type KeyValuesByKey []KeyValue

func (kva KeyValuesByKey) Len() int {
	return len(kva)
}

func (kva KeyValuesByKey) Swap(i, j int) {
	kva[i], kva[j] = kva[j], kva[i]
}

func (kva KeyValuesByKey) Less(i, j int) bool {
	return kva[i].Key < kva[j].Key
}

// RunWorker asks the master for tasks until the job is finished.
func RunWorker(m *Master, workerId int, mapFunc MapFunc, reduceFunc ReduceFunc) {
	for {
		task := m.AssignTask(workerId)
		switch task.Type {
		case Map:
			m.FinishMap(workerId, task.Id, doMap(mapFunc, reduceFunc, task.Rows, task.NReduce))
		case Reduce:
			m.FinishReduce(workerId, task.Id, doReduce(reduceFunc, task.Parts))
		default:
			return
		}
	}
}

// generate hash code of a key.
func hash(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() & 0x7fffffff)
}

// doMap applies mapFunc to every row of a partition and buckets the combined
// output by key, one table per reduce task.
func doMap(mapFunc MapFunc, reduceFunc ReduceFunc, rows []Row, nReduce int) []Table {
	buckets := make([]Table, nReduce)
	for i := range buckets {
		buckets[i] = Table{}
	}
	for _, row := range rows {
		for _, kv := range mapFunc(row) {
			buckets[hash(kv.Key)%nReduce].Add(kv, reduceFunc)
		}
	}
	return buckets
}

func doReduce(reduceFunc ReduceFunc, parts []Table) Table {
	out := Table{}
	for _, part := range parts {
		out.Merge(part, reduceFunc)
	}
	return out
}
