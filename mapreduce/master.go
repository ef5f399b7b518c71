package mapreduce

import (
	"github.com/gammazero/deque"
	"sync"
)

type Master struct {
	mu           sync.Mutex
	cond         *sync.Cond
	nMap         int // number of map tasks
	nReduce      int // number of reduce tasks
	tasks        deque.Deque
	assignment   map[int]Task // running task assigned to worker ID
	intermediate [][]Table    // map output, indexed by map task then reduce bucket
	output       []Table      // reduce output, indexed by reduce task
}

// AssignTask hands the next runnable task to a worker. It blocks while the
// only queued tasks are reduce tasks waiting on running map tasks, and
// returns an Exit task once the job is done.
func (m *Master) AssignTask(workerId int) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		if m.done() {
			return Task{Type: Exit}
		}
		if m.tasks.Len() != 0 {
			task := m.tasks.Front().(Task)
			if task.Type == Map || !m.mapRunning() {
				m.tasks.PopFront()
				if task.Type == Reduce {
					task.Parts = m.bucket(task.Id)
				}
				m.assignment[workerId] = task
				return task
			}
		}
		m.cond.Wait()
	}
}

// FinishMap records the bucketed output of a map task.
func (m *Master) FinishMap(workerId int, taskId int, buckets []Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assignment, workerId)
	m.intermediate[taskId] = buckets
	m.cond.Broadcast()
}

// FinishReduce records the output of a reduce task.
func (m *Master) FinishReduce(workerId int, taskId int, table Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assignment, workerId)
	m.output[taskId] = table
	m.cond.Broadcast()
}

// Done returns if the entire job has finished.
func (m *Master) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done()
}

// Result merges the output of every reduce task. Reduce buckets hold
// disjoint keys, so the merge never combines two values.
func (m *Master) Result(reduceFunc ReduceFunc) Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := Table{}
	for _, table := range m.output {
		result.Merge(table, reduceFunc)
	}
	return result
}

func (m *Master) done() bool {
	return m.tasks.Len() == 0 && len(m.assignment) == 0
}

func (m *Master) mapRunning() bool {
	for _, task := range m.assignment {
		if task.Type == Map {
			return true
		}
	}
	return false
}

// bucket collects reduce bucket i from every map task.
func (m *Master) bucket(i int) []Table {
	parts := make([]Table, 0, m.nMap)
	for _, buckets := range m.intermediate {
		if buckets != nil {
			parts = append(parts, buckets[i])
		}
	}
	return parts
}

// NewMaster queues one map task per partition and nReduce reduce tasks,
// at least one.
func NewMaster(partitions [][]Row, nReduce int) *Master {
	if nReduce < 1 {
		nReduce = 1
	}
	m := Master{}
	nMap := len(partitions)
	m.nMap = nMap
	m.nReduce = nReduce
	m.cond = sync.NewCond(&m.mu)
	m.tasks = deque.Deque{}
	m.assignment = make(map[int]Task)
	m.intermediate = make([][]Table, nMap)
	m.output = make([]Table, nReduce)
	for i := 0; i < nMap; i++ {
		m.tasks.PushBack(Task{Id: i, Type: Map, NReduce: nReduce, Rows: partitions[i]})
	}
	for i := 0; i < nReduce; i++ {
		m.tasks.PushBack(Task{Id: i, Type: Reduce, NReduce: nReduce})
	}
	return &m
}
