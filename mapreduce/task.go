package mapreduce

type TaskType int

const (
	Map TaskType = iota
	Reduce
	Exit
)

type Task struct {
	Id      int
	Type    TaskType
	NReduce int
	Rows    []Row   // input partition of a map task
	Parts   []Table // one bucket from every map task, for a reduce task
}
