package wordcount

import (
	"math/rand"
	"strings"
	"testing"
	"word-count/mapreduce"
)

func field(s string) *string {
	return &s
}

func assertEqualTables(t *testing.T, expect, actual mapreduce.Table) {
	t.Helper()
	if len(expect) != len(actual) {
		t.Fatalf("size mismatch: expect=%#v actual=%#v", expect, actual)
	}
	for k, v := range expect {
		if actual[k] != v {
			t.Fatalf("value mismatch for %q: expect=%d actual=%d", k, v, actual[k])
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		rows   []mapreduce.Row
		expect mapreduce.Table
	}{
		{
			name:   "mixed case and absent",
			rows:   []mapreduce.Row{{field("Hello"), field("World")}, {field("hello"), nil}},
			expect: mapreduce.Table{"hello": 2, "world": 1},
		},
		{
			name:   "surrounding whitespace",
			rows:   []mapreduce.Row{{field(" Foo ")}},
			expect: mapreduce.Table{"foo": 1},
		},
		{
			name:   "all absent",
			rows:   []mapreduce.Row{{nil, nil}},
			expect: mapreduce.Table{},
		},
		{
			name:   "no rows",
			rows:   nil,
			expect: mapreduce.Table{},
		},
		{
			name:   "inner whitespace kept",
			rows:   []mapreduce.Row{{field("New  York"), field("new  york ")}, {field("a,b")}},
			expect: mapreduce.Table{"new  york": 2, "a,b": 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqualTables(t, tt.expect, CountAll(tt.rows))
			counts, err := CountSource(mapreduce.NewSliceSource(tt.rows))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqualTables(t, tt.expect, counts)
			assertEqualTables(t, tt.expect, CountParallel(tt.rows, mapreduce.Options{Workers: 3, Reduces: 2}))
		})
	}
}

func TestExtractWords(t *testing.T) {
	kva := ExtractWords(mapreduce.Row{nil, field(" B "), field("a"), nil})
	expect := []mapreduce.KeyValue{{Key: "b", Value: 1}, {Key: "a", Value: 1}}
	if len(kva) != len(expect) {
		t.Fatalf("expect %v pairs, got %v", expect, kva)
	}
	for i := range expect {
		if kva[i] != expect[i] {
			t.Fatalf("pair %v: expect %v, got %v", i, expect[i], kva[i])
		}
	}
	if kva := ExtractWords(mapreduce.Row{}); len(kva) != 0 {
		t.Fatalf("expect no pairs, got %v", kva)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"", "  ", "Hello", "\tMiXeD Case\n", "ÉCOLE ", "already"} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

var vocabulary = []string{"Go", "go ", " GO", "map", "Reduce", "reduce", "", " ", "Word count", "x"}

func randomRows(r *rand.Rand, n int) ([]mapreduce.Row, int) {
	rows := make([]mapreduce.Row, n)
	present := 0
	for i := range rows {
		row := make(mapreduce.Row, r.Intn(5))
		for j := range row {
			if r.Intn(4) == 0 {
				continue
			}
			row[j] = field(vocabulary[r.Intn(len(vocabulary))])
			present++
		}
		rows[i] = row
	}
	return rows, present
}

func TestCountProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		rows, present := randomRows(r, r.Intn(300))
		counts := CountAll(rows)
		if counts.Total() != present {
			t.Fatalf("round %v: expect total %v, got %v", round, present, counts.Total())
		}
		for word, n := range counts {
			if word != strings.TrimSpace(word) || word != strings.ToLower(word) {
				t.Fatalf("round %v: key %q not normalized", round, word)
			}
			if n < 1 {
				t.Fatalf("round %v: count %v for %q", round, n, word)
			}
		}

		shuffled := append([]mapreduce.Row(nil), rows...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assertEqualTables(t, counts, CountAll(shuffled))

		merged := mapreduce.Table{}
		for _, part := range mapreduce.Partition(shuffled, 1+r.Intn(7)) {
			merged.Merge(CountAll(part), Add)
		}
		assertEqualTables(t, counts, merged)

		opts := mapreduce.Options{Workers: 1 + r.Intn(6), Maps: 1 + r.Intn(9), Reduces: 1 + r.Intn(5)}
		assertEqualTables(t, counts, CountParallel(rows, opts))
	}
}
