package textrecord

import (
	"testing"
	"time"
)

func benchmarkEntries(n int) []LogEntry {
	out := make([]LogEntry, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = LogEntry{
			Message:     "I was tired",
			ErrorCode:   i,
			TimeOfEvent: base.Add(time.Duration(i) * time.Second),
		}
	}
	return out
}

func BenchmarkMarshal(b *testing.B) {
	entries := benchmarkEntries(1000)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Marshal(entries); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	lines, err := Marshal(benchmarkEntries(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal[LogEntry](lines); err != nil {
			b.Fatal(err)
		}
	}
}
