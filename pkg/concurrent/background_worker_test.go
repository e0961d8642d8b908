package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackgroundWorker(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		jobs    int
	}{
		{"single worker", 1, 10},
		{"more workers than jobs", 8, 3},
		{"many jobs", 4, 500},
		{"zero workers falls back to one", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bw := NewBackgroundWorker(tt.workers, 2, func(n int) int {
				return n * n
			})
			bw.Start()

			go func() {
				for i := 0; i < tt.jobs; i++ {
					bw.TriggerProcessing(i)
				}
				bw.Close()
			}()

			var got []int
			for res := range bw.Results() {
				got = append(got, res)
			}
			sort.Ints(got)

			expected := make([]int, tt.jobs)
			for i := range expected {
				expected[i] = i * i
			}
			assert.Equal(t, expected, got)
		})
	}
}
