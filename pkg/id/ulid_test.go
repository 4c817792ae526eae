package id_test

import (
	"regexp"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/pkg/id"
)

var ulidPattern = regexp.MustCompile(`^[0-7][0-9A-HJKMNP-TV-Z]{25}$`)

func TestNewULID(t *testing.T) {
	t.Parallel()

	t.Run("format", func(t *testing.T) {
		t.Parallel()
		for range 100 {
			v := id.NewULID()
			require.Regexp(t, ulidPattern, v)
		}
	})

	t.Run("ordered by creation time", func(t *testing.T) {
		t.Parallel()

		ids := make([]string, 0, 5)
		for range 5 {
			ids = append(ids, id.NewULID())
			time.Sleep(2 * time.Millisecond)
		}
		assert.True(t, slices.IsSorted(ids), "ids out of order: %v", ids)
	})

	t.Run("unique across concurrent requests", func(t *testing.T) {
		t.Parallel()

		const workers, perWorker = 32, 200
		var (
			mu   sync.Mutex
			seen = make(map[string]struct{}, workers*perWorker)
			wg   sync.WaitGroup
		)
		for range workers {
			wg.Go(func() {
				local := make([]string, 0, perWorker)
				for range perWorker {
					local = append(local, id.NewULID())
				}
				mu.Lock()
				defer mu.Unlock()
				for _, v := range local {
					seen[v] = struct{}{}
				}
			})
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
	})
}
