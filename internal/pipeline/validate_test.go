package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/mailscout/internal/model"
	"github.com/sells-group/mailscout/internal/verify"
)

// countingVerifier records the peak number of concurrent Verify calls.
type countingVerifier struct {
	mu     sync.Mutex
	active int32
	peak   int32
	inner  verify.Verifier
}

func (c *countingVerifier) Verify(ctx context.Context, address string) model.ValidationOutcome {
	n := atomic.AddInt32(&c.active, 1)
	c.mu.Lock()
	if n > c.peak {
		c.peak = n
	}
	c.mu.Unlock()
	defer atomic.AddInt32(&c.active, -1)
	return c.inner.Verify(ctx, address)
}

func testPipeline(chunkSize int) *Pipeline {
	return &Pipeline{chunkSize: chunkSize}
}

func TestValidateCandidatesKeepsOnlyValid(t *testing.T) {
	v := stubVerifier{statuses: map[string]model.Status{
		"bad@x.com":  model.StatusInvalid,
		"temp@x.com": model.StatusDisposable,
		"any@x.com":  model.StatusCatchall,
	}}

	valid, stats := testPipeline(10).validateCandidates(context.Background(), v,
		[]string{"a@x.com", "bad@x.com", "temp@x.com", "any@x.com", "b@x.com"})

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, valid)
	assert.Equal(t, 5, stats.Checked)
	assert.Equal(t, 2, stats.Valid)
	assert.Equal(t, 2, stats.Rejected)
	assert.Equal(t, 1, stats.Inconclusive)
}

func TestValidateCandidatesPreservesInputOrder(t *testing.T) {
	var candidates []string
	for i := 0; i < 25; i++ {
		candidates = append(candidates, fmt.Sprintf("user%02d@x.com", i))
	}

	valid, _ := testPipeline(10).validateCandidates(context.Background(), stubVerifier{}, candidates)
	assert.Equal(t, candidates, valid)
}

func TestValidateCandidatesBoundsConcurrency(t *testing.T) {
	v := &countingVerifier{inner: stubVerifier{}}
	var candidates []string
	for i := 0; i < 35; i++ {
		candidates = append(candidates, fmt.Sprintf("user%02d@x.com", i))
	}

	_, stats := testPipeline(10).validateCandidates(context.Background(), v, candidates)
	assert.Equal(t, 35, stats.Checked)
	assert.LessOrEqual(t, v.peak, int32(10))
}

func TestValidateCandidatesTalliesErrorStatuses(t *testing.T) {
	v := stubVerifier{statuses: map[string]model.Status{
		"a@x.com": model.StatusErrorConfig,
		"b@x.com": model.StatusErrorService,
		"c@x.com": model.StatusErrorInvocation,
		"d@x.com": model.StatusUnknown,
	}}

	valid, stats := testPipeline(10).validateCandidates(context.Background(), v,
		[]string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"})

	assert.Empty(t, valid)
	assert.Equal(t, 1, stats.ConfigErrors)
	assert.Equal(t, 1, stats.ServiceErrors)
	assert.Equal(t, 1, stats.InvocationErrors)
	assert.Equal(t, 1, stats.Inconclusive)
}

func TestValidateCandidatesSurvivesPanickingVerifier(t *testing.T) {
	valid, stats := testPipeline(10).validateCandidates(context.Background(), panicVerifier{},
		[]string{"a@x.com", "b@x.com"})

	assert.Empty(t, valid)
	assert.Equal(t, 2, stats.InvocationErrors)
}

func TestValidateCandidatesZeroChunkSizeDefaults(t *testing.T) {
	valid, stats := testPipeline(0).validateCandidates(context.Background(), stubVerifier{},
		[]string{"a@x.com"})

	assert.Equal(t, []string{"a@x.com"}, valid)
	assert.Equal(t, 1, stats.Valid)
}
