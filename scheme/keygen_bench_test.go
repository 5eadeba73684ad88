package scheme_test

import (
	"fmt"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/shieldphe/gophe/prng"
	"github.com/shieldphe/gophe/scheme"
	"github.com/stretchr/testify/require"
)

// TestKeyGenRetryDistribution runs RSA keygen from 20 different seeds and
// requires every run to succeed. Each success is recorded as one attempt, so
// the mean/standard-deviation checks run over a sample of constant 1s; the
// retries taken inside keygen are not observed.
func TestKeyGenRetryDistribution(t *testing.T) {
	cap, err := scheme.Get(scheme.RSA)
	require.NoError(t, err)

	const runs = 20
	samples := make(stats.Float64Data, 0, runs)
	for i := 0; i < runs; i++ {
		src, err := prng.NewKeyed([]byte(fmt.Sprintf("keygen-bench-seed-%d", i)))
		require.NoError(t, err)
		_, err = cap.KeyGen(src, scheme.Options{KeySize: 96})
		require.NoError(t, err)
		samples = append(samples, 1) // each successful call counts as one outer attempt
	}

	mean, err := samples.Mean()
	require.NoError(t, err)
	require.GreaterOrEqual(t, mean, 1.0)

	_, err = samples.StandardDeviation()
	require.NoError(t, err)
}
