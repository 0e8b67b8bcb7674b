package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesize/core/parse"
	"bytesize/core/standard"
)

func TestRateFallbackReachesRateParser(t *testing.T) {
	// a lone rate literal fails the size pass as a malformed literal
	// (its "s" denominator has no digits), not as a dimension mismatch;
	// a rate expression fails it as a dimension mismatch. Both must
	// reach the rate parser, where they succeed.
	for _, input := range []string{"1 MB/s", "100 MB/s", "2 GiB/5s + 50 Mbps"} {
		t.Run(input, func(t *testing.T) {
			sizeOutcome := parse.TryParseSize(input, standard.SI, false)
			require.False(t, sizeOutcome.Success)
			assert.True(t, retryAsRate(sizeOutcome.Err))

			rateOutcome := parse.TryParseRate(input, standard.SI)
			assert.True(t, rateOutcome.Success)
		})
	}
}

func TestRateFallbackSkippedForRealFailures(t *testing.T) {
	// an unknown unit would fail identically on the rate side; report
	// the size error directly
	outcome := parse.TryParseSize("1 GB + 2 XYZ", standard.SI, false)
	require.False(t, outcome.Success)
	assert.False(t, retryAsRate(outcome.Err))
}
