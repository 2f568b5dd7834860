package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_CaseInsensitive(t *testing.T) {
	matches := Search(sampleTxns(), "starbucks")
	require.Len(t, matches, 1)
	assert.Equal(t, "STARBUCKS STORE", matches[0].Description)
}

func TestSearch_PreservesOrder(t *testing.T) {
	matches := Search(sampleTxns(), "o")
	require.NotEmpty(t, matches)
	assert.Equal(t, "AMAZON MKTPLACE", matches[0].Description)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(sampleTxns(), "zzz"))
}
