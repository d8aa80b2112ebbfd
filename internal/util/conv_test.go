package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
}

func TestParseID_RejectsNonNumeric(t *testing.T) {
	for _, input := range []string{"", "abc", "12abc", "-1", "1.5"} {
		_, err := ParseID(input)
		assert.Error(t, err, "input %q", input)
	}
}
