package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := slices.All([]string{"a", "b"})
	second := slices.All([]string{"c"})

	keys := []int{}
	values := []string{}
	for key, value := range IterSeq2Concat(first, second) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)
}

func TestIterSeq2ConcatStop(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]uint8{"ONE": 1}
	count := 0
	for range IterSeq2Concat(maps.All(defines), maps.All(defines), maps.All(defines)) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)

	merged := maps.Collect(IterSeq2Concat(maps.All(defines), maps.All(map[string]uint8{"ONE": 2})))
	assert.Equal(map[string]uint8{"ONE": 2}, merged)
}
