package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBenchmarkName(t *testing.T) {
	name, ok := parseBenchmarkName("BenchmarkPut_intKeyType_initialCapacity65536_keyAmount512-8")
	require.True(t, ok)
	assert.Equal(t, benchmarkName{
		Action:          "Put",
		KeyType:         "int",
		InitialCapacity: "65536",
		KeyAmount:       512,
	}, *name)

	name, ok = parseBenchmarkName("BenchmarkRemove_stringKeyType_initialCapacity0_keyAmount16")
	require.True(t, ok)
	assert.Equal(t, "Remove", name.Action)
	assert.Equal(t, "string", name.KeyType)

	_, ok = parseBenchmarkName("BenchmarkHashCode_intKeyType-8")
	assert.False(t, ok)
}

func TestAverageF64(t *testing.T) {
	assert.Equal(t, 2.0, averageF64(1, 2, 3))
}
