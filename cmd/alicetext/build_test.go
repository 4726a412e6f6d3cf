package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSkeletonRoundTripsThroughRenderAll(t *testing.T) {
	text := "2024-01-15T10:30:45Z INFO 192.168.1.1 hello\nplain line"
	streams, cols := buildSkeleton(text)
	assert.Equal(t, text, renderAll(streams, cols))
}

func TestBuildSkeletonEmptyInput(t *testing.T) {
	streams, cols := buildSkeleton("")
	assert.Empty(t, streams)
	assert.Equal(t, 0, cols.Records)
}

func TestSniffVersion(t *testing.T) {
	data := make([]byte, 12)
	copy(data, "ALICETXT")
	data[8] = 3
	v, err := sniffVersion(data)
	assert.NoError(t, err)
	assert.Equal(t, uint16(3), v)
}

func TestSniffVersionTruncated(t *testing.T) {
	_, err := sniffVersion([]byte("short"))
	assert.Error(t, err)
}
