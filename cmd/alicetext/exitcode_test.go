package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOfNil(t *testing.T) {
	assert.Equal(t, exitOK, exitCodeOf(nil))
}

func TestExitCodeOfCoded(t *testing.T) {
	err := withCode(exitCorrupt, errors.New("bad directory"))
	assert.Equal(t, exitCorrupt, exitCodeOf(err))
}

func TestExitCodeOfUncoded(t *testing.T) {
	assert.Equal(t, exitUsage, exitCodeOf(errors.New("plain")))
}

func TestWithCodeNilPassesThrough(t *testing.T) {
	assert.NoError(t, withCode(exitIO, nil))
}
