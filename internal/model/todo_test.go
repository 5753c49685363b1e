package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsOpen(t *testing.T) {
	td := New("Buy milk")
	assert.Equal(t, "Buy milk", td.Title)
	assert.False(t, td.Completed)
}

func TestLine(t *testing.T) {
	assert.Equal(t, "1. [] Buy milk", New("Buy milk").Line(1))
	assert.Equal(t, "3. [X] Walk dog", Todo{Title: "Walk dog", Completed: true}.Line(3))
}
