package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdMainUsage(t *testing.T) {
	tests := []struct {
		args   []string
		status int
	}{
		{args: []string{"-h"}, status: 0},
		{args: []string{"-bogus"}, status: 2},
		{args: []string{"a", "b"}, status: 2},
	}
	for _, test := range tests {
		assert.Equal(t, test.status, edMain(test.args), test.args)
	}
}
