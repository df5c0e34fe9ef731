package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringIncludesAllFields(t *testing.T) {
	s := String()
	assert.Contains(t, s, Version)
	assert.Contains(t, s, "commit: "+Commit)
	assert.Contains(t, s, "built: "+Date)
}
