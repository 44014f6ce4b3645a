package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "a***@corp.local", MaskEmail("a@corp.local"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}
