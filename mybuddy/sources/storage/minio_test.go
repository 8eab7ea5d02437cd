package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	at := time.Date(2026, 3, 7, 23, 30, 0, 0, time.UTC)

	key := ObjectKey(at, "image/png")
	assert.True(t, strings.HasPrefix(key, "ocr/2026/03/07/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	assert.NotEqual(t, key, ObjectKey(at, "image/png"))
	assert.True(t, strings.HasSuffix(ObjectKey(at, "image/webp"), ".webp"))
}
