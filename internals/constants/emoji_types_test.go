package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmojiTypeTable(t *testing.T) {
	assert.Len(t, EmojiTypeMap, 10)
	assert.Len(t, EmojiTypeIDs, 10)

	// urutan baku 1..10 tanpa lubang
	for i, id := range EmojiTypeIDs {
		assert.Equal(t, i+1, id)
		_, ok := EmojiTypeMap[id]
		assert.True(t, ok, "id %d harus punya label", id)
	}
}

func TestIsKnownEmojiType(t *testing.T) {
	assert.False(t, IsKnownEmojiType(0))
	assert.True(t, IsKnownEmojiType(1))
	assert.True(t, IsKnownEmojiType(10))
	assert.False(t, IsKnownEmojiType(11))
	assert.False(t, IsKnownEmojiType(-3))
}

func TestEmojiTypeLabel(t *testing.T) {
	assert.Equal(t, "thinking", EmojiTypeLabel(1))
	assert.Equal(t, "angry", EmojiTypeLabel(10))

	// di luar tabel → fallback, bukan panic / string kosong
	assert.Equal(t, "unknown (99)", EmojiTypeLabel(99))
}
