package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineRendersEvenWhenEmpty(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	m, err := AggregateTimeline(nil, now)
	require.NoError(t, err)

	r := NewRenderer()
	png, err := r.Timeline(m, RenderModeInline)
	require.NoError(t, err)
	assert.NotEmpty(t, png, "timeline kosong tetap digambar (placeholder)")
}

func TestTimelineRendersWithData(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	events := []Event{
		ev("a", 2, now.Add(-2*time.Hour)),
		ev("b", 10, now.Add(-5*time.Hour)),
	}
	m, err := AggregateTimeline(events, now)
	require.NoError(t, err)

	r := NewRenderer()

	inline, err := r.Timeline(m, RenderModeInline)
	require.NoError(t, err)
	export, err := r.Timeline(m, RenderModeExport)
	require.NoError(t, err)

	// export resolusi penuh → file lebih besar dari inline
	assert.Greater(t, len(export), len(inline))
}

func TestBarAndPieNilOnEmpty(t *testing.T) {
	s, err := SummarizeRange(nil, rangeWindow())
	require.NoError(t, err)

	r := NewRenderer()

	png, err := r.Bar(s, RenderModeInline)
	assert.NoError(t, err)
	assert.Nil(t, png, "bar tanpa data tidak digambar")

	png, err = r.Pie(s, RenderModeInline)
	assert.NoError(t, err)
	assert.Nil(t, png, "pie tanpa data tidak digambar")
}

func TestBarAndPieRenderWithData(t *testing.T) {
	w := rangeWindow()
	events := []Event{
		ev("a", 1, w.Start.Add(time.Hour)),
		ev("b", 1, w.Start.Add(2*time.Hour)),
		ev("c", 6, w.Start.Add(3*time.Hour)),
	}
	s, err := SummarizeRange(events, w)
	require.NoError(t, err)

	r := NewRenderer()

	bar, err := r.Bar(s, RenderModeExport)
	require.NoError(t, err)
	assert.NotEmpty(t, bar)

	pie, err := r.Pie(s, RenderModeExport)
	require.NoError(t, err)
	assert.NotEmpty(t, pie)
}

func TestCategoryColorStable(t *testing.T) {
	for id := 1; id <= 10; id++ {
		c1 := CategoryColor(id)
		c2 := CategoryColor(id)
		assert.Equal(t, c1, c2, "warna kategori %d harus stabil", id)
	}

	// kategori berbeda → warna berbeda
	seen := map[string]bool{}
	for id := 1; id <= 10; id++ {
		c := CategoryColor(id)
		key := c.String()
		assert.False(t, seen[key], "warna kategori %d duplikat", id)
		seen[key] = true
	}

	// di luar tabel → fallback abu-abu, bukan panic
	fallback := CategoryColor(99)
	assert.Equal(t, CategoryColor(-1), fallback)
}

func TestInlineImageDataURI(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	m, err := AggregateTimeline([]Event{ev("a", 3, now.Add(-time.Hour))}, now)
	require.NoError(t, err)

	png, err := NewRenderer().Timeline(m, RenderModeInline)
	require.NoError(t, err)

	uri, err := InlineImageDataURI(png)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/webp;base64,"))
	assert.Greater(t, len(uri), len("data:image/webp;base64,"))
}

func TestInlineImageDataURIRejectsGarbage(t *testing.T) {
	_, err := InlineImageDataURI([]byte("bukan png"))
	assert.Error(t, err)
}
