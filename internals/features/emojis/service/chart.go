// internals/features/emojis/service/chart.go
package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"emojiku_backend/internals/constants"
)

/* =======================================================
   CHART RENDERER
   Input SELALU matrix padat hasil Aggregate — renderer tidak
   pernah menerima data sparse atau belum zero-filled.
   ======================================================= */

// RenderMode: export = resolusi penuh (download), inline = kecil (embed).
type RenderMode string

const (
	RenderModeExport RenderMode = "export"
	RenderModeInline RenderMode = "inline"
)

const (
	exportWidth  = 1280
	exportHeight = 720
	inlineWidth  = 720
	inlineHeight = 405
)

// emojiPalette: warna per kategori. Fungsi murni dari id kategori —
// kategori yang sama selalu dapat warna sama di timeline/bar/pie.
var emojiPalette = map[int]drawing.Color{
	1:  {R: 0x42, G: 0x85, B: 0xF4, A: 255}, // thinking
	2:  {R: 0x34, G: 0xA8, B: 0x53, A: 255}, // smile
	3:  {R: 0x8B, G: 0xC3, B: 0x4A, A: 255}, // relaxed
	4:  {R: 0xE9, G: 0x1E, B: 0x63, A: 255}, // smile_with_heart_eyes
	5:  {R: 0x9E, G: 0x9E, B: 0x9E, A: 255}, // neutral
	6:  {R: 0x5C, G: 0x6B, B: 0xC0, A: 255}, // sad
	7:  {R: 0xFF, G: 0x98, B: 0x00, A: 255}, // confused
	8:  {R: 0x79, G: 0x55, B: 0x48, A: 255}, // painful
	9:  {R: 0x60, G: 0x7D, B: 0x8B, A: 255}, // speechless
	10: {R: 0xF4, G: 0x43, B: 0x36, A: 255}, // angry
}

// CategoryColor: warna stabil per kategori; di luar tabel → abu-abu.
func CategoryColor(emojiType int) drawing.Color {
	if c, ok := emojiPalette[emojiType]; ok {
		return c
	}
	return drawing.Color{R: 0xBD, G: 0xBD, B: 0xBD, A: 255}
}

type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

func dimensions(mode RenderMode) (int, int) {
	if mode == RenderModeInline {
		return inlineWidth, inlineHeight
	}
	return exportWidth, exportHeight
}

/* =======================================================
   TIMELINE (multi-series line, bucket per jam)
   ======================================================= */

// Timeline menggambar satu garis per kategori di sepanjang bucket jam.
// Matrix kosong TETAP digambar (placeholder di judul) — beda kontrak
// dengan bar/pie yang mengembalikan nil saat kosong.
func (r *Renderer) Timeline(m *AggregationMatrix, mode RenderMode) ([]byte, error) {
	w, h := dimensions(mode)

	maxY := 0.0
	series := make([]chart.Series, 0, constants.EmojiTypeMax)
	for _, id := range constants.EmojiTypeIDs {
		ys := make([]float64, len(m.Buckets))
		for i, n := range m.Series(id) {
			ys[i] = float64(n)
			if ys[i] > maxY {
				maxY = ys[i]
			}
		}
		series = append(series, chart.TimeSeries{
			Name:    constants.EmojiTypeLabel(id),
			XValues: m.Buckets,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: CategoryColor(id),
				StrokeWidth: 2.0,
			},
		})
	}

	title := "Emoji 24 jam terakhir"
	if m.Total() == 0 {
		title = "Emoji 24 jam terakhir (belum ada data)"
	}

	graph := chart.Chart{
		Title:  title,
		Width:  w,
		Height: h,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04"),
		},
		YAxis: chart.YAxis{
			// Range eksplisit: kalau semua nilai nol, go-chart gagal
			// menghitung domain sendiri.
			Range: &chart.ContinuousRange{Min: 0, Max: maxY + 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render timeline gagal: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================
   BAR & PIE (ringkasan satu bucket)
   ======================================================= */

// Bar menggambar count per kategori, semua 10 bar termasuk yang nol.
// Total 0 → (nil, nil): tidak ada yang digambar, caller wajib cek.
func (r *Renderer) Bar(s *RangeSummary, mode RenderMode) ([]byte, error) {
	if s.Total() == 0 {
		return nil, nil
	}
	w, h := dimensions(mode)

	bars := make([]chart.Value, 0, constants.EmojiTypeMax)
	for _, cc := range s.BarData() {
		c := CategoryColor(cc.Type)
		bars = append(bars, chart.Value{
			Label: cc.Label,
			Value: float64(cc.Count),
			Style: chart.Style{FillColor: c, StrokeColor: c},
		})
	}

	graph := chart.BarChart{
		Title:    "Jumlah emoji per kategori",
		Width:    w,
		Height:   h,
		BarWidth: w / (constants.EmojiTypeMax + 4),
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxBarValue(bars) + 1},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar gagal: %w", err)
	}
	return buf.Bytes(), nil
}

// Pie menggambar persentase kategori non-nol (lihat PieSkipZero).
// Total 0 → (nil, nil), konsisten dengan Bar.
func (r *Renderer) Pie(s *RangeSummary, mode RenderMode) ([]byte, error) {
	slices, err := s.PieData()
	if err == ErrNoData {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	w, h := dimensions(mode)

	values := make([]chart.Value, 0, len(slices))
	for _, sl := range slices {
		c := CategoryColor(sl.Type)
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", sl.Label, sl.Percent),
			Value: float64(sl.Count),
			Style: chart.Style{FillColor: c, StrokeColor: c},
		})
	}

	graph := chart.PieChart{
		Title:  "Proporsi emoji",
		Width:  w,
		Height: h,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie gagal: %w", err)
	}
	return buf.Bytes(), nil
}

func maxBarValue(bars []chart.Value) float64 {
	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

/* =======================================================
   VARIAN INLINE (downscale + webp, untuk embed di response JSON)
   ======================================================= */

// InlineImageDataURI mengecilkan PNG hasil render lalu encode webp lossy,
// dikembalikan sebagai data URI siap dipakai di atribut <img src>.
func InlineImageDataURI(pngBytes []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return "", fmt.Errorf("decode png gagal: %w", err)
	}

	small := imaging.Resize(img, inlineWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, small, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}

	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
