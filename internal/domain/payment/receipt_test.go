//go:build unit

package payment_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"rincon-reservas/internal/domain/payment"
	"rincon-reservas/internal/pkg/dataurl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// oversizedPNG is a 1x1 PNG whose header claims w x h.
func oversizedPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := pngBytes(t, 1, 1)
	// signature(8) length(4) "IHDR"(4) width(4) height(4) ... crc after 13 data bytes
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestProcessReceipt(t *testing.T) {
	t.Run("success: large screenshot is downscaled to fit", func(t *testing.T) {
		r, err := payment.ProcessReceipt("captura.png", pngBytes(t, 1600, 900))
		require.NoError(t, err)

		assert.Equal(t, 800, r.Width)
		assert.Equal(t, 450, r.Height)
		assert.Equal(t, "image/png", r.SourceMIME)

		cfg, err := jpeg.DecodeConfig(bytes.NewReader(r.JPEG))
		require.NoError(t, err)
		assert.Equal(t, 800, cfg.Width)
		assert.Equal(t, 450, cfg.Height)
	})

	t.Run("success: small screenshot keeps its size", func(t *testing.T) {
		r, err := payment.ProcessReceipt("small.png", pngBytes(t, 200, 100))
		require.NoError(t, err)
		assert.Equal(t, 200, r.Width)
		assert.Equal(t, 100, r.Height)

		assert.True(t, strings.HasPrefix(r.DataURL(), "data:image/jpeg;base64,"))
		mime, data, err := dataurl.Decode(r.DataURL())
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", mime)
		assert.Equal(t, r.JPEG, data)
	})

	t.Run("error: not an image", func(t *testing.T) {
		_, err := payment.ProcessReceipt("notes.txt", []byte("transferencia realizada"))
		assert.ErrorIs(t, err, payment.ErrNotAnImage)
	})

	t.Run("error: larger than 10 MB", func(t *testing.T) {
		data := append(append([]byte{}, pngSignature...), make([]byte, payment.MaxReceiptBytes)...)
		_, err := payment.ProcessReceipt("huge.png", data)
		assert.ErrorIs(t, err, payment.ErrImageTooLarge)
	})

	t.Run("error: declared dimensions beyond the pixel bound", func(t *testing.T) {
		data := oversizedPNG(t, 50_000, 50_000)
		require.Less(t, len(data), 1024)

		_, err := payment.ProcessReceipt("bomb.png", data)
		assert.ErrorIs(t, err, payment.ErrImageUnreadable)
		assert.Contains(t, err.Error(), "50000x50000")
	})

	t.Run("error: corrupt image", func(t *testing.T) {
		data := append(append([]byte{}, pngSignature...), []byte("garbage")...)
		_, err := payment.ProcessReceipt("broken.png", data)
		assert.ErrorIs(t, err, payment.ErrImageUnreadable)
	})
}

func TestFitWithin(t *testing.T) {
	cases := []struct {
		w, h, wantW, wantH int
	}{
		{w: 800, h: 600, wantW: 800, wantH: 600},
		{w: 1080, h: 2340, wantW: 277, wantH: 600},
		{w: 4000, h: 1000, wantW: 800, wantH: 200},
		{w: 10, h: 5000, wantW: 1, wantH: 600},
	}
	for _, tc := range cases {
		w, h := payment.FitWithin(tc.w, tc.h, payment.MaxReceiptWidth, payment.MaxReceiptHeight)
		assert.Equal(t, tc.wantW, w)
		assert.Equal(t, tc.wantH, h)
	}
}
