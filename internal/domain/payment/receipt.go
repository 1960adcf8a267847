package payment

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"rincon-reservas/internal/pkg/dataurl"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxReceiptBytes  = 10 << 20
	MaxReceiptPixels = 40_000_000
	MaxReceiptWidth  = 800
	MaxReceiptHeight = 600
	ReceiptQuality   = 80
	ReceiptMIME      = "image/jpeg"
)

var (
	ErrNotAnImage      = errors.New("receipt is not an image")
	ErrImageTooLarge   = errors.New("receipt exceeds 10 MB")
	ErrImageUnreadable = errors.New("receipt image could not be decoded")
	ErrImageEncode     = errors.New("receipt image could not be encoded")
)

// Receipt is a payment screenshot normalized for upload.
type Receipt struct {
	Filename   string
	SourceMIME string
	Width      int
	Height     int
	JPEG       []byte
}

func (r *Receipt) DataURL() string {
	return dataurl.Encode(ReceiptMIME, r.JPEG)
}

// ProcessReceipt checks the upload is an image of at most 10 MB, shrinks it to
// fit 800x600 keeping its aspect ratio and re-encodes it as JPEG.
func ProcessReceipt(filename string, data []byte) (*Receipt, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, ErrNotAnImage
	}
	if len(data) > MaxReceiptBytes {
		return nil, ErrImageTooLarge
	}

	// compressed formats can declare dimensions far beyond their byte size
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrImageUnreadable, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxReceiptPixels {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrImageUnreadable, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrImageUnreadable, err)
	}

	b := src.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), MaxReceiptWidth, MaxReceiptHeight)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: ReceiptQuality}); err != nil {
		return nil, errors.Join(ErrImageEncode, err)
	}

	return &Receipt{
		Filename:   filename,
		SourceMIME: mt.String(),
		Width:      w,
		Height:     h,
		JPEG:       buf.Bytes(),
	}, nil
}

// FitWithin scales w x h down to fit maxW x maxH. Smaller images keep their size.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))
	return nw, nh
}
