//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"time"

	codec31 "github.com/mrjoshuak/go-codec31"
	"github.com/mrjoshuak/go-codec31/yuv"
)

func main() {
	sizes := []int{64, 128, 256, 512}
	iterations := 10

	fmt.Println("=== codec31 Benchmark Comparison ===")
	fmt.Println("codec31 vs image/png and image/jpeg (quality 75)")
	fmt.Println()

	fmt.Printf("%-10s | %-12s | %-12s | %-12s | %-10s | %-10s | %-10s\n",
		"Size", "31p Encode", "PNG Encode", "JPEG Encode", "31p Bytes", "PNG Bytes", "JPEG Bytes")
	fmt.Println("-----------+--------------+--------------+--------------+------------+------------+-----------")

	for _, size := range sizes {
		img := createTestImage(size)

		c31Time, c31Size := benchmarkEncode(iterations, func(buf *bytes.Buffer) error {
			return codec31.Encode(buf, img, nil)
		})
		pngTime, pngSize := benchmarkEncode(iterations, func(buf *bytes.Buffer) error {
			return png.Encode(buf, img)
		})
		jpegTime, jpegSize := benchmarkEncode(iterations, func(buf *bytes.Buffer) error {
			return jpeg.Encode(buf, img, &jpeg.Options{Quality: 75})
		})

		fmt.Printf("%-10s | %-12s | %-12s | %-12s | %-10d | %-10d | %-10d\n",
			fmt.Sprintf("%dx%d", size, size),
			c31Time.Round(time.Microsecond),
			pngTime.Round(time.Microsecond),
			jpegTime.Round(time.Microsecond),
			c31Size, pngSize, jpegSize)
	}

	fmt.Println()
	fmt.Printf("%-10s | %-20s | %-20s | %-10s\n", "Size", "1 Worker Decode", "N Workers Decode", "Speedup")
	fmt.Println("-----------+----------------------+----------------------+-----------")

	for _, size := range sizes {
		f, err := yuv.FromImage(createTestImage(size))
		if err != nil {
			fmt.Printf("Failed to convert image: %v\n", err)
			return
		}
		payload, err := codec31.EncodeFrame(f, nil)
		if err != nil {
			fmt.Printf("Failed to encode frame: %v\n", err)
			return
		}

		seq := benchmarkDecode(payload, size, &codec31.Options{Workers: 1}, iterations)
		par := benchmarkDecode(payload, size, codec31.DefaultOptions(), iterations)

		fmt.Printf("%-10s | %-20s | %-20s | %-10.2fx\n",
			fmt.Sprintf("%dx%d", size, size),
			seq.Round(time.Microsecond),
			par.Round(time.Microsecond),
			float64(seq)/float64(par))
	}
}

func createTestImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x * 255) / size),
				G: uint8((y * 255) / size),
				B: uint8(((x + y) * 127) / size),
				A: 255,
			})
		}
	}
	return img
}

func benchmarkEncode(iterations int, encode func(*bytes.Buffer) error) (time.Duration, int) {
	// Warmup
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		fmt.Printf("Encoding failed: %v\n", err)
	}
	size := buf.Len()

	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf.Reset()
		_ = encode(&buf)
	}
	return time.Since(start) / time.Duration(iterations), size
}

func benchmarkDecode(payload []byte, size int, o *codec31.Options, iterations int) time.Duration {
	// Warmup
	_, _ = codec31.DecodeFrame(payload, size, size, o)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_, _ = codec31.DecodeFrame(payload, size, size, o)
	}
	return time.Since(start) / time.Duration(iterations)
}
