// Command codec31 converts between common image formats and codec31
// pictures and videos.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	codec31 "github.com/mrjoshuak/go-codec31"
	"github.com/mrjoshuak/go-codec31/internal/container"
	"github.com/mrjoshuak/go-codec31/yuv"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage:
  codec31 encode [-workers N] in.(png|jpg|gif) out.31p
  codec31 decode [-workers N] in.31p out.png
  codec31 pack [-workers N] [-zstd] out.31v in1.png [in2.png ...]
  codec31 unpack [-workers N] in.31v outdir
  codec31 info file
`)
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("codec31: ")

	if len(os.Args) < 2 {
		usage()
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	fs.Usage = usage
	flagWorkers := fs.Int("workers", codec31.DefaultOptions().Workers, "Number of goroutines transforming luma tiles")
	flagZstd := fs.Bool("zstd", false, "Wrap the video stream in a zstd frame (pack only)")
	if err := fs.Parse(os.Args[2:]); err != nil {
		usage()
	}

	o := codec31.DefaultOptions()
	o.Workers = *flagWorkers
	if *flagZstd {
		o.Compression = codec31.CompressionZstd
	}

	args := fs.Args()
	switch os.Args[1] {
	case "encode":
		if len(args) != 2 {
			usage()
		}
		encode(args[0], args[1], o)
	case "decode":
		if len(args) != 2 {
			usage()
		}
		decode(args[0], args[1], o)
	case "pack":
		if len(args) < 2 {
			usage()
		}
		pack(args[0], args[1:], o)
	case "unpack":
		if len(args) != 2 {
			usage()
		}
		unpack(args[0], args[1], o)
	case "info":
		if len(args) != 1 {
			usage()
		}
		info(args[0])
	default:
		usage()
	}
}

func readImage(path string) image.Image {
	in, err := os.Open(path)
	if err != nil {
		log.Fatalln("Can't open input file:", err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		log.Fatalln("Decoding failed:", path, err)
	}
	return img
}

func writePNG(path string, img image.Image) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatalln("Can't create output file:", err)
	}
	if err := png.Encode(out, img); err != nil {
		log.Fatalln("Can't write:", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln("Can't write:", err)
	}
}

func create(path string, write func(io.Writer) error) {
	out, err := os.Create(path)
	if err != nil {
		log.Fatalln("Can't create output file:", err)
	}
	if err := write(out); err != nil {
		log.Fatalln("Encoding failed:", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln("Can't write:", err)
	}
}

func encode(inPath, outPath string, o *codec31.Options) {
	img := readImage(inPath)
	create(outPath, func(w io.Writer) error {
		return codec31.Encode(w, img, o)
	})
	log.Printf("encoded %s -> %s", inPath, outPath)
}

func decode(inPath, outPath string, o *codec31.Options) {
	in, err := os.Open(inPath)
	if err != nil {
		log.Fatalln("Can't open input file:", err)
	}
	defer in.Close()

	p, err := container.ReadPicture(in)
	if err != nil {
		log.Fatalln("Reading picture failed:", err)
	}
	f, err := codec31.DecodePicture(p, o)
	if err != nil {
		log.Fatalln("Decoding failed:", err)
	}
	writePNG(outPath, f.Image())
	log.Printf("decoded %s -> %s (%dx%d)", inPath, outPath, p.Width, p.Height)
}

func pack(outPath string, inPaths []string, o *codec31.Options) {
	frames := make([]*yuv.Frame420, 0, len(inPaths))
	for _, path := range inPaths {
		f, err := yuv.FromImage(readImage(path))
		if err != nil {
			log.Fatalln("Converting failed:", path, err)
		}
		frames = append(frames, f)
	}
	create(outPath, func(w io.Writer) error {
		return codec31.EncodeVideo(w, frames, o)
	})
	log.Printf("packed %d frames -> %s (%s)", len(frames), outPath, o.Compression)
}

func unpack(inPath, outDir string, o *codec31.Options) {
	in, err := os.Open(inPath)
	if err != nil {
		log.Fatalln("Can't open input file:", err)
	}
	defer in.Close()

	frames, err := codec31.DecodeVideo(in, o)
	if err != nil {
		log.Fatalln("Decoding failed:", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalln("Can't create output directory:", err)
	}
	for i, f := range frames {
		writePNG(filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i)), f.Image())
	}
	log.Printf("unpacked %d frames -> %s", len(frames), outDir)
}

func info(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalln("Can't open input file:", err)
	}

	if p, err := container.ParsePicture(data); err == nil {
		fmt.Printf("picture %dx%d pix_fmt=%d payload=%d bytes\n", p.Width, p.Height, p.PixFmt, len(p.Data))
		return
	}

	frames, err := codec31.DecodeVideo(bytes.NewReader(data), &codec31.Options{Workers: 1})
	if err != nil {
		log.Fatalln("Not a codec31 picture or video:", err)
	}
	fmt.Printf("video frames=%d\n", len(frames))
	for i, f := range frames {
		w, h := f.Resolution()
		fmt.Printf("  %4d %dx%d\n", i, w, h)
	}
}
