package dct

import (
	"runtime"
	"sync"

	"github.com/mrjoshuak/go-codec31/internal/matrix"
	"github.com/mrjoshuak/go-codec31/yuv"
)

// Options controls frame-level transforms.
type Options struct {
	// Workers is the number of goroutines transforming tiles.
	// Values <= 1 run sequentially; a negative value uses GOMAXPROCS.
	// When Workers > 1 the frame must allow concurrent access to
	// disjoint tiles.
	Workers int

	// Table is the quantization table. Nil selects LumaTable.
	Table *Table
}

func (o Options) table() *Table {
	if o.Table == nil {
		return &LumaTable
	}
	return o.Table
}

func (o Options) workers() int {
	if o.Workers < 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// tile identifies a BlockSize×BlockSize tile by its top-left pixel.
type tile struct {
	x, y int
}

// tiles lists the whole tiles of the luma plane in column-major order.
// Partial tiles at the right and bottom edges are not included.
func tiles(width, height int) []tile {
	cols := width / BlockSize
	rows := height / BlockSize
	ts := make([]tile, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			ts = append(ts, tile{x: i * BlockSize, y: j * BlockSize})
		}
	}
	return ts
}

// blockPool recycles tile buffers between calls.
var blockPool = sync.Pool{
	New: func() interface{} {
		return matrix.New[uint8](BlockSize)
	},
}

// apply reads a tile from f, runs fn over it and writes the result back.
func apply(f yuv.Frame, t tile, table *Table, fn func(*matrix.Matrix[uint8], *Table) *matrix.Matrix[uint8]) {
	m := blockPool.Get().(*matrix.Matrix[uint8])
	for x := 0; x < BlockSize; x++ {
		for y := 0; y < BlockSize; y++ {
			m.Set(x, y, f.PixelY(t.x+x, t.y+y))
		}
	}
	out := fn(m, table)
	blockPool.Put(m)
	for x := 0; x < BlockSize; x++ {
		for y := 0; y < BlockSize; y++ {
			f.SetPixelY(t.x+x, t.y+y, out.Get(x, y))
		}
	}
}

// transform runs fn over every whole tile of the luma plane of f.
func transform(f yuv.Frame, o Options, fn func(*matrix.Matrix[uint8], *Table) *matrix.Matrix[uint8]) {
	width, height := f.Resolution()
	jobs := tiles(width, height)
	table := o.table()

	// Sequential processing for small tile counts or single-worker mode
	numWorkers := o.workers()
	if len(jobs) <= 4 || numWorkers <= 1 {
		for _, t := range jobs {
			apply(f, t, table, fn)
		}
		return
	}

	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}

	// Pre-fill job channel before starting workers to reduce contention
	jobChan := make(chan tile, len(jobs))
	for _, t := range jobs {
		jobChan <- t
	}
	close(jobChan)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobChan {
				apply(f, t, table, fn)
			}
		}()
	}
	wg.Wait()
}

// ForwardFrame transforms and quantizes every whole luma tile of f in
// place. Chroma is untouched.
func ForwardFrame(f yuv.Frame, o Options) {
	transform(f, o, EncodeBlock)
}

// InverseFrame dequantizes and inverse transforms every whole luma tile
// of f in place.
func InverseFrame(f yuv.Frame, o Options) {
	transform(f, o, DecodeBlock)
}

// EncodeFrame returns a transformed copy of src.
func EncodeFrame[F yuv.Cloner[F]](src F, o Options) F {
	dst := src.Clone()
	ForwardFrame(dst, o)
	return dst
}

// DecodeFrame returns an inverse-transformed copy of src.
func DecodeFrame[F yuv.Cloner[F]](src F, o Options) F {
	dst := src.Clone()
	InverseFrame(dst, o)
	return dst
}
