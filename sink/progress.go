package sink

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
)

// Progress prints a single updating status line. A nil *Progress is a no-op.
type Progress struct {
	mu    sync.Mutex
	w     io.Writer
	total int
	done  int
}

func NewProgress(w io.Writer, total int) *Progress {
	return &Progress{w: w, total: total}
}

// Step records one more finished frame; bytes is the running total written.
func (p *Progress) Step(bytes int64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.w, "\r%s / %s frames, %s",
		humanize.Comma(int64(p.done)),
		humanize.Comma(int64(p.total)),
		humanize.Bytes(uint64(max(bytes, 0))))
}

// Done ends the status line.
func (p *Progress) Done() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w)
}
