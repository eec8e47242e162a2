package authpages

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/a-h/templ"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func releaseBuffer(b *bytes.Buffer) {
	b.Reset()
	bufferPool.Put(b)
}

// renderBuffered renders c fully before touching w, so a failing component
// leaves the response untouched for the error handler.
func renderBuffered(ctx context.Context, w http.ResponseWriter, c templ.Component) error {
	buf := getBuffer()
	defer releaseBuffer(buf)
	if err := c.Render(ctx, buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}
