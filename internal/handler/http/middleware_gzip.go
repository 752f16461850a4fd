package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

// Compressors are pooled: listing endpoints produce many small JSON bodies
// and allocating a fresh gzip state per request dominates the encoding cost.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that send "Accept-Encoding: gzip". A body declared
// as gzip that fails to decode is a 400.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			reader := gzipReaderPool.Get().(*gzip.Reader)
			if err := reader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(reader)
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}

			r.Body = &pooledBodyReader{reader: reader}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		writer := gzipWriterPool.Get().(*gzip.Writer)
		writer.Reset(w)

		gw := &gzipWriterAdapter{ResponseWriter: w, writer: writer}
		next.ServeHTTP(gw, r)

		writer.Close()
		gzipWriterPool.Put(writer)
	})
}

// pooledBodyReader returns its gzip reader to the pool on Close.
type pooledBodyReader struct {
	reader *gzip.Reader
	closed bool
}

func (b *pooledBodyReader) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *pooledBodyReader) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.reader.Close()
	gzipReaderPool.Put(b.reader)
	return err
}

// gzipWriterAdapter routes the response body through a gzip writer and stamps
// the Content-Encoding header before the status line goes out, including the
// implicit 200 on a first Write without WriteHeader.
type gzipWriterAdapter struct {
	http.ResponseWriter
	writer      *gzip.Writer
	wroteHeader bool
}

func (w *gzipWriterAdapter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipWriterAdapter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.writer.Write(data)
}
