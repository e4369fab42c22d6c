// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combinator

import (
	"io"

	"github.com/conduit-go/conduit"
	"github.com/conduit-go/conduit/effect"
)

// ChunkedSource reads from r in chunks of at most bufSize bytes until a
// read returns zero bytes or an error, emitting each non-empty chunk as
// its own output (a chunk read together with an error is still
// emitted, and is the last one). Reads
// happen inside the pipe's PipeM steps rather than up front, so a
// consumer that stops early (e.g. fused with Take) never pays for reads
// past what it needed.
func ChunkedSource(r io.Reader, bufSize int) pipe.Source[[]byte, struct{}] {
	return pipe.PipeM[pipe.Void, pipe.Void, []byte, struct{}, struct{}]{
		Effect: readChunk(r, bufSize),
	}
}

func readChunk(r io.Reader, bufSize int) pipe.Eff[pipe.Source[[]byte, struct{}]] {
	return func(k func(pipe.Source[[]byte, struct{}]) effect.Resumed) effect.Resumed {
		buf := make([]byte, bufSize)
		n, err := r.Read(buf)
		if n == 0 {
			return k(pipe.Return[pipe.Void, pipe.Void, []byte, struct{}, struct{}](struct{}{}))
		}
		next := pipe.Source[[]byte, struct{}](pipe.PipeM[pipe.Void, pipe.Void, []byte, struct{}, struct{}]{Effect: readChunk(r, bufSize)})
		if err != nil {
			next = pipe.Return[pipe.Void, pipe.Void, []byte, struct{}, struct{}](struct{}{})
		}
		return k(pipe.HaveOutput[pipe.Void, pipe.Void, []byte, struct{}, struct{}]{
			Next:         next,
			OnEarlyClose: effect.Return[effect.Resumed](struct{}{}),
			Value:        buf[:n],
		})
	}
}

// ByteSink writes every input chunk to w in order, returning the total
// number of bytes written.
func ByteSink(w io.Writer) pipe.Sink[[]byte, int] {
	return byteSinkStep(w, 0)
}

func byteSinkStep(w io.Writer, total int) pipe.Sink[[]byte, int] {
	return pipe.Bind(pipe.Await[[]byte, []byte, pipe.Void, struct{}](), func(m pipe.Maybe[[]byte]) pipe.Sink[[]byte, int] {
		chunk, ok := m.Get()
		if !ok {
			return pipe.Return[[]byte, []byte, pipe.Void, struct{}, int](total)
		}
		return pipe.PipeM[[]byte, []byte, pipe.Void, struct{}, int]{
			Effect: func(k func(pipe.Sink[[]byte, int]) effect.Resumed) effect.Resumed {
				n, _ := w.Write(chunk)
				return k(byteSinkStep(w, total+n))
			},
		}
	})
}
