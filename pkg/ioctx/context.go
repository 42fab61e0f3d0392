// Package ioctx carries output streams through a context.Context.
//
// Evaluation output and diagnostics are written through the context
// rather than to os.Stdout directly so that the same driver code can
// print to a terminal, into the REPL's scrollback, or into a buffer
// under test.
package ioctx

import (
	"context"
	"io"
)

type streamKey int

const (
	stdoutStream streamKey = iota
	stderrStream
)

// StdoutToContext returns a context whose standard output stream is w.
func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutStream, w)
}

// StderrToContext returns a context whose diagnostic stream is w.
func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrStream, w)
}

// StdoutFromContext returns the context's standard output stream.
// Contexts with no stream attached discard writes.
func StdoutFromContext(ctx context.Context) io.Writer {
	return writerFrom(ctx, stdoutStream)
}

// StderrFromContext returns the context's diagnostic stream.
// Contexts with no stream attached discard writes.
func StderrFromContext(ctx context.Context) io.Writer {
	return writerFrom(ctx, stderrStream)
}

func writerFrom(ctx context.Context, key streamKey) io.Writer {
	if w, ok := ctx.Value(key).(io.Writer); ok {
		return w
	}
	return io.Discard
}
