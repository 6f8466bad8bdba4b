package trace

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
)

// SpanContext is the trace parent handed to us by the invoking job
// through DD_TRACE_ID and DD_SPAN_ID. It satisfies
// ddtrace.SpanContextW3C so it can parent spans started in-process;
// dd-trace-go keeps its own implementation of that interface private.
type SpanContext struct {
	traceID traceID
	spanID  uint64
}

// traceID holds a 128-bit trace id in big-endian order, upper half
// first.
type traceID [16]byte

var ErrSpanContextCorrupted = errors.New("span context corrupted")

// ParseTraceID reads a hex trace id, either the classic 64-bit form or
// the 128-bit W3C form. Longer input keeps only the low 128 bits.
func (c *SpanContext) ParseTraceID(v string) error {
	if len(v) > 32 {
		v = v[len(v)-32:]
	}
	v = strings.TrimLeft(v, "0")

	if len(v) <= 16 {
		lower, err := strconv.ParseUint(v, 16, 64)
		if err != nil {
			return fmt.Errorf("trace id: %w", ErrSpanContextCorrupted)
		}
		c.traceID.setLower(lower)
		return nil
	}

	upper, err := strconv.ParseUint(v[:len(v)-16], 16, 64)
	if err != nil {
		return fmt.Errorf("trace id: %w", ErrSpanContextCorrupted)
	}
	lower, err := strconv.ParseUint(v[len(v)-16:], 16, 64)
	if err != nil {
		return fmt.Errorf("trace id: %w", ErrSpanContextCorrupted)
	}
	c.traceID.setUpper(upper)
	c.traceID.setLower(lower)
	return nil
}

// ParseSpanID reads a hex span id.
func (c *SpanContext) ParseSpanID(v string) error {
	id, err := strconv.ParseUint(v, 16, 64)
	if err != nil {
		return fmt.Errorf("span id: %w", ErrSpanContextCorrupted)
	}
	c.spanID = id
	return nil
}

func (c *SpanContext) TraceID() uint64 {
	return c.traceID.lower()
}

func (c *SpanContext) SpanID() uint64 {
	return c.spanID
}

func (c *SpanContext) TraceID128() string {
	return hex.EncodeToString(c.traceID[:])
}

func (c *SpanContext) TraceID128Bytes() [16]byte {
	return c.traceID
}

func (c *SpanContext) ForeachBaggageItem(handler func(k, v string) bool) {
}

// GetHexSpanID formats a span id the way Datadog's W3C propagation
// headers expect it.
func GetHexSpanID(c ddtrace.SpanContextW3C) string {
	return fmt.Sprintf("%016x", c.SpanID())
}

// GetHexTraceID formats the full 128-bit trace id.
func GetHexTraceID(c ddtrace.SpanContextW3C) string {
	return fmt.Sprintf("%032x", c.TraceID128Bytes())
}

func (t *traceID) lower() uint64 {
	return binary.BigEndian.Uint64(t[8:])
}

func (t *traceID) setLower(i uint64) {
	binary.BigEndian.PutUint64(t[8:], i)
}

func (t *traceID) setUpper(i uint64) {
	binary.BigEndian.PutUint64(t[:8], i)
}
