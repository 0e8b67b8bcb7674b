// Package convert holds the value objects downstream code consumes:
// byte counts and transfer rates. Both are immutable and reject
// magnitudes the parser must never hand on, such as negative sizes.
package convert

import (
	"math"

	"bytesize/internal/errors"
)

// ByteCount is a non-negative byte magnitude
type ByteCount struct {
	bytes float64
}

// NewByteCount validates and wraps a byte magnitude
func NewByteCount(bytes float64) (ByteCount, *errors.Error) {
	if math.IsInf(bytes, 0) || math.IsNaN(bytes) {
		return ByteCount{}, errors.NonFinite()
	}
	if bytes < 0 {
		return ByteCount{}, errors.NegativeSize()
	}
	return ByteCount{bytes: bytes}, nil
}

// Bytes returns the raw byte magnitude
func (c ByteCount) Bytes() float64 { return c.bytes }

// Int64 returns the byte count as an integer when float64 still
// represents it exactly (below 2^53)
func (c ByteCount) Int64() (int64, bool) {
	if c.bytes > 1<<53 || c.bytes != math.Trunc(c.bytes) {
		return 0, false
	}
	return int64(c.bytes), true
}

// KB returns the size in decimal kilobytes
func (c ByteCount) KB() float64 { return c.bytes / 1e3 }

// MB returns the size in decimal megabytes
func (c ByteCount) MB() float64 { return c.bytes / 1e6 }

// GB returns the size in decimal gigabytes
func (c ByteCount) GB() float64 { return c.bytes / 1e9 }

// TB returns the size in decimal terabytes
func (c ByteCount) TB() float64 { return c.bytes / 1e12 }

// KiB returns the size in binary kibibytes
func (c ByteCount) KiB() float64 { return c.bytes / (1 << 10) }

// MiB returns the size in binary mebibytes
func (c ByteCount) MiB() float64 { return c.bytes / (1 << 20) }

// GiB returns the size in binary gibibytes
func (c ByteCount) GiB() float64 { return c.bytes / (1 << 30) }

// TiB returns the size in binary tebibytes
func (c ByteCount) TiB() float64 { return c.bytes / (1 << 40) }

// BitRate is a non-negative transfer rate. The internal magnitude is
// bytes per second; the canonical external quantity is bits per second.
type BitRate struct {
	bytesPerSecond float64
}

// NewBitRate validates and wraps a bytes-per-second magnitude
func NewBitRate(bytesPerSecond float64) (BitRate, *errors.Error) {
	if math.IsInf(bytesPerSecond, 0) || math.IsNaN(bytesPerSecond) {
		return BitRate{}, errors.NonFinite()
	}
	if bytesPerSecond < 0 {
		return BitRate{}, errors.NegativeSize()
	}
	return BitRate{bytesPerSecond: bytesPerSecond}, nil
}

// BytesPerSecond returns the internal magnitude
func (r BitRate) BytesPerSecond() float64 { return r.bytesPerSecond }

// BitsPerSecond returns the canonical external rate
func (r BitRate) BitsPerSecond() float64 { return r.bytesPerSecond * 8 }
