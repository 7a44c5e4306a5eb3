package lineio

import "log/slog"

// Options configures a Reader.
type Options struct {
	// Delimiter is the byte that terminates one record. The delimiter is
	// included in the record content.
	Delimiter byte

	// MaxLength bounds the record length in bytes. When a record reaches
	// MaxLength without a delimiter, ReadRecord returns ErrTooLong.
	// Zero means unbounded.
	MaxLength int

	// InitialCapacity is the capacity allocated for an empty Buffer.
	// Values below 2 fall back to DefaultCapacity.
	InitialCapacity int

	// MaxCapacity is a hard ceiling on buffer capacity. Growth beyond it
	// fails with ErrBufferLimit. Zero means no ceiling.
	MaxCapacity int

	// Logger receives debug events for buffer growth. Nil disables logging.
	Logger *slog.Logger

	// Metrics receives read and growth accounting.
	// Defaults to NoopMetricsCollector.
	Metrics MetricsCollector
}

// DefaultOptions are the options used when none are overridden.
var DefaultOptions = Options{
	Delimiter:       '\n',
	InitialCapacity: DefaultCapacity,
	Metrics:         NoopMetricsCollector{},
}
