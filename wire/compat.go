package wire

import (
	"os"
	"strconv"
)

// Config controls the decoder's optional behaviors. Defaults favor a
// permissive, best-effort reading: quirky-but-documented cases are
// tolerated rather than rejected unless StrictMode is set.
type Config struct {
	// StrictMode promotes two normally-silent cases to real errors:
	// a stray EGROUP with no enclosing SGROUP (when more bytes follow it)
	// and the merger's kind-conflict drop (rule 6). The human renderer's
	// REPEAT-case margin quirk is unaffected by this flag since it is a
	// rendering artifact, not a data error.
	StrictMode bool

	// MaxDepth bounds recursion through nested GROUP/PACKED decoding.
	// A GROUP nested past it fails with ErrDepthExceeded rather than
	// overflowing the goroutine stack on adversarial input; a LEN payload
	// past it is not re-parsed and stays BINARY.
	MaxDepth int

	// DefaultPackedDepth is the packed_depth used by DecodeDefault, which
	// takes no depth argument (-1 unbounded, 0 never, k only at depth
	// <= k; the top-level call is depth 1).
	DefaultPackedDepth int
}

var config = Config{
	MaxDepth:           100,
	DefaultPackedDepth: 2,
}

// SetConfig sets the global wire configuration.
func SetConfig(c Config) { config = c }

func init() {
	if v := os.Getenv("PROTOPEEK_STRICT"); v == "1" || v == "true" {
		config.StrictMode = true
	}
	if v := os.Getenv("PROTOPEEK_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxDepth = n
		}
	}
	if v := os.Getenv("PROTOPEEK_PACKED_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.DefaultPackedDepth = n
		}
	}
}
