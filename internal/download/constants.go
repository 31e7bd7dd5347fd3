package download

import "time"

const (
	defaultTimeout = 10 * time.Second

	// copyBufferSize bounds memory per transfer; logos are a few hundred
	// KB so an 8 KB buffer keeps copies cheap without big allocations.
	copyBufferSize = 8 * 1024
)
