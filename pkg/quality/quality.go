// Package quality chooses the JPEG encoder configuration for an output file
// from the size of the input it was produced from.
package quality

// Policy is an encoder quality/optimize configuration.
type Policy struct {
	Quality  int  // JPEG quality, 1-100
	Optimize bool // request the encoder's optimization pass where supported
}

// LargeInputBytes is the input size at which outputs switch to the more
// aggressive encoding policy.
const LargeInputBytes = 2 << 20 // 2 MiB

// Select maps an input file's byte size to an encoder policy. It is a total
// step function of the size alone: inputs below 2 MiB keep quality 90 without
// optimization, inputs at or above it drop to quality 85 with optimization
// enabled. Image content plays no part.
func Select(inputByteSize int64) Policy {
	if inputByteSize >= LargeInputBytes {
		return Policy{Quality: 85, Optimize: true}
	}
	return Policy{Quality: 90, Optimize: false}
}
