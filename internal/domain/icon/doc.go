// Package icon manages desktop icons: their positions, the selection set,
// rubber-band selection and the pointer press tracker that tells a tap
// from a drag.
package icon
