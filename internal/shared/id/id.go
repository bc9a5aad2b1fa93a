// Package id provides ID generation for the desktop backend.
//
// Window instances are keyed "<appId>-<ULID>" so the owning app stays
// readable in logs while the suffix keeps instances unique and k-sortable.
// Stream connection IDs use the "prefix_ULID" form.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ConnectionID identifies a stream subscriber
type ConnectionID string

const ConnectionPrefix = "conn"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator whose IDs increase monotonically within a millisecond
func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// InstanceID creates a window instance key for the given app
func (g *Generator) InstanceID(appID string) string {
	return appID + "-" + g.GenerateString()
}

// NewInstanceID generates a window instance key using the default generator
func NewInstanceID[T ~string](appID T) string {
	return Default().InstanceID(string(appID))
}

// NewConnectionID generates a new stream connection ID
func NewConnectionID() ConnectionID {
	return ConnectionID(Default().GenerateWithPrefix(ConnectionPrefix))
}

func (id ConnectionID) String() string { return string(id) }

// IsValid checks if an ID string is a valid ULID
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// Parse parses a ULID string
func Parse(id string) (ulid.ULID, error) {
	return ulid.Parse(id)
}

// SplitInstanceID returns the app id and ULID suffix of an instance key
func SplitInstanceID(instanceID string) (appID string, suffix string, ok bool) {
	i := strings.LastIndexByte(instanceID, '-')
	if i <= 0 || i == len(instanceID)-1 {
		return "", "", false
	}
	appID, suffix = instanceID[:i], instanceID[i+1:]
	return appID, suffix, IsValid(suffix)
}

// Timestamp extracts the timestamp from a ULID
func Timestamp(id string) (time.Time, error) {
	parsed, err := Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
