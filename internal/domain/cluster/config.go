package cluster

import (
	"slices"
	"time"
)

// ReadPreference names the read-routing policy.
type ReadPreference string

const (
	ReadPrimary            ReadPreference = "primary"
	ReadPrimaryPreferred   ReadPreference = "primaryPreferred"
	ReadSecondary          ReadPreference = "secondary"
	ReadSecondaryPreferred ReadPreference = "secondaryPreferred"
	ReadNearest            ReadPreference = "nearest"
)

// IsValid returns true if the preference is one of the defined constants.
func (p ReadPreference) IsValid() bool {
	switch p {
	case ReadPrimary, ReadPrimaryPreferred, ReadSecondary, ReadSecondaryPreferred, ReadNearest:
		return true
	default:
		return false
	}
}

// Settings is the mutable input used to build a Config.
type Settings struct {
	URI                    string
	Seeds                  []string
	ReplicaSet             string
	Database               string
	ReadPreference         ReadPreference
	ServerSelectionTimeout time.Duration
	OperationTimeout       time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	AppName                string
}

// Config is the immutable description of the cluster to connect to. Build it
// once at startup with NewConfig; it cannot be changed afterwards.
type Config struct {
	s Settings
}

// NewConfig copies the settings into an immutable Config. An empty read
// preference defaults to secondaryPreferred.
func NewConfig(s Settings) Config {
	s.Seeds = slices.Clone(s.Seeds)
	if s.ReadPreference == "" {
		s.ReadPreference = ReadSecondaryPreferred
	}
	return Config{s: s}
}

// URI returns the optional connection string. When set it is applied before
// the explicit seeds and replica set.
func (c Config) URI() string { return c.s.URI }

// Seeds returns a copy of the seed endpoints.
func (c Config) Seeds() []string { return slices.Clone(c.s.Seeds) }

// ReplicaSet returns the replica-set name.
func (c Config) ReplicaSet() string { return c.s.ReplicaSet }

// Database returns the application database name.
func (c Config) Database() string { return c.s.Database }

// ReadPreference returns the read-routing policy.
func (c Config) ReadPreference() ReadPreference { return c.s.ReadPreference }

// ServerSelectionTimeout bounds how long a connect attempt waits for a
// suitable member.
func (c Config) ServerSelectionTimeout() time.Duration { return c.s.ServerSelectionTimeout }

// OperationTimeout is the driver-level per-operation timeout. Zero means the
// driver default.
func (c Config) OperationTimeout() time.Duration { return c.s.OperationTimeout }

// MaxPoolSize returns the connection pool ceiling.
func (c Config) MaxPoolSize() uint64 { return c.s.MaxPoolSize }

// MinPoolSize returns the connection pool floor.
func (c Config) MinPoolSize() uint64 { return c.s.MinPoolSize }

// AppName is reported to the server in the handshake.
func (c Config) AppName() string { return c.s.AppName }
