package cluster

import (
	"sort"
	"time"
)

// healthyFlag is the replSetGetStatus health value of a reachable member.
const healthyFlag = 1

// ReplicaMember is one member as reported by replica-set status. It is
// produced fresh on every query and never cached.
type ReplicaMember struct {
	Name   string
	State  string
	Health float64
	Uptime time.Duration
}

// Healthy reports whether the member's health flag is 1.
func (m ReplicaMember) Healthy() bool {
	return m.Health == healthyFlag
}

// ReplicaSetStatus is the subset of replSetGetStatus this service reads.
type ReplicaSetStatus struct {
	SetName string
	Members []ReplicaMember
}

// HealthyCount returns the number of members with health flag 1.
func (s ReplicaSetStatus) HealthyCount() int {
	n := 0
	for _, m := range s.Members {
		if m.Healthy() {
			n++
		}
	}
	return n
}

// MemberSummary is the per-member line of a HealthReport.
type MemberSummary struct {
	Name    string
	State   string
	Healthy bool
	Uptime  time.Duration
}

// HealthReport is an immutable point-in-time assessment of the replica set.
type HealthReport struct {
	ReplicaSet string
	Healthy    int
	Total      int
	Members    []MemberSummary
	CheckedAt  time.Time
}

// NewHealthReport summarizes a status response. Member order is preserved.
func NewHealthReport(status ReplicaSetStatus, at time.Time) *HealthReport {
	members := make([]MemberSummary, len(status.Members))
	for i, m := range status.Members {
		members[i] = MemberSummary{
			Name:    m.Name,
			State:   m.State,
			Healthy: m.Healthy(),
			Uptime:  m.Uptime,
		}
	}
	return &HealthReport{
		ReplicaSet: status.SetName,
		Healthy:    status.HealthyCount(),
		Total:      len(status.Members),
		Members:    members,
		CheckedAt:  at,
	}
}

// CollectionInfo is the document count of a single collection.
type CollectionInfo struct {
	Name  string
	Count int64
}

// DatabaseInfo is a snapshot of the application database's collections.
type DatabaseInfo struct {
	Name        string
	Collections []CollectionInfo
	CapturedAt  time.Time
}

// NewDatabaseInfo builds a snapshot with collections sorted by name.
func NewDatabaseInfo(name string, collections []CollectionInfo, at time.Time) *DatabaseInfo {
	sorted := make([]CollectionInfo, len(collections))
	copy(sorted, collections)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &DatabaseInfo{Name: name, Collections: sorted, CapturedAt: at}
}
