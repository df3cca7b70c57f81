// Package dto provides HTTP request/response data transfer objects and the
// JSON error body for the inbound HTTP adapter layer.
package dto

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
)

const (
	statusSuccess = "success"

	// HealthPassedMessage is the message of a successful health report.
	HealthPassedMessage = "Health check passed"
	// WelcomeMessage is the message of the database info response.
	WelcomeMessage = "Welcome to the replica set API"
)

// UserResponse represents a user in HTTP responses. The password is never
// rendered.
type UserResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: FormatTime(u.CreatedAt),
		UpdatedAt: FormatTime(u.UpdatedAt),
	}
}

// PostResponse represents a post in HTTP responses.
type PostResponse struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author,omitempty"`
	Likes     []string `json:"likes"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// ToPostResponse converts a domain Post to its response DTO.
func ToPostResponse(p *post.Post) PostResponse {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.AuthorID,
		Likes:     likes,
		CreatedAt: FormatTime(p.CreatedAt),
		UpdatedAt: FormatTime(p.UpdatedAt),
	}
}

// LikeResponse represents a like in HTTP responses.
type LikeResponse struct {
	ID        string `json:"_id"`
	User      string `json:"user"`
	Post      string `json:"post"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToLikeResponse converts a domain Like to its response DTO.
func ToLikeResponse(l *like.Like) LikeResponse {
	return LikeResponse{
		ID:        l.ID,
		User:      l.UserID,
		Post:      l.PostID,
		CreatedAt: FormatTime(l.CreatedAt),
		UpdatedAt: FormatTime(l.UpdatedAt),
	}
}

// ToList converts entities with fn. The result is never nil so an empty
// collection renders as [].
func ToList[E, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// HealthResponse is the body of a successful GET /health.
type HealthResponse struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Database  HealthDatabase `json:"database"`
}

// HealthDatabase describes the replica set in a health response.
type HealthDatabase struct {
	ReplicaSet  string         `json:"replicaSet"`
	NodesHealth string         `json:"nodesHealth"`
	Nodes       []NodeResponse `json:"nodes"`
}

// NodeResponse is one replica set member in a health response.
type NodeResponse struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Health string `json:"health"`
	Uptime string `json:"uptime"`
}

// ToHealthResponse converts a health report to its response DTO.
func ToHealthResponse(r *cluster.HealthReport) HealthResponse {
	nodes := make([]NodeResponse, 0, len(r.Members))
	for _, m := range r.Members {
		health := "unhealthy"
		if m.Healthy {
			health = "healthy"
		}
		nodes = append(nodes, NodeResponse{
			Name:   m.Name,
			State:  m.State,
			Health: health,
			Uptime: fmt.Sprintf("%ds", int64(m.Uptime/time.Second)),
		})
	}
	return HealthResponse{
		Status:    statusSuccess,
		Message:   HealthPassedMessage,
		Timestamp: FormatTime(r.CheckedAt),
		Database: HealthDatabase{
			ReplicaSet:  r.ReplicaSet,
			NodesHealth: fmt.Sprintf("%d/%d", r.Healthy, r.Total),
			Nodes:       nodes,
		},
	}
}

// InfoResponse is the body of a successful GET /.
type InfoResponse struct {
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
	Database  DatabaseInfo `json:"database"`
}

// DatabaseInfo lists the collections of the application database.
type DatabaseInfo struct {
	Name        string               `json:"name"`
	Collections []CollectionResponse `json:"collections"`
}

// CollectionResponse is one collection and its document count.
type CollectionResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ToInfoResponse converts a database snapshot to its response DTO.
func ToInfoResponse(info *cluster.DatabaseInfo) InfoResponse {
	collections := make([]CollectionResponse, 0, len(info.Collections))
	for _, c := range info.Collections {
		collections = append(collections, CollectionResponse{Name: c.Name, Count: c.Count})
	}
	return InfoResponse{
		Message:   WelcomeMessage,
		Timestamp: FormatTime(info.CapturedAt),
		Database: DatabaseInfo{
			Name:        info.Name,
			Collections: collections,
		},
	}
}

// Probe statuses.
const (
	ProbeOK       = "ok"
	ProbeReady    = "ready"
	ProbeNotReady = "not_ready"
)

// ProbeResponse is the body of GET /health/live and GET /health/ready.
type ProbeResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// ToReadinessResponse summarizes readiness results keyed by checker name.
// It reports whether every check passed.
func ToReadinessResponse(results map[string]error, now time.Time) (ProbeResponse, bool) {
	checks := make(map[string]string, len(results))
	ready := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = ProbeOK
	}

	status := ProbeReady
	if !ready {
		status = ProbeNotReady
	}
	return ProbeResponse{Status: status, Checks: checks, Timestamp: FormatTime(now)}, ready
}
