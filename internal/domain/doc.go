// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/post,
// domain/like, domain/cluster). This root package holds sentinel errors,
// validation types, and the Action interface used for staged writes.
package domain
