// Package types provides core type definitions and interfaces for the coldplan library.
//
// This package contains shared types that are used across multiple packages in the
// coldplan library. By keeping these types in a separate package, we avoid import cycles
// between the main coldplan package and its internal implementations.
//
// Key types:
//   - Limits: Per-partition element/weight caps and the partition slot pool
//   - ColdSpan / ReverseColdSpan: Maximal cold windows and their inverse
//   - PlanTable: Minimum hot-tier weight per (elements consumed, cold partitions used)
//   - Layout: A concrete cold/hot placement recovered from a PlanTable
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
