// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier type; domain-specific value objects
// live with their aggregates.
package kernel
