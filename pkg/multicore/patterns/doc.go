// Package patterns provides embeddable base types for commands, mediators
// and proxies.
package patterns
