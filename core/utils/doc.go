// Package utils provides common utility functions shared across features,
// such as wire-format timestamp parsing that doesn't fit into
// domain-specific packages.
package utils
