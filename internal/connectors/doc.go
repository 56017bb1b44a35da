// Package connectors provides implementations of driven.RepositoryReader
// for repository hosts. Each connector knows how to fetch metadata,
// directory listings and file contents from one host API.
package connectors
