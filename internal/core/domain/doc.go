// Package domain defines the core business entities for mdtool.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RepoRef / RepoMetadata: the repository being documented
//   - FileRecord / FileSet: included files in encounter order
//   - ScanEntry / ScanResult: per-path outcomes of a repository walk
//   - Batch / Fragment: bounded groups of files and their generated text
//   - Readme: the assembled document plus run bookkeeping
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
