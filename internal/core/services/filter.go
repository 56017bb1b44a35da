package services

import (
	"strings"

	"github.com/custodia-labs/mdtool/internal/core/domain"
)

// suffixPatternPrefix marks an exclusion pattern as an extension rule.
const suffixPatternPrefix = "*."

// InclusionFilter decides which repository paths are scanned.
type InclusionFilter struct {
	maxFileSize int64
	suffixes    []string
	substrings  []string
}

// NewInclusionFilter builds a filter from scan settings.
// A non-positive MaxFileSize falls back to domain.DefaultMaxFileSize.
func NewInclusionFilter(cfg domain.ScanSettings) *InclusionFilter {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = domain.DefaultMaxFileSize
	}
	suffixes, substrings := ParseExcludePatterns(cfg.ExcludePatterns)
	return &InclusionFilter{
		maxFileSize: maxSize,
		suffixes:    suffixes,
		substrings:  substrings,
	}
}

// ParseExcludePatterns splits patterns into suffix rules ("*.so" -> ".so")
// and substring rules. Blank patterns are ignored.
func ParseExcludePatterns(patterns []string) (suffixes, substrings []string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, suffixPatternPrefix) {
			suffixes = append(suffixes, p[1:])
			continue
		}
		substrings = append(substrings, p)
	}
	return suffixes, substrings
}

// MaxFileSize returns the effective size limit in bytes.
func (f *InclusionFilter) MaxFileSize() int64 {
	return f.maxFileSize
}

// CheckFile reports whether a file is included. When it is not, the
// returned reason is one of the domain.Reason* constants.
func (f *InclusionFilter) CheckFile(path string, size int64) (bool, string) {
	if size > f.maxFileSize {
		return false, domain.ReasonTooLarge
	}
	for _, s := range f.suffixes {
		if strings.HasSuffix(path, s) {
			return false, domain.ReasonSuffix
		}
	}
	for _, s := range f.substrings {
		if strings.Contains(path, s) {
			return false, domain.ReasonSubstring
		}
	}
	return true, ""
}

// CheckDir reports whether a directory should be traversed.
// A directory is pruned when "path/" already matches a substring rule,
// since every file beneath it would match the same rule.
func (f *InclusionFilter) CheckDir(path string) (bool, string) {
	prefix := strings.TrimSuffix(path, "/") + "/"
	for _, s := range f.substrings {
		if strings.Contains(prefix, s) {
			return false, domain.ReasonSubstring
		}
	}
	return true, ""
}
