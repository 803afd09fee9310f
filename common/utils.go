// Package common provides shared constants, types, and utilities
// used across exforms.
package common

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir ensures a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// ContainsRune reports whether r occurs in s.
func ContainsRune(s string, r rune) bool {
	return strings.ContainsRune(s, r)
}

// shiftJISLen returns the Shift_JIS byte length of s, or -1 when s has
// characters outside the encoding.
func shiftJISLen(s string) int {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(s)
	if err != nil {
		return -1
	}
	return len(encoded)
}

// ContainsFullWidth reports whether s holds at least one double-byte
// (full-width) character in Shift_JIS terms.
func ContainsFullWidth(s string) bool {
	n := shiftJISLen(s)
	if n < 0 {
		return true
	}
	return n != len([]rune(s))
}

// ContainsHalfWidth reports whether s holds at least one single-byte
// (half-width) character in Shift_JIS terms.
func ContainsHalfWidth(s string) bool {
	n := shiftJISLen(s)
	if n < 0 {
		return len(s) > 0
	}
	return n != 2*len([]rune(s))
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Number is the set of types ParseOr understands.
type Number interface {
	~int | ~int16 | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ParseOr parses s as T, returning def when s is not a valid T.
func ParseOr[T Number](s string, def T) T {
	s = strings.TrimSpace(s)
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return T(v)
	case uint, uint16, uint32, uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || uint64(T(v)) != v {
			return def
		}
		return T(v)
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || int64(T(v)) != v {
			return def
		}
		return T(v)
	}
}

// KeysForValue returns every key of m mapped to v, or nil when none is.
func KeysForValue[K comparable, V comparable](m map[K]V, v V) []K {
	var keys []K
	for k, val := range m {
		if val == v {
			keys = append(keys, k)
		}
	}
	return keys
}

// FirstKeyForValue returns a key of m mapped to v, or def when none is.
// Map order is unspecified, so callers should only rely on it for unique values.
func FirstKeyForValue[K comparable, V comparable](m map[K]V, v V, def K) K {
	for k, val := range m {
		if val == v {
			return k
		}
	}
	return def
}
