// Package naming holds the save-name safety rules shared by the save store
// and the HTTP layer, plus the timestamp format used in property files.
package naming

import (
	"strings"
	"time"

	"github.com/cubeworks/mc-manager/internal/api"
)

// TimeLayout is the format of every datetime property value.
const TimeLayout = "2006-01-02 15:04:05"

// Now formats the current local time for datetime properties.
func Now() string {
	return time.Now().Format(TimeLayout)
}

// reserved are names Windows refuses as file names, case-insensitively.
var reserved = []string{
	".", "..", "CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
}

// IsSafe reports whether name can be used as a save directory name on every
// supported filesystem.
func IsSafe(name string) bool {
	if name == "" || strings.HasSuffix(name, ".") {
		return false
	}
	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c <= 0x1F || c >= 0x7F:
			return false
		case c == '/' || c == '\\' || c == ':' || c == '*' || c == '?' || c == '"' || c == '<' || c == '>':
			return false
		}
	}
	for _, r := range reserved {
		if strings.EqualFold(name, r) {
			return false
		}
	}
	return true
}

// ParseName decodes a name extracted from a URL path. A name without '%' is
// only checked with IsSafe (BadName on failure). Otherwise percent sequences
// are decoded ASCII-only: a %HH escape for a byte at or above 0x80, a
// malformed escape, or a raw high byte is a BadRequest; the decoded text
// must then pass IsSafe.
func ParseName(raw string) (string, error) {
	if !strings.Contains(raw, "%") {
		if !IsSafe(raw) {
			return "", api.BadName()
		}
		return raw, nil
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c == '%':
			if i+2 >= len(raw) {
				return "", api.BadRequest()
			}
			hi, ok1 := hexVal(raw[i+1])
			lo, ok2 := hexVal(raw[i+2])
			if !ok1 || !ok2 {
				return "", api.BadRequest()
			}
			b := hi<<4 | lo
			if b >= 0x80 {
				return "", api.BadRequest()
			}
			out = append(out, b)
			i += 2
		case c >= 0x80:
			return "", api.BadRequest()
		default:
			out = append(out, c)
		}
	}
	name := string(out)
	if !IsSafe(name) {
		return "", api.BadName()
	}
	return name, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
