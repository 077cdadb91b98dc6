// internal/core/domain/container_code.go
package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	containerNamePattern = regexp.MustCompile(`^(.*?)\s*#\s*(\d+)\s*$`)
	nonAlphanumericRun   = regexp.MustCompile(`[^A-Z0-9]+`)
	codeNumberSuffix     = regexp.MustCompile(`^(.+)-(\d+)$`)
)

// ContainerName is the parsed form of a free-text container label.
type ContainerName struct {
	Type   string `json:"type,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Number string `json:"number,omitempty"`
	Code   string `json:"code"`
}

// ParseContainerName derives a container code from a label such as
// "Bin #01" (type "Bin", code "BIN-01"). Labels without a trailing
// "#<digits>" token are slugified instead. Digits are kept as written.
func ParseContainerName(name string) ContainerName {
	name = strings.TrimSpace(name)

	if m := containerNamePattern.FindStringSubmatch(name); m != nil {
		typeName := strings.TrimSpace(m[1])
		tag := strings.ToUpper(removeWhitespace(typeName))
		if tag != "" {
			return ContainerName{
				Type:   typeName,
				Tag:    tag,
				Number: m[2],
				Code:   tag + "-" + m[2],
			}
		}
	}

	return ContainerName{Code: Slugify(name)}
}

// PaddedCode returns the code with the number zero-padded to at least width
// digits. Slug codes are returned unchanged.
func (n ContainerName) PaddedCode(width int) string {
	if n.Number == "" || len(n.Number) >= width {
		return n.Code
	}
	return n.Tag + "-" + strings.Repeat("0", width-len(n.Number)) + n.Number
}

// Slugify upper-cases s and collapses every run of non-alphanumeric
// characters into a single dash.
func Slugify(s string) string {
	slug := nonAlphanumericRun.ReplaceAllString(strings.ToUpper(s), "-")
	return strings.Trim(slug, "-")
}

// CodeTag returns the type tag of a derived code ("BIN-01" -> "BIN").
func CodeTag(code string) string {
	if m := codeNumberSuffix.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return ""
}

func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
