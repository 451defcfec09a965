package translator

import (
	"strconv"
	"strings"
)

// Slug converts a suite display name into a filesystem-safe identifier:
// lowercase, every maximal run of non-alphanumeric characters collapses to a
// single hyphen, and leading/trailing hyphens are stripped. A name with no
// alphanumeric characters yields the empty string.
func Slug(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	pendingHyphen := false
	for _, c := range name {
		isAlnum := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if !isAlnum {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteRune(c)
	}
	return b.String()
}

// exportedCamel converts a slug into an exported Go identifier fragment.
// e.g. "golden-file-test" → "GoldenFileTest"
func exportedCamel(slug string) string {
	var b strings.Builder
	for _, part := range strings.Split(slug, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// joinOutputPath joins outDir and filename with a separator inferred from
// outDir itself: backslash when outDir contains backslashes and no forward
// slash, forward slash otherwise. Trailing separators are stripped first.
// The rest of the translator stays platform-agnostic.
func joinOutputPath(outDir, filename string) string {
	sep := "/"
	if strings.Contains(outDir, `\`) && !strings.Contains(outDir, "/") {
		sep = `\`
	}
	trimmed := strings.TrimRight(outDir, `/\`)
	if trimmed == "" {
		if outDir == "" {
			return filename
		}
		// outDir was nothing but separators: a filesystem root, not
		// a request for the current directory.
		return sep + filename
	}
	return trimmed + sep + filename
}

// goStr renders s as a Go string literal, escaping quotes and backslashes.
func goStr(s string) string {
	return strconv.Quote(s)
}

// renderLabel renders a ginkgo Label(...) argument for a tag list. A single
// tag renders as one bare string, several as the comma-joined list, none as
// the empty string (no annotation at all).
func renderLabel(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = goStr(t)
	}
	return "Label(" + strings.Join(quoted, ", ") + ")"
}
