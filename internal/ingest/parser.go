package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// packageLineRe matches: RUN;15000;1;75
var packageLineRe = regexp.MustCompile(`^([A-Za-z]+)\s*;(.*)$`)

// Parse reads a package file and returns the packages in file order.
//
// Each non-blank line holds one package, the workout code followed by its
// fields, separated by semicolons. Lines starting with # are comments.
// Decimal commas are accepted ("1,5" is 1.5).
func Parse(r io.Reader) ([]Package, error) {
	scanner := bufio.NewScanner(r)
	var pkgs []Package
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := packageLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed package %q", lineNo, line)
		}

		var data []any
		if rest := strings.TrimSpace(m[2]); rest != "" {
			for _, field := range strings.Split(rest, ";") {
				data = append(data, normalizeDecimal(field))
			}
		}
		pkgs = append(pkgs, Package{Code: m[1], Data: data})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading packages: %w", err)
	}
	return pkgs, nil
}

// normalizeDecimal converts a European decimal to a dotted one.
// "0,5" -> "0.5"
func normalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}
