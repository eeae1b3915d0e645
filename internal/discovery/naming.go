package discovery

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"fixturegen/internal/domain"
)

// Reasons reported for names that cannot be emitted
const (
	ReasonInvalidIdentifier = "not a valid identifier"
	ReasonReservedKeyword   = "reserved keyword"
	ReasonNameConflict      = "name shared by several fixtures"
)

// keywords of the macro's host language; none of them may name a test function
var reservedKeywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"try": true,
}

// SplitExt splits a filename at its last dot into root and extension.
// Leading dots never start an extension, so ".hidden" has no extension.
func SplitExt(name string) (root, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || strings.TrimLeft(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// IsIdentifier reports whether name can be emitted as a bare identifier token
func IsIdentifier(name string) bool {
	if name == "" || name == "_" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// FindNameIssues returns every fixture name that is invalid, reserved or shared.
// Issues are ordered by name.
func FindNameIssues(fixtures []domain.Fixture) []domain.NameIssue {
	byName := make(map[string][]string)
	var order []string
	for _, f := range fixtures {
		if _, seen := byName[f.Name]; !seen {
			order = append(order, f.Name)
		}
		byName[f.Name] = append(byName[f.Name], f.FileName)
	}
	sort.Strings(order)

	var issues []domain.NameIssue
	for _, name := range order {
		files := byName[name]
		switch {
		case reservedKeywords[name]:
			issues = append(issues, domain.NameIssue{Name: name, FileNames: files, Reason: ReasonReservedKeyword})
		case !IsIdentifier(name):
			issues = append(issues, domain.NameIssue{Name: name, FileNames: files, Reason: ReasonInvalidIdentifier})
		}
		if len(files) > 1 {
			issues = append(issues, domain.NameIssue{Name: name, FileNames: files, Reason: ReasonNameConflict})
		}
	}
	return issues
}

// ValidateNames fails when any fixture name cannot be emitted as a unique bare identifier.
// The returned error matches ErrInvalidIdentifier and/or ErrNameConflict.
func ValidateNames(fixtures []domain.Fixture) error {
	issues := FindNameIssues(fixtures)
	if len(issues) == 0 {
		return nil
	}

	errs := make([]error, 0, len(issues))
	for _, issue := range issues {
		sentinel := ErrInvalidIdentifier
		if issue.Reason == ReasonNameConflict {
			sentinel = ErrNameConflict
		}
		errs = append(errs, fmt.Errorf("%w: %q from %s (%s)",
			sentinel, issue.Name, strings.Join(issue.FileNames, ", "), issue.Reason))
	}
	return errors.Join(errs...)
}
