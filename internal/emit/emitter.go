// Package emit renders fixtures as test_a_file! macro invocations.
package emit

import (
	"fmt"
	"io"
	"path"
	"strings"

	"fixturegen/internal/domain"
)

// MacroName is the test-declaration macro every line invokes
const MacroName = "test_a_file!"

// FailMarker tags fixtures that have no expected output
const FailMarker = "fail"

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Emitter formats fixtures into macro lines
type Emitter struct {
	inputPrefix    string
	expectedPrefix string
}

// NewEmitter creates a new Emitter. The prefixes are joined to filenames with forward slashes.
func NewEmitter(inputPrefix, expectedPrefix string) *Emitter {
	return &Emitter{
		inputPrefix:    inputPrefix,
		expectedPrefix: expectedPrefix,
	}
}

// Line returns the macro invocation for a single fixture, without a trailing newline
func (e *Emitter) Line(f domain.Fixture) string {
	input := includeStr(path.Join(e.inputPrefix, f.FileName))
	if f.HasExpected() {
		expected := includeStr(path.Join(e.expectedPrefix, f.FileName))
		return fmt.Sprintf("%s(%s, %s, %s);", MacroName, input, expected, f.Name)
	}
	return fmt.Sprintf("%s(%s %s, %s);", MacroName, FailMarker, input, f.Name)
}

// Emit writes one line per fixture to w, in the order given
func (e *Emitter) Emit(w io.Writer, fixtures []domain.Fixture) error {
	for _, f := range fixtures {
		if _, err := io.WriteString(w, e.Line(f)+"\n"); err != nil {
			return fmt.Errorf("write fixture %s: %w", f.FileName, err)
		}
	}
	return nil
}

func includeStr(p string) string {
	return `include_str!("` + literalEscaper.Replace(p) + `")`
}
