package test

import (
	"bufio"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// getProjectRoot returns the project root directory based on this test file's location.
func getProjectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filepath.Dir(filename))
}

// projectTestFiles lists the module's _test.go files. Hidden and
// underscore-prefixed directories are ignored like the go tool does.
func projectTestFiles(t *testing.T) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(getProjectRoot(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != getProjectRoot() && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, "_test.go") && filepath.Base(path) != "quality_test.go" {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err, "walking project")
	require.NotEmpty(t, files, "no test files found")
	return files
}

// TestNoSkippedTests ensures no test files contain t.Skip() calls.
// Skipped tests hide failures - tests should either pass or fail, never skip.
func TestNoSkippedTests(t *testing.T) {
	forbiddenPatterns := []string{
		"t.Skip(",
		"t.SkipNow(",
		"testing.Short()",
	}

	var violations []string
	for _, testFile := range projectTestFiles(t) {
		f, err := os.Open(testFile)
		require.NoError(t, err)

		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			if strings.HasPrefix(strings.TrimSpace(line), "//") {
				continue
			}
			for _, pattern := range forbiddenPatterns {
				if strings.Contains(line, pattern) {
					violations = append(violations, fmt.Sprintf("%s:%d: contains forbidden pattern %q", testFile, lineNum, pattern))
				}
			}
		}
		_ = f.Close()
		require.NoError(t, scanner.Err(), "scanning %s", testFile)
	}

	if len(violations) > 0 {
		t.Errorf("Found %d test skip violation(s):\n  %s", len(violations), strings.Join(violations, "\n  "))
	}
}

// TestNoEmptyTests ensures every Test function has a body.
func TestNoEmptyTests(t *testing.T) {
	fset := token.NewFileSet()

	var empty []string
	for _, testFile := range projectTestFiles(t) {
		file, err := parser.ParseFile(fset, testFile, nil, 0)
		require.NoError(t, err, "parsing %s", testFile)

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "Test") {
				continue
			}
			if fn.Body == nil || len(fn.Body.List) == 0 {
				empty = append(empty, fmt.Sprintf("%s: %s", fset.Position(fn.Pos()), fn.Name.Name))
			}
		}
	}

	if len(empty) > 0 {
		t.Errorf("Found %d empty test(s):\n  %s", len(empty), strings.Join(empty, "\n  "))
	}
}
