package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const generatorName = "benchmarkCodeGen"

// isMarked reports whether the file carries "//go:generate benchmarkCodeGen".
func isMarked(goFile *ast.File) bool {
	for _, group := range goFile.Comments {
		for _, comment := range group.List {
			fields := strings.Fields(strings.TrimPrefix(comment.Text, "//"))
			if len(fields) >= 2 && fields[0] == "go:generate" && fields[1] == generatorName {
				return true
			}
		}
	}
	return false
}

// findSourceFiles returns the marked non-test files of the directory. If
// onlyFileName is set (go generate passes it through $GOFILE) only that
// file is considered.
func findSourceFiles(dirPath, onlyFileName string) (hashMapSourceFiles, error) {
	var fileNames []string
	if onlyFileName != "" {
		fileNames = []string{onlyFileName}
	} else {
		matches, err := filepath.Glob(filepath.Join(dirPath, "*.go"))
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if strings.HasSuffix(match, "_test.go") {
				continue
			}
			fileNames = append(fileNames, filepath.Base(match))
		}
	}

	fset := token.NewFileSet()
	var result hashMapSourceFiles
	for _, fileName := range fileNames {
		filePath := filepath.Join(dirPath, fileName)
		goFile, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse %s", filePath)
		}
		if !isMarked(goFile) {
			continue
		}
		result = append(result, hashMapSourceFile{Name: filePath, PackageName: goFile.Name.Name})
	}
	return result, nil
}
