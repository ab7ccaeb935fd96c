package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

var (
	benchmarkActionNames = []string{"Put" /*"RePut", */, "Get" /*"GetMiss", */, "Remove"}
	initialCapacities    = []int{0, 65536}
	keyAmounts           = []int{16, 512, 65536}
	keyTypes             = []string{"int", "string" /*"bytes", "struct"*/}
)

type hashMapSourceFile struct {
	Name        string
	PackageName string
}

type hashMapSourceFiles []hashMapSourceFile

func (file hashMapSourceFile) factoryName() string {
	if file.PackageName == "chainmap" {
		return "newMap"
	}
	return "NewWithArgs"
}

// GenerateTestFile writes the tests next to the source file:
// myMap.go -> myMap_test.go
func (file hashMapSourceFile) GenerateTestFile() error {
	if !strings.HasSuffix(file.Name, ".go") || len(file.Name) <= len(".go") {
		return fmt.Errorf("not a Go source file name: %q", file.Name)
	}
	outFileName := strings.TrimSuffix(file.Name, ".go") + "_test.go"

	outFile, err := os.Create(outFileName)
	if err != nil {
		return err
	}
	if err := file.writeTests(outFile); err != nil {
		outFile.Close()
		return errors.Wrapf(err, "unable to write %s", outFileName)
	}
	return outFile.Close()
}

func (file hashMapSourceFile) writeTests(out io.Writer) error {
	tpl, err := template.New("benchmarksFileTemplate").Parse(benchmarksFileTemplate)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	data := map[string]interface{}{
		"PackageName": file.PackageName,
		"FactoryName": file.factoryName(),
	}

	sections := []string{"header", "testFunction"}
	if file.PackageName != "cornelkHashmap" { // cornelk/hashmap does not support nil keys
		sections = append(sections, "testNilKeyFunction")
	}
	if file.PackageName == "chainmap" {
		sections = append(sections, "testCollisionsFunction")
	}
	for _, section := range sections {
		if err := tpl.ExecuteTemplate(w, section, data); err != nil {
			return err
		}
	}

	capacities := initialCapacities
	switch file.PackageName {
	case "builtinSyncMap", "cornelkHashmap":
		capacities = []int{0}
	}

	for _, actionName := range benchmarkActionNames {
		data["Action"] = actionName
		for _, keyType := range keyTypes {
			data["KeyType"] = keyType
			for _, initialCapacity := range capacities {
				data["InitialCapacity"] = initialCapacity
				for _, keyAmount := range keyAmounts {
					if keyAmount*1024 < initialCapacity {
						continue
					}
					data["KeyAmount"] = keyAmount
					if err := tpl.ExecuteTemplate(w, "benchmarkFunction", data); err != nil {
						return err
					}
				}
			}
		}
	}

	return w.Flush()
}
