package main

const benchmarksFileTemplate = `
{{define "header"}}// Code generated by benchmarkCodeGen. DO NOT EDIT.

package {{.PackageName}}

import (
	"testing"

	benchmark "github.com/xaionaro-go/chainmap/internal/benchmarkRoutines"
)
{{end}}

{{define "testFunction"}}
func TestMap(t *testing.T) {
	benchmark.DoTest(t, {{.FactoryName}})
}
{{end}}

{{define "testNilKeyFunction"}}
func TestMapNilKeyAndValue(t *testing.T) {
	benchmark.DoTestNilKeyAndValue(t, {{.FactoryName}})
}
{{end}}

{{define "testCollisionsFunction"}}
func TestMapCollisions(t *testing.T) {
	benchmark.DoTestCollisions(t, {{.FactoryName}})
}
{{end}}

{{define "benchmarkFunction"}}
func Benchmark{{.Action}}_{{.KeyType}}KeyType_initialCapacity{{.InitialCapacity}}_keyAmount{{.KeyAmount}}(b *testing.B) {
	benchmark.DoBenchmarkOf{{.Action}}(b, {{.FactoryName}}, {{.InitialCapacity}}, {{.KeyAmount}}, "{{.KeyType}}")
}
{{end}}
`
