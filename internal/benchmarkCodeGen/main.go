// benchmarkCodeGen writes the "_test.go" file with the conformance tests and
// the benchmark grid of an I.Map implementation. The implementation file is
// the one marked with "//go:generate benchmarkCodeGen".
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	flag.Parse()
	dirPath := "."
	if flag.NArg() > 0 {
		dirPath = flag.Arg(0)
	}

	files, err := findSourceFiles(dirPath, os.Getenv("GOFILE"))
	if err != nil {
		logrus.WithError(err).Fatal("unable to find the map implementation")
	}
	if len(files) != 1 {
		logrus.Fatalf("expected exactly one file marked with \"//go:generate %s\" in %s, found %d", generatorName, dirPath, len(files))
	}

	log := logrus.WithField("file", files[0].Name).WithField("package", files[0].PackageName)
	log.Info("generating tests")
	if err := files[0].GenerateTestFile(); err != nil {
		log.WithError(err).Fatal("unable to generate tests")
	}
}
