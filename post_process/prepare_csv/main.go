// prepare_csv converts outputs of "go test -bench" of the generated
// benchmarks into a CSV table: one row per key amount and one column per
// series (map implementation + initial capacity).
//
// Usage: prepare_csv <keyType> <action> <benchmark output file>...
//
// The name of each file (without the extension) is used as the name of the
// map implementation.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/benchmark/parse"
)

var (
	benchmarkNameRegexp = regexp.MustCompile(`^Benchmark([A-Za-z]+)_([A-Za-z]+)KeyType_initialCapacity([0-9]+)_keyAmount([0-9]+)(-[0-9]+)?$`)
)

type benchmarkName struct {
	Action          string
	KeyType         string
	InitialCapacity string
	KeyAmount       int
}

func parseBenchmarkName(name string) (*benchmarkName, bool) {
	matches := benchmarkNameRegexp.FindStringSubmatch(name)
	if matches == nil {
		return nil, false
	}
	keyAmount, err := strconv.Atoi(matches[4])
	if err != nil {
		return nil, false
	}
	return &benchmarkName{
		Action:          matches[1],
		KeyType:         matches[2],
		InitialCapacity: matches[3],
		KeyAmount:       keyAmount,
	}, true
}

func checkErr(err error) {
	if err == nil {
		return
	}
	logrus.Fatal(err)
}

func averageF64(values ...float64) float64 {
	sum := float64(0)
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

func readBenchmarks(filePath string) parse.Set {
	file, err := os.Open(filePath)
	checkErr(err)
	defer file.Close()

	set, err := parse.ParseSet(file)
	checkErr(err)
	return set
}

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal(`It's required to pass keyType name (for example: "int")`)
	}
	if len(os.Args) < 3 {
		logrus.Fatal(`It's required to pass action name (for example: "Put")`)
	}
	if len(os.Args) < 4 {
		logrus.Fatal(`It's required to pass at least one file path as an argument`)
	}

	requiredKeyTypeName := os.Args[1]
	requiredActionName := os.Args[2]
	filePaths := os.Args[3:]

	seriesNamesMap := map[string]bool{}
	results := map[int]map[string][]float64{}

	for _, filePath := range filePaths {
		mapTypeName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

		for name, benchmarks := range readBenchmarks(filePath) {
			parsedName, ok := parseBenchmarkName(name)
			if !ok {
				logrus.WithField("benchmark", name).WithField("file", filePath).Debug("skipping unknown benchmark")
				continue
			}

			if parsedName.KeyType != requiredKeyTypeName {
				continue
			}

			if parsedName.Action != requiredActionName {
				continue
			}

			seriesName := mapTypeName + "_" + parsedName.Action + "_" + parsedName.KeyType + "_initialCapacity" + parsedName.InitialCapacity
			seriesNamesMap[seriesName] = true

			if results[parsedName.KeyAmount] == nil {
				results[parsedName.KeyAmount] = map[string][]float64{}
			}
			for _, benchmark := range benchmarks {
				results[parsedName.KeyAmount][seriesName] = append(results[parsedName.KeyAmount][seriesName], benchmark.NsPerOp)
			}
		}
	}

	if len(seriesNamesMap) == 0 {
		logrus.Warnf("no benchmarks found for keyType %q and action %q", requiredKeyTypeName, requiredActionName)
	}

	seriesNames := []string{}
	for seriesName := range seriesNamesMap {
		seriesNames = append(seriesNames, seriesName)
	}
	sort.Strings(seriesNames)

	keyAmounts := []int{}
	for keyAmount := range results {
		keyAmounts = append(keyAmounts, keyAmount)
	}
	sort.Ints(keyAmounts)

	w := csv.NewWriter(os.Stdout)
	checkErr(w.Write(append([]string{""}, seriesNames...)))

	for _, keyAmount := range keyAmounts {
		row := []string{strconv.Itoa(keyAmount)}

		serieses := results[keyAmount]
		for _, seriesName := range seriesNames {
			values := serieses[seriesName]
			if len(values) == 0 {
				row = append(row, "")
				continue
			}

			row = append(row, fmt.Sprintf("%.1f", averageF64(values...)))
		}
		checkErr(w.Write(row))
	}

	w.Flush()
	checkErr(w.Error())
}
