// Command classify labels feature vectors with the frozen
// fitness planner tree.
//
// Each input row holds comma or space separated features.
// One label is printed per row.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/fitnesstree"
)

func main() {
	var inFile string
	var modelFile string
	var dumpFile string
	flag.StringVar(&inFile, "in", "", "input file (default: stdin)")
	flag.StringVar(&modelFile, "model", "", "tree json file (default: built-in model)")
	flag.StringVar(&dumpFile, "dump", "", "write the built-in model as json and exit")
	flag.Parse()

	if dumpFile != "" {
		if err := dumpModel(dumpFile); err != nil {
			essentials.Die(err)
		}
		log.Println("Saved built-in model to", dumpFile)
		return
	}

	predict := fitnesstree.Predict
	if modelFile != "" {
		model, err := loadModel(modelFile)
		if err != nil {
			essentials.Die(err)
		}
		log.Printf("Loaded model: depth=%d features=%d", model.Tree.Depth(),
			model.Tree.MinFeatures())
		predict = model.Predict
	}

	var in io.Reader = os.Stdin
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			essentials.Die(err)
		}
		defer f.Close()
		in = f
	}

	rows, err := readRows(in)
	if err != nil {
		essentials.Die(err)
	}
	for i, row := range rows {
		label, err := predict(row)
		if err != nil {
			essentials.Die("row", i, "-", err)
		}
		fmt.Println(label)
	}
}

func dumpModel(path string) (err error) {
	defer essentials.AddCtxTo("dump model", &err)
	data, err := json.Marshal(fitnesstree.ModelV1())
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

func loadModel(path string) (model *fitnesstree.Model, err error) {
	defer essentials.AddCtxTo("load model", &err)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree *fitnesstree.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return &fitnesstree.Model{Tree: tree}, nil
}

// readRows parses one feature vector per line.
// Blank lines and lines starting with # are skipped.
func readRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		row := make([]float64, len(fields))
		for i, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, essentials.AddCtx("line "+strconv.Itoa(lineNum), err)
			}
			row[i] = val
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}
