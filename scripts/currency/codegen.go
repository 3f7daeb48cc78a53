package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

func main() {
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("reading currency table: %w", err))
	}

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("converting currency table: %w", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("generating currency data: %w", err))
	}

	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("writing currency data: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 4
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToCurrencies validates the records and orders them so that
// XXX, the zero value of Currency, always comes first.
func convertDataToCurrencies(data [][]string) ([]currency, error) {
	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return b != "XXX"
		case b == "XXX":
			return false
		}
		return a < b
	})

	seen := map[string]bool{}
	currs := make([]currency, 0, len(data))
	for _, rec := range data {
		code, num := rec[1], rec[2]
		if len(code) != 3 || strings.ToUpper(code) != code {
			return nil, fmt.Errorf("currency %q: invalid alphabetic code", code)
		}
		if len(num) != 3 {
			return nil, fmt.Errorf("currency %q: invalid numeric code %q", code, num)
		}
		if seen[code] || seen[num] {
			return nil, fmt.Errorf("currency %q: duplicate code", code)
		}
		seen[code], seen[num] = true, true
		scale, err := strconv.Atoi(rec[3])
		if err != nil || scale < 0 {
			return nil, fmt.Errorf("currency %q: invalid scale %q", code, rec[3])
		}
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  code,
			Num:   num,
			Scale: scale,
		})
	}
	if len(currs) == 0 || currs[0].Code != "XXX" {
		return nil, fmt.Errorf("currency table must contain XXX")
	}
	if len(currs) > 256 {
		return nil, fmt.Errorf("currency table has %v entries, at most 256 fit into a Currency", len(currs))
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err := writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
