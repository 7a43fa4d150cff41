// plotsums renders the CSV or JSONL output of the expsum command as an
// interactive HTML scatter of |S(a,p)| / bound against p, with a dashed
// line at ratio 1 marking the Hasse-Weil bound.
package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type SumRow struct {
	P     uint64  `json:"P"`
	A     uint64  `json:"A"`
	Prec  uint    `json:"Prec"`
	Abs   float64 `json:"Abs"`
	Bound float64 `json:"Bound"`
	Ratio float64 `json:"Ratio"`
	OK    bool    `json:"OK"`
}

func main() {
	inPath := flag.String("in", "sums.jsonl", "input CSV or JSONL file from the expsum command")
	outPath := flag.String("out", "plot_sums.html", "output HTML file")
	flag.Parse()

	resolvedIn, err := resolveInput(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		os.Exit(1)
	}
	if resolvedIn != *inPath {
		fmt.Fprintf(os.Stderr, "[info] using %s (resolved from %s)\n", resolvedIn, *inPath)
	}

	rows, err := readRows(resolvedIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].P < rows[j].P })

	within, above := buildSeries(rows)

	page := components.NewPage().SetPageTitle("Exponential Sums vs. Hasse-Weil Bound")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "|S(a,p)| / 45*sqrt(p) over split primes",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(`
function (p) {
  var v = p.value || [];
  function fix4(x){ return (typeof x === 'number') ? x.toFixed(4) : '-'; }
  return [
    '<b>p = ' + v[0] + '</b>, a = ' + v[2],
    '|S| = ' + fix4(v[3]),
    'bound = ' + fix4(v[4]),
    'ratio = ' + fix4(v[1])
  ].join('<br/>');
}`),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "p",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "|S| / bound",
			Type: "value",
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
	)

	sc.AddSeries("Within bound", within,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 7}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			YAxis: 1.0,
			Name:  "Hasse-Weil bound",
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Label:     &opts.Label{Show: opts.Bool(true)},
			LineStyle: &opts.LineStyle{Type: "dashed", Width: 1},
		}),
	)
	if len(above) > 0 {
		sc.AddSeries("Above bound", above,
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "triangle", SymbolSize: 10}),
		)
	}

	page.AddCharts(sc)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s | points: within=%d, above=%d\n", *outPath, len(within), len(above))
}

func buildSeries(rows []SumRow) (within, above []opts.ScatterData) {
	for _, r := range rows {
		val := []interface{}{r.P, r.Ratio, r.A, r.Abs, r.Bound}
		if r.OK {
			within = append(within, opts.ScatterData{Value: val})
		} else {
			above = append(above, opts.ScatterData{Value: val})
		}
	}
	return
}

func resolveInput(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty input path")
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	var candidates []string
	switch filepath.Ext(path) {
	case "":
		candidates = append(candidates, path+".jsonl", path+".csv")
	default:
		base := path[:len(path)-len(filepath.Ext(path))]
		candidates = append(candidates, base+".jsonl", base+".csv")
	}
	for _, cand := range candidates {
		if _, err := os.Stat(cand); err == nil {
			return cand, nil
		}
	}
	return "", fmt.Errorf("unable to find sum data at %s", path)
}

func readRows(path string) ([]SumRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("input %s is empty", path)
	}

	var rows []SumRow
	if filepath.Ext(path) == ".csv" || trimmed[0] != '{' {
		rows, err = decodeCSV(data)
	} else {
		rows, err = decodeJSONL(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid sum rows found in %s", path)
	}
	return rows, nil
}

func decodeJSONL(data []byte) ([]SumRow, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	var rows []SumRow
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var row SumRow
		if err := json.Unmarshal(line, &row); err != nil {
			continue
		}
		if row.P == 0 {
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func decodeCSV(data []byte) ([]SumRow, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	var rows []SumRow
	for i, rec := range records {
		if len(rec) < 7 {
			continue
		}
		if i == 0 && rec[0] == "p" {
			continue // header
		}
		row, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCSVRow(rec []string) (SumRow, error) {
	var row SumRow
	var err error
	if row.P, err = strconv.ParseUint(rec[0], 10, 64); err != nil {
		return row, err
	}
	if row.A, err = strconv.ParseUint(rec[1], 10, 64); err != nil {
		return row, err
	}
	prec, err := strconv.ParseUint(rec[2], 10, 32)
	if err != nil {
		return row, err
	}
	row.Prec = uint(prec)
	if row.Abs, err = strconv.ParseFloat(rec[3], 64); err != nil {
		return row, err
	}
	if row.Bound, err = strconv.ParseFloat(rec[4], 64); err != nil {
		return row, err
	}
	if row.Ratio, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return row, err
	}
	if row.OK, err = strconv.ParseBool(rec[6]); err != nil {
		return row, err
	}
	return row, nil
}
