// expsum sweeps the complete exponential sums S(a,p) over the split primes
// p = 1 (mod 47) up to a bound and checks each against the Hasse-Weil bound
// 45*sqrt(p). Coefficients a are either given explicitly or drawn
// deterministically per prime from a seeded PRNG.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"Titan-Verify/expsum"
	"Titan-Verify/prof"
	"Titan-Verify/sieve"
)

type Runner struct {
	jsonFile         *os.File
	jsonBuf          *bufio.Writer
	jsonEnc          *json.Encoder
	csvFile          *os.File
	csvWriter        *csv.Writer
	csvHeaderWritten bool
}

func newRunner(jsonPath, csvPath string) (*Runner, error) {
	r := &Runner{}
	if jsonPath != "" {
		if err := os.MkdirAll(dirOf(jsonPath), 0o755); err != nil && !os.IsExist(err) {
			return nil, fmt.Errorf("create json dir: %w", err)
		}
		f, err := os.Create(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("open json output: %w", err)
		}
		buf := bufio.NewWriter(f)
		r.jsonFile = f
		r.jsonBuf = buf
		r.jsonEnc = json.NewEncoder(buf)
	}
	if csvPath != "" {
		if err := os.MkdirAll(dirOf(csvPath), 0o755); err != nil && !os.IsExist(err) {
			return nil, fmt.Errorf("create csv dir: %w", err)
		}
		f, err := os.Create(csvPath)
		if err != nil {
			return nil, fmt.Errorf("open csv output: %w", err)
		}
		r.csvFile = f
		r.csvWriter = csv.NewWriter(f)
	}
	return r, nil
}

func (r *Runner) Close() {
	if r.jsonBuf != nil {
		_ = r.jsonBuf.Flush()
	}
	if r.jsonFile != nil {
		_ = r.jsonFile.Close()
	}
	if r.csvWriter != nil {
		r.csvWriter.Flush()
	}
	if r.csvFile != nil {
		_ = r.csvFile.Close()
	}
}

// Write persists one row and flushes immediately: failure paths exit the
// process, so buffered rows would otherwise be lost.
func (r *Runner) Write(res expsum.Result) {
	if r.jsonEnc != nil {
		if err := r.jsonEnc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "json encode: %v\n", err)
		}
		if r.jsonBuf != nil {
			_ = r.jsonBuf.Flush()
		}
	}
	if r.csvWriter != nil {
		if !r.csvHeaderWritten {
			_ = r.csvWriter.Write([]string{"p", "a", "prec", "abs", "bound", "ratio", "ok"})
			r.csvHeaderWritten = true
		}
		row := []string{
			fmt.Sprintf("%d", res.P),
			fmt.Sprintf("%d", res.A),
			fmt.Sprintf("%d", res.Prec),
			fmt.Sprintf("%.6f", res.Abs),
			fmt.Sprintf("%.6f", res.Bound),
			fmt.Sprintf("%.6f", res.Ratio),
			fmt.Sprintf("%t", res.OK),
		}
		if err := r.csvWriter.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "csv write: %v\n", err)
		}
		r.csvWriter.Flush()
	}
}

func parseAList(spec string) ([]uint64, error) {
	var out []uint64
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", tok, err)
		}
		if v == 0 {
			return nil, fmt.Errorf("coefficient a = 0 degenerates to S = p")
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty coefficient list")
	}
	return out, nil
}

func main() {
	pmax := flag.Uint64("pmax", 6299, "largest split prime to test")
	maxPrimes := flag.Int("maxprimes", 0, "cap on the number of split primes (0 = all)")
	aValues := flag.Int("avalues", 3, "sampled coefficients per prime")
	aSpec := flag.String("a", "", "explicit comma list of coefficients (overrides -avalues)")
	label := flag.String("label", "sweep", "seed label for the coefficient sampler")
	prec := flag.Uint("prec", expsum.DefaultPrec, "big-float precision in bits")
	jsonPath := flag.String("jsonl", "", "optional JSONL output path")
	csvPath := flag.String("csv", "", "optional CSV output path")
	flag.Parse()

	var explicit []uint64
	if *aSpec != "" {
		var err error
		if explicit, err = parseAList(*aSpec); err != nil {
			exitErr("parse a: %v", err)
		}
	}

	start := time.Now()
	primes := sieve.BadPrimes(*pmax)
	prof.Track(start, "prime sieve")
	if len(primes) == 0 {
		exitErr("no split primes up to %d (smallest is %d)", *pmax, sieve.SmallestBadPrime())
	}
	if *maxPrimes > 0 && len(primes) > *maxPrimes {
		primes = primes[:*maxPrimes]
	}

	runner, err := newRunner(*jsonPath, *csvPath)
	if err != nil {
		exitErr("init runner: %v", err)
	}
	defer runner.Close()

	fmt.Printf("Exponential sums S(a,p) over %d split primes up to %d, prec %d bits\n", len(primes), *pmax, *prec)
	fmt.Println("       p        a          |S|        bound   ratio  status")

	checked := 0
	failures := 0
	start = time.Now()
	for _, p := range primes {
		coeffs := explicit
		if coeffs == nil {
			coeffs, err = expsum.SampleCoefficients(*label, p, *aValues)
			if err != nil {
				exitErr("sample a for p=%d: %v", p, err)
			}
		}
		for _, a := range coeffs {
			if a%p == 0 {
				exitErr("coefficient %d vanishes mod %d", a, p)
			}
			res, _ := expsum.Check(a, p, *prec)
			checked++
			status := "ok"
			if !res.OK {
				status = "FAIL"
				failures++
			}
			fmt.Printf("%8d %8d %12.4f %12.4f  %.4f  %s\n", res.P, res.A, res.Abs, res.Bound, res.Ratio, status)
			runner.Write(res)
		}
	}
	prof.Track(start, "sum sweep")

	fmt.Println()
	fmt.Printf("Checked %d sums over %d primes, %d above the bound\n", checked, len(primes), failures)
	prof.Report(os.Stdout)
	if failures > 0 {
		fmt.Println("FAIL")
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func dirOf(path string) string {
	if path == "" {
		return "."
	}
	last := strings.LastIndexByte(path, '/')
	if last == -1 {
		return "."
	}
	if last == 0 {
		return "/"
	}
	return path[:last]
}

func exitErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
