package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dream-go/godg/dg"
	"github.com/dream-go/godg/envconfig"
	"github.com/dream-go/godg/format"
)

// exampleRecord is the CBOR shape written for each extracted example.
type exampleRecord struct {
	Source   string    `cbor:"source"`
	Line     int       `cbor:"line"`
	Index    int32     `cbor:"index"`
	Color    int32     `cbor:"color"`
	Policy   string    `cbor:"policy"`
	Winner   int32     `cbor:"winner"`
	Number   int32     `cbor:"number"`
	Features []float32 `cbor:"features"`
}

// sgfRecord is one non-blank line of a corpus file.
type sgfRecord struct {
	line int
	sgf  string
}

type extractStats struct {
	files     int
	records   int
	extracted int
	failed    int
}

func ExtractHandler(cmd *cobra.Command, args []string) error {
	lib, err := dg.Open()
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("parallel")
	if workers <= 0 {
		workers = envconfig.NumParallel
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var out *countingWriter
	var enc *cbor.Encoder
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = &countingWriter{w: f}
		enc = cbor.NewEncoder(out)
	}

	var mu sync.Mutex
	var stats extractStats

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, path := range args {
		records, err := readRecords(path)
		if err != nil {
			return err
		}
		stats.files++
		stats.records += len(records)

		for _, rec := range records {
			g.Go(func() error {
				ex, err := lib.ExtractSingleExample(rec.sgf)
				if err != nil {
					var statusErr *dg.StatusError
					if !errors.As(err, &statusErr) {
						return err
					}
					slog.Debug("skipping record", "source", path, "line", rec.line, "status", statusErr.Status)
					mu.Lock()
					stats.failed++
					mu.Unlock()
					return nil
				}

				mu.Lock()
				defer mu.Unlock()
				stats.extracted++
				if enc == nil {
					return nil
				}
				return enc.Encode(exampleRecord{
					Source:   path,
					Line:     rec.line,
					Index:    ex.Index,
					Color:    ex.Color,
					Policy:   ex.Policy,
					Winner:   ex.Winner,
					Number:   ex.Number,
					Features: ex.Features,
				})
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	prettyPrintExtractSummary(os.Stdout, stats, out)
	return nil
}

// readRecords returns the non-blank lines of an SGF corpus file, one game
// record per line, keyed by their 1-based line numbers.
func readRecords(path string) ([]sgfRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []sgfRecord
	scanner := bufio.NewScanner(f)
	// Professional game records stay small, but self-play lines with full
	// variation trees can get long.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		sgf := strings.TrimSpace(scanner.Text())
		if sgf == "" {
			continue
		}
		records = append(records, sgfRecord{line: n, sgf: sgf})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func prettyPrintExtractSummary(w io.Writer, stats extractStats, out *countingWriter) {
	table := newInfoTable(w)
	indent := ""
	data := [][]string{
		{indent, "Files:", strconv.Itoa(stats.files)},
		{indent, "Records:", strconv.Itoa(stats.records)},
		{indent, "Extracted:", strconv.Itoa(stats.extracted)},
		{indent, "Failed:", strconv.Itoa(stats.failed)},
	}
	if out != nil {
		data = append(data, []string{indent, "Output:", format.HumanBytes(out.n)})
	}
	fmt.Fprint(w, "Extract:\n")
	table.AppendBulk(data)
	table.Render()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
