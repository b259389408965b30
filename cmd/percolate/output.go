package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simoninireland/cncp-playground/experiment"
	"github.com/simoninireland/cncp-playground/percolation"
)

const (
	formatJSONLines = "jsonl"
	formatCSV       = "csv"
	formatYAML      = "yaml"
)

// sampleRow is one sample tagged with the trial it came from.
type sampleRow struct {
	Trial string `json:"trial"`
	Index int    `json:"index"`
	percolation.Sample
}

var sampleHeader = []string{"trial", "index", "depth", "context", "p", "n", "m", "occupied", "offset", "gcc"}

var pointHeader = []string{"depth", "context", "p", "trials", "mean_gcc", "max_gcc"}

func writeTrials(w io.Writer, format string, trials []experiment.Trial) error {
	switch format {
	case formatYAML:
		return writeYAML(w, trials)
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(sampleHeader); err != nil {
			return err
		}
		for _, t := range trials {
			for _, s := range t.Samples {
				rec := []string{
					t.ID, strconv.Itoa(t.Index), strconv.Itoa(s.Depth), joinFloats(s.Context),
					formatFloat(s.P), strconv.Itoa(s.N), strconv.Itoa(s.M),
					strconv.Itoa(s.Occupied), strconv.Itoa(s.Offset), strconv.Itoa(s.GCC),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		cw.Flush()
		return cw.Error()
	case formatJSONLines:
		enc := json.NewEncoder(w)
		for _, t := range trials {
			for _, s := range t.Samples {
				if err := enc.Encode(sampleRow{Trial: t.ID, Index: t.Index, Sample: s}); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writePoints(w io.Writer, format string, points []experiment.Point) error {
	switch format {
	case formatYAML:
		return writeYAML(w, points)
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(pointHeader); err != nil {
			return err
		}
		for _, pt := range points {
			rec := []string{
				strconv.Itoa(pt.Depth), joinFloats(pt.Context), formatFloat(pt.P),
				strconv.Itoa(pt.Trials), formatFloat(pt.MeanGCC), strconv.Itoa(pt.MaxGCC),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case formatJSONLines:
		enc := json.NewEncoder(w)
		for _, pt := range points {
			if err := enc.Encode(pt); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// joinFloats renders a context as p0;p1;... so it stays one CSV field.
func joinFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}

	return strings.Join(parts, ";")
}
