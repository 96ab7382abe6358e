// Package export renders partition results for display and file export.
//
// The algorithmic core returns raw clusters and seed positions; this package
// owns all numeric formatting. Integral-valued floats render without a
// trailing fractional part ("3", not "3.0").
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/voronoi1d"
)

// Text renders res as a human-readable report: the seed positions followed by
// each cluster with its size and members.
func Text(res *voronoi1d.Result) string {
	var b strings.Builder

	b.WriteString("seeds:\n")
	for i, s := range res.Seeds {
		fmt.Fprintf(&b, "  %d: %s\n", i, FormatValue(s))
	}

	b.WriteString("clusters:\n")
	for i, cluster := range res.Clusters {
		fmt.Fprintf(&b, "  %d (%d):", i, len(cluster))
		for _, v := range cluster {
			b.WriteByte(' ')
			b.WriteString(FormatValue(v))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteCSV writes res to w as (cluster_id, value) rows with a header line.
// Rows are ordered by cluster index, then by input order within the cluster.
func WriteCSV(w io.Writer, res *voronoi1d.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"cluster_id", "value"}); err != nil {
		return err
	}

	for i, cluster := range res.Clusters {
		id := strconv.Itoa(i)
		for _, v := range cluster {
			if err := cw.Write([]string{id, FormatValue(v)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteCSVFile writes the CSV export to path, creating or truncating the
// file. A path ending in ".gz" gzip-compresses the stream.
func WriteCSVFile(path string, res *voronoi1d.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f

	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)

		defer func() {
			if cerr := gz.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		w = gz
	}

	return WriteCSV(w, res)
}

// FormatValue renders v in the shortest form that round-trips, dropping the
// fractional part of integral values.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
