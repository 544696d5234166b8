// The output files are opened once and written after each genome.

package gc3

import (
	"bufio"
	"fmt"
	"os"

	"github.com/RiccardoKyriacou/GC3-scrips/pkg/genome"
	"github.com/RiccardoKyriacou/GC3-scrips/pkg/report"
)

type outFile struct {
	fp *os.File
	w  *bufio.Writer
}

type outputs struct {
	summary  *outFile
	outliers *outFile
	stats    *outFile // nil unless asked for
	pos      *outFile // ditto
	all      []*outFile
}

func (o *outputs) create(fname string) (*outFile, error) {
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	f := &outFile{fp: fp, w: bufio.NewWriter(fp)}
	o.all = append(o.all, f)
	return f, nil
}

// openOutputs creates every file we will write to. If one fails, the
// ones already open are closed.
func openOutputs(flags *CmdFlag) (*outputs, error) {
	o := new(outputs)
	var err error
	if o.summary, err = o.create(flags.Outfile); err != nil {
		return nil, err
	}
	if o.outliers, err = o.create(flags.OutlierFile); err != nil {
		o.close()
		return nil, err
	}
	if flags.ChromStats != "" {
		if o.stats, err = o.create(flags.ChromStats); err != nil {
			o.close()
			return nil, err
		}
	}
	if flags.Positions != "" {
		if o.pos, err = o.create(flags.Positions); err != nil {
			o.close()
			return nil, err
		}
	}
	if flags.PlotDir != "" {
		if err = os.MkdirAll(flags.PlotDir, 0o755); err != nil {
			o.close()
			return nil, err
		}
	}
	return o, nil
}

// write puts one genome into every file and flushes, so a later
// failure does not lose it.
func (o *outputs) write(sum *genome.Summary, flags *CmdFlag) error {
	if err := report.WriteOutliers(o.outliers.w, sum); err != nil {
		return err
	}
	if err := report.WriteSummary(o.summary.w, sum); err != nil {
		return err
	}
	if o.stats != nil {
		if err := report.WriteChromStats(o.stats.w, sum); err != nil {
			return err
		}
	}
	if o.pos != nil {
		if err := report.WritePositions(o.pos.w, sum); err != nil {
			return err
		}
	}
	if flags.PlotDir != "" {
		fname := report.PlotName(flags.PlotDir, sum.Species)
		if err := report.PlotGC3(fname, sum, flags.Cutoff); err != nil {
			return fmt.Errorf("plot %s: %w", fname, err)
		}
	}
	for _, f := range o.all {
		if err := f.w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// close flushes and closes everything, returning the first error.
func (o *outputs) close() error {
	var first error
	for _, f := range o.all {
		if err := f.w.Flush(); err != nil && first == nil {
			first = err
		}
		if err := f.fp.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
