package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"solar-profit/internal/estimator"
	"solar-profit/internal/model"

	"github.com/pkg/errors"
)

// Row is one named estimate, as written to CSV.
type Row struct {
	Name   string
	Inputs model.Inputs
	Report estimator.Report
}

var header = []string{
	"name",
	"power_mw",
	"initial_deviation_mw",
	"improved_deviation_mw",
	"rate_per_kwh",
	"window_start",
	"window_end",
	"efficiency_before",
	"efficiency_after",
	"earnings_before",
	"net_before",
	"penalties_before",
	"earnings_after",
	"net_after",
	"penalties_after",
	"gain",
}

// WriteRowsCSVFile writes rows to path, creating its directory if needed.
func WriteRowsCSVFile(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := WriteRowsCSV(f, rows); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

func WriteRowsCSV(out io.Writer, rows []Row) error {
	w := csv.NewWriter(out)

	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rep := r.Report
		row := []string{
			r.Name,
			fmtFloat(r.Inputs.Power),
			fmtFloat(r.Inputs.InitialDeviation),
			fmtFloat(r.Inputs.ImprovedDeviation),
			fmtFloat(r.Inputs.RatePerKWh),
			fmtFloat(rep.Window.Start),
			fmtFloat(rep.Window.End),
			fmtFloat(rep.EfficiencyBefore),
			fmtFloat(rep.EfficiencyAfter),
			fmtFloat(rep.EarningsBefore),
			fmtFloat(rep.NetBefore),
			fmtFloat(rep.PenaltiesBefore),
			fmtFloat(rep.EarningsAfter),
			fmtFloat(rep.NetAfter),
			fmtFloat(rep.PenaltiesAfter),
			fmtFloat(rep.Gain()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
