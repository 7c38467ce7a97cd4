package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"solar-profit/internal/analysis"
	"solar-profit/internal/api/models"
	"solar-profit/internal/client"
	"solar-profit/internal/config"
	"solar-profit/internal/estimator"
	"solar-profit/internal/logging"
	"solar-profit/internal/model"
	"solar-profit/internal/report"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logging.Component("cli")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	switch os.Args[1] {
	case "estimate":
		cmdEstimate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "get":
		cmdGet(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli estimate --power 10 --initial 2 --improved 1 --rate 2 [--json] [--server http://localhost:8080]")
	fmt.Println("  cli compare --scenarios examples/scenarios.yaml [--out results/compare.csv] [--server http://localhost:8080]")
	fmt.Println("  cli get --server http://localhost:8080 --id <estimate id> [--json]")
	fmt.Println("  cli sweep --power 10 --initial 2 --rate 2 --from 0.1 --to 2 --step 0.1 --out results/sweep.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - fields that do not parse as numbers are treated as 0")
	fmt.Println("  - the integration window is always power ± improved deviation")
}

// inputFlags registers the four form fields as string flags.
func inputFlags(fs *flag.FlagSet) func() (model.Inputs, model.ParsedInputs) {
	power := fs.String("power", "", "Plant power (MW)")
	initial := fs.String("initial", "", "Deviation before the improvement (MW)")
	improved := fs.String("improved", "", "Deviation after the improvement (MW)")
	rate := fs.String("rate", "", "Electricity price per kWh")
	return func() (model.Inputs, model.ParsedInputs) {
		return model.ParseInputs(model.RawInputs{
			Power:             *power,
			InitialDeviation:  *initial,
			ImprovedDeviation: *improved,
			RatePerKWh:        *rate,
		})
	}
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		log.Fatalf("set up logging: %v", err)
	}
	return cfg
}

func cmdEstimate(args []string) {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	parse := inputFlags(fs)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	server := fs.String("server", "", "Optional: compute on a running API server instead of locally")
	asJSON := fs.Bool("json", false, "Print the structured result as JSON")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	in, parsed := parse()
	for _, name := range parsed.Defaulted() {
		log.WithField("field", name).Warn("not a number, using 0")
	}

	var (
		r    estimator.Report
		resp *models.EstimateResponse
	)
	if *server != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		var err error
		resp, err = remote(ctx, *server).Estimate(ctx, in)
		if err != nil {
			log.Fatalf("remote estimate: %v", err)
		}
		r = resp.Report.Estimator()
	} else {
		if err := estimator.CheckDomain(in); err != nil {
			if cfg.Estimator.StrictDomain {
				log.Fatalf("invalid input: %v", err)
			}
			log.WithError(err).Warn("result is outside the numeric domain")
		}
		r = cfg.NewEstimator().Compute(in)
	}

	printEstimate(r, resp, in, parsed, *asJSON)
}

// remote returns a client for server after checking that it is up.
func remote(ctx context.Context, server string) *client.Client {
	c := client.New(server)
	if err := c.Health(ctx); err != nil {
		log.Fatalf("server %s is not healthy: %v", server, err)
	}
	return c
}

func cmdGet(args []string) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	server := fs.String("server", "http://localhost:8080", "API server")
	id := fs.String("id", "", "Estimate id returned by a previous request")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	asJSON := fs.Bool("json", false, "Print the structured result as JSON")
	_ = fs.Parse(args)

	if *id == "" {
		fmt.Println("--id is required")
		os.Exit(2)
	}
	loadConfig(*cfgPath)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	resp, err := remote(ctx, *server).GetEstimate(ctx, *id)
	if err != nil {
		log.Fatalf("get estimate: %v", err)
	}
	printEstimate(resp.Report.Estimator(), resp, resp.Inputs, model.ParsedInputs{}, *asJSON)
}

func printEstimate(r estimator.Report, resp *models.EstimateResponse, in model.Inputs, parsed model.ParsedInputs, asJSON bool) {
	if asJSON {
		if resp == nil {
			resp = &models.EstimateResponse{
				Inputs:    in,
				Defaulted: parsed.Defaulted(),
				Report:    models.NewReport(r),
				Finite:    r.Finite(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}
	fmt.Println(report.FormatText(r))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	scenarios := fs.String("scenarios", "", "Path to scenarios YAML")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional CSV output path")
	server := fs.String("server", "", "Optional: rank on a running API server instead of locally")
	_ = fs.Parse(args)

	if *scenarios == "" {
		fmt.Println("--scenarios is required")
		os.Exit(2)
	}
	cfg := loadConfig(*cfgPath)

	s, err := config.LoadScenarios(*scenarios)
	if err != nil {
		log.Fatalf("load scenarios: %v", err)
	}
	var ranked []analysis.Comparison
	if *server != "" {
		ranked = remoteCompare(*server, s)
	} else {
		ranked = analysis.Compare(s.Base, s.Variations, cfg.NewEstimator())
	}

	fmt.Printf("%-4s %-20s %-10s %-10s %-12s %-12s %-12s\n", "rank", "name", "dev->dev", "eff", "net before", "net after", "gain")
	rows := make([]report.Row, 0, len(ranked))
	for i, c := range ranked {
		fmt.Printf(
			"%-4d %-20s %-4.2f/%-5.2f %-10.4f %-12s %-12s %-12s\n",
			i+1,
			c.Name,
			c.Inputs.InitialDeviation,
			c.Inputs.ImprovedDeviation,
			c.Report.EfficiencyAfter,
			report.Fixed2(c.Report.NetBefore),
			report.Fixed2(c.Report.NetAfter),
			report.Fixed2(c.Gain()),
		)
		rows = append(rows, report.Row{Name: c.Name, Inputs: c.Inputs, Report: c.Report})
	}
	writeRows(*outPath, rows)
}

func remoteCompare(server string, s *config.Scenarios) []analysis.Comparison {
	req := models.CompareRequest{Base: models.NewEstimateRequest(s.Base)}
	for _, v := range s.Variations {
		req.Variations = append(req.Variations, models.Variation{
			Name:   v.Name,
			Inputs: models.NewOverridesRequest(v.Overrides),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	resp, err := remote(ctx, server).Compare(ctx, req)
	if err != nil {
		log.Fatalf("remote compare: %v", err)
	}
	out := make([]analysis.Comparison, 0, len(resp.Comparison))
	for _, c := range resp.Comparison {
		out = append(out, analysis.Comparison{Name: c.Name, Inputs: c.Inputs, Report: c.Report.Estimator()})
	}
	return out
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	parse := inputFlags(fs)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	from := fs.Float64("from", 0.1, "First improved deviation (MW)")
	to := fs.Float64("to", 1, "Last improved deviation (MW)")
	step := fs.Float64("step", 0.1, "Improved deviation increment (MW)")
	outPath := fs.String("out", "results/sweep.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	in, _ := parse()

	points, err := analysis.Sweep(in, *from, *to, *step, cfg.NewEstimator())
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	rows := make([]report.Row, 0, len(points))
	for _, p := range points {
		pin := in
		pin.ImprovedDeviation = p.ImprovedDeviation
		rows = append(rows, report.Row{
			Name:   "improved=" + strconv.FormatFloat(p.ImprovedDeviation, 'f', -1, 64),
			Inputs: pin,
			Report: p.Report,
		})
	}
	writeRows(*outPath, rows)
}

func writeRows(path string, rows []report.Row) {
	if path == "" {
		return
	}
	if err := report.WriteRowsCSVFile(path, rows); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	log.WithFields(logrus.Fields{"rows": len(rows), "path": path}).Info("wrote csv")
}
