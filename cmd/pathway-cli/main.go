// Command pathway-cli builds guideline pathways and scores from the command
// line, without running the HTTP server. Consults are audited to a local
// SQLite database under the user's data directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/conditions"
	"github.com/clinical-pathways-server/internal/config"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/render"
	"github.com/clinical-pathways-server/internal/scoring"
	"github.com/clinical-pathways-server/pkg/patient"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.LoadLiteConfig()
	logger := newLogger(cfg)
	engine := scoring.NewEngine(logger)
	registry := conditions.NewRegistry(logger, engine)

	app := &cli{cfg: cfg, logger: logger, registry: registry}

	var err error
	switch os.Args[1] {
	case "conditions":
		err = app.listConditions()
	case "describe":
		err = app.describe(os.Args[2:])
	case "pathways":
		err = app.listPathways()
	case "plan":
		err = app.plan(os.Args[2:])
	case "audit":
		err = app.audit(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: pathway-cli <command> [arguments]

Commands:
  conditions                     list supported conditions
  describe <slug>                show a condition's reference metadata
  pathways                       list buildable pathways
  plan <pathway> [flags]         build and print a management pathway
  audit export                   write the local audit trail as JSON

Plan flags:
  --params '<json>'              pathway parameters as inline JSON
  --params-file <path>           pathway parameters from a JSON file
  --patient-file <path>          derive parameters from a staged patient record
  --pci-within-120min            primary PCI is reachable within 120 minutes (with --patient-file)
  --thrombectomy-available       a thrombectomy service is available (with --patient-file)
`)
}

type cli struct {
	cfg      *config.LiteConfig
	logger   *logrus.Logger
	registry *conditions.Registry
}

func (a *cli) listConditions() error {
	for _, cond := range a.registry.All() {
		fmt.Printf("%-20s %s\n", cond.Slug(), cond.Name())
	}
	return nil
}

func (a *cli) describe(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pathway-cli describe <slug>")
	}

	cond, err := a.registry.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Print(render.MetadataText(cond.Name(), cond.Definition(), cond.Aetiology(),
		cond.RiskFactors(), cond.SignsSymptoms(), cond.Complications()))
	return nil
}

func (a *cli) listPathways() error {
	for _, name := range conditions.PathwayNames() {
		fmt.Println(name)
	}
	return nil
}

func (a *cli) plan(args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: pathway-cli plan <pathway> [flags]")
	}
	name := args[0]

	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	paramsJSON := fs.String("params", "", "pathway parameters as inline JSON")
	paramsFile := fs.String("params-file", "", "pathway parameters from a JSON file")
	patientFile := fs.String("patient-file", "", "derive parameters from a staged patient record")
	pciWithin120 := fs.Bool("pci-within-120min", false, "primary PCI is reachable within 120 minutes (with --patient-file)")
	thrombectomy := fs.Bool("thrombectomy-available", false, "a thrombectomy service is available (with --patient-file)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	svc := serviceCapabilities{
		PCIWithin120Min:       *pciWithin120,
		ThrombectomyAvailable: *thrombectomy,
	}
	raw, err := a.resolveParams(name, *paramsJSON, *paramsFile, *patientFile, svc)
	if err != nil {
		return err
	}

	plan, err := a.registry.BuildPlanJSON(name, raw)
	if err != nil {
		return err
	}

	fmt.Print(render.PlanText(plan))
	a.recordConsult(name, raw, plan)
	return nil
}

func (a *cli) resolveParams(name, inline, paramsFile, patientFile string, svc serviceCapabilities) (json.RawMessage, error) {
	set := 0
	for _, s := range []string{inline, paramsFile, patientFile} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of --params, --params-file or --patient-file is required")
	}

	switch {
	case inline != "":
		return json.RawMessage(inline), nil
	case paramsFile != "":
		return os.ReadFile(paramsFile)
	default:
		data, err := os.ReadFile(patientFile)
		if err != nil {
			return nil, err
		}
		var p patient.Patient
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("invalid patient record: %w", err)
		}
		params, err := paramsFromPatient(name, &p, svc)
		if err != nil {
			return nil, err
		}
		return json.Marshal(params)
	}
}

// recordConsult appends the plan consult to the local audit trail. Failures
// are logged and swallowed; the plan has already been printed.
func (a *cli) recordConsult(name string, params json.RawMessage, plan *pathway.Plan) {
	if !a.cfg.AuditEnabled {
		return
	}
	if err := a.cfg.EnsureDataDir(); err != nil {
		a.logger.WithError(err).Warn("Failed to create data directory")
		return
	}

	store, err := audit.NewSQLiteStore(a.cfg.AuditDBPath())
	if err != nil {
		a.logger.WithError(err).Warn("Failed to open audit store")
		return
	}
	defer store.Close()

	err = store.Save(context.Background(), &audit.ConsultRecord{
		Kind:      audit.KindPlan,
		Subject:   name,
		Params:    string(params),
		Outcome:   plan.StartStepID,
		StepCount: len(plan.Steps),
	})
	if err != nil {
		a.logger.WithError(err).Warn("Failed to save audit record")
	}
}

func (a *cli) audit(args []string) error {
	if len(args) != 1 || args[0] != "export" {
		return fmt.Errorf("usage: pathway-cli audit export")
	}

	store, err := audit.NewSQLiteStore(a.cfg.AuditDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ExportJSON(context.Background(), os.Stdout)
}

func newLogger(cfg *config.LiteConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return logger
}
