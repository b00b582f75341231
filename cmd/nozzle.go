package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/nozzle"
)

var (
	// Single nozzle
	nozzleTag      string
	nozzleService  string
	nozzleFlow     float64
	nozzleVelocity float64
	nozzlePressure float64
	nozzleFile     string

	// Annex P
	nozzleLoads = nozzle.DefaultLoadInput()
)

var nozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Nozzle sizing and shell nozzle loads",
	Long: `Size shell nozzles for flow and check piping loads.

Subcommands:
  select  - Pick the smallest NPS that meets the service velocity
  annexp  - Check piping loads against approximate Annex P allowables`,
}

var nozzleSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select nozzle sizes for flow",
	Long: `Select the smallest nominal pipe size whose velocity does not exceed
the service target (suction 2, discharge/outlet 3, drain 1, vent 8 m/s),
and a schedule whose wall covers the Barlow thickness P·OD/(2S).

A nozzle list can be read from YAML:

  - tag: N1
    service: pump suction
    flow: 100
  - tag: N2
    service: outlet
    flow: 250
    pressure: 10

Examples:
  gotank nozzle select --tag N1 --service suction --flow 100
  gotank nozzle select --file nozzles.yaml`,
	Run: runNozzleSelect,
}

var nozzleAnnexPCmd = &cobra.Command{
	Use:   "annexp",
	Short: "Check nozzle piping loads (Annex P, approximate)",
	Long: `Scale the allowable radial force and moments with shell thickness and
tank diameter and report the governing utilization.

  FR = 1.2e6 (t/10)(D/10)        N
  M  = 1.5e6 (t/10)(D/10)²       N·m

Examples:
  gotank nozzle annexp --diameter 10 --shell 10 --fr 500000 --ml 4e5 --mc 2e5`,
	Run: runNozzleAnnexP,
}

func init() {
	rootCmd.AddCommand(nozzleCmd)
	nozzleCmd.AddCommand(nozzleSelectCmd)
	nozzleCmd.AddCommand(nozzleAnnexPCmd)

	nozzleSelectCmd.Flags().StringVar(&nozzleTag, "tag", "N1", "Nozzle tag")
	nozzleSelectCmd.Flags().StringVarP(&nozzleService, "service", "s", "outlet", "Service (suction, discharge, outlet, drain, vent)")
	nozzleSelectCmd.Flags().Float64VarP(&nozzleFlow, "flow", "q", 0, "Required flow (m³/h)")
	nozzleSelectCmd.Flags().Float64Var(&nozzleVelocity, "velocity", 0, "Target velocity (m/s), service default when 0")
	nozzleSelectCmd.Flags().Float64VarP(&nozzlePressure, "pressure", "p", 0, "Design pressure (bar)")
	nozzleSelectCmd.Flags().StringVarP(&nozzleFile, "file", "f", "", "YAML nozzle list")

	nozzleAnnexPCmd.Flags().Float64VarP(&nozzleLoads.TankDiameter, "diameter", "D", nozzleLoads.TankDiameter, "Tank diameter (m)")
	nozzleAnnexPCmd.Flags().Float64Var(&nozzleLoads.ShellThicknessMM, "shell", nozzleLoads.ShellThicknessMM, "Shell thickness at the nozzle (mm)")
	nozzleAnnexPCmd.Flags().Float64Var(&nozzleLoads.NeckODMM, "neck-od", nozzleLoads.NeckODMM, "Nozzle neck OD (mm)")
	nozzleAnnexPCmd.Flags().Float64Var(&nozzleLoads.RadialForceN, "fr", 0, "Radial force FR (N)")
	nozzleAnnexPCmd.Flags().Float64Var(&nozzleLoads.LongitudinalNm, "ml", 0, "Longitudinal moment ML (N·m)")
	nozzleAnnexPCmd.Flags().Float64Var(&nozzleLoads.CircumferentialNm, "mc", 0, "Circumferential moment MC (N·m)")
}

// nozzleSpec is one entry of a YAML nozzle list
type nozzleSpec struct {
	Tag      string   `yaml:"tag"`
	Service  string   `yaml:"service"`
	Flow     float64  `yaml:"flow"`
	Velocity *float64 `yaml:"velocity"`
	Pressure float64  `yaml:"pressure"`
}

func readNozzleFile(path string) ([]nozzle.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "cannot read nozzle list", err)
	}
	var specs []nozzleSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "malformed nozzle list", err)
	}
	items := make([]nozzle.Item, len(specs))
	for i, s := range specs {
		items[i] = nozzle.Item{
			Tag:               s.Tag,
			Service:           s.Service,
			FlowM3h:           s.Flow,
			DesiredVelocity:   s.Velocity,
			DesignPressureBar: s.Pressure,
		}
	}
	return items, nil
}

func runNozzleSelect(cmd *cobra.Command, args []string) {
	var items []nozzle.Item
	if nozzleFile != "" {
		var err error
		if items, err = readNozzleFile(nozzleFile); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	} else {
		item := nozzle.Item{
			Tag:               nozzleTag,
			Service:           nozzleService,
			FlowM3h:           nozzleFlow,
			DesignPressureBar: nozzlePressure,
		}
		if nozzleVelocity > 0 {
			item.DesiredVelocity = &nozzleVelocity
		}
		items = []nozzle.Item{item}
	}

	sels, err := nozzle.Select(items)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                     NOZZLE SELECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tag\tNPS\tSch\tv (m/s)\tv target\tt req (mm)\n")
	fmt.Fprintf(w, "  ───\t───\t───\t───────\t────────\t──────────\n")
	for _, s := range sels {
		marker := ""
		if s.Fallback {
			marker = " ⚠ fallback"
		}
		fmt.Fprintf(w, "  %s\t%g\"\t%s\t%.3f\t%.1f\t%.3f%s\n",
			s.Tag, s.NPS, s.Schedule, s.VelocityMS, s.TargetVelocity, s.RequiredWallMM, marker)
	}
	w.Flush()
	fmt.Println()

	for _, s := range sels {
		if s.Hint != "" {
			fmt.Printf("  %s: %s\n", s.Tag, s.Hint)
		}
	}
	fmt.Println()
}

func runNozzleAnnexP(cmd *cobra.Command, args []string) {
	result, err := nozzle.CheckAnnexP(nozzleLoads)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NOZZLE LOADS - API 650 ANNEX P (APPROXIMATE)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tApplied\tAllowable\n")
	fmt.Fprintf(w, "  ────\t───────\t─────────\n")
	fmt.Fprintf(w, "  FR (N)\t%.0f\t%.0f\n", nozzleLoads.RadialForceN, result.AllowableFR)
	fmt.Fprintf(w, "  ML (N·m)\t%.0f\t%.0f\n", nozzleLoads.LongitudinalNm, result.AllowableML)
	fmt.Fprintf(w, "  MC (N·m)\t%.0f\t%.0f\n", nozzleLoads.CircumferentialNm, result.AllowableMC)
	w.Flush()
	fmt.Println()

	fmt.Printf("  Utilization: %.3f %s\n", result.Utilization, status(result.Pass))
	for _, n := range result.Notes {
		fmt.Printf("  Note: %s\n", n)
	}
	fmt.Println()
}
