// Package main provides the hefesto2xml binary: a one-shot translator
// from a HeFESTo parameter corpus to the EoS XML database.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	hefesto "github.com/sghelichkhani/HeFESTo-Parameters-010123"
	"github.com/sghelichkhani/HeFESTo-Parameters-010123/eosdoc"
	"github.com/sghelichkhani/HeFESTo-Parameters-010123/report"
)

func main() {
	var (
		phaseDir   string
		outFile    string
		configFile string
		reportDir  string
	)
	root := &cobra.Command{
		Use:   "hefesto2xml <param-dir>",
		Short: "translate a HeFESTo parameter corpus into an EoS XML database",
		Long: "hefesto2xml reads the per-mineral parameter files in <param-dir> and the\n" +
			"per-solution interaction files in its phase/ subdirectory, and writes a\n" +
			"single XML database for the EoS engine. A failed run writes nothing.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			paramDir := args[0]
			if phaseDir == "" {
				phaseDir = filepath.Join(paramDir, "phase")
			}
			cfg, err := hefesto.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if outFile == "" {
				outFile = cfg.DatasetID + ".xml"
			}
			return run(paramDir, phaseDir, outFile, reportDir, cfg)
		},
	}
	root.Flags().StringVar(&phaseDir, "phase-dir", "", "directory with the interaction files (default <param-dir>/phase)")
	root.Flags().StringVarP(&outFile, "out", "o", "", "output XML file (default <dataset-id>.xml)")
	root.Flags().StringVar(&configFile, "config", "", "YAML file overriding the built-in phase-group table")
	root.Flags().StringVar(&reportDir, "report", "", "also write corpus diagnostics (summary and histograms) into this directory")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(paramDir, phaseDir, outFile, reportDir string, cfg *hefesto.Config) error {
	corpus, err := hefesto.LoadCorpus(paramDir, phaseDir, cfg)
	if err != nil {
		return err
	}
	doc, warns, err := eosdoc.Assemble(corpus)
	if err != nil {
		return err
	}
	for _, w := range warns {
		log.Printf("warning: %s", w.Warning())
	}
	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := eosdoc.WriteXML(doc, out); err != nil {
		return err
	}
	log.Printf("wrote %s: %d minerals, %d solution phases, %d warnings",
		outFile, len(corpus.Minerals), len(corpus.Interactions), len(warns))
	if reportDir != "" {
		if err := writeReport(corpus, reportDir); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(corpus *hefesto.Corpus, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	stats := report.Summary(corpus)
	if err := os.WriteFile(filepath.Join(dir, "summary.txt"), []byte(stats.String()), 0o644); err != nil {
		return err
	}
	if err := report.CritTempHist(corpus, filepath.Join(dir, "tcrit.png")); err != nil {
		log.Printf("report: %v", err)
	}
	if err := report.InteractionHist(corpus, filepath.Join(dir, "interactions.png")); err != nil {
		log.Printf("report: %v", err)
	}
	return nil
}
