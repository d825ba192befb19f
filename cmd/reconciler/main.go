package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"hotel-reconciliation/internal/config"
	"hotel-reconciliation/internal/gateway"
	"hotel-reconciliation/internal/usecase"
	"hotel-reconciliation/pkg/logger"
)

func main() {
	hoteliersStr := flag.String("hoteliers", "", "Comma-separated hoteliers workbook paths (required)")
	otaStr := flag.String("ota", "", "Comma-separated OTA document paths, xlsx or pdf (required)")
	outPath := flag.String("out", "", "Report workbook path (default from RECON_OUTPUT)")
	forceOCR := flag.Bool("ocr", false, "Force text recognition for every PDF page")
	workers := flag.Int("workers", 0, "Concurrent pairings (default from RECON_WORKERS)")
	flag.Parse()

	if *hoteliersStr == "" || *otaStr == "" {
		fmt.Println("Error: both -hoteliers and -ota are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load()
	if *outPath != "" {
		cfg.OutputPath = *outPath
	}
	if *forceOCR {
		cfg.ForceOCR = true
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	log := logger.NewLogger(cfg.LogLevel)

	hoteliersPaths := splitPaths(*hoteliersStr)
	otaPaths := splitPaths(*otaStr)

	// Manual dependency wiring: gateways first, then the usecase on top.
	grids := gateway.NewExcelSource()
	texts := gateway.NewPDFTextSource()
	ocr := gateway.NewTesseractRecognizer(cfg.OCRLanguage)
	recovery := usecase.NewTextRecoveryEngine(texts, ocr, log)
	uc := usecase.NewReconciliationUseCase(grids, recovery, log, cfg.Workers, cfg.ForceOCR)

	out := gateway.NewExcelReportWriter()
	report, err := uc.Run(context.Background(), hoteliersPaths, otaPaths, out)
	if err != nil {
		log.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}
	if err := out.Save(cfg.OutputPath); err != nil {
		log.Error("saving report failed", "error", err)
		os.Exit(1)
	}

	for _, run := range report.Runs {
		fmt.Printf("%s [%s %s %s]: matched=%d missing_in_hoteliers=%d missing_in_ota=%d\n",
			run.OTAFile, run.Hotel, run.Brand, run.Period,
			run.MatchedCount, run.MissingOnLeft, run.MissingOnRight)
	}
	for _, de := range report.Errors {
		fmt.Printf("FAILED %s: %v\n", de.File, de.Err)
	}
	fmt.Printf("Report written to %s (%d runs, %d failed documents)\n",
		cfg.OutputPath, len(report.Runs), len(report.Errors))

	if len(report.Runs) == 0 && len(report.Errors) > 0 {
		os.Exit(1)
	}
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
