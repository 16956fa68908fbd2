// Command batch runs the settlement pipeline once over an input JSON
// document and writes the resulting rental_modifications record. It is
// the file-based collaborator around the in-memory computation core.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"rental/internal/config"
	"rental/internal/dataset"
	"rental/internal/service"
)

// output mirrors the external output record shape.
type output struct {
	RentalModifications []modificationOutput `json:"rental_modifications"`
}

type modificationOutput struct {
	ID       int            `json:"id"`
	RentalID int            `json:"rental_id"`
	Actions  []actionOutput `json:"actions"`
}

type actionOutput struct {
	Who    string `json:"who"`
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

func main() {
	inPath := flag.String("in", "data.json", "path to the input dataset document")
	outPath := flag.String("out", "output.json", "path to write the settlement output")
	flag.Parse()

	cfg := config.Load()

	if err := run(context.Background(), cfg, *inPath, *outPath); err != nil {
		log.Fatalf("batch failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var input dataset.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("%w: %v", dataset.ErrInvalidInput, err)
	}

	ds, err := dataset.Load(input)
	if err != nil {
		return err
	}

	pricingService := service.NewPricingService()
	ledgerService := service.NewLedgerService(cfg.Pricing.DeductibleReductionPerDay)
	settlementService := service.NewSettlementService(pricingService, ledgerService)

	results, err := settlementService.SettleModifications(ctx, ds)
	if err != nil {
		return err
	}

	out := output{RentalModifications: make([]modificationOutput, 0, len(results))}
	for _, r := range results {
		mod := modificationOutput{
			ID:       r.ModificationID,
			RentalID: r.RentalID,
			Actions:  make([]actionOutput, 0, len(r.Actions)),
		}
		for _, a := range r.Actions {
			mod.Actions = append(mod.Actions, actionOutput{
				Who:    string(a.Who),
				Type:   string(a.Type()),
				Amount: a.AbsAmount(),
			})
		}
		out.RentalModifications = append(out.RentalModifications, mod)
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	// Trailing newline so the file ends like a text file should.
	if err := os.WriteFile(outPath, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Printf("settled %d rental modifications into %s", len(results), outPath)
	return nil
}
