// Package importer reads and writes MonMan's CSV transaction format.
//
// Columns: item, quantity, amount, store, category, date. Amounts are
// Rupiah text in any form Parse accepts ("Rp 12.500" or "12500");
// dates are YYYY-MM-DD. A header row is written on export and skipped
// on import when present.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
	"github.com/monman-id/monman/internal/service"
)

var header = []string{"item", "quantity", "amount", "store", "category", "date"}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// Import reads CSV rows from r and logs each valid row against the
// budget. Rows failing draft validation are skipped and counted, not
// fatal; the file-level format errors are. Progress renders to out.
func Import(ctx context.Context, store service.Storage, budgetID string, r io.Reader, out io.Writer) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}

	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing transactions..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(out)
		}),
	)

	var result Result
	for i, record := range records {
		draft, err := parseRecord(record)
		if err == nil {
			_, err = store.AddTransaction(ctx, budgetID, draft)
		}
		if err != nil {
			slog.Warn("skipped csv row", "row", i+1, "error", err)
			result.Skipped++
		} else {
			result.Imported++
		}
		_ = bar.Add(1)
	}
	return result, nil
}

// Export writes transactions as CSV to w, header first.
func Export(w io.Writer, transactions []model.Transaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, txn := range transactions {
		record := []string{
			txn.Item,
			txn.Quantity,
			currency.Format(txn.Amount, currency.Options{}),
			txn.Store,
			txn.Category,
			txn.Date.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseRecord(record []string) (model.TransactionDraft, error) {
	if len(record) < 3 {
		return model.TransactionDraft{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	draft := model.TransactionDraft{
		Item:   strings.TrimSpace(record[0]),
		Amount: currency.Parse(record[2]),
	}
	draft.Quantity = strings.TrimSpace(record[1])
	if len(record) > 3 {
		draft.Store = strings.TrimSpace(record[3])
	}
	if len(record) > 4 {
		draft.Category = strings.TrimSpace(record[4])
	}
	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[5]))
		if err != nil {
			return model.TransactionDraft{}, fmt.Errorf("invalid date %q: %w", record[5], err)
		}
		draft.Date = date
	}

	if err := draft.Validate(); err != nil {
		return model.TransactionDraft{}, err
	}
	return draft, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "item")
}
