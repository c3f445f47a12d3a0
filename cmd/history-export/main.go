// Command history-export dumps the invoice history for archival: one
// plain-text receipt file per invoice, plus a gzipped JSON backup of the
// whole history slot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/abdalahsamh/New-cashir/internal/history"
	"github.com/abdalahsamh/New-cashir/internal/receipt"
	"github.com/abdalahsamh/New-cashir/internal/storage"
)

func main() {
	var (
		dataDir   string
		outDir    string
		shopName  string
		shopPhone string
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing the POS state files")
	flag.StringVar(&outDir, "out", "export", "directory to write receipts and the backup into")
	flag.StringVar(&shopName, "shop-name", "مقص بلال", "shop name printed on receipts")
	flag.StringVar(&shopPhone, "shop-phones", "01289139006,01115291833", "comma-separated phone numbers")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	header := receipt.Header{
		ShopName: shopName,
		Phones:   strings.Split(shopPhone, ","),
	}

	if err := run(ctx, dataDir, outDir, header); err != nil {
		slog.Error("history export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("history export completed")
}

func run(ctx context.Context, dataDir, outDir string, header receipt.Header) error {
	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		return errors.Wrap(err, "open data dir")
	}

	invoices, err := history.NewLog(store).All(ctx)
	if err != nil {
		return errors.Wrap(err, "load history")
	}
	if len(invoices) == 0 {
		slog.Info("history is empty, nothing to export")
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	slog.Info("rendering receipts", slog.Int("invoices", len(invoices)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, inv := range invoices {
		name := filepath.Join(outDir, fmt.Sprintf("%04d-%s.txt", i+1, inv.Number))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text := receipt.Text(receipt.Receipt{Header: header, Invoice: inv})
			if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
				return errors.Wrapf(err, "write %s", name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "render receipts")
	}

	if err := writeBackup(filepath.Join(outDir, "history.json.gz"), invoices); err != nil {
		return errors.Wrap(err, "write backup")
	}
	return nil
}

// writeBackup stores the raw history as gzipped JSON.
func writeBackup(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create")
	}

	zw := pgzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(v); err != nil {
		_ = zw.Close()
		_ = f.Close()
		return errors.Wrap(err, "encode")
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "close gzip")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close file")
	}
	return nil
}
