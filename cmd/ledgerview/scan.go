package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"ledgerview/internal/api"
)

var receiptExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <receipt>...",
		Short: "Upload receipts and create transactions from them",
		Long: `Upload one or more receipt images or PDFs.

The backend extracts the merchant, amount, and date from each receipt and
creates a transaction. Useful for batch-processing a folder of receipts
without opening the dashboard.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, provider, err := buildProvider()
	if err != nil {
		return err
	}
	if !provider.IsAuthenticated() {
		return fmt.Errorf("not signed in: run 'ledgerview login' first")
	}
	client := buildClient(cfg, provider)

	if err := validateReceiptPaths(args); err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Uploading receipts..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var failures int
	for _, path := range args {
		message, err := uploadReceipt(cmd, client, path)
		_ = bar.Add(1)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s: %s\n", filepath.Base(path), message)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d receipts failed", failures, len(args))
	}
	return nil
}

func validateReceiptPaths(paths []string) error {
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		if !receiptExtensions[ext] {
			return fmt.Errorf("unsupported file type %q: only images and PDFs are accepted", ext)
		}
	}
	return nil
}

func uploadReceipt(cmd *cobra.Command, client *api.Client, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return client.UploadReceipt(cmd.Context(), filepath.Base(path), file)
}
