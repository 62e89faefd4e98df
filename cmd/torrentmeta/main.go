package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/WendelHime/torrentmeta/internal/decoder"
	"github.com/WendelHime/torrentmeta/internal/logic"
)

func main() {
	var torrentPath string
	var asJSON bool
	flag.StringVar(&torrentPath, "torrent", "", "Specify the input torrent file")
	flag.BoolVar(&asJSON, "json", false, "Print the report as JSON")
	flag.Parse()
	if torrentPath == "" {
		fmt.Fprintln(os.Stderr, "usage: torrentmeta -torrent <path> [-json]")
		os.Exit(1)
	}

	f, err := os.Open(torrentPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	// Route the decoder's skipped-key diagnostics through the same handler.
	slog.SetDefault(logger)

	inspector := logic.NewInspector(decoder.NewDecoder(), logger)
	report, err := inspector.Inspect(f)
	if err != nil {
		logger.Error("failed to inspect torrent", slog.Any("error", err))
		os.Exit(1)
	}

	if asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			logger.Error("failed to marshal report", slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	printReport(report)
}

func printReport(r logic.Report) {
	fmt.Printf("name:          %s\n", r.Name)
	fmt.Printf("info hash:     %s\n", r.InfoHash)
	fmt.Printf("total size:    %d bytes\n", r.TotalSize)
	fmt.Printf("piece length:  %d\n", r.PieceLength)
	fmt.Printf("pieces:        %d\n", r.PieceCount)
	fmt.Printf("private:       %v\n", r.Private)
	if r.CreationDate != nil {
		fmt.Printf("created:       %s\n", time.Unix(*r.CreationDate, 0).UTC().Format(time.RFC3339))
	}
	if r.CreatedBy != "" {
		fmt.Printf("created by:    %s\n", r.CreatedBy)
	}
	if r.Comment != "" {
		fmt.Printf("comment:       %s\n", r.Comment)
	}
	for _, url := range r.AnnounceURLs {
		fmt.Printf("announce:      %s\n", url)
	}
	for _, node := range r.Nodes {
		fmt.Printf("node:          %s:%d\n", node.Host, node.Port)
	}
	for _, file := range r.Files {
		fmt.Printf("file:          %s (%d bytes)\n", strings.Join(file.Path, "/"), file.Length)
	}
}
