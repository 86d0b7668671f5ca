package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/botmonitor/internal/adapters/botapi"
	"github.com/alejandrodnm/botmonitor/internal/adapters/storage"
	"github.com/alejandrodnm/botmonitor/internal/format"
)

// Flujos one-shot: consultan o mutan el estado del bot y terminan.
// Ninguno reintenta; un fallo se reporta y el proceso sale con código 1.

func runShowConfig(ctx context.Context, client *botapi.Client) {
	doc, err := client.FetchConfig(ctx)
	if err != nil {
		fatal("fetch config", err)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fatal("encode config", err)
	}
	fmt.Println(string(out))
}

func runSetConfig(ctx context.Context, client *botapi.Client, path string) {
	raw, err := readInput(path)
	if err != nil {
		fatal("read config document", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fatal("parse config document", err)
	}
	if err := client.UpdateConfig(ctx, doc); err != nil {
		fatal("update config", err)
	}
	slog.Info("config updated", "keys", len(doc))
}

func runPromptList(ctx context.Context, client *botapi.Client) {
	files, err := client.ListPrompts(ctx)
	if err != nil {
		fatal("list prompts", err)
	}
	if len(files) == 0 {
		fmt.Println("no prompt files")
		return
	}
	for _, f := range files {
		fmt.Println(f)
	}
}

func runPromptShow(ctx context.Context, client *botapi.Client, file string) {
	content, err := client.PromptContent(ctx, file)
	if err != nil {
		fatal("fetch prompt", err)
	}
	fmt.Print(content)
}

func runPromptSave(ctx context.Context, client *botapi.Client, file string) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read prompt from stdin", err)
	}
	if err := client.SavePrompt(ctx, file, string(content)); err != nil {
		fatal("save prompt", err)
	}
	slog.Info("prompt saved", "file", file, "bytes", len(content))
}

func runPromptActivate(ctx context.Context, client *botapi.Client, file string) {
	if err := client.ActivatePrompt(ctx, file); err != nil {
		fatal("activate prompt", err)
	}
	slog.Info("prompt activated", "file", file)
}

// runReport imprime los ciclos registrados en el DSN configurado.
// Solo tiene sentido con un DSN de archivo; con ":memory:" sale vacío.
func runReport(ctx context.Context, store *storage.SQLiteStorage) {
	cycles, err := store.RecentCycles(ctx, 50)
	if err != nil {
		fatal("read cycles", err)
	}
	if len(cycles) == 0 {
		fmt.Println("no recorded cycles")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("时间", "Session", "交易", "持仓", "累计盈亏", "浮盈浮亏", "失败")
	for _, c := range cycles {
		table.Append(
			c.RefreshedAt.Format("01/02 15:04:05"),
			shortID(c.SessionID),
			fmt.Sprintf("%d", c.Trades),
			fmt.Sprintf("%d", c.Positions),
			format.Pnl(&c.TotalPnl),
			format.Pnl(&c.UnrealizedPnl),
			fmt.Sprintf("%d", c.Failures),
		)
	}
	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
