package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/helixml/rephrase"
	"github.com/helixml/rephrase/domain/paraphrase"
	"github.com/spf13/cobra"
)

func rewriteCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "rewrite [text...]",
		Short: "Paraphrase text from the arguments or stdin",
		Long: `Paraphrase text and print the result.

The arguments are joined with spaces. Without arguments the text is read from
stdin. Configuration is loaded the same way as for serve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, envFile, args)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runRewrite(cmd *cobra.Command, envFile string, args []string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	// Logs go to stderr so stdout only carries the result
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelError}))
	client := rephrase.New(append(clientOptions(cfg), rephrase.WithLogger(logger))...)

	resp, err := client.Paraphrase.Rewrite(cmd.Context(), paraphrase.NewRequest(text))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Text())
	return err
}
