package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/estimate/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant a question about the estimate" }
func (*assistCmd) Usage() string {
	return `est assist <question>

  Sends the current estimate, with its totals, to Gemini together with your
  question and prints the answer.

Usage Examples:
$ est assist which section drives most of the cost?

`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a question is required")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	sections, err := loadSections(*estimateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.EstimateMarkdown(renderer.NewEstimate("Estimate", sections, *currencyCode))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are an assistant for construction cost estimates. The user provides an
estimate report in markdown, with per-item totals, section subtotals and a
grand total, followed by a question. Answer concisely, citing section and
item names from the report.`}}},
	}
	chat, err := client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: report + "\n\n" + question})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking the assistant:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no response from the assistant")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
