package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
	askuc "github.com/kailas-cloud/studentnest/internal/usecase/ask"
)

const noAnswerHeader = "Sorry, I couldn't find an answer to that."

type askJSON struct {
	Kind        answer.Kind     `json:"kind"`
	ID          string          `json:"id,omitempty"`
	Question    string          `json:"question,omitempty"`
	Answer      string          `json:"answer,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Relevance   int             `json:"relevance,omitempty"`
	Text        string          `json:"text,omitempty"`
	Candidates  []candidateJSON `json:"candidates,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

type candidateJSON struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

func newAskCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask a question",
		Long: `Resolves a free-text question against the catalog.
Prints the best matching answer with its relevance, a combined answer built
from the closest records, or suggestions when nothing matches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.load(cmd)
			if err != nil {
				return err
			}

			res := a.ask.Ask(ctx, strings.Join(args, " "))
			if asJSON {
				return printAskJSON(cmd, res)
			}
			printAskText(cmd, res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the result as JSON")
	return cmd
}

func printAskText(cmd *cobra.Command, res answer.Result) {
	switch res.Kind() {
	case answer.KindSingle:
		best, _ := res.Best()
		r := best.Record()
		cmd.Println(r.Question())
		cmd.Println()
		cmd.Println(r.Answer())
		cmd.Println()
		if tags := r.Tags(); len(tags) > 0 {
			cmd.Printf("Tags: %s\n", strings.Join(tags, ", "))
		}
		cmd.Printf("Relevance: %d%%\n", res.RelevancePercent())
	case answer.KindSynthesized:
		cmd.Println(res.Text())
	default:
		cmd.Println(noAnswerHeader)
		cmd.Println("Suggestions:")
		for _, s := range askuc.Suggestions() {
			cmd.Printf("  - %s\n", s)
		}
	}
}

func printAskJSON(cmd *cobra.Command, res answer.Result) error {
	out := askJSON{Kind: res.Kind()}
	switch res.Kind() {
	case answer.KindSingle:
		best, _ := res.Best()
		r := best.Record()
		out.ID, out.Question, out.Answer, out.Tags = r.ID(), r.Question(), r.Answer(), r.Tags()
		out.Relevance = res.RelevancePercent()
	case answer.KindSynthesized:
		out.Text = res.Text()
		for _, c := range res.Candidates() {
			out.Candidates = append(out.Candidates, candidateJSON{ID: c.Record().ID(), Score: c.Score()})
		}
	default:
		out.Suggestions = askuc.Suggestions()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
