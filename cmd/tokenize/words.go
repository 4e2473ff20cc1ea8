package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kerem-kaynak/text-transformer/pkg/textrun"
	"github.com/kerem-kaynak/text-transformer/pkg/tokenizer"
)

// wordRecord is one output line of the words command.
type wordRecord struct {
	Text       string `json:"text"`
	Offset     int    `json:"offset"`
	Length     int    `json:"length"`
	Whitespace bool   `json:"whitespace,omitempty"`
	Continues  bool   `json:"continues,omitempty"`
}

func newWordsCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "words [text...]",
		Short: "Print the tokens of the text as JSON lines",
		Long: "Print the tokens of the text, one JSON object per line. Without arguments\n" +
			"every line of standard input is tokenized separately.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			dict, err := openDictionary(cfg)
			if err != nil {
				return err
			}
			if dict != nil {
				defer dict.Close()
			}
			tok, err := newTokenizer(cfg, dict)
			if err != nil {
				return err
			}

			mode := tokenizer.ParseMode(cfg.Tokenizer.Mode)
			transform := tokenizer.ParseTransform(cfg.Tokenizer.Transform)
			enc := json.NewEncoder(cmd.OutOrStdout())

			return forEachInput(cmd, args, func(text string) error {
				run := textrun.New(text)
				for _, rec := range scanWords(tok, run, mode, transform, cfg.Tokenizer.LineBreak, reverse) {
					if err := enc.Encode(rec); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "Scan from the end of the text backwards")

	return cmd
}

// scanWords walks run in one direction and records every token with the
// offset it starts at.
func scanWords(tok *tokenizer.Tokenizer, run *textrun.Run, mode tokenizer.Mode, transform tokenizer.Transform, lineBreak, reverse bool) []wordRecord {
	start := 0
	if reverse {
		start = run.Len()
	}
	tok.Init(run, start, mode, transform)

	var records []wordRecord
	for {
		before := tok.Offset()
		var tk tokenizer.Token
		var ok bool
		if reverse {
			tk, ok = tok.PrevWord(false, lineBreak)
		} else {
			tk, ok = tok.NextWord(false, lineBreak)
		}
		if !ok {
			return records
		}

		offset := before
		if reverse {
			offset = tok.Offset()
		}
		records = append(records, wordRecord{
			Text:       tk.String(),
			Offset:     offset,
			Length:     tk.ContentLen,
			Whitespace: tk.IsWhitespace,
			Continues:  tk.Continues,
		})
	}
}
