package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newTermsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms [text...]",
		Short: "Print the normalized index terms of the text as a JSON array",
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
			a, err := newAnalyzer(cfg, dict)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return forEachInput(cmd, args, func(text string) error {
				terms := a.Terms(text)
				if terms == nil {
					terms = []string{}
				}
				return enc.Encode(terms)
			})
		},
	}

	return cmd
}
