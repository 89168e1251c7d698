package main

import (
	"encoding/json"
	"fmt"

	"github.com/jingkaihe/gha-docgen/pkg/action"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the action metadata",
	Long:  `Print the JSON schema describing the action metadata fields gha-docgen reads.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := json.MarshalIndent(action.Schema(), "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal schema")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
