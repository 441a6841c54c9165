// SPDX-License-Identifier: MIT
// Package: tsgen/cmd/tsgen
//
// kinds.go — kinds and describe subcommands.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsgen/generator"
	"github.com/katalvlaran/tsgen/option"
)

type kindInfo struct {
	Kind   generator.Kind `json:"kind"`
	Title  string         `json:"title"`
	Seeded bool           `json:"seeded"`
}

type kindDetail struct {
	kindInfo
	Options     []*option.Option `json:"options"`
	Constraints []string         `json:"constraints"`
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered generator kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := generator.Kinds()
			out := make([]kindInfo, len(kinds))
			for i, k := range kinds {
				out[i] = kindInfo{Kind: k, Title: k.Title(), Seeded: k.Seeded()}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <kind>",
		Short: "Show a kind's options, defaults and constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := generator.ParseKind(args[0])
			if err != nil {
				return err
			}
			g, err := generator.New(kind)
			if err != nil {
				return err
			}

			d := kindDetail{
				kindInfo: kindInfo{Kind: kind, Title: kind.Title(), Seeded: kind.Seeded()},
				Options:  g.Options(),
			}
			for _, o := range d.Options {
				d.Constraints = append(d.Constraints, o.Describe(true))
			}
			return writeJSON(cmd.OutOrStdout(), d)
		},
	}
}
