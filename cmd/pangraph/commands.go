package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pangraph/core"
	"github.com/katalvlaran/pangraph/linear"
)

// assemblySummary is one line of the assemblies listing.
type assemblySummary struct {
	Key   string `json:"key"`
	Nodes int    `json:"nodes"`
}

// assembliesReport is the output of the assemblies command.
type assembliesReport struct {
	Stats      core.Stats        `json:"stats"`
	Problems   *core.Problems    `json:"problems"`
	Assemblies []assemblySummary `json:"assemblies"`
}

func newAssembliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assemblies",
		Short: "List assembly labels, their node counts and graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(cmd)
			if err != nil {
				return err
			}
			g, problems, err := core.Build(doc)
			if err != nil {
				return err
			}
			out := assembliesReport{Stats: g.Stats(), Problems: problems, Assemblies: []assemblySummary{}}
			for _, key := range g.Assemblies() {
				ids, _ := g.AssemblyNodes(key)
				out.Assemblies = append(out.Assemblies, assemblySummary{Key: key, Nodes: len(ids)})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

// addWalkFlags registers the walk selection flags on cmd.
func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "auto", "walk extraction mode: auto, endpoint or blockcut")
	cmd.Flags().StringSliceP("keys", "k", nil, "assemblies to process (default all)")
}

func newWalksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walks",
		Short: "Extract one walk per connected component of each assembly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()

			rep, err := a.runner().Walks(ctx, doc)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rep)
		},
	}
	addWalkFlags(cmd)
	return cmd
}

func newLinearizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linearize",
		Short: "Linearize assembly walks and report related structural features",
		Long: `Linearize extracts each selected assembly's walk, places its first path on a
linear coordinate starting at --origin and searches every pair of non-adjacent
spine nodes for alternate routes that avoid the spine. Features are then
related by containment, overlap and shared anchors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()

			rep, err := a.runner().Run(ctx, doc)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rep)
		},
	}
	addWalkFlags(cmd)

	f := cmd.Flags()
	f.Int64("origin", 0, "coordinate of the first spine base")
	f.Float64("px-scale", linear.DefaultPxScale, "pixels per bp")
	f.Int64("epsilon", 0, "length difference (bp) treated as neutral")
	f.Float64("lane-gap", linear.DefaultLaneGap, "offset unit per lane")
	f.Float64("pill-width", linear.DefaultPillWidth, "width reported on zero-span features")
	f.Int("max-alt-paths", linear.DefaultMaxAltPaths, "alternate routes sampled per anchor")
	f.Bool("adjacent-pairs", false, "also search spine-adjacent pairs (insertions)")
	f.Bool("split-braids", false, "emit one feature per sampled route")
	return cmd
}
