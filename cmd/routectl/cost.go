package main

import (
	"fmt"
	"strings"

	"github.com/paulmach/osm"
	"github.com/spf13/cobra"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/routing"
)

func newCostCmd() *cobra.Command {
	var (
		rawTags string
		score   float64
		length  float64
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Print forward and reverse cost of an edge with the given tags",
		Example: `  routectl cost --tags highway=residential,oneway=yes --length 120
  routectl cost --tags highway=primary --score 0.9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := parseTagList(rawTags)
			if err != nil {
				return err
			}
			if !domain.ValidScore(score) {
				return fmt.Errorf("score must be in [0,1] or %v", domain.Unrated)
			}
			if length < 0 {
				return fmt.Errorf("length must not be negative")
			}

			rated := score != domain.Unrated
			costs := routing.EdgeCosts(tags, length, score, rated)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tags:          %s\n", formatTags(tags))
			fmt.Fprintf(out, "desirability:  %.4f\n", routing.Desirability(tags, score, rated))
			fmt.Fprintf(out, "forward cost:  %.4f\n", costs.Forward)
			fmt.Fprintf(out, "reverse cost:  %.4f\n", costs.Reverse)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawTags, "tags", "", "comma separated key=value way tags")
	cmd.Flags().Float64Var(&score, "score", domain.Unrated, "aggregate community score in [0,1], -1 for none")
	cmd.Flags().Float64Var(&length, "length", 100, "edge length in projected meters")
	return cmd
}

// parseTagList reads "highway=cycleway,oneway=yes" into tags
func parseTagList(raw string) (osm.Tags, error) {
	tags := osm.Tags{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("tag %q is not key=value", part)
		}
		tags = append(tags, osm.Tag{Key: strings.TrimSpace(k), Value: strings.TrimSpace(v)})
	}
	tags.SortByKeyValue()
	return tags, nil
}

func formatTags(tags osm.Tags) string {
	if len(tags) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, t.Key+"="+t.Value)
	}
	return strings.Join(parts, ",")
}
