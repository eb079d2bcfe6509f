package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/pkg/logger"
	"github.com/cycleroute-microservice/internal/pkg/utils"
	redisRepo "github.com/cycleroute-microservice/internal/repository/redis"
)

func newPublishCmd() *cobra.Command {
	var (
		score   float64
		ways    string
		comment string
	)

	cmd := &cobra.Command{
		Use:     "publish",
		Short:   "Publish a score report to the ingestion stream",
		Example: `  routectl publish --score 0.8 --ways 4242,4243 --comment "new bike lane"
  routectl publish --score -1 --ways 4242 --comment "road works"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := buildEvent(score, ways, comment)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer log.Sync()

			client, err := redisRepo.NewClient(&cfg.Redis, log)
			if err != nil {
				return err
			}
			defer client.Close()

			streams := redisRepo.NewStreamRepository(client.Redis(), log)
			if err := streams.PublishToStream(cmd.Context(), domain.StreamScoreSubmitted, event); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "published %s to %s (%d ways)\n",
				event.EventID, domain.StreamScoreSubmitted, len(event.WayIDs))
			return nil
		},
	}

	cmd.Flags().Float64Var(&score, "score", 0, "score in [0,1], -1 for an unrated report")
	cmd.Flags().StringVar(&ways, "ways", "", "way ids, e.g. 4242,4243")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("ways")
	return cmd
}

func buildEvent(score float64, ways, comment string) (*domain.ScoreSubmittedEvent, error) {
	if !domain.ValidScore(score) {
		return nil, fmt.Errorf("score must be in [0,1] or %v", domain.Unrated)
	}
	ids := utils.ParseWayIDs(ways)
	if len(ids) == 0 {
		return nil, fmt.Errorf("no way ids in %q", ways)
	}

	event := &domain.ScoreSubmittedEvent{
		EventID:     uuid.New(),
		Score:       score,
		WayIDs:      ids,
		SubmittedAt: time.Now().UTC(),
	}
	if comment != "" {
		event.Comment = &comment
	}
	return event, nil
}
