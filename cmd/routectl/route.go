package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/pkg/logger"
	"github.com/cycleroute-microservice/internal/repository/postgres"
	"github.com/cycleroute-microservice/internal/usecase"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

func newRouteCmd() *cobra.Command {
	var (
		from     string
		to       string
		polyline bool
	)

	cmd := &cobra.Command{
		Use:     "route",
		Short:   "Compute a route between two points using the configured database",
		Example: `  routectl route --from 2.1700,41.3900 --to 2.1850,41.4030`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startLng, startLat, err := parseLngLat(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			endLng, endLat, err := parseLngLat(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
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

			db, err := postgres.New(&cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			uc := usecase.NewRouteUseCase(
				postgres.NewGraphRepository(db),
				postgres.NewScoreRepository(db),
				cfg.Routing,
				log,
			)

			req := dto.RouteRequest{StartLng: startLng, StartLat: startLat, EndLng: endLng, EndLat: endLat}
			if polyline {
				req.Format = "polyline"
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Routing.RequestTimeout)
			defer cancel()

			resp, err := uc.Route(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start point as lng,lat")
	cmd.Flags().StringVar(&to, "to", "", "end point as lng,lat")
	cmd.Flags().BoolVar(&polyline, "polyline", false, "include the encoded polyline")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func parseLngLat(s string) (float64, float64, error) {
	lngText, latText, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected lng,lat, got %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	return lng, lat, nil
}
