// Command verify prints the current pool standings and playoff seeds for a
// tournament straight from the database. Useful for checking a bracket by
// hand before publishing it to teams.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	_ "github.com/lib/pq"

	"github.com/diamondsched/tournament-server/config"
	"github.com/diamondsched/tournament-server/db"
	"github.com/diamondsched/tournament-server/models"
	"github.com/diamondsched/tournament-server/repositories"
	"github.com/diamondsched/tournament-server/services"
	"github.com/diamondsched/tournament-server/standings"
)

func main() {
	var tournamentID string
	flag.StringVar(&tournamentID, "tournament", "", "tournament ID to verify")
	flag.Parse()

	if tournamentID == "" {
		fmt.Fprintln(os.Stderr, "usage: verify -tournament <id>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database: %v\n", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	standingsService := services.NewStandingsService(
		repositories.NewPostgresTournamentRepository(dbConn),
		repositories.NewPostgresPoolRepository(dbConn),
		repositories.NewPostgresTeamRepository(dbConn),
		repositories.NewPostgresGameRepository(dbConn),
	)

	ctx := context.Background()

	poolStandings, err := standingsService.GetPoolStandings(ctx, tournamentID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "standings: %v\n", err)
		os.Exit(1)
	}
	printStandings(poolStandings)

	seeds, err := standingsService.GetPlayoffSeeds(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, services.ErrPlayoffNotConfigured) {
			fmt.Println("\nplayoffs not configured, skipping seeds")
			return
		}
		fmt.Fprintf(os.Stderr, "seeds: %v\n", err)
		os.Exit(1)
	}
	printSeeds(seeds)
}

func printStandings(poolStandings []standings.PoolStandings) {
	for _, ps := range poolStandings {
		fmt.Printf("\nPool %s\n", ps.Pool.Name)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tTEAM\tW\tL\tPTS\tRF\tRA\tDIFF\tRA/INN\tTIEBREAKERS")
		for _, row := range ps.Rows {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%+d\t%s\t%s\n",
				row.PoolRank, row.TeamName, row.Wins, row.Losses, row.Points,
				row.RunsFor, row.RunsAgainst, row.RunDifferential,
				formatRatio(row.RunsAgainstPerInning), formatRules(row.TiebreakersApplied))
		}
		w.Flush()
	}
}

func printSeeds(seeds []models.TeamStandingRow) {
	fmt.Println("\nPlayoff seeds")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tTEAM\tPOOL\tPOOL RANK\tW\tL\tDIFF")
	for _, row := range seeds {
		seed := 0
		if row.OverallSeed != nil {
			seed = *row.OverallSeed
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%+d\n",
			seed, row.TeamName, row.PoolName, row.PoolRank,
			row.Wins, row.Losses, row.RunDifferential)
	}
	w.Flush()
}

func formatRatio(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}

func formatRules(rules []string) string {
	if len(rules) == 0 {
		return "-"
	}
	out := rules[0]
	for _, r := range rules[1:] {
		out += "," + r
	}
	return out
}
