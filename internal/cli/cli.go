// Package cli - командная строка рекомендателя: сервер и разовые запросы к каталогу.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/app"
	config "github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/closer"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	catalogPath string
	logLevel    string
}

type App struct {
	root   *cobra.Command
	opts   *globalOptions
	stdout io.Writer
	stderr io.Writer
}

func New() *App {
	a := &App{
		opts:   &globalOptions{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	a.root = &cobra.Command{
		Use:   "movie-recommender",
		Short: "Content-based movie recommendations",
		Long: `Builds a TF-IDF index over the movie catalog and serves similar-movie
recommendations, pairwise comparisons and catalog statistics.

Without a subcommand the HTTP and gRPC servers are started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve()
		},
	}

	a.root.PersistentFlags().StringVar(&a.opts.catalogPath, "catalog", "", "Path to a CSV catalog (overrides CATALOG_SOURCE)")
	a.root.PersistentFlags().StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	a.root.AddCommand(
		a.newServeCmd(),
		a.newRecommendCmd(),
		a.newCompareCmd(),
		a.newStatsCmd(),
	)

	return a
}

// WithOutput подменяет потоки вывода.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and gRPC servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve()
		},
	}
}

func (a *App) newRecommendCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Print movies similar to the given title",
		Long: `Resolve the title (exact match, then substring, then any shared word)
and print up to n most similar movies.

Examples:
  movie-recommender recommend "The Dark Knight" -n 3
  movie-recommender recommend inception --catalog data/movies.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRecommender(cmd.Context(), func(ctx context.Context, uc *usecase.RecommenderUseCase) error {
				return a.recommend(ctx, uc, args[0], n)
			})
		},
	}

	cmd.Flags().IntVarP(&n, "number", "n", usecase.DefaultRecommendations, "Number of recommendations (1-10)")

	return cmd
}

func (a *App) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Compare two movies",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRecommender(cmd.Context(), func(ctx context.Context, uc *usecase.RecommenderUseCase) error {
				return a.compare(ctx, uc, args[0], args[1])
			})
		},
	}
}

func (a *App) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRecommender(cmd.Context(), a.stats)
		},
	}
}

func (a *App) serve() error {
	log := a.logger(a.stdout, "info")

	cfg, err := a.loadConfig(log)
	if err != nil {
		return err
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		return err
	}

	return application.Run()
}

// withRecommender строит индекс без внешних кэша и событий, выполняет fn и освобождает ресурсы.
func (a *App) withRecommender(ctx context.Context, fn func(ctx context.Context, uc *usecase.RecommenderUseCase) error) error {
	log := a.logger(a.stderr, "warn")

	cfg, err := a.loadConfig(log)
	if err != nil {
		return err
	}

	cl := closer.NewCloser(0)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cl.Close(closeCtx); err != nil {
			log.Warnf("Failed to release resources: %v", err)
		}
	}()

	uc, err := app.NewRecommender(ctx, cfg, log, cl, app.Options{})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return fn(ctx, uc)
}

func (a *App) recommend(ctx context.Context, uc *usecase.RecommenderUseCase, title string, n int) error {
	rec, err := uc.Recommend(ctx, usecase.NewRecommendReq(title, n))
	if err != nil {
		return err
	}

	if !rec.Found {
		return e.Wrap(title, e.ErrMovieNotFound)
	}

	_, _ = fmt.Fprintf(a.stdout, "Movies similar to %q (%d, %s):\n\n", rec.Movie.Title, rec.Movie.Year, rec.Movie.Director)

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tTITLE\tYEAR\tGENRE\tRATING\tSIMILARITY")
	for i, item := range rec.Items {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.1f\t%.2f%%\n",
			i+1, item.Movie.Title, item.Movie.Year, item.Movie.Genre, item.Movie.Rating, item.SimilarityPct)
	}

	return tw.Flush()
}

func (a *App) compare(ctx context.Context, uc *usecase.RecommenderUseCase, first, second string) error {
	cmp, err := uc.Compare(ctx, usecase.NewCompareReq(first, second))
	if err != nil {
		return err
	}

	if !cmp.Found {
		return e.Wrap(first+" / "+second, e.ErrMovieNotFound)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "\t%s\t%s\n", cmp.First.Title, cmp.Second.Title)
	_, _ = fmt.Fprintf(tw, "Genre\t%s\t%s\n", cmp.First.Genre, cmp.Second.Genre)
	_, _ = fmt.Fprintf(tw, "Director\t%s\t%s\n", cmp.First.Director, cmp.Second.Director)
	_, _ = fmt.Fprintf(tw, "Year\t%d\t%d\n", cmp.First.Year, cmp.Second.Year)
	_, _ = fmt.Fprintf(tw, "Rating\t%.1f\t%.1f\n", cmp.First.Rating, cmp.Second.Rating)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.stdout, "\nSimilarity: %.2f%%\nRating difference: %.2f\nYear difference: %d\n",
		cmp.SimilarityPct, cmp.RatingDiff, cmp.YearDiff)

	return nil
}

func (a *App) stats(ctx context.Context, uc *usecase.RecommenderUseCase) error {
	stats, err := uc.Stats(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.stdout, "Movies: %d\nAverage rating: %.2f (min %.1f, max %.1f)\nYears: %d-%d\n",
		stats.Total, stats.AvgRating, stats.MinRating, stats.MaxRating, stats.MinYear, stats.MaxYear)

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, section := range []struct {
		name   string
		counts []domain.Count
	}{
		{name: "Top genres", counts: stats.TopGenres},
		{name: "Top directors", counts: stats.TopDirectors},
		{name: "Top countries", counts: stats.TopCountries},
	} {
		_, _ = fmt.Fprintf(tw, "\n%s:\n", section.name)
		for _, c := range section.counts {
			_, _ = fmt.Fprintf(tw, "  %s\t%d\n", c.Name, c.Total)
		}
	}

	return tw.Flush()
}

func (a *App) loadConfig(log logger.Logger) (*config.Config, error) {
	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		return nil, err
	}

	if a.opts.catalogPath != "" {
		cfg.Catalog.Source = config.SourceFile
		cfg.Catalog.Path = a.opts.catalogPath
	}

	return cfg, nil
}

// logger пишет в w. Уровень: --log-level, затем LOG_LEVEL, затем def.
func (a *App) logger(w io.Writer, def string) logger.Logger {
	level := a.opts.logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = def
	}

	return logger.New(w, logger.ParseLevel(level))
}
