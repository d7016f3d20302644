// Command essentials runs one of the engine-hosted algorithms over an
// edge-list file and prints per-vertex scores on stdout.
//
// Usage:
//
//	essentials -graph web.txt -algo pagerank
//	essentials -graph road.txt -algo bc -source 17
//	essentials -graph social.txt -algo kcore -config run.yml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/angeil/essentials/bc"
	"github.com/angeil/essentials/enact"
	"github.com/angeil/essentials/graph"
	"github.com/angeil/essentials/graphio"
	"github.com/angeil/essentials/kcore"
	"github.com/angeil/essentials/pagerank"
)

func main() {
	var (
		graphPath  = flag.String("graph", "", "edge-list file (required)")
		algo       = flag.String("algo", "pagerank", "algorithm: kcore, bc or pagerank")
		source     = flag.Int("source", 0, "source vertex for bc")
		configPath = flag.String("config", "", "optional YAML config file")
		directed   = flag.Bool("directed", false, "keep edges directed instead of mirroring")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			logger.Fatal().Err(err).Msg("config")
		}
	}
	logger = logger.Level(cfg.level())

	if *graphPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	g, err := load(*graphPath, *directed)
	if err != nil {
		logger.Fatal().Err(err).Msg("load graph")
	}
	logger.Info().
		Str("graph", *graphPath).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph loaded")

	opts := []enact.Option{
		enact.WithLogger(logger),
		enact.WithLanes(cfg.Lanes),
		enact.WithBalancer(cfg.balancer()),
	}

	if err := run(g, *algo, *source, cfg, opts, logger); err != nil {
		logger.Fatal().Err(err).Str("algo", *algo).Msg("run")
	}
}

// load reads the edge list and builds the CSR, mirrored unless the
// directed flag is set.
func load(path string, directed bool) (*graph.CSR, error) {
	entries, n, err := graphio.ReadEdgeListFile(path)
	if err != nil {
		return nil, err
	}
	var opts []graph.Option
	if !directed {
		opts = append(opts, graph.WithUndirected())
	}
	return graph.NewCSR(n, entries, opts...)
}

// run dispatches to the selected algorithm and prints its scores.
func run(g *graph.CSR, algo string, source int, cfg Config, opts []enact.Option, logger zerolog.Logger) error {
	n := g.VertexCount()
	switch algo {
	case "kcore":
		cores := make([]int32, n)
		res, err := kcore.Run(g, cores, opts...)
		if err != nil {
			return err
		}
		logger.Info().
			Int32("degeneracy", res.Degeneracy).
			Dur("elapsed", res.Elapsed).
			Msg("kcore done")
		return graphio.WriteScores(os.Stdout, cores)

	case "bc":
		sigmas := make([]float64, n)
		bcValues := make([]float64, n)
		res, err := bc.Run(g, graph.Vertex(source), sigmas, bcValues, opts...)
		if err != nil {
			return err
		}
		logger.Info().
			Int32("max_depth", res.MaxDepth).
			Dur("elapsed", res.Elapsed).
			Msg("bc done")
		return graphio.WriteScores(os.Stdout, bcValues)

	case "pagerank":
		ranks := make([]float64, n)
		res, err := pagerank.Run(g, cfg.Damping, cfg.Tolerance, ranks, opts...)
		if err != nil {
			return err
		}
		logger.Info().
			Int("rounds", res.Rounds).
			Float64("delta", res.Delta).
			Dur("elapsed", res.Elapsed).
			Msg("pagerank done")
		return graphio.WriteScores(os.Stdout, ranks)

	default:
		return fmt.Errorf("unknown algorithm %q", algo)
	}
}
