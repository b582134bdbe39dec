// Command rin is a thin demonstration binary: it reads a JSON model.Model
// fixture, builds rin.Params from command-line flags, runs
// rin.ComputeRIN, and prints a JSON dump of the resulting graph. It is
// scaffolding over the library, not the wire-format parser or graph
// serializer a production caller would bring.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/polyrin/rin/graph"
	"github.com/polyrin/rin/model"
	"github.com/polyrin/rin/residue"
	"github.com/polyrin/rin/rin"
)

func main() {
	if err := application().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "rin",
		Usage: "Compute a residue interaction network from a JSON model.Model fixture.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "i",
				Usage: "Path to a JSON model.Model fixture.",
			},
			&cli.StringFlag{
				Name:  "interaction-type",
				Value: "noncovalent",
				Usage: "noncovalent or contact_map.",
			},
			&cli.StringFlag{
				Name:  "cmap-type",
				Value: "alpha",
				Usage: "alpha or beta (only used when interaction-type=contact_map).",
			},
			&cli.StringFlag{
				Name:  "network-policy",
				Value: "all",
				Usage: "all, best_per_type, or best_one.",
			},
			&cli.IntFlag{
				Name:  "sequence-separation",
				Value: 3,
				Usage: "Minimum residue-index gap on the same chain.",
			},
			&cli.BoolFlag{
				Name:  "hbond-realistic",
				Value: true,
				Usage: "Apply the hydrogen-bond valence-capacity realism filter.",
			},
			&cli.StringFlag{
				Name:  "illformed-policy",
				Value: "skip_res",
				Usage: "fail, skip_res, keep_res, or keep_all.",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	inputPath := c.String("i")
	if inputPath == "" {
		return cli.Exit("missing required flag -i <model.json>", 1)
	}

	m, err := readModel(inputPath)
	if err != nil {
		return err
	}

	opts, err := flagsToOptions(c)
	if err != nil {
		return err
	}

	params, err := rin.New(opts...)
	if err != nil {
		return err
	}

	g, err := rin.ComputeRIN(m, *params)
	if err != nil {
		return err
	}

	return printGraph(g)
}

func readModel(path string) (model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Model{}, err
	}
	var m model.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return model.Model{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

func flagsToOptions(c *cli.Context) ([]rin.Option, error) {
	var opts []rin.Option

	switch c.String("interaction-type") {
	case "contact_map":
		opts = append(opts, rin.WithInteractionType(rin.ContactMap))
	case "noncovalent", "":
		opts = append(opts, rin.WithInteractionType(rin.NonCovalent))
	default:
		return nil, cli.Exit("invalid -interaction-type", 1)
	}

	switch c.String("cmap-type") {
	case "beta":
		opts = append(opts, rin.WithCmapType(rin.CmapBeta))
	case "alpha", "":
		opts = append(opts, rin.WithCmapType(rin.CmapAlpha))
	default:
		return nil, cli.Exit("invalid -cmap-type", 1)
	}

	switch c.String("network-policy") {
	case "best_per_type":
		opts = append(opts, rin.WithNetworkPolicy(rin.PolicyBestPerType))
	case "best_one":
		opts = append(opts, rin.WithNetworkPolicy(rin.PolicyBestOne))
	case "all", "":
		opts = append(opts, rin.WithNetworkPolicy(rin.PolicyAll))
	default:
		return nil, cli.Exit("invalid -network-policy", 1)
	}

	policy, err := parseIllformedPolicy(c.String("illformed-policy"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, rin.WithIllformedPolicy(policy))

	opts = append(opts,
		rin.WithSequenceSeparation(c.Int("sequence-separation")),
		rin.WithHBondRealistic(c.Bool("hbond-realistic")),
	)
	return opts, nil
}

func parseIllformedPolicy(s string) (residue.IllformedPolicy, error) {
	switch s {
	case "fail":
		return residue.Fail, nil
	case "skip_res", "":
		return residue.SkipResidue, nil
	case "keep_res":
		return residue.KeepResidue, nil
	case "keep_all":
		return residue.KeepAll, nil
	default:
		return 0, cli.Exit("invalid -illformed-policy", 1)
	}
}

// graphDump is the JSON envelope printed to stdout; graph.Node and
// graph.Edge already know how to marshal themselves with the documented
// sentinels.
type graphDump struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

func printGraph(g *graph.Graph) error {
	dump := graphDump{Nodes: g.Nodes(), Edges: g.Edges()}
	out, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
