package main

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Jadiker/kami/gen"
)

var (
	genNodes   int
	genColors  int
	genWorkers int
	genDedup   bool
	genFuzzy   bool

	hardestCmd = &cobra.Command{
		Use:   "hardest",
		Short: "Exhaustively search for the hardest small board",
		Long: `hardest enumerates every connected planar board on the given number
of regions, under every assignment of the given number of colors, and
reports the instance whose optimal solution needs the most moves.

The search space is exponential in both parameters; five regions is
quick, seven is a coffee break.`,
		RunE: runHardest,
	}
)

func init() {
	hardestCmd.Flags().IntVarP(&genNodes, "nodes", "n", 4, "number of regions")
	hardestCmd.Flags().IntVarP(&genColors, "colors", "k", 2, "number of colors")
	hardestCmd.Flags().IntVarP(&genWorkers, "workers", "w", runtime.NumCPU(), "parallel workers")
	hardestCmd.Flags().BoolVar(&genDedup, "dedup", false, "skip isomorphic duplicate instances")
	hardestCmd.Flags().BoolVar(&genFuzzy, "fuzzy", false, "dedup on fuzzy signatures (faster, may skip distinct instances)")
}

func runHardest(cmd *cobra.Command, args []string) error {
	log := logrus.WithFields(logrus.Fields{
		"nodes":  genNodes,
		"colors": genColors,
	})
	log.Info("searching for the hardest board")

	opts := []gen.Option{
		gen.WithContext(cmd.Context()),
		gen.WithWorkers(genWorkers),
		gen.WithOnProgress(func(evaluated uint64) {
			if evaluated%10000 == 0 {
				logrus.WithField("evaluated", evaluated).Debug("progress")
			}
		}),
	}
	if genDedup || genFuzzy {
		opts = append(opts, gen.WithDedup())
	}
	if genFuzzy {
		opts = append(opts, gen.WithFuzzySignatures())
	}

	rec, err := gen.FindHardest(genNodes, genColors, opts...)
	if err != nil {
		return err
	}
	log.WithField("optimal", rec.Optimal).Info("search finished")

	fmt.Printf("hardest board (%d optimal moves):\n%s\n", rec.Optimal, rec.Puzzle)
	for i, m := range rec.Solution {
		fmt.Printf("%d. %s\n", i+1, m)
	}
	return nil
}
