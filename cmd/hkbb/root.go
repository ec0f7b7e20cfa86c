package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hkbb",
		Short: "Exact symmetric TSP solver (Held–Karp branch-and-bound)",
		Long: `hkbb finds a shortest Hamiltonian cycle by best-first branch-and-bound.
Every subproblem is bounded with the Held–Karp 1-tree relaxation.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())

	return root
}
