// SPDX-License-Identifier: MIT

// Command gcsdemo exercises the gcs container library end to end: a
// growable Sequence, the iterative merge sort routine, and a left-leaning
// red-black Tree, each driven by a flag-selected subcommand.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/galudino/gcs"
	"github.com/galudino/gcs/seq"
	"github.com/galudino/gcs/tree"
)

var size int

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	gcs.SetLogger(logger.Sugar())

	root := &cobra.Command{
		Use:   "gcsdemo",
		Short: "Exercises the gcs container library's Sequence, sort, and Tree components",
	}
	root.PersistentFlags().IntVar(&size, "size", 20, "number of random elements to generate")

	root.AddCommand(pushCmd(), sortCmd(), treeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// pushCmd demonstrates Sequence growth via repeated PushBack, then prints
// the resulting Sequence's diagnostic banner.
func pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push size random ints onto a Sequence and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := seq.New(gcs.Ordered[int]())
			for _, v := range randomInts(size) {
				s.PushBack(v)
			}
			return s.PrintDiagnostic(os.Stdout)
		},
	}
}

// sortCmd demonstrates the external sort routine: fill a Sequence with
// random ints, sort it in place, and print before/after.
func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort size random ints with the iterative merge sort routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := randomInts(size)
			s := seq.FromSlice(vals, gcs.Ordered[int]())
			fmt.Fprintln(os.Stdout, "before:", s.String())
			s.Sort()
			fmt.Fprintln(os.Stdout, "after: ", s.String())
			return nil
		},
	}
}

// treeCmd demonstrates the ordered tree engine: insert size random ints,
// print the diagnostic banner and tree diagram, then erase the minimum and
// maximum and print once more.
func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Insert size random ints into a Tree, print it, then erase the extremes",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := tree.New(gcs.Ordered[int]())
			for _, v := range randomInts(size) {
				t.Insert(v)
			}
			if err := t.Print(os.Stdout); err != nil {
				return err
			}

			t.EraseMin()
			t.EraseMax()
			fmt.Fprintln(os.Stdout, "--- after EraseMin/EraseMax ---")

			inOrder := t.InOrderSlice()
			fmt.Fprintln(os.Stdout, "in-order:", inOrder)

			return t.Print(os.Stdout)
		},
	}
}

func randomInts(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rand.Intn(1000)
	}
	return vals
}
