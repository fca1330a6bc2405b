package main

import (
	"errors"
	"fmt"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/storage"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the database lives, seeding it if needed",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write an empty template database usable as seed-file",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var seedOut string

func init() {
	seedCmd.Flags().StringVar(&seedOut, "out", "", "file to create")
	_ = seedCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(pathCmd, seedCmd)
}

func runPath(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	res := a.repo.Bootstrap()
	if !res.OK() {
		return errors.New(res.String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if err := storage.BuildSeed(seedOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", seedOut)
	return nil
}
