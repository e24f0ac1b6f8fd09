package main

import (
	"fmt"
	"log/slog"
	"os"

	accountid "github.com/zwong91/unc-account-id"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:    "unc-accountid",
		Usage:   "informal debugging CLI tool for ledger account identifiers",
		Version: versioninfo.Short(),
	}
	app.Commands = []*cli.Command{
		{
			Name:      "validate",
			Usage:     "check an account ID against the structural rules",
			ArgsUsage: "<account-id>",
			Action:    runValidate,
		},
		{
			Name:      "inspect",
			Usage:     "parse an account ID and print its classification",
			ArgsUsage: "<account-id>",
			Action:    runInspect,
		},
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h))
	app.RunAndExitOnError()
}

func runValidate(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide an account ID as an argument")
	}

	if err := accountid.Validate(s); err != nil {
		return err
	}
	fmt.Println("valid")

	return nil
}

func runInspect(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide an account ID as an argument")
	}

	id, err := accountid.Parse(s)
	if err != nil {
		return err
	}
	fmt.Printf("Account ID: %s\n", id)
	fmt.Printf("Length: %d\n", id.Len())
	fmt.Printf("Top-level: %v\n", id.IsTopLevel())
	fmt.Printf("Implicit: %v\n", id.IsImplicit())
	fmt.Printf("System: %v\n", id.IsSystem())

	return nil
}
