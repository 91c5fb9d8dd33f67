package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "treewire").
		WithSynopsis("treewire [opts] command [opts]").
		WithDescription("treewire is a tool for describing, rendering and reconciling node trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return twMain(cfg, cc, args)
		}).
		WithSubs(
			DescribeCommand(cfg),
			RenderCommand(cfg),
			ReconcileCommand(cfg),
			DiffCommand(cfg),
			FindCommand(cfg),
			PatchCommand(cfg),
			TreedCommand(cfg))
}

func twMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func DescribeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DescribeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Describe, "describe").
		WithAliases("d", "desc").
		WithSynopsis("describe [-html file [-sel selector]] [files]").
		WithDescription("Convert shorthand documents (or live html) to canonical descriptions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return describeRun(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [files]").
		WithDescription("Render shorthand documents to markup").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return renderRun(cfg, cc, args)
		})
}

func ReconcileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReconcileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Reconcile, "reconcile").
		WithSynopsis("reconcile -live <description file> <target file>").
		WithDescription("Reconcile a materialized live tree toward a target description").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reconcileRun(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <file-a> <file-b>").
		WithDescription("Show a markup-level diff of two shorthand documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find -e <expr> [files]").
		WithDescription("Select description nodes matching an expr predicate").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return findRun(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch -p <json-patch file> <description file>").
		WithDescription("Apply an RFC 6902 patch to a description").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchRun(cfg, cc, args)
		})
}
