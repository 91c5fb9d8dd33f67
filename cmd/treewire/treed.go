package main

import (
	"context"
	"fmt"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/treewire/go-treewire/system/treed/client"
	"github.com/treewire/go-treewire/system/treed/server"
)

type TreedConfig struct {
	*MainConfig
	Treed *cli.Command
}

func TreedCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreedConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Treed, "treed").
		WithSynopsis("treed <subcommand>").
		WithDescription("treed tree daemon commands").
		WithSubs(
			TreedServeCommand(cfg),
			TreedListCommand(cfg),
			TreedRenderCommand(cfg))
}

type TreedServeConfig struct {
	*TreedConfig
	Serve      *cli.Command
	ConfigFile string `cli:"name=config desc='configuration file (yaml)'"`
	Addr       string `cli:"name=addr desc='TCP listen address' default=localhost:9321"`
}

func TreedServeCommand(treedCfg *TreedConfig) *cli.Command {
	cfg := &TreedServeConfig{TreedConfig: treedCfg, Addr: "localhost:9321"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-config <file>]").
		WithDescription("run the treed tree daemon").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treedServe(cfg, cc, args)
		})
}

func treedServe(cfg *TreedServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}

	// gops agent for live process inspection
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}

	var serverConfig *server.Config
	if cfg.ConfigFile != "" {
		serverConfig, err = server.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	srv := server.New(&server.Spec{
		Config: serverConfig,
		Addr:   cfg.Addr,
	})
	if err := srv.StartTCP(); err != nil {
		return fmt.Errorf("failed to start TCP listener: %w", err)
	}
	fmt.Fprintf(cc.Out, "treed listening on %s\n", srv.TCPAddr())
	defer srv.StopTCP()

	select {}
}

type TreedClientConfig struct {
	*TreedConfig
	Cmd  *cli.Command
	Addr string `cli:"name=addr desc='treed server address' default=localhost:9321"`
}

func TreedListCommand(treedCfg *TreedConfig) *cli.Command {
	cfg := &TreedClientConfig{TreedConfig: treedCfg, Addr: "localhost:9321"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "list").
		WithSynopsis("list [-addr <addr>]").
		WithDescription("list trees held by a running treed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := cfg.Cmd.Parse(cc, args); err != nil {
				return err
			}
			c, err := client.Dial(context.Background(), cfg.Addr)
			if err != nil {
				return err
			}
			defer c.Close()
			names, err := c.List(context.Background())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cc.Out, name)
			}
			return nil
		})
}

func TreedRenderCommand(treedCfg *TreedConfig) *cli.Command {
	cfg := &TreedClientConfig{TreedConfig: treedCfg, Addr: "localhost:9321"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "render").
		WithSynopsis("render [-addr <addr>] <tree name>").
		WithDescription("render a tree held by a running treed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Cmd.Parse(cc, args)
			if err != nil {
				return err
			}
			if len(args) != 1 {
				return fmt.Errorf("%w: render requires one tree name", cli.ErrUsage)
			}
			c, err := client.Dial(context.Background(), cfg.Addr)
			if err != nil {
				return err
			}
			defer c.Close()
			markup, err := c.Render(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cc.Out, markup)
			return err
		})
}
