package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treewire/go-treewire/shorthand"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	J bool `cli:"name=j aliases=json desc='read inputs as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read inputs as yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colors decides color output: explicit flag wins, otherwise color only
// when writing to a terminal.
func (cfg *MainConfig) colors(w io.Writer) *shorthand.Colors {
	if cfg.Color {
		return shorthand.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return shorthand.NewColors()
	}
	return nil
}

type DescribeConfig struct {
	*MainConfig
	HTML string `cli:"name=html desc='describe nodes from an html file instead of shorthand input'"`
	Sel  string `cli:"name=sel desc='goquery selector applied to -html input'"`

	Describe *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Render *cli.Command
}

type ReconcileConfig struct {
	*MainConfig
	Live string `cli:"name=live desc='description file of the live tree to materialize'"`

	Reconcile *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type FindConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expr predicate over kind/name/value/attrs/childCount'"`

	Find *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='json patch file (RFC 6902)'"`
	Merge     bool   `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}
