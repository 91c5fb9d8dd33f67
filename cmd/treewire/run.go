package main

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/scott-cotton/cli"

	treewire "github.com/treewire/go-treewire"
	"github.com/treewire/go-treewire/host/htmltree"
	"github.com/treewire/go-treewire/host/memtree"
	"github.com/treewire/go-treewire/query"
	"github.com/treewire/go-treewire/shorthand"
)

func describeRun(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Describe.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.HTML != "" {
		return describeHTML(cfg, cc, args)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		s, err := loadShorthand(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := writeJSON(cc.Out, shorthand.ToDescription(s)); err != nil {
			return err
		}
	}
	return nil
}

func describeHTML(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: -html replaces file arguments", cli.ErrUsage)
	}
	f, err := os.Open(cfg.HTML)
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", cfg.HTML, err)
	}
	nodes := doc.Selection.Nodes
	if cfg.Sel != "" {
		nodes = doc.Find(cfg.Sel).Nodes
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no nodes selected by %q in %s", cfg.Sel, cfg.HTML)
	}
	for _, n := range nodes {
		if err := writeJSON(cc.Out, treewire.Describe(htmltree.Wrap(n))); err != nil {
			return err
		}
	}
	return nil
}

func renderRun(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		s, err := loadShorthand(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		out := shorthand.RenderColors(s, cfg.colors(cc.Out))
		if _, err := fmt.Fprintln(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func reconcileRun(cfg *ReconcileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reconcile.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Live == "" || len(args) != 1 {
		return fmt.Errorf("%w: reconcile requires -live and one target file", cli.ErrUsage)
	}
	liveDesc, err := loadDescription(cfg.Live)
	if err != nil {
		return err
	}
	target, err := loadDescription(args[0])
	if err != nil {
		return err
	}
	factory := memtree.NewFactory()
	live, ok := treewire.Materialize(factory, liveDesc)
	if !ok {
		return fmt.Errorf("live description %s cannot materialize", cfg.Live)
	}
	res := treewire.ReconcileNode(factory, live, target)
	if res.Outcome == treewire.Dropped {
		return fmt.Errorf("target description %s cannot materialize", args[0])
	}
	fmt.Fprintf(cc.Out, "# %s\n", res.Outcome)
	return writeJSON(cc.Out, treewire.Describe(res.Node))
}

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := loadShorthand(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadShorthand(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	color := cfg.colors(cc.Out) != nil
	_, err = fmt.Fprintln(cc.Out, treewire.MarkupDiff(a, b, color))
	return err
}

func findRun(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: find requires -e <expr>", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Expr)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := loadDescription(arg)
		if err != nil {
			return err
		}
		matches, err := q.Select(d)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, q, err)
		}
		if err := writeJSON(cc.Out, matches); err != nil {
			return err
		}
	}
	return nil
}

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" || len(args) != 1 {
		return fmt.Errorf("%w: patch requires -p and one description file", cli.ErrUsage)
	}
	patchData, err := readArg(cfg.PatchFile)
	if err != nil {
		return err
	}
	d, err := loadDescription(args[0])
	if err != nil {
		return err
	}
	var res = d
	if cfg.Merge {
		res, err = treewire.ApplyMergePatch(d, patchData)
	} else {
		res, err = treewire.ApplyJSONPatch(d, patchData)
	}
	if err != nil {
		return err
	}
	return writeJSON(cc.Out, res)
}
