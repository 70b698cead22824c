package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/phylotree/bipartition"
	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/store"
	"github.com/katalvlaran/phylotree/tree"
)

const dbPrefix = "db:"

var errUsage = errors.New("usage")

type app struct {
	out    io.Writer
	dbPath string
	loader *store.Loader

	db    *sql.DB
	trees *store.SQLiteStore
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("treecmp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dbPath := fs.String("db", "trees.db", "SQLite database holding named trees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: treecmp [-db path] rf|consensus|stats|put|get|list|rm ...", errUsage)
	}

	loader, err := store.NewLoader(store.DefaultCacheSize)
	if err != nil {
		return err
	}
	a := &app{out: out, dbPath: *dbPath, loader: loader}
	defer a.close()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "rf":
		return a.rf(ctx, rest)
	case "consensus":
		return a.consensus(ctx, rest)
	case "stats":
		return a.stats(ctx, rest)
	case "put":
		return a.put(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "rm":
		return a.rm(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// store opens the database on first use.
func (a *app) store(ctx context.Context) (*store.SQLiteStore, error) {
	if a.trees != nil {
		return a.trees, nil
	}
	db, err := store.Open(a.dbPath)
	if err != nil {
		return nil, err
	}
	trees, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	a.db, a.trees = db, trees

	return trees, nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

// tree resolves a tree argument: db:NAME, a file path or inline Newick.
func (a *app) tree(ctx context.Context, arg string) (*tree.Tree, error) {
	name, ok := strings.CutPrefix(arg, dbPrefix)
	if !ok {
		return a.loader.Load(arg)
	}
	s, err := a.store(ctx)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, name)
}

func (a *app) pair(ctx context.Context, args []string) (*tree.Tree, *tree.Tree, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: expected two trees, got %d", errUsage, len(args))
	}
	t1, err := a.tree(ctx, args[0])
	if err != nil {
		return nil, nil, err
	}
	t2, err := a.tree(ctx, args[1])
	if err != nil {
		return nil, nil, err
	}

	return t1, t2, nil
}

func (a *app) rf(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	rooted := fs.Bool("rooted", false, "compare rooted splits")
	normalized := fs.Bool("normalized", false, "print score/maxScore")
	if err := fs.Parse(args); err != nil {
		return err
	}
	t1, t2, err := a.pair(ctx, fs.Args())
	if err != nil {
		return err
	}

	score, maxScore := bipartition.RobinsonFoulds(t1, t2, *rooted)
	if *normalized {
		_, err = fmt.Fprintf(a.out, "%g\n", bipartition.Normalized(score, maxScore))
		return err
	}
	_, err = fmt.Fprintf(a.out, "%d %d\n", score, maxScore)

	return err
}

func (a *app) consensus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("consensus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.Int("format", int(newick.LeafNames), "Newick output format (0-3)")
	path := fs.String("o", "", "write the consensus to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	t1, t2, err := a.pair(ctx, fs.Args())
	if err != nil {
		return err
	}

	c, err := bipartition.StrictConsensus(t1, t2)
	if err != nil {
		return err
	}
	if *path != "" {
		return store.Save(*path, c, newick.Format(*format))
	}

	return a.print(c, newick.Format(*format))
}

func (a *app) stats(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: stats T", errUsage)
	}
	t, err := a.tree(ctx, args[0])
	if err != nil {
		return err
	}

	splits, _ := bipartition.Extract(t, false)
	_, err = fmt.Fprintf(a.out, "leaves: %d\nheight: %d\nlength: %g\nsplits: %d\n",
		t.Len(), t.Height(), t.TotalBranchLength(), len(splits))

	return err
}

func (a *app) put(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: put NAME T", errUsage)
	}
	t, err := a.tree(ctx, args[1])
	if err != nil {
		return err
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}

	return s.Put(ctx, args[0], t)
}

func (a *app) get(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.Int("format", int(newick.AllNamesLengths), "Newick output format (0-3)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: get [-format N] NAME", errUsage)
	}
	t, err := a.tree(ctx, dbPrefix+fs.Arg(0))
	if err != nil {
		return err
	}

	return a.print(t, newick.Format(*format))
}

func (a *app) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: list", errUsage)
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(a.out, "%s\t%d\t%d\n", e.Name, e.Leaves, e.Height); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) rm(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rm NAME", errUsage)
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}

	return s.Delete(ctx, args[0])
}

func (a *app) print(t *tree.Tree, f newick.Format) error {
	if err := newick.Write(a.out, t, f); err != nil {
		return err
	}
	_, err := io.WriteString(a.out, "\n")

	return err
}
