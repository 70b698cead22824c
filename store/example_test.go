package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/store"
)

// ExampleSave writes a tree to disk and loads it back through a Loader.
func ExampleSave() {
	dir, err := os.MkdirTemp("", "phylotree")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	t, _ := newick.Parse("((a:1,b:2)ab:0.5,c:3)root;")
	path := filepath.Join(dir, "t.nwk")
	if err := store.Save(path, t, newick.LeafNamesLengths); err != nil {
		fmt.Println(err)
		return
	}

	l, _ := store.NewLoader(store.DefaultCacheSize)
	back, _ := l.Load(path)
	s, _ := newick.String(back, newick.LeafNamesLengths)
	fmt.Println(s)
	// Output: ((a:1,b:2):0.5,c:3);
}

// ExampleSQLiteStore keeps named trees in an in-memory database.
func ExampleSQLiteStore() {
	ctx := context.Background()
	db, err := store.Open(":memory:")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	s, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		fmt.Println(err)
		return
	}
	t, _ := newick.Parse("(((a,b),c),d);")
	_ = s.Put(ctx, "species", t)

	entries, _ := s.List(ctx)
	for _, e := range entries {
		fmt.Println(e.Name, e.Leaves, e.Height)
	}
	// Output: species 4 3
}
