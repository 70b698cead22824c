// Command treecmp compares phylogenetic trees given as Newick files or
// inline Newick strings, and keeps named trees in a SQLite database.
//
// Usage:
//
//	treecmp [-db trees.db] rf [-rooted] [-normalized] T1 T2
//	treecmp [-db trees.db] consensus [-format N] [-o PATH] T1 T2
//	treecmp [-db trees.db] stats T
//	treecmp [-db trees.db] put NAME T
//	treecmp [-db trees.db] get [-format N] NAME
//	treecmp [-db trees.db] list
//	treecmp [-db trees.db] rm NAME
//
// A tree argument written as db:NAME is read from the database.
package main

import (
	"context"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("treecmp: ")

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
