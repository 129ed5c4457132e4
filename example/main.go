package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/meikuraledutech/skillgraph"
)

// Reads graph-data query rows as JSON (a file argument or stdin) and prints
// the visualization payload the API would serve for them.
func main() {
	in := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatalf("open: %v", err)
		}
		defer f.Close()
		in = f
	}

	var records []skillgraph.EdgeRecord
	if err := json.NewDecoder(in).Decode(&records); err != nil {
		log.Fatalf("decode records: %v", err)
	}

	b := skillgraph.NewBuilder().AddAll(records)
	g := b.Graph()

	fmt.Printf("records: %d, nodes: %d, edges: %d, skipped: %d\n",
		len(records), len(g.Nodes), len(g.Edges), b.Skipped())
	printJSON(g)
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
