// Command opgen generates typed client bindings from GraphQL operation
// documents. Hooked into the build via go:generate in pkg/gqlclient.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/probelab/gqlprobe/internal/codegen/opgen"
)

func main() {
	schema := flag.String("schema", "internal/transport/graphql/schema.graphql", "path to the SDL schema")
	ops := flag.String("ops", "api/operations", "directory of .graphql operation documents")
	pkg := flag.String("pkg", "gqlclient", "package name for the generated file")
	out := flag.String("out", "pkg/gqlclient/operations.gen.go", "output file path")
	flag.Parse()

	src, err := opgen.Generate(*schema, *ops, *pkg)
	if err != nil {
		log.Fatalf("opgen: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("opgen: write %s: %v", *out, err)
	}
}
