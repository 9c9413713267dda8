package gqlclient

//go:generate go run github.com/probelab/gqlprobe/cmd/opgen -schema ../../internal/transport/graphql/schema.graphql -ops ../../api/operations -pkg gqlclient -out operations.gen.go
