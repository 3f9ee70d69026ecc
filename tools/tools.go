//go:build tools
// +build tools

//go:generate bash -c "go build -ldflags \"-X 'main.version=$(go list -m -f '{{.Version}}' github.com/golangci/golangci-lint)' -X 'main.commit=local' -X 'main.date=local'\" -o ../bin/golangci-lint github.com/golangci/golangci-lint/cmd/golangci-lint"
//go:generate go build -o ../bin/goimports golang.org/x/tools/cmd/goimports

// Package tools pins the linters used on this module. Versions live in the local go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "golang.org/x/tools/cmd/goimports"
)
