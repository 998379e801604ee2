package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	"github.com/msto63/drawlang/foundation/drawlang"
	mdwstream "github.com/msto63/drawlang/foundation/drawlang/stream"
	"github.com/msto63/drawlang/foundation/utils/filex"
	"github.com/msto63/drawlang/internal/tui"
)

var outputFormats = []string{"text", "tree", "json", "yaml"}

// writeResult prints one parse result in the requested format
func writeResult(w io.Writer, res *drawlang.Result, format string, color bool) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, res.Root.String())
		return err

	case "tree":
		tui.FprintTree(w, res.Root, color)
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Root)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res.Root); err != nil {
			return err
		}
		return enc.Close()

	default:
		return mdwerror.Newf("unknown output format %q (want text, tree, json or yaml)", format).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

func validOutputFormat(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return mdwerror.Newf("unknown output format %q (want text, tree, json or yaml)", format).
		WithCode(mdwerror.CodeInvalidInput)
}

// expandPaths replaces directory arguments with the token stream files
// found beneath them
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !filex.IsDir(arg) {
			paths = append(paths, arg)
			continue
		}
		found, err := filex.FindFiles(arg, mdwstream.Patterns()...)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to search directory").
				WithCode(mdwerror.CodeNotFound).
				WithDetail("path", arg)
		}
		if len(found) == 0 {
			return nil, mdwerror.Newf("no token streams found in %s", arg).
				WithCode(mdwerror.CodeNotFound)
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

// failures summarises a batch; per-file errors are already printed
func failures(results []drawlang.FileResult) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return mdwerror.Newf("%d of %d files failed", failed, len(results))
}
