package parser

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ScanAndParse parses path, which may be a single file or a directory. In a
// directory every .jsonl file is read in lexical order.
func ScanAndParse(path string) (ParseResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ParseResult{}, err
	}
	if !info.IsDir() {
		return parseFile(path)
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(p) != ".jsonl" {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return ParseResult{}, err
	}

	var all ParseResult
	for _, p := range paths {
		res, err := parseFile(p)
		if err != nil {
			all.ErrorCount++
			all.Errors = append(all.Errors, LineError{Source: p, Err: err})
			continue
		}
		all.merge(res)
	}
	return all, nil
}

func parseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, err
	}
	defer f.Close()
	return ParseReader(f, path), nil
}
