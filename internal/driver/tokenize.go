package driver

import (
	"calc/internal/diag"
	"calc/internal/lexer"
	"calc/internal/source"
	"calc/internal/token"
)

// TokenizeResult carries everything a caller needs after the scan stage:
// the token sequence (ending in EOF on success), the diagnostics bag, and
// the first fault as a typed error.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Err     error // *lexer.InvalidCharError on a lexical fault
}

// TokenizeFile loads a file from disk and tokenizes it. The returned error
// covers I/O only; pipeline faults land in the result.
func TokenizeFile(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource tokenizes an in-memory expression (tests, -e flag, REPL).
func TokenizeSource(name, src string, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(src))
	return tokenize(fs, fileID, maxDiagnostics)
}

func tokenize(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	opts := lexer.Options{Reporter: reporterAdapter.Reporter()}

	tokens, err := lexer.Tokenize(file, opts)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     err,
	}
}
