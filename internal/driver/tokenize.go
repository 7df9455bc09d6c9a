package driver

import (
	"context"
	"fmt"
	"strconv"

	"cssvalue/internal/diag"
	"cssvalue/internal/lexer"
	"cssvalue/internal/source"
	"cssvalue/internal/token"
	"cssvalue/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // заканчивается EOF
	Bag     *diag.Bag
}

// TokenizeString tokenizes a value given as a string.
func TokenizeString(ctx context.Context, input string, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(ValueName, []byte(input)))
	return tokenizeFile(ctx, fs, file, opts)
}

// Tokenize loads path and tokenizes its whole content.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), opts), nil
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	_, span := trace.BeginContext(ctx, trace.ScopePass, "tokenize")
	done := opts.phase("tokenize")

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.All()

	note := fmt.Sprintf("%d tokens", len(tokens))
	done(note)
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).
		WithExtra("errors", strconv.Itoa(bag.Len())).
		End(file.Path)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
