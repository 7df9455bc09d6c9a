package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

var valueSeeds = []string{
	"",
	" ",
	"1px solid #fff",
	"0 auto, 1em 2em",
	"rgba(255, 0, 0, 0.5)",
	"calc(100% - 2 * var(--gap))",
	"calc(4px+4%)",
	"calc(10px-5px)",
	"'Open Sans', \"Helvetica Neue\", sans-serif",
	"'unterminated",
	"#12345",
	"f()",
	"f(a,,b)",
	"1e+",
	"--x -- -",
	"a <= b == c",
	"\xff\xfe",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range valueSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// каждая строка value sheet идёт отдельным зерном
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".cssv" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		for _, line := range bytes.Split(src, []byte{'\n'}) {
			if len(bytes.TrimSpace(line)) > 0 {
				f.Add(clampSeed(line))
			}
		}
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
