package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunBoardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("S.#\n..#\n..E\n"), 0o600))

	code, out, _ := runCLI(t, "-board", path, "-color=false")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1  [ . * # ]")
	assert.Contains(t, out, "path: 3 nodes, cost 28")
}

func TestRunUnreachable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("S#.\n##.\n..E\n"), 0o600))

	code, out, _ := runCLI(t, "-board", path, "-color=false")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "no path, 1 expansions")
}

func TestRunGenerated(t *testing.T) {
	code, out, _ := runCLI(t, "-height", "8", "-width", "12", "-seed", "99", "-ratio", "0", "-color=false")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "path:")
	// header plus one line per row
	assert.GreaterOrEqual(t, strings.Count(out, "["), 8)
}

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(board, []byte("S...\n.##.\n...E\n"), 0o600))
	image := filepath.Join(dir, "out.png")

	code, out, _ := runCLI(t, "-board", board, "-png", image, "-cell-size", "4")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "image "+image+" written")

	f, err := os.Open(image)
	require.NoError(t, err)
	defer f.Close()
	pic, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, pic.Bounds().Dx())
	assert.Equal(t, 12, pic.Bounds().Dy())
}

func TestRunBench(t *testing.T) {
	code, out, _ := runCLI(t, "-bench", "20", "-workers", "4", "-seed", "1", "-height", "10", "-width", "10")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "boards: 20")
}

func TestRunErrors(t *testing.T) {
	code, _, errOut := runCLI(t, "-ratio", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "blockade ratio")

	code, _, errOut = runCLI(t, "-board", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "read board")

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("S..\n..."), 0o600))
	code, _, errOut = runCLI(t, "-board", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid grid")

	code, _, _ = runCLI(t, "-max-expansions", "1", "-height", "10", "-width", "10", "-ratio", "0", "-seed", "3")
	assert.Equal(t, 1, code)

	code, _, _ = runCLI(t, "-no-such-flag")
	assert.Equal(t, 1, code)
	code, _, _ = runCLI(t, "-h")
	assert.Equal(t, 0, code)
}
