package linestore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/linestore"
)

// Store is an OS filesystem implementation of linestore.Store.
type Store struct {
	// Newline terminates every written line. Defaults to the platform's native terminator.
	Newline string
}

// Ensure the implementation satisfies the port.
var _ linestore.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{Newline: nativeNewline()}
}

func (s *Store) ReadLines(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("linestore: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", linestore.ErrNotFound, path)
		}
		return nil, err
	}
	return splitLines(data)
}

func (s *Store) WriteLines(ctx context.Context, path string, lines []string) error {
	if path == "" {
		return errors.New("linestore: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	nl := s.Newline
	if nl == "" {
		nl = nativeNewline()
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(nl)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// splitLines accepts both \n and \r\n terminators. bufio.ScanLines drops a
// final empty line, so a trailing terminator does not yield an extra entry.
func splitLines(data []byte) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nativeNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
