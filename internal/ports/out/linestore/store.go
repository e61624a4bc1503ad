package linestore

import "context"

// Store reads and writes whole text files as sequences of lines.
//
// Read returns every line of the file in order, without line terminators.
// A terminator at the end of the file does not produce an extra empty line.
// Write replaces the file with the given lines, each followed by a line terminator.
type Store interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
	WriteLines(ctx context.Context, path string, lines []string) error
}
