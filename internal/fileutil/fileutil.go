// Package fileutil provides small filesystem helpers shared across pagegen.
package fileutil

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// FirstLine reads only the first line of the file at path, without the line
// break. The rest of the file is never loaded; ownership checks on large
// pages stay cheap.
func FirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
