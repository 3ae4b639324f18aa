package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is a plain-text provider: numbered menus and line-at-a-time input.
// End of input cancels the pending prompt.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine builds a line provider reading from in and writing prompts to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) ChooseOne(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("prompt: no options to choose from")
	}
	defaultIndex = validIndex(options, defaultIndex)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintln(l.out, message)
		for i, option := range options {
			marker := " "
			if i == defaultIndex {
				marker = "*"
			}
			fmt.Fprintf(l.out, " %s %d) %s\n", marker, i+1, option)
		}
		fmt.Fprintf(l.out, "Choice [%d]: ", defaultIndex+1)

		answer, err := l.readLine()
		if err != nil {
			return 0, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return defaultIndex, nil
		}
		if idx, ok := matchOption(options, answer); ok {
			return idx, nil
		}
		fmt.Fprintf(l.out, "%q is not one of the choices.\n", answer)
	}
}

func (l *Line) TextInput(ctx context.Context, message, help, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(l.out, message)
	if help != "" {
		fmt.Fprintf(l.out, " (%s)", help)
	}
	if defaultValue != "" {
		fmt.Fprintf(l.out, " [%s]", defaultValue)
	}
	fmt.Fprint(l.out, ": ")

	answer, err := l.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// readLine returns one line without its terminator. A final line without a
// newline is still returned; EOF with nothing read is a cancellation.
func (l *Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(l.out)
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt: read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func matchOption(options []string, answer string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, option := range options {
		if strings.EqualFold(option, answer) {
			return i, true
		}
	}
	return 0, false
}
