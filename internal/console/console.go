// Package console holds the terminal side of the program: line input,
// yes/no questions and table output.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"

	"train_routes/internal/models"
)

// ErrInputClosed is returned once the input stream ends or is interrupted.
var ErrInputClosed = errors.New("input closed")

// LineReader reads one line of user input after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Reader is a LineReader on top of readline.
type Reader struct {
	rl *readline.Instance
}

// NewReader opens a readline instance on the terminal.
func NewReader() (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize console input: %w", err)
	}
	return &Reader{rl: rl}, nil
}

func (r *Reader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (r *Reader) Close() error {
	return r.rl.Close()
}

// Confirm asks a yes/no question until it gets an answer.
func Confirm(in LineReader, out io.Writer, question string) (bool, error) {
	for {
		line, err := in.ReadLine(question + " [y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(out, "Please answer y or n.")
	}
}

// RenderTrains prints the trains a route can be created for.
func RenderTrains(w io.Writer, trains []models.TrainSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Number", "Type"})
	for _, train := range trains {
		t.AppendRow(table.Row{train.Number, train.TypeName})
	}
	t.Render()
}
