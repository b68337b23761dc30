// Package prompt reads validated answers from an interactive terminal session.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/validation"

	"github.com/shopspring/decimal"
)

// DefaultMaxAttempts bounds how often a question is repeated after invalid answers
const DefaultMaxAttempts = 5

var (
	// ErrAborted is returned when the input ends before a valid answer was given
	ErrAborted = errors.New("input aborted")
	// ErrTooManyAttempts is returned when every allowed attempt was invalid
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// Prompter asks questions on out and reads the answers line by line from in
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

// New creates a Prompter. A maxAttempts of zero or less uses DefaultMaxAttempts.
func New(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Prompter{in: bufio.NewReader(in), out: out, maxAttempts: maxAttempts}
}

// Line asks question once and returns the trimmed answer
func (p *Prompter) Line(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask repeats question until parse accepts the answer. Each rejection is reported on
// the output before asking again.
func Ask[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		answer, err := p.Line(question)
		if err != nil {
			return zero, err
		}
		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		if _, werr := fmt.Fprintf(p.out, "Error: %v\n", err); werr != nil {
			return zero, werr
		}
	}
	return zero, fmt.Errorf("%w: %s", ErrTooManyAttempts, strings.TrimSpace(question))
}

// Date asks for a DD-MM-YYYY date. With allowDefault an empty answer stands for today.
func (p *Prompter) Date(question string, allowDefault bool, now time.Time) (models.Date, error) {
	if allowDefault {
		return Ask(p, question, func(s string) (models.Date, error) {
			return validation.ParseDate(s, now)
		})
	}
	return Ask(p, question, validation.ParseRequiredDate)
}

// Amount asks for a positive amount
func (p *Prompter) Amount(question string) (decimal.Decimal, error) {
	return Ask(p, question, validation.ParseAmount)
}

// Category asks for I (Income) or E (Expense)
func (p *Prompter) Category(question string) (models.Category, error) {
	return Ask(p, question, validation.ParseCategory)
}

// Description asks for free text; any answer, including an empty one, is accepted
func (p *Prompter) Description(question string) (string, error) {
	return p.Line(question)
}

// Choice asks until the answer is one of options
func (p *Prompter) Choice(question string, options ...string) (string, error) {
	return Ask(p, question, func(s string) (string, error) {
		for _, o := range options {
			if s == o {
				return s, nil
			}
		}
		return "", fmt.Errorf("invalid choice '%s', expected one of %s", s, strings.Join(options, ", "))
	})
}
