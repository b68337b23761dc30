package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"fjacquet/budget-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, 3), &out
}

func TestLine(t *testing.T) {
	p, out := newPrompter("  hello  \nlast")

	answer, err := p.Line("Say: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", answer)
	assert.Equal(t, "Say: ", out.String())

	// A final line without newline still counts
	answer, err = p.Line("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Line("More: ")
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, io.EOF)
}

func TestAsk_RetriesUntilValid(t *testing.T) {
	p, out := newPrompter("abc\n-5\n12.5\n")

	amount, err := p.Amount("Amount: ")
	require.NoError(t, err)
	assert.Equal(t, "12.5", amount.String())

	assert.Equal(t, 3, strings.Count(out.String(), "Amount: "))
	assert.Equal(t, 2, strings.Count(out.String(), "Error: "))
	assert.Contains(t, out.String(), "not a number")
	assert.Contains(t, out.String(), "greater than zero")
}

func TestAsk_TooManyAttempts(t *testing.T) {
	p, _ := newPrompter("x\ny\nz\nI\n")

	_, err := p.Category("Category: ")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestAsk_AbortedOnEOF(t *testing.T) {
	p, _ := newPrompter("x\n")

	_, err := p.Category("Category: ")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestDate(t *testing.T) {
	p, _ := newPrompter("\n\n31-02-2025\n01-03-2025\n")

	today, err := p.Date("Date: ", true, now)
	require.NoError(t, err)
	assert.Equal(t, "14-02-2025", today.String())

	// Without a default an empty answer is rejected, as is an impossible date
	d, err := p.Date("Date: ", false, now)
	require.NoError(t, err)
	assert.Equal(t, "01-03-2025", d.String())
}

func TestCategoryAndDescription(t *testing.T) {
	p, _ := newPrompter("e\n\n")

	c, err := p.Category("Category: ")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryExpense, c)

	desc, err := p.Description("Description: ")
	require.NoError(t, err)
	assert.Empty(t, desc)
}

func TestChoice(t *testing.T) {
	p, out := newPrompter("9\n2\n")

	choice, err := p.Choice("Choose: ", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "2", choice)
	assert.Contains(t, out.String(), "invalid choice '9'")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestLine_WriteError(t *testing.T) {
	p := New(strings.NewReader("x\n"), failingWriter{}, 0)

	_, err := p.Line("Q: ")
	assert.EqualError(t, err, "closed")
	assert.Equal(t, DefaultMaxAttempts, p.maxAttempts)
}
