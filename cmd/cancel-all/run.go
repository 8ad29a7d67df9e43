package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/betbot/cryptsy/cryptsy/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// errAborted means the countdown was interrupted and nothing was sent.
var errAborted = errors.New("aborted before cancelling")

type orderCanceller interface {
	CancelAllOrders(ctx context.Context) (*types.Result, error)
}

type styles struct {
	title   lipgloss.Style
	note    lipgloss.Style
	entry   lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
}

// newStyles binds the palette to out, so plain writers get plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true),
		note:    r.NewStyle().Foreground(lipgloss.Color("240")),
		entry:   r.NewStyle().Foreground(lipgloss.Color("39")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		success: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

type runner struct {
	client orderCanceller
	delay  time.Duration
	out    io.Writer
	// wait blocks for d or until ctx is done; time.After based when nil.
	wait func(ctx context.Context, d time.Duration) error
}

func (r *runner) run(ctx context.Context) (*types.CancelReport, error) {
	st := newStyles(r.out)

	fmt.Fprintln(r.out, st.title.Render("Cancelling all trades."))
	fmt.Fprintln(r.out, st.note.Render(fmt.Sprintf("  Sleeping %s. (abort possible)", r.delay)))

	wait := r.wait
	if wait == nil {
		wait = sleepCtx
	}
	if err := wait(ctx, r.delay); err != nil {
		return nil, errAborted
	}

	fmt.Fprintln(r.out, st.title.Render("Cancelling trades."))

	res, err := r.client.CancelAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	report, err := types.NewCancelReport(res)
	if err != nil {
		return nil, errors.Wrap(err, "decode cancel report")
	}

	if !res.HasReturn() {
		fmt.Fprintln(r.out, st.warn.Render("No orders to cancel."))
		fmt.Fprintln(r.out, st.note.Render(fmt.Sprintf("Success : %d", report.Success.Int())))
	}
	for _, entry := range report.Entries {
		fmt.Fprintln(r.out, st.entry.Render(formatEntry(entry)))
	}
	if !report.Success && report.Message != "" {
		fmt.Fprintln(r.out, st.warn.Render("Exchange said: "+report.Message))
	}

	fmt.Fprintln(r.out, st.success.Render("Completed."))
	return report, nil
}

func formatEntry(entry any) string {
	if s, ok := entry.(string); ok {
		return s
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprint(entry)
	}
	return string(b)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
