package atmxgo

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-pdf/fpdf"
)

type JournalEntry struct {
	At      time.Time
	Outcome Outcome
}

var (
	_ Presenter = (*Journal)(nil)
)

// Journal records every presented outcome of the session and passes it on.
// Nothing outlives the process; Statement is the only way to get it out.
type Journal struct {
	mu      sync.Mutex
	node    *snowflake.Node
	next    Presenter
	entries []JournalEntry
	now     func() time.Time
}

func NewJournal(node *snowflake.Node, next Presenter) *Journal {
	return &Journal{
		node: node,
		next: next,
		now:  time.Now,
	}
}

func (j *Journal) Present(out Outcome) error {
	j.mu.Lock()
	out.ID = j.node.Generate()
	j.entries = append(j.entries, JournalEntry{At: j.now(), Outcome: out})
	j.mu.Unlock()

	if j.next == nil {
		return nil
	}
	return j.next.Present(out)
}

func (j *Journal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	cp := make([]JournalEntry, len(j.entries))
	copy(cp, j.entries)
	return cp
}

// Statement writes a PDF mini statement listing the journal entries.
// Core PDF fonts are Latin-1 only, so currency is printed as a code.
func (j *Journal) Statement(w io.Writer, holder, currency string) error {
	entries := j.Entries()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Mini statement", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Mini statement")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Account holder: %s", holder))
	pdf.Ln(10)

	cols := []struct {
		title string
		width float64
	}{
		{"Receipt", 42}, {"Time", 38}, {"Operation", 62}, {"Amount", 24}, {"Result", 24},
	}
	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range entries {
		op, amount, result := e.Outcome.Op.Label(), "", "OK"
		if e.Outcome.Failed() {
			op, result = ErrorKey(e.Outcome.Err), "DECLINED"
		} else if !e.Outcome.Amount.IsZero() {
			amount = e.Outcome.Amount.StringFixed(2) + " " + currency
		}
		row := []string{
			e.Outcome.ID.String(),
			e.At.Format("2006-01-02 15:04:05"),
			op,
			amount,
			result,
		}
		for i, c := range cols {
			pdf.CellFormat(c.width, 6, row[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
