package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/application/catalog"
	appmember "github.com/xiebiao/library/internal/application/member"
)

// printer 输出表格或JSON
type printer struct {
	w    io.Writer
	json bool
}

// print json模式输出v,否则调用table输出表格
func (p *printer) print(v any, table func(tw *tabwriter.Writer)) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func memberTable(tw *tabwriter.Writer, members []*appmember.MemberDTO) {
	fmt.Fprintln(tw, "CODE\tNAME\tEMAIL\tPHONE")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Code, m.Name, m.Email, m.Phone)
	}
}

func bookTable(tw *tabwriter.Writer, books []*appbook.BookDTO) {
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCOPIES\tTOTAL")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", b.ID, b.Title, b.Author, b.Copies, b.TotalCopies)
	}
}

func issueTable(tw *tabwriter.Writer, issues []*catalog.IssueView) {
	fmt.Fprintln(tw, "ID\tMEMBER\tBOOK\tISSUED\tSTATUS\tRETURNED")
	for _, i := range issues {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\t%s\n",
			i.ID, i.MemberCode, i.MemberName, i.BookTitle, i.IssueDate, i.Status, i.ReturnedAt)
	}
}
