package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	applending "github.com/xiebiao/library/internal/application/lending"
	"github.com/xiebiao/library/internal/bootstrap"
	"github.com/xiebiao/library/internal/domain/outcome"
)

// declinedError 借书/还书被拒绝,以非0状态码退出
func declinedError(r outcome.Result) error {
	return fmt.Errorf("操作被拒绝: %s (%s)", r.Reason.Message(), r.Reason)
}

func newIssueCommand(opts *options) *cobra.Command {
	var req applending.IssueBookRequest

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "借书",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				resp, err := app.IssueBook.Execute(ctx, req)
				if err != nil {
					return err
				}
				if !resp.Applied() {
					return declinedError(resp.Result)
				}
				return opts.printer(cmd).print(resp, func(tw *tabwriter.Writer) {
					lendingTable(tw, resp.Issue)
				})
			})
		},
	}

	cmd.Flags().StringVar(&req.MemberCode, "member", "", "会员编号(如M001)")
	cmd.Flags().StringVar(&req.BookID, "book", "", "图书ID")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("book")

	return cmd
}

func newReturnCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "return <issue-id>",
		Short: "还书",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				resp, err := app.ReturnBook.Execute(ctx, applending.ReturnBookRequest{IssueID: args[0]})
				if err != nil {
					return err
				}
				if !resp.Applied() {
					return declinedError(resp.Result)
				}
				return opts.printer(cmd).print(resp, func(tw *tabwriter.Writer) {
					lendingTable(tw, resp.Issue)
				})
			})
		},
	}
}

func lendingTable(tw *tabwriter.Writer, i *applending.IssueDTO) {
	fmt.Fprintln(tw, "ID\tMEMBER_ID\tBOOK_ID\tISSUED\tSTATUS\tRETURNED")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\n", i.ID, i.MemberID, i.BookID, i.IssueDate, i.Status, i.ReturnedAt)
}
