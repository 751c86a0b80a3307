package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xiebiao/library/internal/bootstrap"
)

// errInconsistent 流通核对发现不一致
var errInconsistent = errors.New("流通核对不一致")

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "馆藏总览(会员、图书、借阅)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				overview, err := app.ListAll.Execute(ctx)
				if err != nil {
					return err
				}
				return opts.printer(cmd).print(overview, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "# 会员")
					memberTable(tw, overview.Members)
					fmt.Fprintln(tw, "\n# 图书")
					bookTable(tw, overview.Books)
					fmt.Fprintln(tw, "\n# 借阅")
					issueTable(tw, overview.Issues)
				})
			})
		},
	}
}

func newCirculationCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "circulation",
		Short: "流通核对:可借副本 + 未归还 == 登记总数",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				reports, err := app.Circulation.Execute(ctx)
				if err != nil {
					return err
				}

				err = opts.printer(cmd).print(reports, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "ID\tTITLE\tCOPIES\tOUTSTANDING\tTOTAL\tOK")
					for _, r := range reports {
						fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%t\n",
							r.BookID, r.Title, r.Copies, r.Outstanding, r.TotalCopies, r.Consistent)
					}
				})
				if err != nil {
					return err
				}

				for _, r := range reports {
					if !r.Consistent {
						return errInconsistent
					}
				}
				return nil
			})
		},
	}
}
