package cli

import (
	"context"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/bootstrap"
)

func newBookCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "图书管理",
	}
	cmd.AddCommand(newBookRegisterCommand(opts), newBookListCommand(opts))
	return cmd
}

func newBookRegisterCommand(opts *options) *cobra.Command {
	var req appbook.RegisterBookRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "登记图书",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				resp, err := app.RegisterBook.Execute(ctx, req)
				if err != nil {
					return err
				}
				return opts.printer(cmd).print(resp, func(tw *tabwriter.Writer) {
					bookTable(tw, []*appbook.BookDTO{resp.Book})
				})
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "书名")
	cmd.Flags().StringVar(&req.Author, "author", "", "作者")
	// 字符串参数,无效或小于1时按1处理
	cmd.Flags().StringVar(&req.Copies, "copies", "1", "副本数")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}

func newBookListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "图书列表",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				books, err := app.Lookup.Books(ctx)
				if err != nil {
					return err
				}
				return opts.printer(cmd).print(books, func(tw *tabwriter.Writer) {
					bookTable(tw, books)
				})
			})
		},
	}
}
