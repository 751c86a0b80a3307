package cli

import (
	"context"
	"errors"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/bootstrap"
)

func newMemberCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "会员管理",
	}
	cmd.AddCommand(newMemberRegisterCommand(opts), newMemberListCommand(opts))
	return cmd
}

func newMemberRegisterCommand(opts *options) *cobra.Command {
	var req appmember.RegisterMemberRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "注册会员(分配会员编号)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				resp, err := app.RegisterMember.Execute(ctx, req)
				if err != nil {
					return err
				}
				if resp.IsDuplicate() {
					return errors.New(resp.Reason.Message())
				}

				return opts.printer(cmd).print(resp, func(tw *tabwriter.Writer) {
					memberTable(tw, []*appmember.MemberDTO{resp.Member})
				})
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "姓名")
	cmd.Flags().StringVar(&req.Email, "email", "", "邮箱")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "电话")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newMemberListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "会员列表",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				members, err := app.Lookup.Members(ctx)
				if err != nil {
					return err
				}
				return opts.printer(cmd).print(members, func(tw *tabwriter.Writer) {
					memberTable(tw, members)
				})
			})
		},
	}
}
