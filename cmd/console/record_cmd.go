package main

import (
	"io"

	"go-hospital-admin/internal/dashboard"

	"github.com/spf13/cobra"
)

// draftFlags registers the field flags of a draft on cmd and returns a
// function that copies the flags the operator actually set into a draft.
type draftFlags[D any] func(cmd *cobra.Command) func(cmd *cobra.Command, draft *D)

// recordCommand builds list/add/edit/delete for entities with full update.
type recordCommand[T any, D any] struct {
	use   string
	short string
	view  func(s *session) *dashboard.RecordView[T, D]
	flags draftFlags[D]
	print func(w io.Writer, items []T)
	// listFlags optionally adds list-only flags and returns a post filter.
	listFlags func(cmd *cobra.Command) func(items []T) []T
}

func (rc recordCommand[T, D]) build(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: rc.use, Short: rc.short}
	cmd.AddCommand(rc.listCmd(s), rc.addCmd(s), rc.editCmd(s), rc.deleteCmd(s))
	return cmd
}

func (rc recordCommand[T, D]) listCmd(s *session) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + rc.use,
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive filter")
	var post func(items []T) []T
	if rc.listFlags != nil {
		post = rc.listFlags(cmd)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		view := rc.view(s)
		if err := view.Mount(cmd.Context()); err != nil {
			return err
		}
		view.Search(search)
		items := view.Visible()
		if post != nil {
			items = post(items)
		}
		rc.print(s.out, items)
		return nil
	}
	return cmd
}

func (rc recordCommand[T, D]) addCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
		Args:  cobra.NoArgs,
	}
	apply := rc.flags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		view := rc.view(s)
		view.Add()
		return submit(cmd, s, view.Form(), apply)
	}
	return cmd
}

func (rc recordCommand[T, D]) editCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Overwrite a record; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
	}
	apply := rc.flags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		view := rc.view(s)
		if err := view.Mount(cmd.Context()); err != nil {
			return err
		}
		if err := view.Edit(args[0]); err != nil {
			return err
		}
		return submit(cmd, s, view.Form(), apply)
	}
	return cmd
}

func (rc recordCommand[T, D]) deleteCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record after confirmation",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVarP(&s.assumeYes, "yes", "y", false, "skip the confirmation prompt")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		_, err := rc.view(s).Delete(cmd.Context(), args[0])
		return err
	}
	return cmd
}

// submit fills the open form from the flags, checks it and sends it once.
func submit[D any](cmd *cobra.Command, s *session, form *dashboard.Form[D], apply func(cmd *cobra.Command, draft *D)) error {
	if err := form.Edit(func(d *D) { apply(cmd, d) }); err != nil {
		return err
	}
	draft := form.Draft()
	if err := s.checkDraft(&draft); err != nil {
		return err
	}
	return form.Submit(cmd.Context())
}
