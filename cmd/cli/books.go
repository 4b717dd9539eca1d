package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/marcelsud/bookshelf/book"
	"github.com/spf13/cobra"
)

func newBooksCmd(a *app) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Work with one owner's catalog",
	}
	cmd.PersistentFlags().StringVar(&owner, "owner", "", "email of the catalog owner")
	_ = cmd.MarkPersistentFlagRequired("owner")

	var q book.Query
	list := &cobra.Command{
		Use:   "list",
		Short: "List the visible page of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.books.List(cmd.Context(), owner, q)
			if err != nil {
				return err
			}
			// a filter may leave fewer pages than requested
			if clamped := book.ClampPage(q.Page, page.TotalPages); clamped != q.Page {
				q.Page = clamped
				if page, err = a.books.List(cmd.Context(), owner, q); err != nil {
					return err
				}
			}
			printBooks(cmd.OutOrStdout(), page.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d, %d match(es)\n", q.Page, max(page.TotalPages, 1), page.Total)
			return nil
		},
	}
	list.Flags().StringVar(&q.Search, "search", "", "match title or author")
	list.Flags().StringVar(&q.Category, "category", book.All, "category filter")
	list.Flags().StringVar(&q.Status, "status", book.All, "status filter")
	list.Flags().StringVar(&q.Sort, "sort", book.SortNone, "title, author or newest")
	list.Flags().IntVar(&q.Page, "page", 1, "page number")
	list.Flags().IntVar(&q.PageSize, "page-size", book.DefaultPageSize, "books per page")

	var f book.Form
	var coverPath string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			if coverPath != "" {
				data, err := os.ReadFile(coverPath)
				if err != nil {
					return fmt.Errorf("reading cover: %w", err)
				}
				f.Cover = &book.CoverUpload{Data: data}
			}
			b, err := a.books.Create(cmd.Context(), owner, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added #%d %s\n", b.ID, b.Title)
			return nil
		},
	}
	add.Flags().StringVar(&f.Title, "title", "", "title")
	add.Flags().StringVar(&f.Author, "author", "", "author")
	add.Flags().StringVar(&f.ISBN, "isbn", "", "digits and dashes")
	add.Flags().StringVar(&f.Category, "category", "", "category")
	add.Flags().StringVar(&f.Status, "status", book.Unread.String(), "unread, reading or completed")
	add.Flags().StringVar(&f.Description, "description", "", "free text")
	add.Flags().StringVar(&coverPath, "cover", "", "image file, at most 5MB")

	rm := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.books.Delete(cmd.Context(), owner, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted #%d\n", id)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle ID",
		Short: "Advance the reading status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := a.books.ToggleStatus(cmd.Context(), owner, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s is now %s\n", b.ID, b.Title, b.Status)
			return nil
		},
	}

	describe := &cobra.Command{
		Use:   "describe ID TEXT",
		Short: "Replace a book's description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := a.books.SetDescription(cmd.Context(), owner, id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d description updated\n", b.ID)
			return nil
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.books.Stats(cmd.Context(), owner)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total: %d\nreading: %d\ncompleted: %d\n", st.Total, st.Reading(), st.Completed())
			for _, c := range book.Categories() {
				fmt.Fprintf(out, "  %s: %d\n", c, st.ByCategory[c])
			}
			return nil
		},
	}

	cmd.AddCommand(list, add, rm, toggle, describe, stats)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid book id %q", s)
	}
	return id, nil
}

func printBooks(w io.Writer, list []book.Book) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCATEGORY\tSTATUS")
	for _, b := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Category, b.Status)
	}
	tw.Flush()
}
