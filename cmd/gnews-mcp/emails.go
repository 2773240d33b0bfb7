package main

import (
	"github.com/spf13/cobra"
)

func newEmailsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emails",
		Short: "Inspect emails written through write_email",
		Long:  "List and show emails persisted by the sqlite storage driver.",
	}
	cmd.AddCommand(newEmailsListCmd(a), newEmailsShowCmd(a))
	return cmd
}

func newEmailsListCmd(a *app) *cobra.Command {
	var recipient string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored emails, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openSQLite()
			if err != nil {
				return a.fail(err)
			}
			defer store.Close()

			emails, err := store.ListEmails(cmd.Context(), recipient)
			if err != nil {
				return a.fail(err)
			}
			if len(emails) == 0 {
				cmd.Println("No emails found")
				return nil
			}

			for i := range emails {
				cmd.Printf("  %s\n", emails[i].ID)
				cmd.Printf("    To:      %s\n", emails[i].Recipient)
				cmd.Printf("    Subject: %s\n", emails[i].Subject)
				cmd.Printf("    Created: %s\n", emails[i].CreatedAt.UTC().Format("2006-01-02 15:04:05"))
				cmd.Println()
			}
			cmd.Printf("Total: %d emails\n", len(emails))
			return nil
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "only emails sent to this address")
	return cmd
}

func newEmailsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [email-id]",
		Short: "Print the composed RFC 5322 message of a stored email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openSQLite()
			if err != nil {
				return a.fail(err)
			}
			defer store.Close()

			_, raw, err := store.GetEmail(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}
			if len(raw) == 0 {
				cmd.Printf("Email %s has no composed message\n", args[0])
				return nil
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}
