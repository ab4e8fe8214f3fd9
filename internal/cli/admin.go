package cli

import (
	"context"
	"fmt"

	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/spf13/cobra"
)

func createAdminCmd() *cobra.Command {
	var email, password, role string

	command := &cobra.Command{
		Use:     "create-admin",
		Short:   "Create an admin or editor account",
		Example: "seosites create-admin --email admin@example.com --password secret123",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if a.Storage != "mongo" {
					logger.Warn("MongoDB is not connected; the account only lives until this process exits")
				}
				adm, err := a.Admins.Register(ctx, email, password, role)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", adm.Role, adm.Email, adm.ID.Hex())
				return nil
			})
		},
	}

	command.Flags().StringVarP(&email, "email", "e", "", "account email (required)")
	command.Flags().StringVarP(&password, "password", "p", "", "account password (required)")
	command.Flags().StringVarP(&role, "role", "r", models.RoleAdmin, "admin or editor")
	_ = command.MarkFlagRequired("email")
	_ = command.MarkFlagRequired("password")
	command.Flags().SortFlags = false

	return command
}
