package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/internal/seed"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var opts seed.Options

	command := &cobra.Command{
		Use:     "seed",
		Short:   "Replace content with sample data",
		Long:    `Clear and repopulate projects, services, testimonials and technologies. --dynamic also replaces stats, hero content, company info and process steps.`,
		Example: "seosites seed --dynamic --admin-email admin@example.com --admin-password secret123",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.AdminEmail == "") != (opts.AdminPassword == "") {
				return errors.New("--admin-email and --admin-password must be given together")
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				sum, err := seed.Run(ctx, a, opts)
				if err != nil {
					logger.Errorf("seed failed: %v", err)
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects, %d services, %d testimonials, %d technologies\n",
					sum.Projects, sum.Services, sum.Testimonials, sum.Technologies)
				if opts.Dynamic {
					fmt.Fprintf(cmd.OutOrStdout(), "seeded %d stats, %d hero contents, %d process steps and company info\n",
						sum.Stats, sum.HeroContents, sum.ProcessSteps)
				}
				return nil
			})
		},
	}

	command.Flags().BoolVar(&opts.Dynamic, "dynamic", false, "also seed stats, hero content, company info and process steps")
	command.Flags().StringVar(&opts.AdminEmail, "admin-email", "", "create an admin account with this email")
	command.Flags().StringVar(&opts.AdminPassword, "admin-password", "", "password for --admin-email")
	command.Flags().SortFlags = false

	return command
}
