package cli

import (
	"errors"

	"github.com/spf13/cobra"

	authservice "github.com/goserg/sportscheduler/auth/service"
	"github.com/goserg/sportscheduler/internal/config"
	"github.com/goserg/sportscheduler/internal/domain"
)

func newCreateAdminCmd(cfg *config.Config) *cobra.Command {
	var req authservice.SignUpRequest
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Register an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				return errors.New("--password is required")
			}
			d, err := open(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer d.db.Close()
			req.Role = domain.RoleAdmin
			user, err := d.auth.SignUp(cmd.Context(), req)
			if err != nil {
				return err
			}
			d.log.WithField("id", user.ID).WithField("email", user.Email).Info("admin created")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "Admin", "admin first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "Admin", "admin last name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
