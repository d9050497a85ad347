package cmd

import (
	"fmt"

	"order-management/internal/dto/request"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	usernameFlag string
	emailFlag    string
	passwordFlag string
	roleFlag     string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		service := usecase.NewService(rt.repo, rt.config, nil, rt.logger)
		user, err := service.Auth.CreateAdmin(cmd.Context(), &request.CreateAdminRequest{
			Username: usernameFlag,
			Email:    emailFlag,
			Password: passwordFlag,
		})
		if err != nil {
			return describe(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created (%s)\n", user.Username, user.ID)
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Change the role of an account (empty --role removes it)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		service := usecase.NewService(rt.repo, rt.config, nil, rt.logger)
		if err := service.Auth.SetRole(cmd.Context(), &request.SetRoleRequest{
			Username: usernameFlag,
			Role:     roleFlag,
		}); err != nil {
			return describe(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role of %s set to %q\n", usernameFlag, roleFlag)
		return nil
	},
}

// describe spells out validation failures for the terminal.
func describe(err error) error {
	if ve, ok := usecase.AsValidationError(err); ok {
		return fmt.Errorf("invalid input: %s", utils.FormatValidationErrors(ve.Fields))
	}
	return err
}

func init() {
	createAdminCmd.Flags().StringVar(&usernameFlag, "username", "", "Username of the new admin")
	createAdminCmd.Flags().StringVar(&emailFlag, "email", "", "Email of the new admin")
	createAdminCmd.Flags().StringVar(&passwordFlag, "password", "", "Password of the new admin")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	setRoleCmd.Flags().StringVar(&usernameFlag, "username", "", "Account to change")
	setRoleCmd.Flags().StringVar(&roleFlag, "role", "", "admin, customer or empty")
	_ = setRoleCmd.MarkFlagRequired("username")
}
