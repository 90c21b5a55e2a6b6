package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kscius/aura-test/internal/agent/api"
)

// NewProfileCmd создаёт CLI-команду просмотра профиля
// и подкоманду его обновления.
//
// Для выполнения требуется сохранённый токен (команда login).
//
// Примеры использования:
//
//	aura profile
//	aura profile update --first-name Jane
func NewProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Показать профиль текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Token == "" {
				return errors.New("not logged in (run: aura login)")
			}

			c := api.NewClient(app.ServerURL)
			user, err := c.Profile(app.Creds.Token)
			if err != nil {
				return err
			}

			printUser(cmd, user)
			return nil
		},
	}

	cmd.AddCommand(NewProfileUpdateCmd(app))

	return cmd
}

// NewProfileUpdateCmd создаёт подкоманду частичного обновления профиля.
//
// Передаются только изменяемые поля: непереданные флаги
// не отправляются на сервер и значений не меняют.
func NewProfileUpdateCmd(app *App) *cobra.Command {
	var email, firstName, lastName string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Обновить профиль (передаются только указанные флаги)",
		Long: `Частичное обновление профиля.

Пример:
  aura profile update --first-name Jane
  aura profile update --email new@example.com --last-name Doe
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Token == "" {
				return errors.New("not logged in (run: aura login)")
			}

			var patch api.UpdateProfileRequest
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("first-name") {
				patch.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				patch.LastName = &lastName
			}
			if patch.Email == nil && patch.FirstName == nil && patch.LastName == nil {
				return errors.New("nothing to update: pass at least one of --email/--first-name/--last-name")
			}

			c := api.NewClient(app.ServerURL)
			user, err := c.UpdateProfile(app.Creds.Token, patch)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "profile updated")
			printUser(cmd, user)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "new last name")

	return cmd
}

func printUser(cmd *cobra.Command, u api.User) {
	fmt.Fprintf(cmd.OutOrStdout(), "id:         %d\n", u.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "email:      %s\n", u.Email)
	fmt.Fprintf(cmd.OutOrStdout(), "first name: %s\n", u.FirstName)
	fmt.Fprintf(cmd.OutOrStdout(), "last name:  %s\n", u.LastName)
	fmt.Fprintf(cmd.OutOrStdout(), "created:    %s\n", u.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(cmd.OutOrStdout(), "updated:    %s\n", u.UpdatedAt.Format("2006-01-02 15:04:05"))
}
