package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kscius/aura-test/internal/agent/api"
	"github.com/kscius/aura-test/internal/agent/config"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда регистрирует пользователя на сервере Aura и сразу логинит его:
// полученный токен сохраняется в локальный конфигурационный файл.
// Обязательны флаги --email, --first-name и --last-name; пароль передаётся
// флагом --password или запрашивается с терминала без эха.
//
// Пример использования:
//
//	aura register --email test@example.com --first-name Test --last-name User
func NewRegisterCmd(app *App) *cobra.Command {
	var email, firstName, lastName, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  aura register --email test@example.com --first-name Test --last-name User
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			data, err := c.Register(email, firstName, lastName, pw)
			if err != nil {
				return err
			}

			// после регистрации пользователь сразу залогинен
			app.Creds.Token = data.Token
			app.Creds.Email = data.User.Email
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (id=%d, token saved)\n", data.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")

	return cmd
}
