package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kscius/aura-test/internal/agent/api"
	"github.com/kscius/aura-test/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере Aura,
// получает access-токен и сохраняет его в локальный конфигурационный файл.
// Обязателен флаг --email; пароль передаётся флагом --password
// или запрашивается с терминала без эха.
//
// Пример использования:
//
//	aura login --email test@example.com
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить и сохранить токен)",
		Long: `Логин пользователя.

Пример:
  aura login --email test@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := api.NewClient(app.ServerURL)
			data, err := c.Login(email, pw)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = data.Token
			app.Creds.Email = data.User.Email

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}
