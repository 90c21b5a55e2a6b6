package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kscius/aura-test/internal/agent/api"
)

// NewUsersCmd создаёт CLI-команду вывода списка всех пользователей.
//
// Для выполнения требуется сохранённый токен (команда login).
// Пользователи выводятся новые первыми — в том порядке,
// в котором их отдаёт сервер.
//
// Пример использования:
//
//	aura users
func NewUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Список всех пользователей (новые первыми)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Token == "" {
				return errors.New("not logged in (run: aura login)")
			}

			c := api.NewClient(app.ServerURL)
			users, err := c.Users(app.Creds.Token)
			if err != nil {
				return err
			}

			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s %s\t%s\n",
					u.ID, u.Email, u.FirstName, u.LastName,
					u.CreatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", len(users))
			return nil
		},
	}
}
