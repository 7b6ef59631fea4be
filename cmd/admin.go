package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/database"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/service"
)

var (
	addUserName     string
	addUserEmail    string
	addUserPassword string
	addUserRole     string
	addUserDept     string

	listUsersRole string

	resetPasswordEmail string
	resetPasswordNew   string
)

// adminCmd groups account management commands.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage platform accounts from the command line",
}

// adminAddUserCmd creates an account, including admin accounts which
// cannot be self-registered over HTTP.
var adminAddUserCmd = &cobra.Command{
	Use:   "adduser",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.SetPath(cfg.Database.Path)
		defer database.Close()

		users := service.NewUserService(database.GetDB())
		user, err := users.Register(service.NewUser{
			FullName:   addUserName,
			Email:      addUserEmail,
			Password:   addUserPassword,
			Role:       model.Role(addUserRole),
			Department: addUserDept,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created %s account %s (id %d)\n", user.Role, user.Email, user.ID)
		return nil
	},
}

// adminListUsersCmd prints accounts as a table.
var adminListUsersCmd = &cobra.Command{
	Use:   "listusers",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.SetPath(cfg.Database.Path)
		defer database.Close()

		users := service.NewUserService(database.GetDB())
		list, err := users.ListByRole(model.Role(listUsersRole))
		if err != nil {
			return err
		}

		rows := [][]string{}
		for _, u := range list {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(u.ID), 10),
				u.FullName, u.Email, string(u.Role), u.Department,
				strconv.FormatBool(u.Enabled),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("ID", "Name", "Email", "Role", "Department", "Enabled").
			Rows(rows...)

		fmt.Println(t)
		fmt.Printf("%d account(s)\n", len(list))
		return nil
	},
}

// adminResetPasswordCmd sets a new password without the old one.
var adminResetPasswordCmd = &cobra.Command{
	Use:   "resetpassword",
	Short: "Reset an account's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.SetPath(cfg.Database.Path)
		defer database.Close()

		db := database.GetDB()

		var user model.User
		if err := db.Where("email = ?", resetPasswordEmail).First(&user).Error; err != nil {
			return fmt.Errorf("no account with email %s", resetPasswordEmail)
		}
		if err := user.SetPassword(resetPasswordNew); err != nil {
			return err
		}
		if err := db.Save(&user).Error; err != nil {
			return err
		}

		fmt.Printf("password reset for %s\n", user.Email)
		return nil
	},
}

func init() {
	adminAddUserCmd.Flags().StringVar(&addUserName, "name", "", "full name")
	adminAddUserCmd.Flags().StringVar(&addUserEmail, "email", "", "email address")
	adminAddUserCmd.Flags().StringVar(&addUserPassword, "password", "", "password")
	adminAddUserCmd.Flags().StringVar(&addUserRole, "role", "student", "role: student, alumni or admin")
	adminAddUserCmd.Flags().StringVar(&addUserDept, "department", "", "department")
	_ = adminAddUserCmd.MarkFlagRequired("name")
	_ = adminAddUserCmd.MarkFlagRequired("email")
	_ = adminAddUserCmd.MarkFlagRequired("password")

	adminListUsersCmd.Flags().StringVar(&listUsersRole, "role", "", "filter by role")

	adminResetPasswordCmd.Flags().StringVar(&resetPasswordEmail, "email", "", "email address")
	adminResetPasswordCmd.Flags().StringVar(&resetPasswordNew, "password", "", "new password")
	_ = adminResetPasswordCmd.MarkFlagRequired("email")
	_ = adminResetPasswordCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminAddUserCmd)
	adminCmd.AddCommand(adminListUsersCmd)
	adminCmd.AddCommand(adminResetPasswordCmd)
	rootCmd.AddCommand(adminCmd)
}
