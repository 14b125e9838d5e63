package commands

import (
	"fmt"
	"io"
	"os"

	"go-traits-backend/database"
	"go-traits-backend/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	dbPath string

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// rootCmd recreates the development database
var rootCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Recreate the development database with sample data",
	Long: `Deletes the database file if it exists, creates every table and inserts
a sample user. All existing data in the file is lost.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), dbPath)
	},
}

func run(out io.Writer, path string) error {
	if err := database.Bootstrap(path, models.NewSchema(), out); err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("✓ ")+"database "+path+" recreated")
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", database.DefaultBootstrapPath, "Database file to recreate")
}
