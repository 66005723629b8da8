package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/aura/internal/config"
	"github.com/terraincognita07/aura/internal/db"
	"github.com/terraincognita07/aura/internal/services"
	"gorm.io/gorm"
)

var (
	reportEmail   string
	reportPeriod  string
	reportOutPath string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compose a text report without starting the server",
	Long: `Builds the same plain-text episode report the web UI offers, straight
from the database, and prints it to stdout or writes it to a file.

Valid periods: last7days, last30days, last3months, last6months, last1year, all.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportEmail, "email", "", "Email of the account to report on")
	reportCmd.Flags().StringVar(&reportPeriod, "period", services.PeriodAll, "Period filter")
	reportCmd.Flags().StringVar(&reportOutPath, "out", "", "Write the report to this file instead of stdout")
	_ = reportCmd.MarkFlagRequired("email")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(reportEmail))
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repos := db.NewRepositories(database)

	user, err := repos.Users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	text, err := services.NewReportService(repos.Attacks).BuildReport(user.ID, reportPeriod, time.Now())
	if err != nil {
		return fmt.Errorf("compose report: %w", err)
	}

	if reportOutPath != "" {
		if err := os.WriteFile(reportOutPath, []byte(text+"\n"), 0o600); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", reportOutPath)
		return nil
	}

	fmt.Println(text)
	return nil
}
