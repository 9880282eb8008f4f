package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	seedResetPassword bool
	seedSample        bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the administrator account",
	Long: `Create the administrator described by security.admin_email and
security.admin_password. Running it again only ensures the admin role,
unless --reset-password is given. --sample adds a demo employee.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		if cfg.Security.AdminEmail == "" || cfg.Security.AdminPassword == "" {
			log.Fatal("security.admin_email and security.admin_password are required to seed")
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		hash, err := auth.HashPassword(cfg.Security.AdminPassword, cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		if err := seedAccount(db, cfg.Security.AdminEmail, "Admin", "Timeclock", "Administrateur", auth.RoleAdmin, hash, seedResetPassword); err != nil {
			log.Fatalf("failed to seed admin: %v", err)
		}

		if seedSample {
			if err := seedAccount(db, "jean.dupont@example.com", "Dupont", "Jean", "Technicien", auth.RoleEmployee, hash, false); err != nil {
				log.Fatalf("failed to seed sample employee: %v", err)
			}
		}
	},
}

func seedAccount(db *gorm.DB, email, nom, prenom, poste, role, hash string, resetPassword bool) error {
	var id int64
	row := db.Raw("SELECT id FROM employees WHERE email = ?", email).Row()
	if err := row.Scan(&id); err != nil {
		err := db.Exec(`INSERT INTO employees (nom, prenom, email, poste, password_hash, role, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, now(), now())`, nom, prenom, email, poste, hash, role).Error
		if err != nil {
			return fmt.Errorf("insert %s: %w", email, err)
		}
		fmt.Printf("Seeded %s account: %s\n", role, email)
		return nil
	}

	fmt.Printf("%s already exists; ensuring role %s\n", email, role)
	if err := db.Exec("UPDATE employees SET role = ?, updated_at = now() WHERE id = ?", role, id).Error; err != nil {
		return fmt.Errorf("update role for %s: %w", email, err)
	}

	if resetPassword {
		if err := db.Exec("UPDATE employees SET password_hash = ?, updated_at = now() WHERE id = ?", hash, id).Error; err != nil {
			return fmt.Errorf("reset password for %s: %w", email, err)
		}
		fmt.Println("Password reset for", email)
	}
	return nil
}

func init() {
	seedCmd.Flags().BoolVar(&seedResetPassword, "reset-password", false, "overwrite the admin password hash when the account exists")
	seedCmd.Flags().BoolVar(&seedSample, "sample", false, "also create a demo employee sharing the admin password")
}
